package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
	"github.com/thien06012001/backend/pkg/jwt"
)

// AuthService implements the Service interface
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

var _ Service = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email    string
	Username string
	Name     string
	Phone    *string
	Password string
}

// Register creates a new account with a bcrypt-hashed password. The email
// uniqueness check runs first so the caller gets a conflict rather than a
// bare constraint violation.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.ErrUserAlreadyExists(input.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(input.Email, input.Username, input.Name, string(hash))
	user.Phone = input.Phone

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password return the same error so the response does not leak
// which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, *entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials()
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials()
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken()
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.issueTokens(user)
}

// Me returns the account behind an authenticated request
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("user")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entities.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
