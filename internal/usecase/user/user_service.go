package user

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
)

// UserService implements the Service interface
type UserService struct {
	userRepo  repositories.UserRepository
	eventRepo repositories.EventRepository
	logger    *zap.Logger
}

var _ Service = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("user")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.FindAll(ctx)
}

// UpdateUserInput represents a partial profile update. Nil fields are
// left unchanged.
type UpdateUserInput struct {
	Username  *string
	Name      *string
	Phone     *string
	AvatarURL *string
	Password  *string
}

// UpdateUser applies the patch. A non-nil Password is bcrypt-hashed; the
// plaintext never reaches the repository.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// GetOwnedEvents lists events the user owns
func (s *UserService) GetOwnedEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	return s.eventRepo.FindByOwnerID(ctx, userID)
}

// GetJoinedEvents lists events the user participates in
func (s *UserService) GetJoinedEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	return s.eventRepo.FindJoinedByUserID(ctx, userID)
}
