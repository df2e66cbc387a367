package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/pkg/jwt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testJWT() *jwt.Manager {
	return jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func appCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := err.(apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *entities.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entities.User)
		}).
		Return(nil)

	svc := NewAuthService(repo, testJWT(), zap.NewNop())

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Username: "newuser",
		Name:     "New User",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.Equal(t, entities.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&entities.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := NewAuthService(repo, testJWT(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Username: "dup",
		Name:     "Dup",
		Password: "whatever",
	})

	assert.Equal(t, apperrors.ErrorCode_AUTH_USER_ALREADY_EXISTS, appCode(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	user := &entities.User{ID: uuid.New(), Email: "me@example.com", PasswordHash: string(hash), Role: entities.RoleUser}

	repo := new(MockUserRepo)
	repo.On("FindByEmail", mock.Anything, "me@example.com").Return(user, nil)

	manager := testJWT()
	svc := NewAuthService(repo, manager, zap.NewNop())

	pair, got, err := svc.Login(context.Background(), "me@example.com", "correct-horse")

	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := manager.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	user := &entities.User{ID: uuid.New(), Email: "me@example.com", PasswordHash: string(hash)}

	repo := new(MockUserRepo)
	repo.On("FindByEmail", mock.Anything, "me@example.com").Return(user, nil)

	svc := NewAuthService(repo, testJWT(), zap.NewNop())

	_, _, err := svc.Login(context.Background(), "me@example.com", "battery-staple")

	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, appCode(t, err))
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo, testJWT(), zap.NewNop())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "anything")

	// Indistinguishable from the wrong-password case
	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, appCode(t, err))
}

func TestRefresh_RoundTrip(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "me@example.com", Role: entities.RoleUser}

	manager := testJWT()
	refresh, err := manager.GenerateRefreshToken(user.ID)
	assert.NoError(t, err)

	repo := new(MockUserRepo)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	svc := NewAuthService(repo, manager, zap.NewNop())

	pair, err := svc.Refresh(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc := NewAuthService(new(MockUserRepo), testJWT(), zap.NewNop())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")

	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_TOKEN, appCode(t, err))
}

func TestRefresh_DeletedUser(t *testing.T) {
	manager := testJWT()
	refresh, err := manager.GenerateRefreshToken(uuid.New())
	assert.NoError(t, err)

	repo := new(MockUserRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo, manager, zap.NewNop())

	_, err = svc.Refresh(context.Background(), refresh)

	assert.Equal(t, apperrors.ErrorCode_AUTH_INVALID_TOKEN, appCode(t, err))
}
