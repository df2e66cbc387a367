package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/infrastructure/cache"
)

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepo) CreateBatch(ctx context.Context, notifications []*entities.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepo) FindUnreadByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepo) CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepo) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func newService(repo *MockNotificationRepo) (*NotificationService, cache.Store) {
	store := cache.NewMemoryStore()
	return NewNotificationService(repo, store, zap.NewNop()), store
}

func TestGetUserNotifications_MarksAllRead(t *testing.T) {
	userID := uuid.New()
	inbox := []*entities.Notification{
		{ID: uuid.New(), UserID: userID, Title: "Event Reminder", IsRead: false},
		{ID: uuid.New(), UserID: userID, Title: "Event Updated", IsRead: true},
	}

	repo := new(MockNotificationRepo)
	repo.On("FindByUserID", mock.Anything, userID).Return(inbox, nil)
	repo.On("MarkAllAsRead", mock.Anything, userID).Return(int64(1), nil)

	svc, _ := newService(repo)

	got, err := svc.GetUserNotifications(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertCalled(t, "MarkAllAsRead", mock.Anything, userID)
}

func TestCountUnread_CacheAside(t *testing.T) {
	userID := uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("CountUnreadByUserID", mock.Anything, userID).Return(int64(4), nil).Once()

	svc, _ := newService(repo)

	first, err := svc.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), first)

	// Served from cache: the repo is hit exactly once
	second, err := svc.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), second)
	repo.AssertNumberOfCalls(t, "CountUnreadByUserID", 1)
}

func TestCreateNotification_BumpsWarmCachedCount(t *testing.T) {
	userID := uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("CountUnreadByUserID", mock.Anything, userID).Return(int64(1), nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil)

	svc, _ := newService(repo)

	count, err := svc.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.CreateNotification(context.Background(), CreateNotificationInput{
		UserID: userID,
		Title:  "Event Invitation",
	})
	assert.NoError(t, err)

	// The warm badge was incremented in place; the repo is never re-queried
	count, err = svc.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	repo.AssertNumberOfCalls(t, "CountUnreadByUserID", 1)
}

func TestCreateNotification_ColdCacheStaysCold(t *testing.T) {
	userID := uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil)
	repo.On("CountUnreadByUserID", mock.Anything, userID).Return(int64(3), nil).Once()

	svc, store := newService(repo)

	_, err := svc.CreateNotification(context.Background(), CreateNotificationInput{
		UserID: userID,
		Title:  "Event Invitation",
	})
	assert.NoError(t, err)

	// No counter was fabricated from zero on the write path
	_, ok, err := store.Get(context.Background(), unreadCountKey(userID))
	assert.NoError(t, err)
	assert.False(t, ok)

	// The first read still comes from the database
	count, err := svc.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCreateBulkNotifications_BumpsEachRecipient(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("CountUnreadByUserID", mock.Anything, alice).Return(int64(2), nil).Once()
	repo.On("CountUnreadByUserID", mock.Anything, bob).Return(int64(0), nil).Once()
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	svc, _ := newService(repo)

	// Warm both badges first
	for _, id := range []uuid.UUID{alice, bob} {
		_, err := svc.CountUnread(context.Background(), id)
		assert.NoError(t, err)
	}

	_, err := svc.CreateBulkNotifications(context.Background(), BulkNotificationInput{
		UserIDs: []uuid.UUID{alice, bob},
		Title:   "Event Reminder",
	})
	assert.NoError(t, err)

	count, err := svc.CountUnread(context.Background(), alice)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = svc.CountUnread(context.Background(), bob)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	repo.AssertNumberOfCalls(t, "CountUnreadByUserID", 2)
}

func TestCreateBulkNotifications_EmptyInputIsNoop(t *testing.T) {
	repo := new(MockNotificationRepo)
	svc, _ := newService(repo)

	got, err := svc.CreateBulkNotifications(context.Background(), BulkNotificationInput{})

	assert.NoError(t, err)
	assert.Nil(t, got)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestMarkAsRead_RecipientOnly(t *testing.T) {
	id := uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("FindByID", mock.Anything, id).
		Return(&entities.Notification{ID: id, UserID: uuid.New()}, nil)

	svc, _ := newService(repo)

	err := svc.MarkAsRead(context.Background(), id, uuid.New())

	appErr, ok := err.(apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorCode_PERMISSION_DENIED, appErr.Code)
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestDeleteNotification_NotFound(t *testing.T) {
	id := uuid.New()

	repo := new(MockNotificationRepo)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc, _ := newService(repo)

	err := svc.DeleteNotification(context.Background(), id, uuid.New())

	appErr, ok := err.(apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorCode_NOT_FOUND, appErr.Code)
}
