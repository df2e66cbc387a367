package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
	"github.com/thien06012001/backend/internal/infrastructure/cache"
)

const unreadCountTTL = time.Minute

// NotificationService implements the Service interface. Unread counts are
// badge data polled far more often than they change, so they are served
// from a short-lived cache keyed per user. New notifications bump a warm
// counter in place; reads and deletes drop it.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	store            cache.Store
	logger           *zap.Logger
}

var _ Service = (*NotificationService)(nil)

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	store cache.Store,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		store:            store,
		logger:           logger,
	}
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread:" + userID.String()
}

// GetUserNotifications returns all notifications of a user and marks the
// unread ones as read. Opening the inbox is the read acknowledgment.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	if _, err := s.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	s.dropUnreadCount(ctx, userID)

	return notifications, nil
}

// GetUnreadNotifications returns unread notifications without changing
// their read state
func (s *NotificationService) GetUnreadNotifications(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	return s.notificationRepo.FindUnreadByUserID(ctx, userID)
}

// CountUnread returns the unread count, cache-aside with a short TTL
func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := unreadCountKey(userID)

	if cached, ok, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("unread count cache read failed", zap.Error(err))
	} else if ok {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.notificationRepo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if err := s.store.Set(ctx, key, strconv.FormatInt(count, 10), unreadCountTTL); err != nil {
		s.logger.Warn("unread count cache write failed", zap.Error(err))
	}

	return count, nil
}

// CreateNotificationInput represents input for creating a notification
type CreateNotificationInput struct {
	UserID      uuid.UUID
	EventID     *uuid.UUID
	Title       string
	Description string
	Metadata    datatypes.JSON
}

// CreateNotification records a notification for a user
func (s *NotificationService) CreateNotification(ctx context.Context, input CreateNotificationInput) (*entities.Notification, error) {
	n := &entities.Notification{
		UserID:      input.UserID,
		EventID:     input.EventID,
		Title:       input.Title,
		Description: input.Description,
		Metadata:    input.Metadata,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	s.bumpUnreadCount(ctx, input.UserID)
	return n, nil
}

// BulkNotificationInput represents input for notifying many users at once
type BulkNotificationInput struct {
	UserIDs     []uuid.UUID
	EventID     *uuid.UUID
	Title       string
	Description string
}

// CreateBulkNotifications records the same notification for many users in
// one batch insert
func (s *NotificationService) CreateBulkNotifications(ctx context.Context, input BulkNotificationInput) ([]*entities.Notification, error) {
	if len(input.UserIDs) == 0 {
		return nil, nil
	}

	notifications := make([]*entities.Notification, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		notifications = append(notifications, &entities.Notification{
			UserID:      userID,
			EventID:     input.EventID,
			Title:       input.Title,
			Description: input.Description,
		})
	}
	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to create notifications: %w", err)
	}
	for _, userID := range input.UserIDs {
		s.bumpUnreadCount(ctx, userID)
	}
	return notifications, nil
}

// MarkAsRead marks a single notification as read. Only the recipient may
// do this.
func (s *NotificationService) MarkAsRead(ctx context.Context, id, callerID uuid.UUID) error {
	n, err := s.findOwned(ctx, id, callerID)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.MarkAsRead(ctx, n.ID); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	s.dropUnreadCount(ctx, callerID)
	return nil
}

// MarkAllAsRead marks every unread notification of a user as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	s.dropUnreadCount(ctx, userID)
	return count, nil
}

// DeleteNotification deletes a notification. Only the recipient may do
// this.
func (s *NotificationService) DeleteNotification(ctx context.Context, id, callerID uuid.UUID) error {
	n, err := s.findOwned(ctx, id, callerID)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(ctx, n.ID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	s.dropUnreadCount(ctx, callerID)
	return nil
}

// DeleteAllNotifications deletes every notification of a user
func (s *NotificationService) DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.DeleteAllByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}
	s.dropUnreadCount(ctx, userID)
	return count, nil
}

func (s *NotificationService) findOwned(ctx context.Context, id, callerID uuid.UUID) (*entities.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("notification")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	if n.UserID != callerID {
		return nil, apperrors.ErrPermissionDenied("access this notification")
	}
	return n, nil
}

// bumpUnreadCount increments the cached badge when one is present. A cold
// cache is left alone so the next CountUnread repopulates it from the
// database instead of trusting a counter started from zero.
func (s *NotificationService) bumpUnreadCount(ctx context.Context, userID uuid.UUID) {
	key := unreadCountKey(userID)

	_, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return
	}
	if _, err := s.store.Incr(ctx, key); err != nil {
		s.logger.Warn("unread count cache bump failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		s.dropUnreadCount(ctx, userID)
	}
}

func (s *NotificationService) dropUnreadCount(ctx context.Context, userID uuid.UUID) {
	if err := s.store.Delete(ctx, unreadCountKey(userID)); err != nil {
		s.logger.Warn("unread count cache invalidation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
