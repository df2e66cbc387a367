package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the notification business logic interface
type Service interface {
	// GetUserNotifications returns all of a user's notifications, newest
	// first, and marks the unread ones as read
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)

	// GetUnreadNotifications returns the user's unread notifications
	// without touching their read state
	GetUnreadNotifications(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)

	// CountUnread returns the user's unread notification count, served
	// from the cache when warm
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreateNotification records a notification for a user
	CreateNotification(ctx context.Context, input CreateNotificationInput) (*entities.Notification, error)

	// CreateBulkNotifications records the same notification for many users
	CreateBulkNotifications(ctx context.Context, input BulkNotificationInput) ([]*entities.Notification, error)

	// MarkAsRead marks a single notification as read, recipient only
	MarkAsRead(ctx context.Context, id, callerID uuid.UUID) error

	// MarkAllAsRead marks every unread notification of a user as read and
	// returns how many were flipped
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification deletes a notification, recipient only
	DeleteNotification(ctx context.Context, id, callerID uuid.UUID) error

	// DeleteAllNotifications deletes every notification of a user and
	// returns how many were removed
	DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
}
