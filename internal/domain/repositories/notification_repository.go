package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, notification *entities.Notification) error

	// CreateBatch inserts a batch of notifications in one statement
	CreateBatch(ctx context.Context, notifications []*entities.Notification) error

	// FindByID retrieves a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)

	// FindByUserID retrieves all notifications for a user, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)

	// FindUnreadByUserID retrieves unread notifications for a user, newest first
	FindUnreadByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)

	// CountUnreadByUserID counts unread notifications for a user
	CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAsRead marks a single notification as read
	MarkAsRead(ctx context.Context, id uuid.UUID) error

	// MarkAllAsRead marks all unread notifications of a user as read
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete deletes a notification
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUserID deletes every notification of a user
	DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
