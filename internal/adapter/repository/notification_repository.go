package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// CreateBatch inserts a batch of notifications in one statement
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&notifications).Error
}

// FindByID retrieves a notification by its ID
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	var notification entities.Notification
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notification).Error

	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// FindByUserID retrieves all notifications for a user, newest first
func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// FindUnreadByUserID retrieves unread notifications for a user, newest first
func (r *notificationRepository) FindUnreadByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// CountUnreadByUserID counts unread notifications for a user
func (r *notificationRepository) CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead marks a single notification as read
func (r *notificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

// MarkAllAsRead marks all unread notifications of a user as read
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// Delete deletes a notification
func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Notification{}, id).Error
}

// DeleteAllByUserID deletes every notification of a user
func (r *notificationRepository) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.Notification{})
	return result.RowsAffected, result.Error
}
