package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// requestRepository implements the RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new join request repository
func NewRequestRepository(db *gorm.DB) repositories.RequestRepository {
	return &requestRepository{db: db}
}

// Create creates a new join request
func (r *requestRepository) Create(ctx context.Context, request *entities.JoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID retrieves a join request by its ID
func (r *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.JoinRequest, error) {
	var request entities.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Where("id = ?", id).
		First(&request).Error

	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByEventID retrieves all join requests for an event
func (r *requestRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.JoinRequest, error) {
	var requests []*entities.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// DeleteByEventAndUser removes the request a user made for an event
func (r *requestRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entities.JoinRequest{}).Error
}
