package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// Create creates a new participant record
func (r *participantRepository) Create(ctx context.Context, participant *entities.EventParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// Delete removes the participant row for (event, user)
func (r *participantRepository) Delete(ctx context.Context, eventID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entities.EventParticipant{}).Error
}

// FindByEventID retrieves all participants of an event
func (r *participantRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.EventParticipant, error) {
	var participants []*entities.EventParticipant
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&participants).Error
	return participants, err
}

// FindByUserID retrieves all participant records for a user
func (r *participantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.EventParticipant, error) {
	var participants []*entities.EventParticipant
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participants).Error
	return participants, err
}

// Exists checks whether a user participates in an event
func (r *participantRepository) Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.EventParticipant{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByEventID counts participants of an event
func (r *participantRepository) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.EventParticipant{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
