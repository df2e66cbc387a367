package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// invitationRepository implements the InvitationRepository interface
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) repositories.InvitationRepository {
	return &invitationRepository{db: db}
}

// Create creates a new invitation
func (r *invitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

// CreateBatch creates multiple invitations at once
func (r *invitationRepository) CreateBatch(ctx context.Context, invitations []*entities.Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&invitations).Error
}

// FindByID retrieves an invitation by its ID
func (r *invitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	var invitation entities.Invitation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Where("id = ?", id).
		First(&invitation).Error

	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindByEventID retrieves all invitations for an event
func (r *invitationRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error) {
	var invitations []*entities.Invitation
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// FindPendingByEventID retrieves the event's invitations still pending
func (r *invitationRepository) FindPendingByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error) {
	var invitations []*entities.Invitation
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, entities.InvitationStatusPending).
		Find(&invitations).Error
	return invitations, err
}

// FindByUserID retrieves all invitations targeting a user
func (r *invitationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Invitation, error) {
	var invitations []*entities.Invitation
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// UpdateStatus updates the status of an invitation
func (r *invitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Invitation{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

// Delete deletes an invitation
func (r *invitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Invitation{}, id).Error
}
