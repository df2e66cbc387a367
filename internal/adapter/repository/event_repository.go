package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) repositories.EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID retrieves an event by its ID
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update updates an existing event
func (r *eventRepository) Update(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete deletes an event
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Event{}, id).Error
}

// FindAllPublic retrieves all public events
func (r *eventRepository) FindAllPublic(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("is_public = ?", true).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// FindAll retrieves every event regardless of visibility
func (r *eventRepository) FindAll(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// FindByOwnerID retrieves all events owned by a user
func (r *eventRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// FindJoinedByUserID retrieves events the user participates in
func (r *eventRepository) FindJoinedByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN event_participants ON event_participants.event_id = events.id").
		Where("event_participants.user_id = ?", userID).
		Order("events.start_time ASC").
		Find(&events).Error
	return events, err
}

// FindActiveByOwner retrieves the owner's events still counting against the
// admission limit. The window is an inclusive OR on both endpoints: an
// event that started yesterday but ends tomorrow is still active.
func (r *eventRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND (start_time >= ? OR end_time >= ?)", ownerID, now, now).
		Find(&events).Error
	return events, err
}

// FindFutureEvents retrieves events with start_time strictly after now
func (r *eventRepository) FindFutureEvents(ctx context.Context, now time.Time) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Where("start_time > ?", now).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}
