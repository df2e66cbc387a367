package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Mock implementations

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepo) FindAllPublic(ctx context.Context) ([]*entities.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepo) FindAll(ctx context.Context) ([]*entities.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Event, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepo) FindJoinedByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepo) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*entities.Event, error) {
	args := m.Called(ctx, ownerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepo) FindFutureEvents(ctx context.Context, now time.Time) ([]*entities.Event, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) Create(ctx context.Context, participant *entities.EventParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockParticipantRepo) Delete(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockParticipantRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.EventParticipant, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EventParticipant), args.Error(1)
}

func (m *MockParticipantRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.EventParticipant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EventParticipant), args.Error(1)
}

func (m *MockParticipantRepo) Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantRepo) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, invitation *entities.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepo) CreateBatch(ctx context.Context, invitations []*entities.Invitation) error {
	args := m.Called(ctx, invitations)
	return args.Error(0)
}

func (m *MockInvitationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) FindPendingByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Invitation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvitationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

// stubSettings serves a fixed configuration without hitting the cache or
// the database.
type stubSettings struct {
	config *entities.Configuration
	err    error
}

func (s *stubSettings) GetSettings(ctx context.Context) (*entities.Configuration, error) {
	return s.config, s.err
}
