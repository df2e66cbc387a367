package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// AdminService implements the Service interface
type AdminService struct {
	userRepo  repositories.UserRepository
	eventRepo repositories.EventRepository
	logger    *zap.Logger
}

var _ Service = (*AdminService)(nil)

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ListUsers retrieves every account
func (s *AdminService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.FindAll(ctx)
}

// DeleteUser removes any account
func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound("user")
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user removed by admin", zap.String("user_id", id.String()))
	return nil
}

// ListEvents retrieves every event regardless of visibility
func (s *AdminService) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

// DeleteEvent removes any event
func (s *AdminService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound("event")
		}
		return fmt.Errorf("failed to find event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.logger.Info("event removed by admin", zap.String("event_id", id.String()))
	return nil
}
