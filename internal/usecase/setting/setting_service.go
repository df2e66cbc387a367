package setting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
	"github.com/thien06012001/backend/internal/infrastructure/cache"
)

const (
	settingsCacheKey = "settings:singleton"
	settingsCacheTTL = 5 * time.Minute
)

// SettingService implements the Service interface. Reads go through the
// cache first; the database stays the source of truth and every write
// invalidates the cached copy.
type SettingService struct {
	configRepo repositories.ConfigurationRepository
	store      cache.Store
	logger     *zap.Logger
}

var _ Service = (*SettingService)(nil)

// NewSettingService creates a new setting service
func NewSettingService(
	configRepo repositories.ConfigurationRepository,
	store cache.Store,
	logger *zap.Logger,
) *SettingService {
	return &SettingService{
		configRepo: configRepo,
		store:      store,
		logger:     logger,
	}
}

// GetSettings returns the settings singleton, cache-aside. A cache miss
// or a corrupt cached entry falls through to the database; a missing
// database row is a deployment error and fails loudly.
func (s *SettingService) GetSettings(ctx context.Context) (*entities.Configuration, error) {
	if cached, ok, err := s.store.Get(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("settings cache read failed", zap.Error(err))
	} else if ok {
		var config entities.Configuration
		if err := json.Unmarshal([]byte(cached), &config); err == nil {
			return &config, nil
		}
		s.logger.Warn("discarding corrupt settings cache entry")
		_ = s.store.Delete(ctx, settingsCacheKey)
	}

	config, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrConfigurationMissing) {
			return nil, apperrors.ErrConfigurationMissing()
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if payload, err := json.Marshal(config); err == nil {
		if err := s.store.Set(ctx, settingsCacheKey, string(payload), settingsCacheTTL); err != nil {
			s.logger.Warn("settings cache write failed", zap.Error(err))
		}
	}

	return config, nil
}

// UpdateSettingsInput represents input for updating the tenant settings.
// Nil fields are left unchanged.
type UpdateSettingsInput struct {
	MaxActiveEvents            *int
	MaxEventCapacity           *int
	DefaultParticipantReminder *int
	DefaultInvitationReminder  *int
}

// UpdateSettings applies the patch and drops the cached copy so the next
// read observes the new limits.
func (s *SettingService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*entities.Configuration, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrConfigurationMissing) {
			return nil, apperrors.ErrConfigurationMissing()
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.MaxActiveEvents != nil {
		if *input.MaxActiveEvents < 1 {
			return nil, apperrors.ErrInvalidArgument("max_active_events must be at least 1")
		}
		config.MaxActiveEvents = *input.MaxActiveEvents
	}
	if input.MaxEventCapacity != nil {
		if *input.MaxEventCapacity < 1 {
			return nil, apperrors.ErrInvalidArgument("max_event_capacity must be at least 1")
		}
		config.MaxEventCapacity = *input.MaxEventCapacity
	}
	if input.DefaultParticipantReminder != nil {
		if *input.DefaultParticipantReminder < 0 {
			return nil, apperrors.ErrInvalidArgument("default_participant_reminder must not be negative")
		}
		config.DefaultParticipantReminder = *input.DefaultParticipantReminder
	}
	if input.DefaultInvitationReminder != nil {
		if *input.DefaultInvitationReminder < 0 {
			return nil, apperrors.ErrInvalidArgument("default_invitation_reminder must not be negative")
		}
		config.DefaultInvitationReminder = *input.DefaultInvitationReminder
	}

	if err := s.configRepo.Update(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	if err := s.store.Delete(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("settings cache invalidation failed", zap.Error(err))
	}

	return config, nil
}
