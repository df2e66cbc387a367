package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/infrastructure/cache"
)

type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) Get(ctx context.Context) (*entities.Configuration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Configuration), args.Error(1)
}

func (m *MockConfigRepo) Update(ctx context.Context, config *entities.Configuration) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func testConfig() *entities.Configuration {
	return &entities.Configuration{
		MaxActiveEvents:            5,
		MaxEventCapacity:           100,
		DefaultParticipantReminder: 2,
		DefaultInvitationReminder:  2,
	}
}

func TestGetSettings_CacheAside(t *testing.T) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(testConfig(), nil).Once()

	svc := NewSettingService(repo, cache.NewMemoryStore(), zap.NewNop())

	first, err := svc.GetSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, first.MaxActiveEvents)

	// Second read is served from the cache; the repo is hit exactly once
	second, err := svc.GetSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 100, second.MaxEventCapacity)
	repo.AssertNumberOfCalls(t, "Get", 1)
}

func TestGetSettings_CorruptCacheEntryFallsThrough(t *testing.T) {
	store := cache.NewMemoryStore()
	assert.NoError(t, store.Set(context.Background(), "settings:singleton", "{not json", 0))

	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(testConfig(), nil)

	svc := NewSettingService(repo, store, zap.NewNop())

	config, err := svc.GetSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, config.MaxActiveEvents)
	repo.AssertCalled(t, "Get", mock.Anything)
}

func TestGetSettings_MissingRowFailsLoudly(t *testing.T) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(nil, entities.ErrConfigurationMissing)

	svc := NewSettingService(repo, cache.NewMemoryStore(), zap.NewNop())

	_, err := svc.GetSettings(context.Background())

	appErr, ok := err.(apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorCode_CONFIGURATION_MISSING, appErr.Code)
}

func TestUpdateSettings_InvalidatesCache(t *testing.T) {
	store := cache.NewMemoryStore()

	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(testConfig(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Configuration")).Return(nil)

	svc := NewSettingService(repo, store, zap.NewNop())

	// Prime the cache
	_, err := svc.GetSettings(context.Background())
	assert.NoError(t, err)

	ten := 10
	updated, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{MaxActiveEvents: &ten})
	assert.NoError(t, err)
	assert.Equal(t, 10, updated.MaxActiveEvents)

	_, ok, err := store.Get(context.Background(), "settings:singleton")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateSettings_RejectsZeroLimits(t *testing.T) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(testConfig(), nil)

	svc := NewSettingService(repo, cache.NewMemoryStore(), zap.NewNop())

	zero := 0
	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{MaxActiveEvents: &zero})

	appErr, ok := err.(apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	repo := new(MockConfigRepo)
	repo.On("Get", mock.Anything).Return(testConfig(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Configuration")).Return(nil)

	svc := NewSettingService(repo, cache.NewMemoryStore(), zap.NewNop())

	three := 3
	updated, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{DefaultParticipantReminder: &three})

	assert.NoError(t, err)
	assert.Equal(t, 3, updated.DefaultParticipantReminder)
	// Untouched fields survive the patch
	assert.Equal(t, 5, updated.MaxActiveEvents)
	assert.Equal(t, 100, updated.MaxEventCapacity)
}
