package setting

import (
	"context"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the settings business logic interface
type Service interface {
	// GetSettings returns the tenant settings singleton, served from the
	// cache when warm.
	GetSettings(ctx context.Context) (*entities.Configuration, error)

	// UpdateSettings applies the given limits and defaults to the
	// singleton and invalidates the cached copy.
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*entities.Configuration, error)
}
