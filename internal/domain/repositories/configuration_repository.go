package repositories

import (
	"context"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// ConfigurationRepository provides access to the tenant settings singleton
type ConfigurationRepository interface {
	// Get returns the single live configuration row. A missing row is a
	// fatal misconfiguration and returns entities.ErrConfigurationMissing
	// rather than silently defaulting.
	Get(ctx context.Context) (*entities.Configuration, error)

	// Update updates the configuration row
	Update(ctx context.Context, config *entities.Configuration) error
}
