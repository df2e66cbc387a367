package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// configurationRepository implements the ConfigurationRepository interface
type configurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(db *gorm.DB) repositories.ConfigurationRepository {
	return &configurationRepository{db: db}
}

// Get returns the single live configuration row. The source dereferenced
// the first row unconditionally; here a missing row surfaces as
// entities.ErrConfigurationMissing instead of a nil panic.
func (r *configurationRepository) Get(ctx context.Context) (*entities.Configuration, error) {
	var config entities.Configuration
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&config).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrConfigurationMissing
		}
		return nil, err
	}
	return &config, nil
}

// Update updates the configuration row
func (r *configurationRepository) Update(ctx context.Context, config *entities.Configuration) error {
	return r.db.WithContext(ctx).Save(config).Error
}
