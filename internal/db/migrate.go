package db

import (
	"context"
	"fmt"

	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

// Migrate creates or updates every table.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.ORM.WithContext(ctx).AutoMigrate(gormModels.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
