package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*gormModels.Organization, error) {
	var o gormModels.Organization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(constants.MsgAccountNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}
	return &o, nil
}

// UpdateProfile overwrites name, contact, description and location. Email is fixed.
func (r *OrganizationRepository) UpdateProfile(ctx context.Context, o *gormModels.Organization) error {
	res := r.db.WithContext(ctx).Model(&gormModels.Organization{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"name":          o.Name,
		"contact":       o.Contact,
		"description":   o.Description,
		"latitude":      o.Latitude,
		"longitude":     o.Longitude,
		"location_name": o.LocationName,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update organization: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.NotFound(constants.MsgAccountNotFound)
	}
	return nil
}
