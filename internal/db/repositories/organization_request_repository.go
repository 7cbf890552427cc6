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

type OrganizationRequestRepository struct {
	db *gorm.DB
}

func NewOrganizationRequestRepository(db *gorm.DB) *OrganizationRequestRepository {
	return &OrganizationRequestRepository{db: db}
}

// Create stores a pending request after checking that neither a pending request
// nor an organization uses the email. The check and insert are not atomic across
// concurrent submissions.
func (r *OrganizationRequestRepository) Create(ctx context.Context, req *gormModels.OrganizationRequest) error {
	req.Email = common.NormalizeEmail(req.Email)
	db := r.db.WithContext(ctx)

	var n int64
	if err := db.Model(&gormModels.Organization{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check organization email: %w", err)
	}
	if n > 0 {
		return common.Conflict(constants.MsgOrganizationExists)
	}
	if err := db.Model(&gormModels.OrganizationRequest{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check pending requests: %w", err)
	}
	if n > 0 {
		return common.Conflict(constants.MsgRequestAlreadyExists)
	}

	if err := db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create organization request: %w", err)
	}
	return nil
}

func (r *OrganizationRequestRepository) List(ctx context.Context) ([]gormModels.OrganizationRequest, error) {
	var out []gormModels.OrganizationRequest
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list organization requests: %w", err)
	}
	return out, nil
}

func (r *OrganizationRequestRepository) GetByID(ctx context.Context, id uint) (*gormModels.OrganizationRequest, error) {
	return getRequest(r.db.WithContext(ctx), id)
}

// Approve provisions an organization from the request and deletes the request,
// in one transaction.
func (r *OrganizationRequestRepository) Approve(ctx context.Context, id uint, passwordHash string) (*gormModels.Organization, *gormModels.OrganizationRequest, error) {
	var (
		org *gormModels.Organization
		req *gormModels.OrganizationRequest
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if req, err = getRequest(tx, id); err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&gormModels.Organization{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check organization email: %w", err)
		}
		if n > 0 {
			return common.Conflict(constants.MsgOrganizationExists)
		}

		org = &gormModels.Organization{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: passwordHash,
			Contact:      req.Contact,
			Description:  req.Description,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			LocationName: req.LocationName,
		}
		if err := tx.Omit("Postings").Create(org).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.Conflict(constants.MsgOrganizationExists)
			}
			return fmt.Errorf("failed to create organization: %w", err)
		}

		return deleteRequest(tx, id)
	})
	if err != nil {
		return nil, nil, err
	}
	return org, req, nil
}

// Reject deletes the request and returns it.
func (r *OrganizationRequestRepository) Reject(ctx context.Context, id uint) (*gormModels.OrganizationRequest, error) {
	var req *gormModels.OrganizationRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if req, err = getRequest(tx, id); err != nil {
			return err
		}
		return deleteRequest(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func getRequest(db *gorm.DB, id uint) (*gormModels.OrganizationRequest, error) {
	var req gormModels.OrganizationRequest
	err := db.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(constants.MsgRequestNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization request: %w", err)
	}
	return &req, nil
}

// deleteRequest fails with NotFound when a concurrent review already removed the row.
func deleteRequest(tx *gorm.DB, id uint) error {
	res := tx.Where("id = ?", id).Delete(&gormModels.OrganizationRequest{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete organization request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.NotFound(constants.MsgRequestNotFound)
	}
	return nil
}
