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

// AccountRepository looks up credentials across the three account tables.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// accountModel returns an empty model for the table backing role.
func accountModel(role constants.Role) (interface{}, error) {
	switch role {
	case constants.RoleAdmin:
		return &gormModels.Admin{}, nil
	case constants.RoleOrganization:
		return &gormModels.Organization{}, nil
	case constants.RoleVolunteer:
		return &gormModels.Volunteer{}, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

func firstAccount[T any, PT interface {
	*T
	gormModels.Account
}](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (gormModels.Account, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(constants.MsgAccountNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return PT(&row), nil
}

func (r *AccountRepository) find(ctx context.Context, role constants.Role, query string, args ...interface{}) (gormModels.Account, error) {
	switch role {
	case constants.RoleAdmin:
		return firstAccount[gormModels.Admin](ctx, r.db, query, args...)
	case constants.RoleOrganization:
		return firstAccount[gormModels.Organization](ctx, r.db, query, args...)
	case constants.RoleVolunteer:
		return firstAccount[gormModels.Volunteer](ctx, r.db.Preload("Skills", orderByID), query, args...)
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// FindCredentialByEmail returns the account of the given variant with that email.
func (r *AccountRepository) FindCredentialByEmail(ctx context.Context, role constants.Role, email string) (gormModels.Account, error) {
	return r.find(ctx, role, "email = ?", common.NormalizeEmail(email))
}

func (r *AccountRepository) FindByID(ctx context.Context, role constants.Role, id uint) (gormModels.Account, error) {
	return r.find(ctx, role, "id = ?", id)
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, role constants.Role, id uint, hash string) error {
	model, err := accountModel(role)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.NotFound(constants.MsgAccountNotFound)
	}
	return nil
}

// EmailTaken reports whether the role's table already holds that email.
func (r *AccountRepository) EmailTaken(ctx context.Context, role constants.Role, email string) (bool, error) {
	model, err := accountModel(role)
	if err != nil {
		return false, err
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(model).Where("email = ?", common.NormalizeEmail(email)).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

func (r *AccountRepository) CreateAdmin(ctx context.Context, admin *gormModels.Admin) error {
	admin.Email = common.NormalizeEmail(admin.Email)
	err := r.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.Conflict(constants.MsgAdminEmailTaken)
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
