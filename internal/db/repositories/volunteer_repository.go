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

type VolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create inserts the volunteer and its skills in one transaction.
func (r *VolunteerRepository) Create(ctx context.Context, v *gormModels.Volunteer, skills []string) error {
	v.Email = common.NormalizeEmail(v.Email)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Skills", "Enrollments").Create(v).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.Conflict(constants.MsgVolunteerEmailTaken)
			}
			return fmt.Errorf("failed to create volunteer: %w", err)
		}
		rows, err := replaceVolunteerSkills(tx, v.ID, skills)
		if err != nil {
			return err
		}
		v.Skills = rows
		return nil
	})
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id uint) (*gormModels.Volunteer, error) {
	var v gormModels.Volunteer
	err := r.db.WithContext(ctx).Preload("Skills", orderByID).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(constants.MsgAccountNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer: %w", err)
	}
	return &v, nil
}

// UpdateProfile overwrites the profile fields and replaces the whole skill set.
func (r *VolunteerRepository) UpdateProfile(ctx context.Context, v *gormModels.Volunteer, skills []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gormModels.Volunteer{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
			"name":          v.Name,
			"date_of_birth": v.DateOfBirth,
			"gender":        v.Gender,
			"description":   v.Description,
			"privacy":       v.Privacy,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update volunteer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.NotFound(constants.MsgAccountNotFound)
		}
		_, err := replaceVolunteerSkills(tx, v.ID, skills)
		return err
	})
}

// replaceVolunteerSkills deletes every skill row of the volunteer then inserts skills.
func replaceVolunteerSkills(tx *gorm.DB, volunteerID uint, skills []string) ([]gormModels.VolunteerSkill, error) {
	if err := tx.Where("volunteer_id = ?", volunteerID).Delete(&gormModels.VolunteerSkill{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear volunteer skills: %w", err)
	}
	rows := make([]gormModels.VolunteerSkill, 0, len(skills))
	for _, name := range skills {
		rows = append(rows, gormModels.VolunteerSkill{VolunteerID: volunteerID, Name: name})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to insert volunteer skills: %w", err)
	}
	return rows, nil
}
