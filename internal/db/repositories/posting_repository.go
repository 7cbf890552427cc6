package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

type PostingRepository struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) *PostingRepository {
	return &PostingRepository{db: db}
}

// PostingQuery scopes a listing. OrganizationID restricts to one owner,
// OnlyOpen hides review-based postings.
type PostingQuery struct {
	OrganizationID *uint
	OnlyOpen       bool
	Filter         requests.PostingFilter
}

// Create inserts the posting and its skills in one transaction.
func (r *PostingRepository) Create(ctx context.Context, p *gormModels.Posting, skills []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Skills", "Enrollments").Create(p).Error; err != nil {
			return fmt.Errorf("failed to create posting: %w", err)
		}
		rows, err := replacePostingSkills(tx, p.ID, skills)
		if err != nil {
			return err
		}
		p.Skills = rows
		return nil
	})
}

func (r *PostingRepository) GetByID(ctx context.Context, id uint) (*gormModels.Posting, error) {
	return getPosting(r.db.WithContext(ctx).Preload("Skills", orderByID), "id = ?", id)
}

// GetOwned returns the posting only when orgID owns it; otherwise NotFound.
func (r *PostingRepository) GetOwned(ctx context.Context, orgID, id uint) (*gormModels.Posting, error) {
	return getPosting(r.db.WithContext(ctx).Preload("Skills", orderByID), "id = ? AND organization_id = ?", id, orgID)
}

// Update overwrites the owned posting's fields and replaces its skill set.
func (r *PostingRepository) Update(ctx context.Context, orgID uint, p *gormModels.Posting, skills []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getPosting(tx, "id = ? AND organization_id = ?", p.ID, orgID)
		if err != nil {
			return err
		}

		err = tx.Model(&gormModels.Posting{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"title":          p.Title,
			"description":    p.Description,
			"latitude":       p.Latitude,
			"longitude":      p.Longitude,
			"location_name":  p.LocationName,
			"max_volunteers": p.MaxVolunteers,
			"start_time":     p.StartTime,
			"end_time":       p.EndTime,
			"minimum_age":    p.MinimumAge,
			"is_open":        p.IsOpen,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update posting: %w", err)
		}

		rows, err := replacePostingSkills(tx, p.ID, skills)
		if err != nil {
			return err
		}
		p.OrganizationID = existing.OrganizationID
		p.CreatedAt = existing.CreatedAt
		p.Skills = rows
		return nil
	})
}

// Delete removes the owned posting with its skills and enrollments.
func (r *PostingRepository) Delete(ctx context.Context, orgID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getPosting(tx, "id = ? AND organization_id = ?", id, orgID); err != nil {
			return err
		}
		if err := tx.Where("posting_id = ?", id).Delete(&gormModels.PostingSkill{}).Error; err != nil {
			return fmt.Errorf("failed to delete posting skills: %w", err)
		}
		if err := tx.Where("posting_id = ?", id).Delete(&gormModels.Enrollment{}).Error; err != nil {
			return fmt.Errorf("failed to delete posting enrollments: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&gormModels.Posting{}).Error; err != nil {
			return fmt.Errorf("failed to delete posting: %w", err)
		}
		return nil
	})
}

// List returns postings ordered by start time. Text filters are case-insensitive
// substring matches; start and end match against the timestamp's text form.
func (r *PostingRepository) List(ctx context.Context, q PostingQuery) ([]gormModels.Posting, error) {
	tx := r.db.WithContext(ctx).Model(&gormModels.Posting{}).Preload("Skills", orderByID)

	if q.OrganizationID != nil {
		tx = tx.Where("organization_id = ?", *q.OrganizationID)
	}
	if q.OnlyOpen {
		tx = tx.Where("is_open = ?", true)
	}
	if s := strings.TrimSpace(q.Filter.Location); s != "" {
		tx = tx.Where(`LOWER(location_name) LIKE ? ESCAPE '\'`, common.LikePattern(s))
	}
	if s := strings.TrimSpace(q.Filter.Skill); s != "" {
		tx = tx.Where(`EXISTS (SELECT 1 FROM posting_skills ps WHERE ps.posting_id = postings.id AND LOWER(ps.name) LIKE ? ESCAPE '\')`, common.LikePattern(s))
	}
	if s := strings.TrimSpace(q.Filter.Start); s != "" {
		tx = tx.Where(`LOWER(CAST(start_time AS TEXT)) LIKE ? ESCAPE '\'`, common.LikePattern(s))
	}
	if s := strings.TrimSpace(q.Filter.End); s != "" {
		tx = tx.Where(`LOWER(CAST(end_time AS TEXT)) LIKE ? ESCAPE '\'`, common.LikePattern(s))
	}

	var out []gormModels.Posting
	if err := tx.Order("start_time ASC, id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	return out, nil
}

func getPosting(db *gorm.DB, query string, args ...interface{}) (*gormModels.Posting, error) {
	var p gormModels.Posting
	err := db.Where(query, args...).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(constants.MsgPostingNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posting: %w", err)
	}
	return &p, nil
}

// replacePostingSkills deletes every skill row of the posting then inserts skills.
func replacePostingSkills(tx *gorm.DB, postingID uint, skills []string) ([]gormModels.PostingSkill, error) {
	if err := tx.Where("posting_id = ?", postingID).Delete(&gormModels.PostingSkill{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear posting skills: %w", err)
	}
	rows := make([]gormModels.PostingSkill, 0, len(skills))
	for _, name := range skills {
		rows = append(rows, gormModels.PostingSkill{PostingID: postingID, Name: name})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to insert posting skills: %w", err)
	}
	return rows, nil
}
