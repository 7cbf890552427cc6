package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

type EnrollmentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Find returns the enrollment for the pair, or NotFound.
func (r *EnrollmentRepository) Find(ctx context.Context, volunteerID, postingID uint) (*gormModels.Enrollment, error) {
	return getEnrollment(r.db.WithContext(ctx), constants.MsgEnrollmentNotFound,
		"volunteer_id = ? AND posting_id = ?", volunteerID, postingID)
}

// Apply creates the pair's enrollment in the given status. An existing pending or
// accepted row is a Conflict; a rejected row is reopened in place.
func (r *EnrollmentRepository) Apply(ctx context.Context, volunteerID, postingID uint, message *string, status constants.EnrollmentStatus) (*gormModels.Enrollment, error) {
	var out *gormModels.Enrollment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getEnrollment(tx, constants.MsgEnrollmentNotFound,
			"volunteer_id = ? AND posting_id = ?", volunteerID, postingID)
		switch {
		case err == nil && existing.Status.Active():
			return common.Conflict(constants.MsgAlreadyEnrolled)
		case err == nil:
			appliedAt := r.now()
			res := tx.Model(&gormModels.Enrollment{}).
				Where("id = ? AND status = ?", existing.ID, existing.Status).
				Updates(map[string]interface{}{"status": status, "message": message, "decided_at": nil, "created_at": appliedAt})
			if res.Error != nil {
				return fmt.Errorf("failed to reopen enrollment: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return common.Conflict(constants.MsgAlreadyEnrolled)
			}
			existing.Status = status
			existing.Message = message
			existing.DecidedAt = nil
			existing.CreatedAt = appliedAt
			out = existing
			return nil
		case !errors.Is(err, common.ErrNotFound):
			return err
		}

		e := &gormModels.Enrollment{
			VolunteerID: volunteerID,
			PostingID:   postingID,
			Message:     message,
			Status:      status,
		}
		if err := tx.Create(e).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.Conflict(constants.MsgAlreadyEnrolled)
			}
			return fmt.Errorf("failed to create enrollment: %w", err)
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Withdraw deletes the pair's enrollment whatever its status.
func (r *EnrollmentRepository) Withdraw(ctx context.Context, volunteerID, postingID uint) error {
	res := r.db.WithContext(ctx).
		Where("volunteer_id = ? AND posting_id = ?", volunteerID, postingID).
		Delete(&gormModels.Enrollment{})
	if res.Error != nil {
		return fmt.Errorf("failed to withdraw enrollment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.NotFound(constants.MsgEnrollmentNotFound)
	}
	return nil
}

// Decide moves a pending application of the posting to status. Anything not
// pending is a Conflict.
func (r *EnrollmentRepository) Decide(ctx context.Context, postingID, enrollmentID uint, status constants.EnrollmentStatus) (*gormModels.Enrollment, error) {
	var out *gormModels.Enrollment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := getEnrollment(tx, constants.MsgApplicationNotFound,
			"id = ? AND posting_id = ?", enrollmentID, postingID)
		if err != nil {
			return err
		}
		if e.Status != constants.EnrollmentPending {
			return common.Conflict(constants.MsgApplicationResolved)
		}

		decidedAt := r.now()
		res := tx.Model(&gormModels.Enrollment{}).
			Where("id = ? AND status = ?", e.ID, constants.EnrollmentPending).
			Updates(map[string]interface{}{"status": status, "decided_at": decidedAt})
		if res.Error != nil {
			return fmt.Errorf("failed to update enrollment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.Conflict(constants.MsgApplicationResolved)
		}
		e.Status = status
		e.DecidedAt = &decidedAt
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StatusesFor maps posting id to the volunteer's enrollment status for those postings.
func (r *EnrollmentRepository) StatusesFor(ctx context.Context, volunteerID uint, postingIDs []uint) (map[uint]constants.EnrollmentStatus, error) {
	out := make(map[uint]constants.EnrollmentStatus, len(postingIDs))
	if len(postingIDs) == 0 {
		return out, nil
	}
	var rows []gormModels.Enrollment
	err := r.db.WithContext(ctx).
		Select("posting_id", "status").
		Where("volunteer_id = ? AND posting_id IN ?", volunteerID, postingIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollment statuses: %w", err)
	}
	for _, e := range rows {
		out[e.PostingID] = e.Status
	}
	return out, nil
}

func getEnrollment(db *gorm.DB, notFound string, query string, args ...interface{}) (*gormModels.Enrollment, error) {
	var e gormModels.Enrollment
	err := db.Where(query, args...).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(notFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	return &e, nil
}
