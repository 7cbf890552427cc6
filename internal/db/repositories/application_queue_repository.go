package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/models/entities"
)

// ApplicationQueueRepository serves the joined read models behind the
// organization's enrollment and application lists.
type ApplicationQueueRepository struct {
	db *sqlx.DB
}

func NewApplicationQueueRepository(db *sqlx.DB) *ApplicationQueueRepository {
	return &ApplicationQueueRepository{db: db}
}

// ListForPosting returns the posting's enrollments in status with each
// volunteer's skills keyed by volunteer id.
func (r *ApplicationQueueRepository) ListForPosting(ctx context.Context, postingID uint, status constants.EnrollmentStatus) ([]entities.ApplicantRow, map[uint][]string, error) {
	rows := []entities.ApplicantRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.ListPostingEnrollments), postingID, status); err != nil {
		return nil, nil, fmt.Errorf("failed to list posting enrollments: %w", err)
	}

	skills := make(map[uint][]string, len(rows))
	if len(rows) == 0 {
		return rows, skills, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.VolunteerID)
	}
	query, args, err := sqlx.In(constants.ListVolunteerSkills, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build skills query: %w", err)
	}

	var skillRows []entities.VolunteerSkillRow
	if err := r.db.SelectContext(ctx, &skillRows, r.db.Rebind(query), args...); err != nil {
		return nil, nil, fmt.Errorf("failed to list volunteer skills: %w", err)
	}
	for _, s := range skillRows {
		skills[s.VolunteerID] = append(skills[s.VolunteerID], s.Name)
	}
	return rows, skills, nil
}

// ListForVolunteer returns every enrollment of the volunteer with posting headlines.
func (r *ApplicationQueueRepository) ListForVolunteer(ctx context.Context, volunteerID uint) ([]entities.VolunteerEnrollmentRow, error) {
	rows := []entities.VolunteerEnrollmentRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.ListVolunteerEnrollments), volunteerID); err != nil {
		return nil, fmt.Errorf("failed to list volunteer enrollments: %w", err)
	}
	return rows, nil
}
