package entities

import (
	"time"

	"helping-hands/volunteerhub/internal/constants"
)

// ApplicantRow is an enrollment joined with the volunteer who made it.
type ApplicantRow struct {
	EnrollmentID uint                       `db:"enrollment_id"`
	PostingID    uint                       `db:"posting_id"`
	Message      *string                    `db:"message"`
	Status       constants.EnrollmentStatus `db:"status"`
	CreatedAt    time.Time                  `db:"created_at"`
	VolunteerID  uint                       `db:"volunteer_id"`
	Name         string                     `db:"name"`
	Email        string                     `db:"email"`
	DateOfBirth  *time.Time                 `db:"date_of_birth"`
	Gender       string                     `db:"gender"`
	Description  string                     `db:"description"`
	Privacy      constants.Privacy          `db:"privacy"`
}

type VolunteerSkillRow struct {
	VolunteerID uint   `db:"volunteer_id"`
	Name        string `db:"name"`
}

// VolunteerEnrollmentRow is an enrollment joined with its posting's headline fields.
type VolunteerEnrollmentRow struct {
	EnrollmentID uint                       `db:"enrollment_id"`
	PostingID    uint                       `db:"posting_id"`
	Title        string                     `db:"title"`
	StartTime    time.Time                  `db:"start_time"`
	IsOpen       bool                       `db:"is_open"`
	Status       constants.EnrollmentStatus `db:"status"`
	Message      *string                    `db:"message"`
	CreatedAt    time.Time                  `db:"created_at"`
}
