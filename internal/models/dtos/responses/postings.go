package responses

import (
	"time"

	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

type PostingResponse struct {
	ID             uint       `json:"id"`
	OrganizationID uint       `json:"organization_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	LocationName   string     `json:"location_name"`
	MaxVolunteers  *int       `json:"max_volunteers"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	MinimumAge     *int       `json:"minimum_age"`
	IsOpen         bool       `json:"is_open"`
	Skills         []string   `json:"skills"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// VolunteerPostingResponse adds the caller's own enrollment state, if any.
type VolunteerPostingResponse struct {
	PostingResponse
	EnrollmentStatus *string `json:"enrollment_status"`
}

type EnrollmentResponse struct {
	ID          uint       `json:"id"`
	VolunteerID uint       `json:"volunteer_id"`
	PostingID   uint       `json:"posting_id"`
	Message     *string    `json:"message"`
	Status      string     `json:"status"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ApplicantResponse is one row of an organization's enrollment or application queue.
type ApplicantResponse struct {
	EnrollmentID uint             `json:"enrollment_id"`
	PostingID    uint             `json:"posting_id"`
	Message      *string          `json:"message"`
	Status       string           `json:"status"`
	AppliedAt    time.Time        `json:"applied_at"`
	Volunteer    VolunteerSummary `json:"volunteer"`
}

// VolunteerSummary omits contact details of private volunteers.
type VolunteerSummary struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	Gender      string   `json:"gender"`
	Description string   `json:"description"`
	Privacy     string   `json:"privacy"`
	Skills      []string `json:"skills"`
}

type VolunteerEnrollmentResponse struct {
	EnrollmentID uint      `json:"enrollment_id"`
	PostingID    uint      `json:"posting_id"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"start_time"`
	IsOpen       bool      `json:"is_open"`
	Status       string    `json:"status"`
	Message      *string   `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPostingResponse(p *gormModels.Posting) PostingResponse {
	return PostingResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Title:          p.Title,
		Description:    p.Description,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		LocationName:   p.LocationName,
		MaxVolunteers:  p.MaxVolunteers,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		MinimumAge:     p.MinimumAge,
		IsOpen:         p.IsOpen,
		Skills:         p.SkillNames(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewEnrollmentResponse(e *gormModels.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		VolunteerID: e.VolunteerID,
		PostingID:   e.PostingID,
		Message:     e.Message,
		Status:      e.Status.String(),
		DecidedAt:   e.DecidedAt,
		CreatedAt:   e.CreatedAt,
	}
}
