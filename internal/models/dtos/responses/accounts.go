package responses

import (
	"time"

	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

type TokenResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type OrganizationResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type VolunteerResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender"`
	Description string    `json:"description"`
	Privacy     string    `json:"privacy"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAdminResponse(a *gormModels.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Email: a.Email, Name: a.Name, CreatedAt: a.CreatedAt}
}

func NewOrganizationResponse(o *gormModels.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           o.ID,
		Email:        o.Email,
		Name:         o.Name,
		Contact:      o.Contact,
		Description:  o.Description,
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		LocationName: o.LocationName,
		CreatedAt:    o.CreatedAt,
	}
}

func NewVolunteerResponse(v *gormModels.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ID:          v.ID,
		Email:       v.Email,
		Name:        v.Name,
		DateOfBirth: FormatDate(v.DateOfBirth),
		Gender:      v.Gender,
		Description: v.Description,
		Privacy:     v.Privacy.String(),
		Skills:      v.SkillNames(),
		CreatedAt:   v.CreatedAt,
	}
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
