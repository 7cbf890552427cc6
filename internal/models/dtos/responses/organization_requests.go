package responses

import (
	"time"

	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

type OrganizationRequestResponse struct {
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

// ReviewResultResponse reports how an organization request was resolved.
type ReviewResultResponse struct {
	RequestID      uint   `json:"request_id"`
	Approved       bool   `json:"approved"`
	OrganizationID *uint  `json:"organization_id,omitempty"`
	Email          string `json:"email"`
}

func NewOrganizationRequestResponse(r *gormModels.OrganizationRequest) OrganizationRequestResponse {
	return OrganizationRequestResponse{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Contact:      r.Contact,
		Description:  r.Description,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		LocationName: r.LocationName,
		CreatedAt:    r.CreatedAt,
	}
}
