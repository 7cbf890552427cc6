package requests

import "time"

// PostingRequest is used for both create and full update.
type PostingRequest struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Description   string     `json:"description" validate:"required,max=10000"`
	Latitude      *float64   `json:"latitude" validate:"required,latitude"`
	Longitude     *float64   `json:"longitude" validate:"required,longitude"`
	LocationName  string     `json:"location_name" validate:"required,max=255"`
	MaxVolunteers *int       `json:"max_volunteers" validate:"omitempty,min=1"`
	StartTime     *time.Time `json:"start_time" validate:"required"`
	EndTime       *time.Time `json:"end_time" validate:"omitempty"`
	MinimumAge    *int       `json:"minimum_age" validate:"omitempty,min=0,max=120"`
	IsOpen        *bool      `json:"is_open" validate:"required"`
	Skills        []string   `json:"skills" validate:"omitempty,max=50,dive,max=64"`
}

type EnrollRequest struct {
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

// PostingFilter carries the loose listing predicates from the query string.
type PostingFilter struct {
	Location string
	Skill    string
	Start    string
	End      string
}
