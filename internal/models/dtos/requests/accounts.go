package requests

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterVolunteerRequest struct {
	Email       string   `json:"email" validate:"required,email,max=255"`
	Password    string   `json:"password" validate:"required,min=8,max=72"`
	Name        string   `json:"name" validate:"required,max=255"`
	DateOfBirth string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string   `json:"gender" validate:"omitempty,max=32"`
	Description string   `json:"description" validate:"omitempty,max=4000"`
	Privacy     string   `json:"privacy" validate:"omitempty,oneof=public private"`
	Skills      []string `json:"skills" validate:"omitempty,max=50,dive,max=64"`
}

type ResetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// VolunteerProfileRequest replaces the profile fields and the whole skill set.
type VolunteerProfileRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	DateOfBirth string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string   `json:"gender" validate:"omitempty,max=32"`
	Description string   `json:"description" validate:"omitempty,max=4000"`
	Privacy     string   `json:"privacy" validate:"omitempty,oneof=public private"`
	Skills      []string `json:"skills" validate:"omitempty,max=50,dive,max=64"`
}

type OrganizationProfileRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Contact      string   `json:"contact" validate:"omitempty,max=255"`
	Description  string   `json:"description" validate:"omitempty,max=4000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	LocationName string   `json:"location_name" validate:"required,max=255"`
}
