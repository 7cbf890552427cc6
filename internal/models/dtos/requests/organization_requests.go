package requests

type SubmitOrganizationRequest struct {
	Email        string   `json:"email" validate:"required,email,max=255"`
	Name         string   `json:"name" validate:"required,max=255"`
	Contact      string   `json:"contact" validate:"omitempty,max=255"`
	Description  string   `json:"description" validate:"omitempty,max=4000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	LocationName string   `json:"location_name" validate:"required,max=255"`
}

type ReviewOrganizationRequest struct {
	RequestID uint   `json:"request_id" validate:"required"`
	Approve   *bool  `json:"approve" validate:"required"`
	Reason    string `json:"reason" validate:"omitempty,max=2000"`
}
