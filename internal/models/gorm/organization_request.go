package gorm

import "time"

// OrganizationRequest is a pending signup. Approval or rejection deletes it.
type OrganizationRequest struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;size:255;not null;index"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Contact      string    `gorm:"column:contact;size:255"`
	Description  string    `gorm:"column:description;type:text"`
	Latitude     float64   `gorm:"column:latitude"`
	Longitude    float64   `gorm:"column:longitude"`
	LocationName string    `gorm:"column:location_name;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (OrganizationRequest) TableName() string {
	return "organization_requests"
}
