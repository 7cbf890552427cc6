package gorm

import (
	"time"

	"helping-hands/volunteerhub/internal/constants"
)

// Enrollment links a volunteer to a posting. There is at most one row per pair;
// a rejected row is reopened when the volunteer applies again.
type Enrollment struct {
	ID          uint                       `gorm:"column:id;primaryKey"`
	VolunteerID uint                       `gorm:"column:volunteer_id;not null;uniqueIndex:idx_enrollments_pair"`
	PostingID   uint                       `gorm:"column:posting_id;not null;uniqueIndex:idx_enrollments_pair;index"`
	Message     *string                    `gorm:"column:message;type:text"`
	Status      constants.EnrollmentStatus `gorm:"column:status;type:varchar(16);not null;index"`
	DecidedAt   *time.Time                 `gorm:"column:decided_at"`
	CreatedAt   time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Enrollment) TableName() string {
	return "enrollments"
}
