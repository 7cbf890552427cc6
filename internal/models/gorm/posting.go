package gorm

import "time"

type Posting struct {
	ID             uint       `gorm:"column:id;primaryKey"`
	OrganizationID uint       `gorm:"column:organization_id;not null;index"`
	Title          string     `gorm:"column:title;size:200;not null"`
	Description    string     `gorm:"column:description;type:text;not null"`
	Latitude       float64    `gorm:"column:latitude"`
	Longitude      float64    `gorm:"column:longitude"`
	LocationName   string     `gorm:"column:location_name;size:255;not null"`
	MaxVolunteers  *int       `gorm:"column:max_volunteers"`
	StartTime      time.Time  `gorm:"column:start_time;not null;index"`
	EndTime        *time.Time `gorm:"column:end_time"`
	MinimumAge     *int       `gorm:"column:minimum_age"`
	IsOpen         bool       `gorm:"column:is_open;not null"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Skills      []PostingSkill `gorm:"foreignKey:PostingID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment   `gorm:"foreignKey:PostingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Posting) TableName() string {
	return "postings"
}

// SkillNames returns the posting's skill tags in stored order.
func (p *Posting) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

type PostingSkill struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	PostingID uint   `gorm:"column:posting_id;not null;index"`
	Name      string `gorm:"column:name;size:64;not null"`
}

// TableName specifies the table name for GORM
func (PostingSkill) TableName() string {
	return "posting_skills"
}
