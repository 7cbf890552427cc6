package gorm

import (
	"time"

	"helping-hands/volunteerhub/internal/constants"
)

// Account is implemented by the three credential tables so that login and
// password changes share one code path.
type Account interface {
	AccountID() uint
	AccountEmail() string
	AccountRole() constants.Role
	Hash() string
}

type Admin struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Name         string    `gorm:"column:name;size:255;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) AccountID() uint { return a.ID }
func (a *Admin) AccountEmail() string { return a.Email }
func (a *Admin) AccountRole() constants.Role { return constants.RoleAdmin }
func (a *Admin) Hash() string { return a.PasswordHash }

type Organization struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Name         string    `gorm:"column:name;size:255;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Contact      string    `gorm:"column:contact;size:255"`
	Description  string    `gorm:"column:description;type:text"`
	Latitude     float64   `gorm:"column:latitude"`
	Longitude    float64   `gorm:"column:longitude"`
	LocationName string    `gorm:"column:location_name;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Postings []Posting `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) AccountID() uint { return o.ID }
func (o *Organization) AccountEmail() string { return o.Email }
func (o *Organization) AccountRole() constants.Role { return constants.RoleOrganization }
func (o *Organization) Hash() string { return o.PasswordHash }

type Volunteer struct {
	ID           uint              `gorm:"column:id;primaryKey"`
	Email        string            `gorm:"column:email;size:255;not null;uniqueIndex"`
	Name         string            `gorm:"column:name;size:255;not null"`
	PasswordHash string            `gorm:"column:password_hash;not null" json:"-"`
	DateOfBirth  *time.Time        `gorm:"column:date_of_birth"`
	Gender       string            `gorm:"column:gender;size:32"`
	Description  string            `gorm:"column:description;type:text"`
	Privacy      constants.Privacy `gorm:"column:privacy;type:varchar(16);not null"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Skills      []VolunteerSkill `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment     `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Volunteer) TableName() string {
	return "volunteers"
}

func (v *Volunteer) AccountID() uint { return v.ID }
func (v *Volunteer) AccountEmail() string { return v.Email }
func (v *Volunteer) AccountRole() constants.Role { return constants.RoleVolunteer }
func (v *Volunteer) Hash() string { return v.PasswordHash }

// SkillNames returns the volunteer's skill tags in stored order.
func (v *Volunteer) SkillNames() []string {
	names := make([]string, 0, len(v.Skills))
	for _, s := range v.Skills {
		names = append(names, s.Name)
	}
	return names
}

type VolunteerSkill struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	VolunteerID uint   `gorm:"column:volunteer_id;not null;index"`
	Name        string `gorm:"column:name;size:64;not null"`
}

// TableName specifies the table name for GORM
func (VolunteerSkill) TableName() string {
	return "volunteer_skills"
}
