package gorm

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Organization{},
		&OrganizationRequest{},
		&Volunteer{},
		&VolunteerSkill{},
		&Posting{},
		&PostingSkill{},
		&Enrollment{},
	}
}
