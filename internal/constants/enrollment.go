package constants

import (
	"database/sql/driver"
	"fmt"
)

// EnrollmentStatus is the persisted state of a volunteer's enrollment row.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentAccepted EnrollmentStatus = "accepted"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

func (s EnrollmentStatus) String() string { return string(s) }

// Active reports whether the row blocks a new application for the same pair.
func (s EnrollmentStatus) Active() bool {
	return s == EnrollmentPending || s == EnrollmentAccepted
}

func (s *EnrollmentStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = EnrollmentStatus(v)
	case []byte:
		*s = EnrollmentStatus(v)
	default:
		return fmt.Errorf("EnrollmentStatus: cannot scan type %T", src)
	}
	return nil
}

func (s EnrollmentStatus) Value() (driver.Value, error) { return string(s), nil }

// Privacy controls whether a volunteer's contact details are shown to organizations.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

func (p Privacy) String() string { return string(p) }

func (p *Privacy) Scan(src interface{}) error {
	if src == nil {
		*p = PrivacyPublic
		return nil
	}
	switch v := src.(type) {
	case string:
		*p = Privacy(v)
	case []byte:
		*p = Privacy(v)
	default:
		return fmt.Errorf("Privacy: cannot scan type %T", src)
	}
	return nil
}

func (p Privacy) Value() (driver.Value, error) {
	if p == "" {
		return string(PrivacyPublic), nil
	}
	return string(p), nil
}
