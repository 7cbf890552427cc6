package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role identifies which account table a caller belongs to.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
	RoleVolunteer    Role = "volunteer"
)

// AllRoles lists every account variant.
var AllRoles = []Role{RoleAdmin, RoleOrganization, RoleVolunteer}

// Stringer ­– convenient for fmt / logs
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known account variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganization, RoleVolunteer:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
