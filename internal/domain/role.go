package domain

import dErrors "saintkernel/pkg/domainerrors"

// Role is an enumerated identity class. The set is closed: roles are defined
// at build time and are not extensible at runtime.
//
// Usage: construct via ParseRole at trust boundaries when the caller must be
// one of the known roles. The kernel itself accepts arbitrary role strings and
// denies unknown ones, so handlers pass the raw value through.
type Role string

// Supported roles.
const (
	RoleAdmin      Role = "gcp_admin"
	RoleEngineer   Role = "gcp_engineer"
	RoleSalesRep   Role = "sales_rep"
	RoleContractor Role = "contractor"
)

// validRoles is the single source of truth for the closed role set.
var validRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleEngineer:   true,
	RoleSalesRep:   true,
	RoleContractor: true,
}

// Roles returns the closed role set in stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEngineer, RoleSalesRep, RoleContractor}
}

// ParseRole constructs a Role from external input, enforcing the closed set.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role")
	}
	return r, nil
}

// IsValid checks if the role is one of the supported enum values.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
