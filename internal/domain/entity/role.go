// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an operator can have in the system.
type Role string

const (
	// RoleAdmin can manage every inquiry and the calendar.
	RoleAdmin Role = "admin"
	// RolePartner can view inquiries attributed to their marketer code.
	RolePartner Role = "partner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePartner:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Operator is the authenticated identity behind a privileged request.
type Operator struct {
	Subject      string // Token subject issued by the identity provider.
	Roles        Roles
	MarketerCode string // Set for partners only.
}
