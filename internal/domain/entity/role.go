// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is a marketplace permission carried in the access token's app metadata.
type Role string

const (
	// RoleUser is every signed-in member: buyer and private seller.
	RoleUser Role = "user"
	// RoleVendor is a registered business seller.
	RoleVendor Role = "vendor"
	// RoleAdmin is a back-office operator. It satisfies any role requirement.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole accepts any casing of a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))

	return r, r.IsValid()
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Grants reports whether the roles satisfy a requirement.
func (rs Roles) Grants(required Role) bool {
	return rs.Contains(RoleAdmin) || rs.Contains(required)
}

// RolesFromStrings drops unknown values and duplicates.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
