// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a permission granted to an account through the access token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin" // May approve or reject listings.
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

func (r Role) known() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the set of roles held by one actor.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings parses token claims. Unknown and repeated names are dropped.
func RolesFromStrings(names []string) Roles {
	roles := make(Roles, 0, len(names))
	for _, name := range names {
		role := Role(name)
		if role.known() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
