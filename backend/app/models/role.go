package models

import "fmt"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleChef  Role = "CHEF"
	RoleUser  Role = "USER"
)

// ParseRole accepts only the exact upper-case names.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleChef, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("Unsupported role %s", s)
}

// In reports whether r is one of roles. There is no hierarchy: ADMIN does not
// satisfy a CHEF-only check.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
