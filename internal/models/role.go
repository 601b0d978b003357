package models

import "fmt"

// Role is the closed set of per-user roles. Keeping this a dedicated type
// means a typo'd role string fails at the parse boundary instead of silently
// failing an equality check deep in the middleware.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ParseRole normalizes an incoming role string. "user" is accepted as a
// legacy alias for member.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "member", "user":
		return RoleMember, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

func (r Role) String() string {
	return string(r)
}
