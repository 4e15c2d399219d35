package user

import "fmt"

// Role names an account's privilege level. Absence of a role row means a
// plain user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if r != RoleAdmin && r != RoleUser {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Toggled flips between admin and user.
func (r Role) Toggled() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}
