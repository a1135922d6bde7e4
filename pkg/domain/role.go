package domain

import dErrors "newsdesk/pkg/domain-errors"

// Role is the editorial role of a staff user.
// Invariant: the value must be one of the supported roles.
//
// Usage: construct via ParseRole at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Role string

const (
	RoleWriter     Role = "writer"
	RoleEditor     Role = "editor"
	RoleSuperadmin Role = "superadmin"
)

var validRoles = map[Role]bool{
	RoleWriter:     true,
	RoleEditor:     true,
	RoleSuperadmin: true,
}

// ParseRole constructs a Role from external input (JWT claim, request body).
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

// IsValid checks if the role is one of the supported enum values.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// EditorOrAbove reports whether the role may approve, reject, or publish.
func (r Role) EditorOrAbove() bool {
	return r == RoleEditor || r == RoleSuperadmin
}

func (r Role) String() string {
	return string(r)
}
