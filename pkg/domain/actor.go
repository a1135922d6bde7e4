package domain

// Actor is the authenticated staff identity attached to a request.
// A nil *Actor means the request is anonymous (a guest reader).
//
// The snapshot fields (Name, Role) are denormalized into audit entries at
// action time so history stays accurate if the user later changes role.
type Actor struct {
	ID            UserID
	Name          string
	Role          Role
	DirectPublish bool
}

// EditorOrAbove reports whether the actor holds editor or superadmin role.
func (a *Actor) EditorOrAbove() bool {
	return a != nil && a.Role.EditorOrAbove()
}

// IsSuperadmin reports whether the actor holds the superadmin role.
func (a *Actor) IsSuperadmin() bool {
	return a != nil && a.Role == RoleSuperadmin
}
