package models

// Actor is the principal performing an operation. It is built per request from the
// bearer token and handed to every service call.
type Actor struct {
	StaffID uint
	Role    StaffRole
}

// SystemActor acts for unattended callers. Its writes record no author.
func SystemActor() Actor {
	return Actor{Role: RoleAdmin}
}

func (a Actor) IsSystem() bool {
	return a.StaffID == 0
}

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...StaffRole) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// StaffRef returns the id to record as author, nil for the system actor.
func (a Actor) StaffRef() *uint {
	if a.IsSystem() {
		return nil
	}
	id := a.StaffID
	return &id
}
