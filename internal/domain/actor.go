package domain

// Actor is the authenticated principal on whose behalf an operation runs.
// The zero Actor is an anonymous guest.
type Actor struct {
	UserID string
	Admin  bool
}

func (a Actor) Anonymous() bool {
	return a.UserID == "" && !a.Admin
}

// Owns reports whether the actor may manage a store owned by ownerID.
func (a Actor) Owns(ownerID string) bool {
	return a.Admin || (a.UserID != "" && a.UserID == ownerID)
}
