package handlers

// actorID resolves the user recorded in audit fields. Requests carry an
// optional userID; a missing one falls back to the system actor.
func actorID(requested string) string {
	if requested == "" {
		return "system"
	}
	return requested
}
