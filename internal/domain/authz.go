package domain

// Authorization predicates, evaluated before every mutating call. All are
// stateless; a nil identity means the caller is unauthenticated.

// CanCreateEvent reports whether the caller may create events. Anonymous
// identities may browse and comment but may not create or own events.
func CanCreateEvent(id *Identity) bool {
	return id != nil && !id.IsAnonymous
}

// CanMutateEvent reports whether the caller may update or delete the event.
// Ownership is permanent; an event without an owner uid matches no caller.
func CanMutateEvent(id *Identity, e *Event) bool {
	return id != nil && id.UID != "" && id.UID == e.UID
}

// CanCreateComment reports whether the caller may comment on an event.
// Comments are open to every caller, including anonymous and unauthenticated
// ones, while event mutations are owner-gated.
func CanCreateComment(*Identity) bool {
	return true
}

// CanDeleteComment reports whether the caller may delete the comment. A
// comment without an author uid cannot be deleted by anyone through this
// path.
func CanDeleteComment(id *Identity, c *Comment) bool {
	return id != nil && c.UID != "" && id.UID == c.UID
}
