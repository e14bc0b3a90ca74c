package model

// OwnerResolver picks the group owner out of a chat's administrator
// list. It is a strategy so the historical first-listed-admin heuristic
// can be swapped for the platform's creator flag without touching
// policy code.
type OwnerResolver func([]ChatAdmin) (int64, bool)

// FirstListedOwner treats the first administrator returned by the
// platform as the group owner. This is a heuristic, not a guarantee.
func FirstListedOwner(admins []ChatAdmin) (int64, bool) {
	if len(admins) == 0 {
		return 0, false
	}
	return admins[0].UserID, true
}

// CreatorFlagOwner resolves the owner from the platform's creator flag.
func CreatorFlagOwner(admins []ChatAdmin) (int64, bool) {
	for _, admin := range admins {
		if admin.IsOwner {
			return admin.UserID, true
		}
	}
	return 0, false
}
