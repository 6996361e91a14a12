package domain

// CanModify reports whether caller may edit or delete a resource owned by
// ownerID. Users own themselves; posts are owned by their author.
func CanModify(caller Caller, ownerID int64) bool {
	if !caller.Authenticated() {
		return false
	}
	return caller.ID == ownerID || caller.IsAdmin
}
