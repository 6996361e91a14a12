package domain

import "time"

// Session is the server-side state behind the session cookie.
type Session struct {
	ID        string
	UserID    int64
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Caller is the authenticated identity the session gate hands to every
// handler. The zero value means "nobody is logged in".
type Caller struct {
	ID       int64
	Username string
	IsAdmin  bool
}

// Authenticated reports whether c carries a resolved identity.
func (c Caller) Authenticated() bool {
	return c.ID != 0
}
