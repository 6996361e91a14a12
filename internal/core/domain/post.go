package domain

import "time"

// Post is a piece of content owned by exactly one user.
type Post struct {
	ID        int64
	Content   string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Author is filled by repository reads; writes ignore it.
	Author UserSummary
}
