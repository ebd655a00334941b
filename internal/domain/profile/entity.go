package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is owned by the identity subsystem; this service only reads it.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	FullName  string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Placeholder stands in for an owner whose profile row cannot be found, so a
// listing fetch never fails on a single missing profile.
func Placeholder() Profile {
	return Profile{
		Username: "Unknown",
		FullName: "Unknown User",
	}
}
