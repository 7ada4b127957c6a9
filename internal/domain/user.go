package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in. Posts and revisions reference users
// weakly: deleting a user nulls those references.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Profile holds a user's notification settings. NotifyEmail is the address
// notifications go to; it must be confirmed before any mail is sent to it.
type Profile struct {
	UserID         uuid.UUID
	NotifyEmail    *string
	EmailConfirmed bool
	NotifyNewPosts bool
	NotifyUpdates  bool
	CreatedAt      time.Time
}

// Subscriber is the projection the notification dispatcher works with: a
// confirmed address plus the per-kind opt-in flags.
type Subscriber struct {
	UserID         uuid.UUID
	Email          string
	NotifyNewPosts bool
	NotifyUpdates  bool
}
