package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark joins a user and a post. Unique per pair; removed together with
// either side.
type Bookmark struct {
	UserID    uuid.UUID
	PostID    uuid.UUID
	CreatedAt time.Time
}
