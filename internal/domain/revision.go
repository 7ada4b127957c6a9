package domain

import (
	"time"

	"github.com/google/uuid"
)

// Revision is an immutable content snapshot of a post. Revisions are
// append-only: an edit creates a new revision and repoints the post's
// current revision, never mutating prior rows. A revision cannot outlive
// its post.
type Revision struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Content   string
	Note      string
	CreatedBy *uuid.UUID
	// IsPublishedSnapshot marks a revision created while the post was in
	// the published state, for audit purposes.
	IsPublishedSnapshot bool
	CreatedAt           time.Time
}
