package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is a denormalized, write-once audit record of a publisher
// action. Title and SectionTitle are snapshots taken at the time of the
// action; PostID is a weak reference that survives post deletion as nil.
type ActivityRecord struct {
	ID           uuid.UUID
	PostID       *uuid.UUID
	Title        string
	SectionTitle string
	Action       ActivityAction
	UserID       *uuid.UUID
	CreatedAt    time.Time
}
