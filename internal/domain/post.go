package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is an article owned by exactly one section. Content lives in
// immutable revisions; CurrentRevisionID always points to the revision the
// post currently displays. After the first successful create it is never nil
// at the domain level.
type Post struct {
	ID                uuid.UUID
	SectionID         uuid.UUID
	Title             string
	Slug              string
	Summary           string
	Status            PostStatus
	IsFeatured        bool
	Order             int
	PublishedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AuthorID          *uuid.UUID
	CurrentRevisionID *uuid.UUID
}

// IsPublished reports whether the post is in the published state.
func (p *Post) IsPublished() bool { return p.Status == PostStatusPublished }

// VisibleTo reports whether a single post may be shown to the given viewer:
// publishers see every status, everyone else only published posts.
func (p *Post) VisibleTo(role Role) bool {
	if role.IsPublisher() {
		return true
	}
	return p.Status == PostStatusPublished
}

// PostWithContent is a post joined with its current revision's content and
// the owning section's title, used by listing and search projections.
type PostWithContent struct {
	Post
	SectionTitle string
	Content      string
}
