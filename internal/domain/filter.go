package domain

import "github.com/google/uuid"

// PostOrder selects the sort applied to post listings.
type PostOrder int

const (
	// PostOrderFeed is the reader-facing sort: featured first, then manual
	// order, then freshest publication.
	PostOrderFeed PostOrder = iota
	// PostOrderRecent sorts by last modification, used by the dashboard.
	PostOrderRecent
	// PostOrderPublished sorts by publication time, used by the home feed.
	PostOrderPublished
)

// PostFilter describes a post listing. The zero value lists everything with
// default paging.
type PostFilter struct {
	SectionIDs   []uuid.UUID
	Catalog      *Catalog
	Statuses     []PostStatus
	FeaturedOnly bool

	// QueryWords are matched case-insensitively against title, summary and
	// the current revision content; a post matches if ANY word matches ANY
	// field.
	QueryWords []string

	Order  PostOrder
	Limit  int
	Offset int
}
