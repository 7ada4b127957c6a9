package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxSectionDepth is the deepest level a section may occupy: a root is at
// depth 0, so the tree holds at most three levels. A parent assignment is
// rejected when the parent itself already sits at depth MaxSectionDepth.
const MaxSectionDepth = 2

// Section is a node in the three-level taxonomy forest, partitioned by
// catalog. Children hold a back-reference to their parent; the parent does
// not own them.
type Section struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	Catalog     Catalog
	Order       int
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot reports whether the section has no parent. Root sections define the
// catalog for their whole subtree.
func (s *Section) IsRoot() bool { return s.ParentID == nil }

// SectionUpdateParams holds partial-update parameters for a section.
// nil means "leave unchanged".
type SectionUpdateParams struct {
	Title       *string
	Slug        *string
	Description *string
	Catalog     *Catalog
	Order       *int
	// ParentID uses a double pointer so that "set to NULL" (detach from
	// parent) is distinguishable from "leave unchanged".
	ParentID **uuid.UUID
}

// SectionNode is a section with its eagerly loaded children, used for the
// sidebar tree projection (two child levels below each root).
type SectionNode struct {
	Section
	Children []*SectionNode
}

// SectionOverview is a section with its total post count, any status
// included, for the management screen.
type SectionOverview struct {
	Section
	PostCount int
}
