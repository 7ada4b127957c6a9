package post

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxSlugLen    = 220
	maxSummaryLen = 1000
	maxNoteLen    = 500
)

// CreatePostInput holds the parameters for creating a post with its initial
// revision. Slug is optional; when empty a unique slug is derived from the
// title. Publish creates the post directly in the published state.
type CreatePostInput struct {
	SectionID  uuid.UUID
	Title      string
	Slug       string
	Summary    string
	Content    string
	Note       string
	Publish    bool
	IsFeatured bool
	Order      int
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.SectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "section_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(i.Slug) > maxSlugLen {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long"})
	}
	if len(i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
	}
	if len(i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditPostInput holds partial-update parameters for a post. nil fields are
// left unchanged. A non-nil Content that survives sanitization and differs
// from the current revision produces a new revision.
type EditPostInput struct {
	ID         uuid.UUID
	SectionID  *uuid.UUID
	Title      *string
	Slug       *string
	Summary    *string
	Content    *string
	Note       string
	Status     *domain.PostStatus
	IsFeatured *bool
	Order      *int
}

// Validate checks all fields and collects all errors.
func (i EditPostInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.SectionID != nil && *i.SectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "section_id", Message: "required"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Slug != nil {
		if strings.TrimSpace(*i.Slug) == "" {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
		}
		if len(*i.Slug) > maxSlugLen {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "too long"})
		}
	}
	if i.Summary != nil && len(*i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
	}
	if len(i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds paging parameters for dashboard listings.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
