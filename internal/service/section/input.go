package section

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxSlugLen        = 220
	maxDescriptionLen = 2000
)

// CreateSectionInput holds the parameters for creating a section.
// Slug is optional; when empty a unique slug is derived from the title.
// Catalog is required for roots and ignored for children, which inherit it
// from their parent.
type CreateSectionInput struct {
	Title       string
	Slug        string
	Description string
	Catalog     domain.Catalog
	Order       int
	ParentID    *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateSectionInput) Validate() error {
	var errs []domain.FieldError

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
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.ParentID == nil && !i.Catalog.IsValid() {
		errs = append(errs, domain.FieldError{Field: "catalog", Message: "invalid catalog"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSectionInput holds partial-update parameters for a section.
// nil fields are left unchanged; ParentID follows the double-pointer
// convention of domain.SectionUpdateParams.
type UpdateSectionInput struct {
	ID          uuid.UUID
	Title       *string
	Slug        *string
	Description *string
	Catalog     *domain.Catalog
	Order       *int
	ParentID    **uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateSectionInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
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
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Catalog != nil && !i.Catalog.IsValid() {
		errs = append(errs, domain.FieldError{Field: "catalog", Message: "invalid catalog"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
