package section

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// CreateSection creates a new section. Children inherit the parent's catalog;
// the parent must not already sit at the maximum depth.
func (s *Service) CreateSection(ctx context.Context, input CreateSectionInput) (*domain.Section, error) {
	if err := requirePublisher(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	catalog := input.Catalog
	if input.ParentID != nil {
		parent, err := s.sections.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("load parent section: %w", err)
		}
		depth, err := s.depthOf(ctx, parent)
		if err != nil {
			return nil, err
		}
		if depth >= domain.MaxSectionDepth {
			return nil, domain.NewValidationError("parent_id", "parent is already at maximum depth")
		}
		catalog = parent.Catalog
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		allocated, err := domain.AllocateSlug(ctx, input.Title, domain.SlugFallbackSection, s.sections.SlugExists, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("allocate section slug: %w", err)
		}
		slug = allocated
	}

	created, err := s.sections.Create(ctx, &domain.Section{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Catalog:     catalog,
		Order:       input.Order,
		ParentID:    input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	s.log.InfoContext(ctx, "section created",
		slog.String("section_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.String("catalog", created.Catalog.String()),
	)

	return created, nil
}
