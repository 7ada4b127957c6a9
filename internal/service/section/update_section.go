package section

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// UpdateSection applies partial updates to a section. Reparenting is checked
// against the depth bound and against the section's own subtree, so the
// forest can never acquire a cycle.
func (s *Service) UpdateSection(ctx context.Context, input UpdateSectionInput) (*domain.Section, error) {
	if err := requirePublisher(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.sections.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	if input.ParentID != nil && *input.ParentID != nil {
		if err := s.validateParent(ctx, current, **input.ParentID); err != nil {
			return nil, err
		}
	}

	if input.Catalog != nil && *input.Catalog != current.Catalog {
		if err := s.validateCatalogChange(ctx, current, input.ParentID); err != nil {
			return nil, err
		}
	}

	updated, err := s.sections.Update(ctx, input.ID, domain.SectionUpdateParams{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Catalog:     input.Catalog,
		Order:       input.Order,
		ParentID:    input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}

	s.log.InfoContext(ctx, "section updated",
		slog.String("section_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}

// validateParent rejects a parent assignment that would exceed the depth
// bound, create a cycle, or cross catalogs.
func (s *Service) validateParent(ctx context.Context, current *domain.Section, parentID uuid.UUID) error {
	if parentID == current.ID {
		return domain.NewValidationError("parent_id", "section cannot be its own parent")
	}

	parent, err := s.sections.GetByID(ctx, parentID)
	if err != nil {
		return fmt.Errorf("load parent section: %w", err)
	}

	depth, err := s.depthOf(ctx, parent)
	if err != nil {
		return err
	}
	if depth >= domain.MaxSectionDepth {
		return domain.NewValidationError("parent_id", "parent is already at maximum depth")
	}

	if parent.Catalog != current.Catalog {
		return domain.NewValidationError("parent_id", "parent belongs to a different catalog")
	}

	descendants, err := s.descendantsOf(ctx, current.ID)
	if err != nil {
		return err
	}
	if _, ok := descendants[parentID]; ok {
		return domain.NewValidationError("parent_id", "parent is a descendant of this section")
	}

	return nil
}

// validateCatalogChange allows a catalog change only on a detached root with
// no children; anything else would break the inheritance invariant.
func (s *Service) validateCatalogChange(ctx context.Context, current *domain.Section, parentParam **uuid.UUID) error {
	parented := current.ParentID != nil
	if parentParam != nil {
		parented = *parentParam != nil
	}
	if parented {
		return domain.NewValidationError("catalog", "a child section inherits its parent's catalog")
	}

	count, err := s.sections.CountChildren(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("count children: %w", err)
	}
	if count > 0 {
		return domain.NewValidationError("catalog", "cannot change catalog of a section with children")
	}
	return nil
}

// depthOf returns the depth of a section: 0 for roots.
func (s *Service) depthOf(ctx context.Context, sec *domain.Section) (int, error) {
	depth := 0
	node := sec
	for node.ParentID != nil {
		parent, err := s.sections.GetByID(ctx, *node.ParentID)
		if err != nil {
			return 0, fmt.Errorf("walk section ancestors: %w", err)
		}
		depth++
		if depth > domain.MaxSectionDepth {
			break
		}
		node = parent
	}
	return depth, nil
}

// descendantsOf collects the IDs of every section below the given one with an
// iterative breadth-first walk.
func (s *Service) descendantsOf(ctx context.Context, id uuid.UUID) (map[uuid.UUID]struct{}, error) {
	result := map[uuid.UUID]struct{}{}
	queue := []uuid.UUID{id}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		children, err := s.sections.ListChildren(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("list section children: %w", err)
		}
		for _, c := range children {
			if _, seen := result[c.ID]; seen {
				continue
			}
			result[c.ID] = struct{}{}
			queue = append(queue, c.ID)
		}
	}

	return result, nil
}
