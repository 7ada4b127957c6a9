package section

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// GetBySlug returns a section by slug. Sections are readable by everyone.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	sec, err := s.sections.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	return sec, nil
}

// ListRoots returns root sections, optionally restricted to one catalog.
func (s *Service) ListRoots(ctx context.Context, catalog *domain.Catalog) ([]*domain.Section, error) {
	if catalog != nil && !catalog.IsValid() {
		return nil, domain.NewValidationError("catalog", "invalid catalog")
	}
	roots, err := s.sections.ListRoots(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("list root sections: %w", err)
	}
	return roots, nil
}

// Tree returns the full section forest, optionally restricted to one
// catalog. Children appear under their parents in (order, title) order.
func (s *Service) Tree(ctx context.Context, catalog *domain.Catalog) ([]*domain.SectionNode, error) {
	if catalog != nil && !catalog.IsValid() {
		return nil, domain.NewValidationError("catalog", "invalid catalog")
	}

	all, err := s.sections.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	nodes := make(map[uuid.UUID]*domain.SectionNode, len(all))
	for _, sec := range all {
		if catalog != nil && sec.Catalog != *catalog {
			continue
		}
		nodes[sec.ID] = &domain.SectionNode{Section: *sec}
	}

	// ListAll is ordered (catalog, order, title), so appending in iteration
	// order keeps siblings sorted.
	roots := []*domain.SectionNode{}
	for _, sec := range all {
		node, ok := nodes[sec.ID]
		if !ok {
			continue
		}
		if sec.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*sec.ParentID]
		if !ok {
			// Parent filtered out or missing; surface the node at the top
			// rather than dropping it.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots, nil
}

// Ancestors returns the chain from the root down to the section's direct
// parent, for breadcrumb rendering. Empty for roots.
func (s *Service) Ancestors(ctx context.Context, id uuid.UUID) ([]*domain.Section, error) {
	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	chain := []*domain.Section{}
	node := sec
	for node.ParentID != nil {
		parent, err := s.sections.GetByID(ctx, *node.ParentID)
		if err != nil {
			return nil, fmt.Errorf("walk section ancestors: %w", err)
		}
		chain = append([]*domain.Section{parent}, chain...)
		node = parent
		if len(chain) > domain.MaxSectionDepth {
			break
		}
	}

	return chain, nil
}

// ListChildren returns the direct children of a section.
func (s *Service) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error) {
	children, err := s.sections.ListChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list section children: %w", err)
	}
	return children, nil
}

// Overview pairs every section with its total post count, in the catalog
// tab order used by the management screen. Publisher only.
func (s *Service) Overview(ctx context.Context) ([]*domain.SectionOverview, error) {
	if err := requirePublisher(ctx); err != nil {
		return nil, err
	}

	all, err := s.sections.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	overview := make([]*domain.SectionOverview, 0, len(all))
	for _, sec := range all {
		count, err := s.posts.CountBySection(ctx, sec.ID)
		if err != nil {
			return nil, fmt.Errorf("count section posts: %w", err)
		}
		overview = append(overview, &domain.SectionOverview{Section: *sec, PostCount: count})
	}
	return overview, nil
}
