package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/snippet"
)

// SectionFeed is the full payload of a section page: the section itself, its
// direct children for navigation, and one page of posts from the whole
// subtree.
type SectionFeed struct {
	Section  *domain.Section
	Children []*domain.Section
	Posts    []*domain.PostWithContent
	Total    int
	Page     int
	PageSize int
}

// ListInSection returns one page of the section's feed, posts of the section
// and all its descendants included. With a query the posts are narrowed to
// those matching any of its words; without one only the featured selection is
// shown, in the same featured-first order.
func (s *Service) ListInSection(ctx context.Context, sectionSlug, query string, page int) (*SectionFeed, error) {
	if page < 1 {
		page = 1
	}

	section, err := s.sections.GetBySlug(ctx, sectionSlug)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	children, err := s.sections.ListChildren(ctx, section.ID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	ids, err := s.subtreeIDs(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("collect subtree: %w", err)
	}

	filter := domain.PostFilter{
		SectionIDs: ids,
		Statuses:   visibleStatuses(roleFrom(ctx)),
		Order:      domain.PostOrderFeed,
		Limit:      s.opts.PageSize,
		Offset:     (page - 1) * s.opts.PageSize,
	}
	if words := strings.Fields(query); len(words) > 0 {
		filter.QueryWords = words
	} else {
		filter.FeaturedOnly = true
	}

	posts, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list section posts: %w", err)
	}

	return &SectionFeed{
		Section:  section,
		Children: children,
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: s.opts.PageSize,
	}, nil
}

// Search returns one page of published posts matching any word of the query,
// optionally narrowed to one catalog. A blank query falls back to the
// featured selection.
func (s *Service) Search(ctx context.Context, query string, catalog *domain.Catalog, page int) ([]*domain.PostWithContent, int, error) {
	if page < 1 {
		page = 1
	}
	if catalog != nil && !catalog.IsValid() {
		return nil, 0, domain.NewValidationError("catalog", "unknown catalog")
	}

	filter := domain.PostFilter{
		Catalog:  catalog,
		Statuses: []domain.PostStatus{domain.PostStatusPublished},
		Order:    domain.PostOrderFeed,
		Limit:    s.opts.PageSize,
		Offset:   (page - 1) * s.opts.PageSize,
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		filter.FeaturedOnly = true
	} else {
		filter.QueryWords = words
	}

	posts, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("search posts: %w", err)
	}
	return posts, total, nil
}

// QuickHit is one autocomplete search result with a highlighted excerpt.
type QuickHit struct {
	Post    *domain.PostWithContent
	Snippet string
}

// QuickSearch returns up to QuickSearchLimit published posts matching the
// query, each with a highlighted snippet around the first content match.
// Scope narrows by catalog or, when a section slug is given, to that
// section's subtree.
func (s *Service) QuickSearch(ctx context.Context, query string, catalog *domain.Catalog, sectionSlug string) ([]QuickHit, error) {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil, nil
	}
	if catalog != nil && !catalog.IsValid() {
		return nil, domain.NewValidationError("catalog", "unknown catalog")
	}

	filter := domain.PostFilter{
		Catalog:    catalog,
		Statuses:   []domain.PostStatus{domain.PostStatusPublished},
		QueryWords: words,
		Order:      domain.PostOrderFeed,
		Limit:      s.opts.QuickSearchLimit,
	}

	if sectionSlug != "" {
		section, err := s.sections.GetBySlug(ctx, sectionSlug)
		if err != nil {
			return nil, fmt.Errorf("get section: %w", err)
		}
		ids, err := s.subtreeIDs(ctx, section)
		if err != nil {
			return nil, fmt.Errorf("collect subtree: %w", err)
		}
		filter.SectionIDs = ids
	}

	posts, _, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("quick search: %w", err)
	}

	hits := make([]QuickHit, 0, len(posts))
	for _, p := range posts {
		hits = append(hits, QuickHit{
			Post:    p,
			Snippet: snippet.Build(p.Content, query, s.opts.SnippetRadius),
		})
	}
	return hits, nil
}

// LatestPublished returns the most recently published posts for the home
// page, newest publication first.
func (s *Service) LatestPublished(ctx context.Context, limit int) ([]*domain.PostWithContent, error) {
	if limit <= 0 {
		limit = s.opts.PageSize
	}

	posts, _, err := s.posts.List(ctx, domain.PostFilter{
		Statuses: []domain.PostStatus{domain.PostStatusPublished},
		Order:    domain.PostOrderPublished,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list latest posts: %w", err)
	}
	return posts, nil
}
