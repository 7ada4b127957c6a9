package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// CreatePost creates a post together with its initial revision, inside one
// transaction. With Publish set the post goes live immediately and new-post
// subscribers are notified once the transaction has committed.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, err := requirePublisher(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	section, err := s.sections.GetByID(ctx, input.SectionID)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug, err = domain.AllocateSlug(ctx, input.Title, domain.SlugFallbackPost, s.posts.SlugExists, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("allocate post slug: %w", err)
		}
	}

	status := domain.PostStatusDraft
	var publishedAt *time.Time
	if input.Publish {
		status = domain.PostStatusPublished
		now := time.Now().UTC()
		publishedAt = &now
	}

	content := s.sanitizer.Clean(input.Content)

	var created *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.posts.Create(txCtx, &domain.Post{
			SectionID: section.ID,
			Title:     strings.TrimSpace(input.Title),
			Slug:      slug,
			Summary:   strings.TrimSpace(input.Summary),
			Status:    status,
			// Only a published post may be featured.
			IsFeatured:  input.IsFeatured && status == domain.PostStatusPublished,
			Order:       input.Order,
			PublishedAt: publishedAt,
			AuthorID:    &userID,
		})
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		rev, err := s.revisions.Create(txCtx, &domain.Revision{
			PostID:              created.ID,
			Content:             content,
			Note:                strings.TrimSpace(input.Note),
			CreatedBy:           &userID,
			IsPublishedSnapshot: status == domain.PostStatusPublished,
		})
		if err != nil {
			return fmt.Errorf("create initial revision: %w", err)
		}

		if err := s.posts.SetCurrentRevision(txCtx, created.ID, rev.ID); err != nil {
			return fmt.Errorf("set current revision: %w", err)
		}
		created.CurrentRevisionID = &rev.ID

		if err := s.logActivity(txCtx, created, section.Title, domain.ActivityActionCreate, userID); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		// A post born published gets a publish entry on top of the create one.
		if created.IsPublished() {
			if err := s.logActivity(txCtx, created, section.Title, domain.ActivityActionPublish, userID); err != nil {
				return fmt.Errorf("log activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created.IsPublished() {
		s.notifier.PostCreated(ctx, created)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
