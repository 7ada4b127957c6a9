package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/sanitize"
)

// EditPost applies metadata and status changes and, whenever content is
// submitted, appends a new revision and repoints the post. Resubmitting the
// same text still appends; blank content is rejected. Update subscribers are
// notified only for content submissions on a published post.
func (s *Service) EditPost(ctx context.Context, input EditPostInput) (*domain.Post, error) {
	userID, err := requirePublisher(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	prevStatus := post.Status

	if input.SectionID != nil {
		post.SectionID = *input.SectionID
	}
	section, err := s.sections.GetByID(ctx, post.SectionID)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Slug != nil {
		post.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Summary != nil {
		post.Summary = strings.TrimSpace(*input.Summary)
	}
	if input.Order != nil {
		post.Order = *input.Order
	}
	if input.Status != nil {
		post.Status = *input.Status
	}
	// PublishedAt is stamped on the first transition to published and never
	// moved afterwards.
	if post.IsPublished() && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	if input.IsFeatured != nil {
		post.IsFeatured = *input.IsFeatured
	}
	// Only a published post may be featured.
	if !post.IsPublished() {
		post.IsFeatured = false
	}

	newContent, contentChanged, err := s.resolveContent(input.Content)
	if err != nil {
		return nil, err
	}

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if contentChanged {
			rev, err := s.revisions.Create(txCtx, &domain.Revision{
				PostID:              post.ID,
				Content:             newContent,
				Note:                strings.TrimSpace(input.Note),
				CreatedBy:           &userID,
				IsPublishedSnapshot: post.IsPublished(),
			})
			if err != nil {
				return fmt.Errorf("create revision: %w", err)
			}
			post.CurrentRevisionID = &rev.ID
		}

		updated, err = s.posts.Update(txCtx, post)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}

		if err := s.logActivity(txCtx, updated, section.Title, domain.ActivityActionUpdate, userID); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		if updated.Status != prevStatus && updated.Status != domain.PostStatusDraft {
			action := domain.ActivityActionPublish
			if updated.Status == domain.PostStatusArchived {
				action = domain.ActivityActionArchive
			}
			if err := s.logActivity(txCtx, updated, section.Title, action, userID); err != nil {
				return fmt.Errorf("log activity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if contentChanged && updated.IsPublished() {
		s.notifier.PostRevised(ctx, updated)
	}

	s.log.InfoContext(ctx, "post edited",
		slog.String("post_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
		slog.Bool("content_changed", contentChanged),
	)

	return updated, nil
}

// resolveContent sanitizes the submitted content. Blank content (empty
// editor placeholders included) is rejected; anything else becomes a new
// revision, even when it matches the current one.
func (s *Service) resolveContent(content *string) (string, bool, error) {
	if content == nil {
		return "", false, nil
	}

	clean := s.sanitizer.Clean(*content)
	if sanitize.IsBlank(clean) {
		return "", false, domain.NewValidationError("content", "empty content")
	}

	return clean, true, nil
}
