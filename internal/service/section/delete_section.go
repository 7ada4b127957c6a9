package section

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// DeleteSection removes an empty section. A section holding posts or child
// sections is never deleted; the caller gets a conflict explaining what is
// still attached.
func (s *Service) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if err := requirePublisher(ctx); err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load section: %w", err)
	}

	postCount, err := s.posts.CountBySection(ctx, id)
	if err != nil {
		return fmt.Errorf("count posts in section: %w", err)
	}
	if postCount > 0 {
		return domain.NewConflictError(fmt.Sprintf("section still holds %d post(s); move or delete them first", postCount))
	}

	childCount, err := s.sections.CountChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("count child sections: %w", err)
	}
	if childCount > 0 {
		return domain.NewConflictError(fmt.Sprintf("section still holds %d child section(s); move or delete them first", childCount))
	}

	if err := s.sections.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	s.log.InfoContext(ctx, "section deleted",
		slog.String("section_id", id.String()),
		slog.String("slug", sec.Slug),
	)

	return nil
}
