// Package bookmark implements the bookmark repository using PostgreSQL.
package bookmark

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkholodov/wuguan-backend/internal/adapter/postgres"
	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND post_id = $2)`

const insertSQL = `
INSERT INTO bookmarks (user_id, post_id)
VALUES ($1, $2)
ON CONFLICT (user_id, post_id) DO NOTHING`

const deleteSQL = `DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`

// listPostsSQL returns bookmarked posts newest-bookmark first, with section
// title for the listing card. Content is not needed on this surface.
const listPostsSQL = `
SELECT p.id, p.section_id, p.title, p.slug, p.summary, p.status, p.is_featured,
       p.sort_order, p.published_at, p.created_at, p.updated_at, p.author_id,
       p.current_revision_id, s.title
FROM bookmarks b
JOIN posts p ON p.id = b.post_id
JOIN sections s ON s.id = p.section_id
WHERE b.user_id = $1 AND p.status = $2
ORDER BY b.created_at DESC
LIMIT $3 OFFSET $4`

// Exists reports whether a user has bookmarked a post.
func (r *Repo) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, userID, postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("bookmark exists: %w", err)
	}
	return exists, nil
}

// Create adds a bookmark; adding an existing pair is a no-op.
func (r *Repo) Create(ctx context.Context, userID, postID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertSQL, userID, postID); err != nil {
		return postgres.MapError(err, "bookmark", postID.String())
	}
	return nil
}

// Delete removes a bookmark; removing a missing pair is a no-op.
func (r *Repo) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, userID, postID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// ListPosts returns a user's bookmarked posts that are still published,
// newest bookmark first.
func (r *Repo) ListPosts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.PostWithContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPostsSQL, userID, domain.PostStatusPublished, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked posts: %w", err)
	}
	defer rows.Close()

	result := []*domain.PostWithContent{}
	for rows.Next() {
		var (
			p                 domain.PostWithContent
			publishedAt       pgtype.Timestamptz
			authorID          pgtype.UUID
			currentRevisionID pgtype.UUID
		)
		err := rows.Scan(&p.ID, &p.SectionID, &p.Title, &p.Slug, &p.Summary,
			&p.Status, &p.IsFeatured, &p.Order, &publishedAt,
			&p.CreatedAt, &p.UpdatedAt, &authorID, &currentRevisionID,
			&p.SectionTitle)
		if err != nil {
			return nil, fmt.Errorf("list bookmarked posts: %w", err)
		}
		if publishedAt.Valid {
			t := publishedAt.Time
			p.PublishedAt = &t
		}
		if authorID.Valid {
			id := uuid.UUID(authorID.Bytes)
			p.AuthorID = &id
		}
		if currentRevisionID.Valid {
			id := uuid.UUID(currentRevisionID.Bytes)
			p.CurrentRevisionID = &id
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarked posts: %w", err)
	}

	return result, nil
}
