// Package revision implements the Revision repository using PostgreSQL.
// Revisions are append-only: there is no update and no single-row delete,
// only the CASCADE that follows a post removal.
package revision

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkholodov/wuguan-backend/internal/adapter/postgres"
	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new revision repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const revisionColumns = `id, post_id, content, note, created_by, is_published_snapshot, created_at`

const listByPostSQL = `
SELECT ` + revisionColumns + `
FROM revisions
WHERE post_id = $1
ORDER BY created_at DESC, id`

const insertSQL = `
INSERT INTO revisions (post_id, content, note, created_by, is_published_snapshot)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + revisionColumns

// ListByPost returns all revisions of a post, newest first.
func (r *Repo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPostSQL, postID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	result := []*domain.Revision{}
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("list revisions: %w", err)
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	return result, nil
}

// Create appends a new revision and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRevision(q.QueryRow(ctx, insertSQL,
		rev.PostID, rev.Content, rev.Note,
		uuidPtrToPgUUID(rev.CreatedBy), rev.IsPublishedSnapshot))
	if err != nil {
		return nil, postgres.MapError(err, "revision", rev.PostID.String())
	}
	return created, nil
}

func scanRevision(row pgx.Row) (*domain.Revision, error) {
	var (
		rev       domain.Revision
		createdBy pgtype.UUID
	)

	err := row.Scan(&rev.ID, &rev.PostID, &rev.Content, &rev.Note,
		&createdBy, &rev.IsPublishedSnapshot, &rev.CreatedAt)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		id := uuid.UUID(createdBy.Bytes)
		rev.CreatedBy = &id
	}

	return &rev, nil
}

func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
