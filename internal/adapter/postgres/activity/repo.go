// Package activity implements the activity log repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkholodov/wuguan-backend/internal/adapter/postgres"
	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO activity_log (post_id, title, section_title, action, user_id)
VALUES ($1, $2, $3, $4, $5)`

const listRecentSQL = `
SELECT id, post_id, title, section_title, action, user_id, created_at
FROM activity_log
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

// Log appends an activity record. Title and section title are snapshots; the
// record never changes after this point.
func (r *Repo) Log(ctx context.Context, rec *domain.ActivityRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		uuidPtrToPgUUID(rec.PostID), rec.Title, rec.SectionTitle,
		rec.Action, uuidPtrToPgUUID(rec.UserID))
	if err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// ListRecent returns the newest records first.
func (r *Repo) ListRecent(ctx context.Context, limit, offset int) ([]*domain.ActivityRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecentSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	result := []*domain.ActivityRecord{}
	for rows.Next() {
		var (
			rec    domain.ActivityRecord
			postID pgtype.UUID
			userID pgtype.UUID
		)
		err := rows.Scan(&rec.ID, &postID, &rec.Title, &rec.SectionTitle,
			&rec.Action, &userID, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list activity: %w", err)
		}
		if postID.Valid {
			id := uuid.UUID(postID.Bytes)
			rec.PostID = &id
		}
		if userID.Valid {
			id := uuid.UUID(userID.Bytes)
			rec.UserID = &id
		}
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return result, nil
}

func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
