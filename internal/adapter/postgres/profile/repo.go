// Package profile implements the notification profile repository using
// PostgreSQL.
package profile

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

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `user_id, notify_email, email_confirmed, notify_new_posts, notify_updates, created_at`

const getByUserIDSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

const upsertSQL = `
INSERT INTO profiles (user_id, notify_email, email_confirmed, notify_new_posts, notify_updates)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET notify_email = EXCLUDED.notify_email,
    email_confirmed = EXCLUDED.email_confirmed,
    notify_new_posts = EXCLUDED.notify_new_posts,
    notify_updates = EXCLUDED.notify_updates
RETURNING ` + profileColumns

const setConfirmedSQL = `
UPDATE profiles SET email_confirmed = $2 WHERE user_id = $1`

// listSubscribersSQL selects confirmed addresses with at least one opt-in.
// The dispatcher filters per kind.
const listSubscribersSQL = `
SELECT user_id, notify_email, notify_new_posts, notify_updates
FROM profiles
WHERE email_confirmed AND notify_email IS NOT NULL AND notify_email <> ''
  AND (notify_new_posts OR notify_updates)`

// GetByUserID returns a user's profile.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID.String())
	}
	return p, nil
}

// Upsert writes a profile, creating it on first touch.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanProfile(q.QueryRow(ctx, upsertSQL,
		p.UserID, strPtrToPgText(p.NotifyEmail), p.EmailConfirmed,
		p.NotifyNewPosts, p.NotifyUpdates))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID.String())
	}
	return saved, nil
}

// SetConfirmed flips the email confirmation flag.
func (r *Repo) SetConfirmed(ctx context.Context, userID uuid.UUID, confirmed bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setConfirmedSQL, userID, confirmed)
	if err != nil {
		return fmt.Errorf("set profile confirmed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ListSubscribers returns every confirmed, opted-in recipient.
func (r *Repo) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSubscribersSQL)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	result := []domain.Subscriber{}
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.UserID, &s.Email, &s.NotifyNewPosts, &s.NotifyUpdates); err != nil {
			return nil, fmt.Errorf("list subscribers: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	return result, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p           domain.Profile
		notifyEmail pgtype.Text
	)

	err := row.Scan(&p.UserID, &notifyEmail, &p.EmailConfirmed,
		&p.NotifyNewPosts, &p.NotifyUpdates, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if notifyEmail.Valid {
		s := notifyEmail.String
		p.NotifyEmail = &s
	}

	return &p, nil
}

func strPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
