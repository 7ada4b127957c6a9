// Package post implements the Post repository using PostgreSQL.
// Static lookups use raw SQL constants; the dynamic listing surface is
// assembled with squirrel (see filter.go).
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkholodov/wuguan-backend/internal/adapter/postgres"
	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postColumns = `id, section_id, title, slug, summary, status, is_featured,
sort_order, published_at, created_at, updated_at, author_id, current_revision_id`

const getByIDSQL = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

const getBySlugSQL = `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

const getDetailBySlugSQL = `
SELECT p.id, p.section_id, p.title, p.slug, p.summary, p.status, p.is_featured,
       p.sort_order, p.published_at, p.created_at, p.updated_at, p.author_id,
       p.current_revision_id, s.title, coalesce(r.content, '')
FROM posts p
JOIN sections s ON s.id = p.section_id
LEFT JOIN revisions r ON r.id = p.current_revision_id
WHERE p.slug = $1`

const slugExistsSQL = `SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)`

const countBySectionSQL = `SELECT count(*) FROM posts WHERE section_id = $1`

const insertSQL = `
INSERT INTO posts (section_id, title, slug, summary, status, is_featured, sort_order, published_at, author_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + postColumns

const updateSQL = `
UPDATE posts
SET section_id = $2, title = $3, slug = $4, summary = $5, status = $6,
    is_featured = $7, sort_order = $8, published_at = $9,
    current_revision_id = $10, updated_at = now()
WHERE id = $1
RETURNING ` + postColumns

const setCurrentRevisionSQL = `
UPDATE posts SET current_revision_id = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM posts WHERE id = $1`

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id.String())
	}
	return p, nil
}

// GetBySlug returns a post by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "post", slug)
	}
	return p, nil
}

// GetDetailBySlug returns a post with its section title and current revision
// content, regardless of status. Visibility is the caller's concern.
func (r *Repo) GetDetailBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPostWithContent(q.QueryRow(ctx, getDetailBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "post", slug)
	}
	return p, nil
}

// List returns posts matching the filter plus the total match count for
// paging.
func (r *Repo) List(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error) {
	filter = normalize(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	listSQL, listArgs, err := buildListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("build post list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	result := []*domain.PostWithContent{}
	for rows.Next() {
		p, err := scanPostWithContent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list posts: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	countSQL, countArgs, err := buildCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("build post count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	return result, total, nil
}

// SlugExists reports whether a slug is taken by a post other than excludeID.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, slugExistsSQL, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("post slug exists: %w", err)
	}
	return exists, nil
}

// CountBySection returns the number of posts in a section, any status.
func (r *Repo) CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countBySectionSQL, sectionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts by section: %w", err)
	}
	return count, nil
}

// Create inserts a new post and returns the persisted row. The current
// revision pointer is set separately once the first revision exists.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPost(q.QueryRow(ctx, insertSQL,
		p.SectionID, p.Title, p.Slug, p.Summary, p.Status,
		p.IsFeatured, p.Order, timePtrToPgTimestamptz(p.PublishedAt),
		uuidPtrToPgUUID(p.AuthorID)))
	if err != nil {
		return nil, postgres.MapError(err, "post", p.Slug)
	}
	return created, nil
}

// Update rewrites the mutable columns of a post from the given snapshot and
// returns the updated row.
func (r *Repo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanPost(q.QueryRow(ctx, updateSQL,
		p.ID, p.SectionID, p.Title, p.Slug, p.Summary, p.Status,
		p.IsFeatured, p.Order, timePtrToPgTimestamptz(p.PublishedAt),
		uuidPtrToPgUUID(p.CurrentRevisionID)))
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID.String())
	}
	return updated, nil
}

// SetCurrentRevision points the post at a revision.
func (r *Repo) SetCurrentRevision(ctx context.Context, postID, revisionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setCurrentRevisionSQL, postID, revisionID)
	if err != nil {
		return postgres.MapError(err, "post", postID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a post; revisions and bookmarks follow via CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "post", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p                 domain.Post
		publishedAt       pgtype.Timestamptz
		authorID          pgtype.UUID
		currentRevisionID pgtype.UUID
	)

	err := row.Scan(&p.ID, &p.SectionID, &p.Title, &p.Slug, &p.Summary,
		&p.Status, &p.IsFeatured, &p.Order, &publishedAt,
		&p.CreatedAt, &p.UpdatedAt, &authorID, &currentRevisionID)
	if err != nil {
		return nil, err
	}

	applyNullable(&p, publishedAt, authorID, currentRevisionID)

	return &p, nil
}

func scanPostWithContent(row pgx.Row) (*domain.PostWithContent, error) {
	var (
		p                 domain.PostWithContent
		publishedAt       pgtype.Timestamptz
		authorID          pgtype.UUID
		currentRevisionID pgtype.UUID
	)

	err := row.Scan(&p.ID, &p.SectionID, &p.Title, &p.Slug, &p.Summary,
		&p.Status, &p.IsFeatured, &p.Order, &publishedAt,
		&p.CreatedAt, &p.UpdatedAt, &authorID, &currentRevisionID,
		&p.SectionTitle, &p.Content)
	if err != nil {
		return nil, err
	}

	applyNullable(&p.Post, publishedAt, authorID, currentRevisionID)

	return &p, nil
}

func applyNullable(p *domain.Post, publishedAt pgtype.Timestamptz, authorID, currentRevisionID pgtype.UUID) {
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
}

func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
