// Package section implements the Section repository using PostgreSQL.
// Sections form a three-level forest partitioned by catalog; the parent FK
// is RESTRICT so a populated node can never be removed underneath its
// children.
package section

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

// Repo provides section persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new section repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sectionColumns = `id, title, slug, description, catalog, sort_order, parent_id, created_at, updated_at`

const getByIDSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`

const getBySlugSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE slug = $1`

const listAllSQL = `SELECT ` + sectionColumns + ` FROM sections ORDER BY catalog, sort_order, title`

const listByCatalogSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE catalog = $1 ORDER BY sort_order, title`

const listRootsSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE parent_id IS NULL ORDER BY sort_order, title`

const listRootsByCatalogSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE parent_id IS NULL AND catalog = $1 ORDER BY sort_order, title`

const listChildrenSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE parent_id = $1 ORDER BY sort_order, title`

const slugExistsSQL = `SELECT EXISTS (SELECT 1 FROM sections WHERE slug = $1 AND id <> $2)`

const countChildrenSQL = `SELECT count(*) FROM sections WHERE parent_id = $1`

const insertSQL = `
INSERT INTO sections (title, slug, description, catalog, sort_order, parent_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + sectionColumns

const updateSQL = `
UPDATE sections
SET title = $2, slug = $3, description = $4, catalog = $5, sort_order = $6,
    parent_id = $7, updated_at = now()
WHERE id = $1
RETURNING ` + sectionColumns

const deleteSQL = `DELETE FROM sections WHERE id = $1`

// GetByID returns a section by primary key.
// Returns domain.ErrNotFound if the section does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSection(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "section", id.String())
	}
	return s, nil
}

// GetBySlug returns a section by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSection(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "section", slug)
	}
	return s, nil
}

// ListAll returns every section ordered by (catalog, order, title).
// Used by tree traversal; the whole taxonomy is small by construction.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Section, error) {
	return r.list(ctx, listAllSQL)
}

// ListByCatalog returns all sections of one catalog ordered by (order, title).
func (r *Repo) ListByCatalog(ctx context.Context, catalog domain.Catalog) ([]*domain.Section, error) {
	return r.list(ctx, listByCatalogSQL, catalog)
}

// ListRoots returns root sections ordered by (order, title), optionally
// restricted to one catalog.
func (r *Repo) ListRoots(ctx context.Context, catalog *domain.Catalog) ([]*domain.Section, error) {
	if catalog == nil {
		return r.list(ctx, listRootsSQL)
	}
	return r.list(ctx, listRootsByCatalogSQL, *catalog)
}

// ListChildren returns the direct children of a section ordered by
// (order, title).
func (r *Repo) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error) {
	return r.list(ctx, listChildrenSQL, parentID)
}

// SlugExists reports whether a slug is taken by a section other than excludeID.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, slugExistsSQL, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("section slug exists: %w", err)
	}
	return exists, nil
}

// CountChildren returns the number of direct children of a section.
func (r *Repo) CountChildren(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countChildrenSQL, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count section children: %w", err)
	}
	return count, nil
}

// Create inserts a new section and returns the persisted row.
// Returns domain.ErrAlreadyExists on a slug collision.
func (r *Repo) Create(ctx context.Context, s *domain.Section) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanSection(q.QueryRow(ctx, insertSQL,
		s.Title, s.Slug, s.Description, s.Catalog, s.Order, uuidPtrToPgUUID(s.ParentID)))
	if err != nil {
		return nil, postgres.MapError(err, "section", s.Slug)
	}
	return created, nil
}

// Update applies partial updates to a section and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SectionUpdateParams) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanSection(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "section", id.String())
	}

	title := current.Title
	if params.Title != nil {
		title = *params.Title
	}
	slug := current.Slug
	if params.Slug != nil {
		slug = *params.Slug
	}
	description := current.Description
	if params.Description != nil {
		description = *params.Description
	}
	catalog := current.Catalog
	if params.Catalog != nil {
		catalog = *params.Catalog
	}
	order := current.Order
	if params.Order != nil {
		order = *params.Order
	}
	parentID := current.ParentID
	if params.ParentID != nil {
		parentID = *params.ParentID
	}

	updated, err := scanSection(q.QueryRow(ctx, updateSQL,
		id, title, slug, description, catalog, order, uuidPtrToPgUUID(parentID)))
	if err != nil {
		return nil, postgres.MapError(err, "section", id.String())
	}
	return updated, nil
}

// Delete removes a section. The caller is responsible for the emptiness
// check; the RESTRICT constraints are the last line of defense and surface
// as domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "section", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	result := []*domain.Section{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("list sections: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	return result, nil
}

func scanSection(row pgx.Row) (*domain.Section, error) {
	var (
		s         domain.Section
		parentID  pgtype.UUID
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Description, &s.Catalog,
		&s.Order, &parentID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		id := uuid.UUID(parentID.Bytes)
		s.ParentID = &id
	}
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt

	return &s, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
