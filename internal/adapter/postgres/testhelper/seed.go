package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role plus an empty profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (user_id) VALUES ($1)`, user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedSubscriber creates a user whose profile has a confirmed notification
// address with both opt-ins set as given.
func SeedSubscriber(t *testing.T, pool *pgxpool.Pool, notifyNewPosts, notifyUpdates bool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, domain.RoleMember)
	email := "notify-" + uniqueSuffix() + "@example.com"

	_, err := pool.Exec(ctx,
		`UPDATE profiles
		 SET notify_email = $2, email_confirmed = true, notify_new_posts = $3, notify_updates = $4
		 WHERE user_id = $1`,
		user.ID, email, notifyNewPosts, notifyUpdates,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscriber update profile: %v", err)
	}

	return user
}

// SeedSection creates a section. parentID may be nil for a root.
func SeedSection(t *testing.T, pool *pgxpool.Pool, catalog domain.Catalog, parentID *uuid.UUID) domain.Section {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	section := domain.Section{
		ID:        uuid.New(),
		Title:     "Section " + suffix,
		Slug:      "section-" + suffix,
		Catalog:   catalog,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sections (id, title, slug, description, catalog, sort_order, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, '', $4, 0, $5, $6, $6)`,
		section.ID, section.Title, section.Slug, string(section.Catalog), section.ParentID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSection insert section: %v", err)
	}

	return section
}

// SeedPost creates a post with one revision set as current. A published post
// gets a published_at of now.
func SeedPost(t *testing.T, pool *pgxpool.Pool, sectionID uuid.UUID, status domain.PostStatus, content string) domain.Post {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	post := domain.Post{
		ID:        uuid.New(),
		SectionID: sectionID,
		Title:     "Post " + suffix,
		Slug:      "post-" + suffix,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == domain.PostStatusPublished {
		post.PublishedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, section_id, title, slug, summary, status, is_featured, sort_order, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '', $5, false, 0, $6, $7, $7)`,
		post.ID, post.SectionID, post.Title, post.Slug, string(post.Status), post.PublishedAt, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert post: %v", err)
	}

	revisionID := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO revisions (id, post_id, content, note, is_published_snapshot, created_at)
		 VALUES ($1, $2, $3, '', $4, $5)`,
		revisionID, post.ID, content, status == domain.PostStatusPublished, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert revision: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE posts SET current_revision_id = $2 WHERE id = $1`, post.ID, revisionID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost set current revision: %v", err)
	}
	post.CurrentRevisionID = &revisionID

	return post
}
