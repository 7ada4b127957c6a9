package bookmark

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	ExistsFunc    func(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	CreateFunc    func(ctx context.Context, userID, postID uuid.UUID) error
	DeleteFunc    func(ctx context.Context, userID, postID uuid.UUID) error
	ListPostsFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.PostWithContent, error)

	calls struct {
		Create [][2]uuid.UUID
		Delete [][2]uuid.UUID
	}
	lock sync.RWMutex
}

func (m *bookmarkRepoMock) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if m.ExistsFunc == nil {
		panic("bookmarkRepoMock.ExistsFunc: method is nil but was called")
	}
	return m.ExistsFunc(ctx, userID, postID)
}

func (m *bookmarkRepoMock) Create(ctx context.Context, userID, postID uuid.UUID) error {
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, [2]uuid.UUID{userID, postID})
	m.lock.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, postID)
	}
	return nil
}

func (m *bookmarkRepoMock) CreateCalls() [][2]uuid.UUID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *bookmarkRepoMock) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, [2]uuid.UUID{userID, postID})
	m.lock.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, postID)
	}
	return nil
}

func (m *bookmarkRepoMock) DeleteCalls() [][2]uuid.UUID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

func (m *bookmarkRepoMock) ListPosts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.PostWithContent, error) {
	if m.ListPostsFunc == nil {
		panic("bookmarkRepoMock.ListPostsFunc: method is nil but was called")
	}
	return m.ListPostsFunc(ctx, userID, limit, offset)
}

var _ postGetter = &postGetterMock{}

type postGetterMock struct {
	GetDetailBySlugFunc func(ctx context.Context, slug string) (*domain.PostWithContent, error)
}

func (m *postGetterMock) GetDetailBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error) {
	if m.GetDetailBySlugFunc == nil {
		panic("postGetterMock.GetDetailBySlugFunc: method is nil but was called")
	}
	return m.GetDetailBySlugFunc(ctx, slug)
}

func newTestService(bookmarks *bookmarkRepoMock, posts *postGetterMock) *Service {
	return NewService(slog.Default(), bookmarks, posts)
}

func memberCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithRole(ctx, string(domain.RoleMember))
}

func publishedPost(slug string) *postGetterMock {
	return &postGetterMock{
		GetDetailBySlugFunc: func(ctx context.Context, s string) (*domain.PostWithContent, error) {
			if s != slug {
				return nil, domain.ErrNotFound
			}
			return &domain.PostWithContent{
				Post: domain.Post{ID: uuid.New(), Slug: s, Status: domain.PostStatusPublished},
			}, nil
		},
	}
}

func TestToggle_Anonymous(t *testing.T) {
	t.Parallel()

	svc := newTestService(&bookmarkRepoMock{}, publishedPost("silk-reeling"))

	_, err := svc.Toggle(context.Background(), "silk-reeling")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestToggle_AddsWhenMissing(t *testing.T) {
	t.Parallel()

	bookmarks := &bookmarkRepoMock{
		ExistsFunc: func(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	svc := newTestService(bookmarks, publishedPost("silk-reeling"))

	userID := uuid.New()
	bookmarked, err := svc.Toggle(memberCtx(userID), "silk-reeling")
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if !bookmarked {
		t.Error("Toggle() = false, want true after adding")
	}
	if n := len(bookmarks.CreateCalls()); n != 1 {
		t.Errorf("Create calls = %d, want 1", n)
	}
	if n := len(bookmarks.DeleteCalls()); n != 0 {
		t.Errorf("Delete calls = %d, want 0", n)
	}
	if got := bookmarks.CreateCalls()[0][0]; got != userID {
		t.Errorf("bookmark created for user %s, want %s", got, userID)
	}
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	t.Parallel()

	bookmarks := &bookmarkRepoMock{
		ExistsFunc: func(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	svc := newTestService(bookmarks, publishedPost("silk-reeling"))

	bookmarked, err := svc.Toggle(memberCtx(uuid.New()), "silk-reeling")
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if bookmarked {
		t.Error("Toggle() = true, want false after removing")
	}
	if n := len(bookmarks.DeleteCalls()); n != 1 {
		t.Errorf("Delete calls = %d, want 1", n)
	}
	if n := len(bookmarks.CreateCalls()); n != 0 {
		t.Errorf("Create calls = %d, want 0", n)
	}
}

func TestToggle_HiddenPostBehavesAsMissing(t *testing.T) {
	t.Parallel()

	posts := &postGetterMock{
		GetDetailBySlugFunc: func(ctx context.Context, slug string) (*domain.PostWithContent, error) {
			return &domain.PostWithContent{
				Post: domain.Post{ID: uuid.New(), Slug: slug, Status: domain.PostStatusDraft},
			}, nil
		},
	}
	svc := newTestService(&bookmarkRepoMock{}, posts)

	_, err := svc.Toggle(memberCtx(uuid.New()), "hidden-draft")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a hidden post, got: %v", err)
	}
}

func TestToggle_UnknownPost(t *testing.T) {
	t.Parallel()

	svc := newTestService(&bookmarkRepoMock{}, publishedPost("silk-reeling"))

	_, err := svc.Toggle(memberCtx(uuid.New()), "no-such-post")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestList_DefaultsPaging(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	bookmarks := &bookmarkRepoMock{
		ListPostsFunc: func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.PostWithContent, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := newTestService(bookmarks, &postGetterMock{})

	if _, err := svc.List(memberCtx(uuid.New()), 0, -3); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if gotLimit != defaultPageSize || gotOffset != 0 {
		t.Errorf("limit/offset = %d/%d, want %d/0", gotLimit, gotOffset, defaultPageSize)
	}
}

func TestList_Anonymous(t *testing.T) {
	t.Parallel()

	svc := newTestService(&bookmarkRepoMock{}, &postGetterMock{})

	_, err := svc.List(context.Background(), 10, 0)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}
