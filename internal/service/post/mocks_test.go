package post

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetDetailBySlugFunc    func(ctx context.Context, slug string) (*domain.PostWithContent, error)
	ListFunc               func(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error)
	SlugExistsFunc         func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CreateFunc             func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	UpdateFunc             func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	SetCurrentRevisionFunc func(ctx context.Context, postID, revisionID uuid.UUID) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create             []*domain.Post
		Update             []*domain.Post
		SetCurrentRevision [][2]uuid.UUID
		Delete             []uuid.UUID
		List               []domain.PostFilter
	}
	lock sync.RWMutex
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) GetDetailBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error) {
	if m.GetDetailBySlugFunc == nil {
		panic("postRepoMock.GetDetailBySlugFunc: method is nil but was called")
	}
	return m.GetDetailBySlugFunc(ctx, slug)
}

func (m *postRepoMock) List(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error) {
	if m.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.lock.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *postRepoMock) ListCalls() []domain.PostFilter {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.List
}

func (m *postRepoMock) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if m.SlugExistsFunc == nil {
		panic("postRepoMock.SlugExistsFunc: method is nil but was called")
	}
	return m.SlugExistsFunc(ctx, slug, excludeID)
}

func (m *postRepoMock) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if m.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.lock.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *postRepoMock) CreateCalls() []*domain.Post {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *postRepoMock) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if m.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Update = append(m.calls.Update, p)
	m.lock.Unlock()
	return m.UpdateFunc(ctx, p)
}

func (m *postRepoMock) UpdateCalls() []*domain.Post {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Update
}

func (m *postRepoMock) SetCurrentRevision(ctx context.Context, postID, revisionID uuid.UUID) error {
	if m.SetCurrentRevisionFunc == nil {
		panic("postRepoMock.SetCurrentRevisionFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.SetCurrentRevision = append(m.calls.SetCurrentRevision, [2]uuid.UUID{postID, revisionID})
	m.lock.Unlock()
	return m.SetCurrentRevisionFunc(ctx, postID, revisionID)
}

func (m *postRepoMock) SetCurrentRevisionCalls() [][2]uuid.UUID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SetCurrentRevision
}

func (m *postRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.lock.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *postRepoMock) DeleteCalls() []uuid.UUID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

var _ revisionRepo = &revisionRepoMock{}

type revisionRepoMock struct {
	ListByPostFunc func(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error)
	CreateFunc     func(ctx context.Context, rev *domain.Revision) (*domain.Revision, error)

	calls struct {
		Create []*domain.Revision
	}
	lock sync.RWMutex
}

func (m *revisionRepoMock) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error) {
	if m.ListByPostFunc == nil {
		panic("revisionRepoMock.ListByPostFunc: method is nil but was called")
	}
	return m.ListByPostFunc(ctx, postID)
}

func (m *revisionRepoMock) Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error) {
	if m.CreateFunc == nil {
		panic("revisionRepoMock.CreateFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, rev)
	m.lock.Unlock()
	return m.CreateFunc(ctx, rev)
}

func (m *revisionRepoMock) CreateCalls() []*domain.Revision {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

var _ sectionGetter = &sectionGetterMock{}

type sectionGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
}

func (m *sectionGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	if m.GetByIDFunc == nil {
		panic("sectionGetterMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	LogFunc        func(ctx context.Context, rec *domain.ActivityRecord) error
	ListRecentFunc func(ctx context.Context, limit, offset int) ([]*domain.ActivityRecord, error)

	calls struct {
		Log []*domain.ActivityRecord
	}
	lock sync.RWMutex
}

func (m *activityRepoMock) Log(ctx context.Context, rec *domain.ActivityRecord) error {
	m.lock.Lock()
	m.calls.Log = append(m.calls.Log, rec)
	m.lock.Unlock()
	if m.LogFunc != nil {
		return m.LogFunc(ctx, rec)
	}
	return nil
}

func (m *activityRepoMock) LogCalls() []*domain.ActivityRecord {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Log
}

func (m *activityRepoMock) ListRecent(ctx context.Context, limit, offset int) ([]*domain.ActivityRecord, error) {
	if m.ListRecentFunc == nil {
		panic("activityRepoMock.ListRecentFunc: method is nil but was called")
	}
	return m.ListRecentFunc(ctx, limit, offset)
}

// txManagerMock runs the callback directly, without a transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	calls struct {
		PostCreated []*domain.Post
		PostRevised []*domain.Post
	}
	lock sync.RWMutex
}

func (m *notifierMock) PostCreated(ctx context.Context, post *domain.Post) {
	m.lock.Lock()
	m.calls.PostCreated = append(m.calls.PostCreated, post)
	m.lock.Unlock()
}

func (m *notifierMock) PostCreatedCalls() []*domain.Post {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.PostCreated
}

func (m *notifierMock) PostRevised(ctx context.Context, post *domain.Post) {
	m.lock.Lock()
	m.calls.PostRevised = append(m.calls.PostRevised, post)
	m.lock.Unlock()
}

func (m *notifierMock) PostRevisedCalls() []*domain.Post {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.PostRevised
}
