package section

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetBySlugFunc     func(ctx context.Context, slug string) (*domain.Section, error)
	ListAllFunc       func(ctx context.Context) ([]*domain.Section, error)
	ListRootsFunc     func(ctx context.Context, catalog *domain.Catalog) ([]*domain.Section, error)
	ListChildrenFunc  func(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error)
	SlugExistsFunc    func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CountChildrenFunc func(ctx context.Context, id uuid.UUID) (int, error)
	CreateFunc        func(ctx context.Context, s *domain.Section) (*domain.Section, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.SectionUpdateParams) (*domain.Section, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []*domain.Section
		Update []domain.SectionUpdateParams
		Delete []uuid.UUID
	}
	lock sync.RWMutex
}

func (m *sectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	if m.GetByIDFunc == nil {
		panic("sectionRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *sectionRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	if m.GetBySlugFunc == nil {
		panic("sectionRepoMock.GetBySlugFunc: method is nil but was called")
	}
	return m.GetBySlugFunc(ctx, slug)
}

func (m *sectionRepoMock) ListAll(ctx context.Context) ([]*domain.Section, error) {
	if m.ListAllFunc == nil {
		panic("sectionRepoMock.ListAllFunc: method is nil but was called")
	}
	return m.ListAllFunc(ctx)
}

func (m *sectionRepoMock) ListRoots(ctx context.Context, catalog *domain.Catalog) ([]*domain.Section, error) {
	if m.ListRootsFunc == nil {
		panic("sectionRepoMock.ListRootsFunc: method is nil but was called")
	}
	return m.ListRootsFunc(ctx, catalog)
}

func (m *sectionRepoMock) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error) {
	if m.ListChildrenFunc == nil {
		panic("sectionRepoMock.ListChildrenFunc: method is nil but was called")
	}
	return m.ListChildrenFunc(ctx, parentID)
}

func (m *sectionRepoMock) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if m.SlugExistsFunc == nil {
		panic("sectionRepoMock.SlugExistsFunc: method is nil but was called")
	}
	return m.SlugExistsFunc(ctx, slug, excludeID)
}

func (m *sectionRepoMock) CountChildren(ctx context.Context, id uuid.UUID) (int, error) {
	if m.CountChildrenFunc == nil {
		panic("sectionRepoMock.CountChildrenFunc: method is nil but was called")
	}
	return m.CountChildrenFunc(ctx, id)
}

func (m *sectionRepoMock) Create(ctx context.Context, s *domain.Section) (*domain.Section, error) {
	if m.CreateFunc == nil {
		panic("sectionRepoMock.CreateFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, s)
	m.lock.Unlock()
	return m.CreateFunc(ctx, s)
}

func (m *sectionRepoMock) CreateCalls() []*domain.Section {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *sectionRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SectionUpdateParams) (*domain.Section, error) {
	if m.UpdateFunc == nil {
		panic("sectionRepoMock.UpdateFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Update = append(m.calls.Update, params)
	m.lock.Unlock()
	return m.UpdateFunc(ctx, id, params)
}

func (m *sectionRepoMock) UpdateCalls() []domain.SectionUpdateParams {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Update
}

func (m *sectionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("sectionRepoMock.DeleteFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.lock.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *sectionRepoMock) DeleteCalls() []uuid.UUID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

var _ postCounter = &postCounterMock{}

type postCounterMock struct {
	CountBySectionFunc func(ctx context.Context, sectionID uuid.UUID) (int, error)
}

func (m *postCounterMock) CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error) {
	if m.CountBySectionFunc == nil {
		panic("postCounterMock.CountBySectionFunc: method is nil but was called")
	}
	return m.CountBySectionFunc(ctx, sectionID)
}
