package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	GetBySlugFunc    func(ctx context.Context, slug string) (*domain.Section, error)
	ListChildrenFunc func(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error)
}

func (m *sectionRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	if m.GetBySlugFunc == nil {
		panic("sectionRepoMock.GetBySlugFunc: method is nil but was called")
	}
	return m.GetBySlugFunc(ctx, slug)
}

func (m *sectionRepoMock) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error) {
	if m.ListChildrenFunc == nil {
		panic("sectionRepoMock.ListChildrenFunc: method is nil but was called")
	}
	return m.ListChildrenFunc(ctx, parentID)
}

var _ postLister = &postListerMock{}

type postListerMock struct {
	ListFunc func(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error)

	calls struct {
		List []domain.PostFilter
	}
	lock sync.RWMutex
}

func (m *postListerMock) List(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error) {
	if m.ListFunc == nil {
		panic("postListerMock.ListFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.lock.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *postListerMock) ListCalls() []domain.PostFilter {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.List
}
