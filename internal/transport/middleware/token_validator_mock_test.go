package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, domain.Role, error)

	calls struct {
		ValidateToken []string
	}
	lock sync.RWMutex
}

func (m *tokenValidatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error) {
	if m.ValidateTokenFunc == nil {
		panic("tokenValidatorMock.ValidateTokenFunc: method is nil but was called")
	}
	m.lock.Lock()
	m.calls.ValidateToken = append(m.calls.ValidateToken, token)
	m.lock.Unlock()
	return m.ValidateTokenFunc(ctx, token)
}

func (m *tokenValidatorMock) ValidateTokenCalls() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.ValidateToken
}
