// Package inflight keeps at most one upstream request per rendered form instance.
package inflight

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/linkhub/internal/apperror"
)

// Guard hands out exclusive locks keyed by form and instance token.
// Acquire returns apperror.ErrInFlight when the key is already held.
// The returned release func must be called exactly once.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Key builds a guard key from a form name and the token it was rendered with.
func Key(form, token string) string {
	return form + ":" + token
}

// Memory is a process-local Guard.
type Memory struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{held: make(map[string]struct{})}
}

func (m *Memory) Acquire(_ context.Context, key string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.held[key]; busy {
		return nil, apperror.InFlight(key)
	}
	m.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.held, key)
			m.mu.Unlock()
		})
	}, nil
}

// Held reports whether key is currently locked.
func (m *Memory) Held(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.held[key]
	return ok
}
