package scheduler

import (
	"context"
	"errors"
	"sync"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

type fakeStore struct {
	mu      sync.Mutex
	saved   [][]*domain.LinkItem
	catalog []*domain.LinkItem
	deleted []string
	saveErr error
	getErr  error
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) SaveCatalog(_ context.Context, links []*domain.LinkItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, links)
	f.catalog = links
	return nil
}

func (f *fakeStore) GetCatalog(context.Context) ([]*domain.LinkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.catalog, f.getErr
}

func (f *fakeStore) DeleteLink(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

var errRedisDown = errors.New("redis down")
