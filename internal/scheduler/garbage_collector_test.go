package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

func TestGarbageCollector_Collect(t *testing.T) {
	memIndex := index.NewMemoryIndex()

	now := time.Now()
	memIndex.UpdateLinks([]*domain.LinkItem{
		{
			ID:        "tg",
			URL:       "https://t.me/akimaryyy",
			Category:  domain.CategoryMain,
			UpdatedAt: now,
		},
		{
			ID:        "recently-removed",
			URL:       "https://example.com/recent",
			Category:  domain.CategoryOther,
			Disabled:  true,
			UpdatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:        "long-removed",
			URL:       "https://example.com/old",
			Category:  domain.CategoryOther,
			Disabled:  true,
			UpdatedAt: now.Add(-10 * 24 * time.Hour),
		},
	}, "test")

	store := newFakeStore()
	gc := NewGarbageCollector(store, memIndex, logger.Nop(), 24*time.Hour, 7*24*time.Hour)
	gc.now = func() time.Time { return now }

	if deleted := gc.Collect(context.Background()); deleted != 1 {
		t.Errorf("Collect() = %d, want 1", deleted)
	}

	if got := len(memIndex.AllLinks()); got != 2 {
		t.Errorf("expected 2 links after GC, got %d", got)
	}
	if _, ok := memIndex.GetLink("tg"); !ok {
		t.Error("active link was incorrectly removed")
	}
	if _, ok := memIndex.GetLink("recently-removed"); !ok {
		t.Error("recently removed link was purged too early")
	}
	if _, ok := memIndex.GetLink("long-removed"); ok {
		t.Error("long removed link was not purged")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "long-removed" {
		t.Errorf("redis deletes = %v, want [long-removed]", store.deleted)
	}
}

func TestGarbageCollector_NilStore(t *testing.T) {
	memIndex := index.NewMemoryIndex()
	memIndex.UpdateLinks([]*domain.LinkItem{
		{ID: "gone", Disabled: true, UpdatedAt: time.Now().Add(-30 * 24 * time.Hour)},
	}, "test")

	gc := NewGarbageCollector(nil, memIndex, logger.Nop(), time.Hour, 0)
	if deleted := gc.Collect(context.Background()); deleted != 1 {
		t.Errorf("Collect() = %d, want 1", deleted)
	}
}
