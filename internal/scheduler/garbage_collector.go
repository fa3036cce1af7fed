package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

const (
	// DefaultGCThreshold is how long a link stays disabled before it is purged.
	DefaultGCThreshold = 7 * 24 * time.Hour
)

// GarbageCollector purges links that have been disabled for too long.
type GarbageCollector struct {
	store     CatalogStore
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	now       func() time.Time
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store CatalogStore,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	gc.Collect(ctx)

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect(ctx)
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect deletes links disabled for longer than the threshold and returns how many went.
func (gc *GarbageCollector) Collect(ctx context.Context) int {
	now := gc.now()
	deleted := 0

	for _, link := range gc.index.AllLinks() {
		if !link.Disabled || link.UpdatedAt.IsZero() {
			continue
		}

		disabledFor := now.Sub(link.UpdatedAt)
		if disabledFor < gc.threshold {
			continue
		}

		gc.index.DeleteLink(link.ID)

		if gc.store != nil {
			if err := gc.store.DeleteLink(ctx, link.ID); err != nil {
				gc.logger.Warn("failed to delete link from redis",
					logger.String("link_id", link.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled link",
			logger.String("link_id", link.ID),
			logger.String("url", link.URL),
			logger.Duration("disabled_for", disabledFor))
		deleted++
	}

	if deleted > 0 {
		gc.logger.Info("garbage collection completed", logger.Int("deleted", deleted))
	} else {
		gc.logger.Debug("no links to garbage collect")
	}
	return deleted
}
