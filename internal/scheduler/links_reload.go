package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/links"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/metrics"
)

// LinksReloader keeps the memory index in sync with the catalog source.
type LinksReloader struct {
	loader        *links.Loader
	mapper        *links.Mapper
	store         CatalogStore
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	now           func() time.Time
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewLinksReloader creates a reloader. An empty linksFile serves the embedded catalog.
func NewLinksReloader(
	linksFile string,
	store CatalogStore,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *LinksReloader {
	return &LinksReloader{
		loader:        links.NewLoader(linksFile),
		mapper:        links.NewMapper(),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		now:           time.Now,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Source reports where the reloader reads the catalog from.
func (lr *LinksReloader) Source() string {
	return lr.loader.Source()
}

// Start loads the catalog once, then reloads on every tick or manual trigger.
func (lr *LinksReloader) Start(ctx context.Context) error {
	if err := lr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(lr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := lr.Reload(ctx); err != nil {
					lr.logger.Error("failed to reload links", logger.Error(err))
				}
			case <-lr.manualTrigger:
				lr.logger.Info("manual reload triggered")
				if err := lr.Reload(ctx); err != nil {
					lr.logger.Error("failed to reload links", logger.Error(err))
				}
			case <-lr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (lr *LinksReloader) Stop() {
	close(lr.stopCh)
}

// Reload reads the catalog and updates the index and the Redis mirror.
// Links that disappeared from the source stay in the index as disabled until
// the garbage collector purges them. On error the current catalog is kept.
func (lr *LinksReloader) Reload(ctx context.Context) error {
	source := lr.loader.Source()
	lr.logger.Debug("reloading links", logger.String("source", source))

	config, err := lr.loader.Load()
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to load links: %w", err)
	}

	fresh, err := lr.mapper.MapLinks(config)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to map links: %w", err)
	}

	seen := make(map[string]bool, len(fresh))
	for _, link := range fresh {
		seen[link.ID] = true
	}

	now := lr.now()
	var removed []*domain.LinkItem
	for _, existing := range lr.index.AllLinks() {
		if seen[existing.ID] {
			continue
		}
		link := *existing
		if !link.Disabled {
			link.Disabled = true
			link.UpdatedAt = now
		}
		removed = append(removed, &link)
	}

	if len(removed) > 0 {
		lr.logger.Info("links removed from catalog marked as disabled",
			logger.Int("count", len(removed)))
	}

	all := append(fresh, removed...)
	lr.index.UpdateLinks(all, source)

	metrics.CatalogReloadsTotal.WithLabelValues("success").Inc()
	metrics.CatalogLinks.Set(float64(lr.index.Count()))

	lr.logger.Info("links loaded",
		logger.String("source", source),
		logger.Int("count", len(fresh)))

	// Redis is a mirror; a failed write keeps the reload.
	if lr.store != nil {
		if err := lr.store.SaveCatalog(ctx, all); err != nil {
			lr.logger.Warn("failed to save links to redis", logger.Error(err))
		}
	}

	return nil
}
