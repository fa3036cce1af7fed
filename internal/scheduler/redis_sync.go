package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// SourceRedis marks an index filled from the Redis mirror.
const SourceRedis = "redis"

// RedisSyncer warms the memory index from the Redis mirror on startup.
type RedisSyncer struct {
	store  CatalogStore
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store CatalogStore,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync copies the mirrored catalog into the index. An empty mirror is not an error.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing links from redis to memory")

	mirrored, err := rs.store.GetCatalog(ctx)
	if err != nil {
		return err
	}

	if len(mirrored) == 0 {
		rs.logger.Info("no links found in redis")
		return nil
	}

	rs.index.UpdateLinks(mirrored, SourceRedis)

	rs.logger.Info("synced links from redis",
		logger.Int("count", len(mirrored)))

	return nil
}
