package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultLinkTTL is the default TTL for mirrored link entries (48 hours)
	DefaultLinkTTL = 48 * time.Hour
)

// Store mirrors the link catalog in Redis and holds in-flight locks.
type Store struct {
	client redis.UniversalClient
}

// NewStore creates a new Redis store
func NewStore(client redis.UniversalClient) *Store {
	return &Store{
		client: client,
	}
}

// SaveCatalog replaces the mirrored catalog in one transaction, keeping order.
func (s *Store) SaveCatalog(ctx context.Context, links []*domain.LinkItem) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, LinkOrderKey())

	for _, link := range links {
		data, err := json.Marshal(link)
		if err != nil {
			return fmt.Errorf("failed to marshal link %s: %w", link.ID, err)
		}
		pipe.Set(ctx, LinkKey(link.ID), data, DefaultLinkTTL)
		pipe.RPush(ctx, LinkOrderKey(), link.ID)
	}
	pipe.Expire(ctx, LinkOrderKey(), DefaultLinkTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// GetCatalog returns the mirrored links in catalog order.
// Entries whose key expired or cannot be decoded are skipped.
func (s *Store) GetCatalog(ctx context.Context) ([]*domain.LinkItem, error) {
	ids, err := s.client.LRange(ctx, LinkOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get link order: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.LinkItem{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = LinkKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}

	links := make([]*domain.LinkItem, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var link domain.LinkItem
		if err := json.Unmarshal([]byte(raw), &link); err != nil {
			continue
		}
		links = append(links, &link)
	}
	return links, nil
}

// DeleteLink removes a link from Redis
func (s *Store) DeleteLink(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, LinkKey(id))
	pipe.LRem(ctx, LinkOrderKey(), 0, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}
