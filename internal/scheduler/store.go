package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// CatalogStore mirrors the catalog outside the process. A nil CatalogStore
// means Redis is disabled and the memory index is the only copy.
type CatalogStore interface {
	SaveCatalog(ctx context.Context, links []*domain.LinkItem) error
	GetCatalog(ctx context.Context) ([]*domain.LinkItem, error)
	DeleteLink(ctx context.Context, id string) error
}
