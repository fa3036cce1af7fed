package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// MemoryIndex holds the current link catalog in memory.
// It is the source the pages render from; Redis only mirrors it.
type MemoryIndex struct {
	mu         sync.RWMutex
	order      []string                    // catalog order of IDs
	links      map[string]*domain.LinkItem // ID -> LinkItem
	source     string                      // where the last update came from
	lastReload time.Time                   // Timestamp of last catalog reload
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		links: make(map[string]*domain.LinkItem),
	}
}

// UpdateLinks replaces the catalog, keeping the given order.
// Later duplicates of an ID replace the earlier entry in place.
func (idx *MemoryIndex) UpdateLinks(links []*domain.LinkItem, source string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.order = make([]string, 0, len(links))
	idx.links = make(map[string]*domain.LinkItem, len(links))
	for _, link := range links {
		if _, exists := idx.links[link.ID]; !exists {
			idx.order = append(idx.order, link.ID)
		}
		idx.links[link.ID] = link
	}
	idx.source = source
	idx.lastReload = time.Now()
}

// GetLink retrieves a link by ID
func (idx *MemoryIndex) GetLink(id string) (*domain.LinkItem, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	link, ok := idx.links[id]
	return link, ok
}

// AllLinks returns every link, disabled ones included, in catalog order.
func (idx *MemoryIndex) AllLinks() []*domain.LinkItem {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	links := make([]*domain.LinkItem, 0, len(idx.order))
	for _, id := range idx.order {
		links = append(links, idx.links[id])
	}
	return links
}

// VisibleLinks returns enabled links in catalog order.
func (idx *MemoryIndex) VisibleLinks() []*domain.LinkItem {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	links := make([]*domain.LinkItem, 0, len(idx.order))
	for _, id := range idx.order {
		if link := idx.links[id]; !link.Disabled {
			links = append(links, link)
		}
	}
	return links
}

// DeleteLink removes a link from the index
func (idx *MemoryIndex) DeleteLink(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.links[id]; !ok {
		return
	}
	delete(idx.links, id)
	for i, v := range idx.order {
		if v == id {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of visible links
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, link := range idx.links {
		if !link.Disabled {
			n++
		}
	}
	return n
}

// Source returns where the current catalog was loaded from.
func (idx *MemoryIndex) Source() string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.source
}

// GetLastReload returns the timestamp of the last catalog reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
