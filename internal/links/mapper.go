package links

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// Mapper converts catalog entries to domain.LinkItem values.
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// MapLinks validates entries and keeps file order.
// Entries without an id, with a duplicate id, an unknown category or a non-http(s) URL are skipped.
func (m *Mapper) MapLinks(config CatalogConfig) ([]*domain.LinkItem, error) {
	now := m.now()
	seen := make(map[string]bool, len(config.Links))
	items := make([]*domain.LinkItem, 0, len(config.Links))

	for _, props := range config.Links {
		id := strings.TrimSpace(props.ID)
		if id == "" || seen[id] {
			continue
		}

		category := domain.Category(strings.ToLower(strings.TrimSpace(props.Category)))
		if !category.Valid() {
			continue
		}

		if !validURL(props.URL) {
			continue
		}

		seen[id] = true
		items = append(items, &domain.LinkItem{
			ID:         id,
			Title:      props.Title,
			Subtitle:   props.Subtitle,
			URL:        props.URL,
			Icon:       props.Icon,
			ColorClass: props.Color,
			Category:   category,
			UpdatedAt:  now,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid links found in catalog")
	}

	return items, nil
}

func validURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
