package links

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

func TestMapLinks(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &Mapper{now: func() time.Time { return fixed }}

	config := CatalogConfig{Links: []LinkProps{
		{ID: "tg", Title: "Telegram", URL: "https://t.me/x", Icon: "fa-brands fa-telegram", Color: "bg-[#0088cc]", Category: "main"},
		{ID: "", Title: "No id", URL: "https://a.test", Category: "main"},
		{ID: "tg", Title: "Duplicate", URL: "https://b.test", Category: "main"},
		{ID: "bad-cat", Title: "Bad", URL: "https://c.test", Category: "misc"},
		{ID: "bad-url", Title: "Bad", URL: "javascript:alert(1)", Category: "other"},
		{ID: "no-host", Title: "Bad", URL: "https://", Category: "other"},
		{ID: "steam", Title: "Steam", URL: "https://steamcommunity.com", Category: " Other "},
	}}

	items, err := m.MapLinks(config)
	if err != nil {
		t.Fatalf("MapLinks() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("MapLinks() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "tg" || first.Title != "Telegram" || first.ColorClass != "bg-[#0088cc]" {
		t.Errorf("first item = %+v", first)
	}
	if !first.UpdatedAt.Equal(fixed) {
		t.Errorf("UpdatedAt = %v, want %v", first.UpdatedAt, fixed)
	}
	if items[1].Category != domain.CategoryOther {
		t.Errorf("category = %q, want normalized other", items[1].Category)
	}
}

func TestMapLinksEmpty(t *testing.T) {
	if _, err := NewMapper().MapLinks(CatalogConfig{}); err == nil {
		t.Error("MapLinks() with no valid links should return error")
	}
}

func TestEmbeddedCatalogMaps(t *testing.T) {
	config, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	items, err := NewMapper().MapLinks(config)
	if err != nil {
		t.Fatalf("MapLinks() error = %v", err)
	}
	if len(items) != 7 {
		t.Errorf("embedded catalog maps to %d items, want 7", len(items))
	}
}
