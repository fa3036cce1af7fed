package domain

import "time"

// Category groups links into directory sections.
// It determines grouping only and carries no other meaning.
type Category string

const (
	CategoryMain  Category = "main"
	CategoryMedia Category = "media"
	CategoryOther Category = "other"
)

// Categories lists the directory sections in render order.
var Categories = []Category{CategoryMain, CategoryMedia, CategoryOther}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMain, CategoryMedia, CategoryOther:
		return true
	}
	return false
}

// LinkItem is one outbound card of the link directory.
//
// Items are defined by the catalog and never mutated by requests.
// A reload replaces them wholesale.
type LinkItem struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the unique catalog identifier.
	// Example: tg, twitch
	ID string `json:"id"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	// URL is the external destination, opened in a new browsing context.
	URL string `json:"url"`

	// Icon is an icon class list.
	// Example: fa-brands fa-telegram
	Icon string `json:"icon"`

	// ColorClass is the style class list applied to the icon badge.
	// Example: bg-[#0088cc]
	ColorClass string `json:"color_class"`

	Category Category `json:"category"`

	// ─────────────────────────────
	// Catalog bookkeeping
	// ─────────────────────────────

	// UpdatedAt is set whenever a reload touches the item.
	UpdatedAt time.Time `json:"updated_at"`

	// Disabled marks an item removed from the catalog.
	// Disabled items are hidden and garbage-collected later.
	Disabled bool `json:"disabled,omitempty"`
}
