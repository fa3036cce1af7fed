package links

import "github.com/MrSnakeDoc/linkhub/internal/domain"

// Section is one rendered group of the directory.
type Section struct {
	Category domain.Category
	Links    []*domain.LinkItem
}

// Directory partitions links into sections following domain.Categories.
// Disabled links are dropped and empty sections omitted. Order within a section is preserved.
func Directory(items []*domain.LinkItem) []Section {
	byCategory := make(map[domain.Category][]*domain.LinkItem, len(domain.Categories))
	for _, item := range items {
		if item == nil || item.Disabled {
			continue
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	sections := make([]Section, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if len(byCategory[c]) == 0 {
			continue
		}
		sections = append(sections, Section{Category: c, Links: byCategory[c]})
	}
	return sections
}
