package recommend

var displayOrder = []Category{
	CategoryFood,
	CategoryDrink,
	CategorySupplements,
	CategoryMakeup,
	CategoryLifestyle,
	CategorySkincare,
}

// CategoryDisplayOrder returns the fixed section ordering. The returned
// slice is a copy, callers may reorder it freely.
func CategoryDisplayOrder() []Category {
	out := make([]Category, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// GroupByCategory buckets items by category. Per-category insertion order
// is preserved; the grouping is stable, not sorted.
func GroupByCategory(items []Item) map[Category][]Item {
	groups := make(map[Category][]Item)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// GroupSections renders the grouped items as ordered sections: the fixed
// display order first with empty categories skipped, then a trailing
// "other" section holding every category outside the fixed list.
func GroupSections(items []Item) []Section {
	groups := GroupByCategory(items)

	known := make(map[Category]struct{}, len(displayOrder))
	sections := make([]Section, 0, len(displayOrder)+1)
	for _, category := range displayOrder {
		known[category] = struct{}{}
		if members := groups[category]; len(members) > 0 {
			sections = append(sections, Section{Category: category, Items: members})
		}
	}

	var overflow []Item
	for _, item := range items {
		if _, ok := known[item.Category]; !ok {
			overflow = append(overflow, item)
		}
	}
	if len(overflow) > 0 {
		sections = append(sections, Section{Category: CategoryOther, Items: overflow})
	}
	return sections
}
