package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupByCategoryPreservesOrder(t *testing.T) {
	items := []Item{
		{Category: CategoryFood, Text: "salmon"},
		{Category: CategoryDrink, Text: "green tea"},
		{Category: CategoryFood, Text: "walnuts"},
	}

	groups := GroupByCategory(items)
	require.Len(t, groups[CategoryFood], 2)
	require.Equal(t, "salmon", groups[CategoryFood][0].Text)
	require.Equal(t, "walnuts", groups[CategoryFood][1].Text)
	require.Len(t, groups[CategoryDrink], 1)
}

func TestGroupSectionsFollowsDisplayOrder(t *testing.T) {
	items := []Item{
		{Category: CategorySkincare, Text: "retinol at night"},
		{Category: CategoryFood, Text: "berries"},
		{Category: CategoryLifestyle, Text: "sleep 8h"},
	}

	sections := GroupSections(items)
	require.Len(t, sections, 3)
	require.Equal(t, CategoryFood, sections[0].Category)
	require.Equal(t, CategoryLifestyle, sections[1].Category)
	require.Equal(t, CategorySkincare, sections[2].Category)
}

func TestGroupSectionsSkipsEmptyCategories(t *testing.T) {
	sections := GroupSections([]Item{{Category: CategoryMakeup, Text: "mineral base"}})
	require.Len(t, sections, 1)
	require.Equal(t, CategoryMakeup, sections[0].Category)
}

func TestGroupSectionsKeepsUnrecognizedCategories(t *testing.T) {
	items := []Item{
		{Category: CategoryFood, Text: "berries"},
		{Category: Category("environment"), Text: "use a humidifier"},
		{Category: Category("haircare"), Text: "sulfate-free shampoo"},
	}

	sections := GroupSections(items)
	require.Len(t, sections, 2)
	last := sections[len(sections)-1]
	require.Equal(t, CategoryOther, last.Category)
	require.Len(t, last.Items, 2)
	require.Equal(t, "use a humidifier", last.Items[0].Text)
}

func TestCategoryDisplayOrderIsACopy(t *testing.T) {
	order := CategoryDisplayOrder()
	order[0] = CategoryOther
	require.Equal(t, CategoryFood, CategoryDisplayOrder()[0])
}
