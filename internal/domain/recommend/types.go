package recommend

// Category tags a recommendation for grouped display.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryDrink       Category = "drink"
	CategorySupplements Category = "supplements"
	CategoryMakeup      Category = "makeup"
	CategoryLifestyle   Category = "lifestyle"
	CategorySkincare    Category = "skincare"
	// CategoryOther collects anything outside the fixed display order so
	// unrecognized categories are still rendered instead of dropped.
	CategoryOther Category = "other"
)

// Item is a single recommendation shown inside a category section.
type Item struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
	IconName string   `json:"iconName,omitempty"`
	LinkTo   string   `json:"linkTo,omitempty"`
	Details  *Details `json:"details,omitempty"`
}

// Details is a tagged union: exactly one variant is set, matching the
// item's category. This replaces the old look-up-a-string-field pattern.
type Details struct {
	Food       *FoodDetails       `json:"food,omitempty"`
	Skincare   *SkincareDetails   `json:"skincare,omitempty"`
	Supplement *SupplementDetails `json:"supplement,omitempty"`
	Makeup     *MakeupDetails     `json:"makeup,omitempty"`
	Lifestyle  *LifestyleDetails  `json:"lifestyle,omitempty"`
}

// FoodDetails describes a dietary suggestion.
type FoodDetails struct {
	Nutrients []string `json:"nutrients,omitempty"`
	Serving   string   `json:"serving,omitempty"`
}

// SkincareDetails describes a product or routine step.
type SkincareDetails struct {
	ProductID   string   `json:"productId,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	WhenToApply string   `json:"whenToApply,omitempty"`
}

// SupplementDetails describes dosage guidance.
type SupplementDetails struct {
	Dosage  string `json:"dosage,omitempty"`
	Timing  string `json:"timing,omitempty"`
	Caution string `json:"caution,omitempty"`
}

// MakeupDetails describes cosmetics guidance.
type MakeupDetails struct {
	Finish    string `json:"finish,omitempty"`
	RemovalBy string `json:"removalBy,omitempty"`
}

// LifestyleDetails describes a habit suggestion.
type LifestyleDetails struct {
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Section is one rendered block of the recommendations view.
type Section struct {
	Category Category `json:"category"`
	Items    []Item   `json:"items"`
}
