package catalog

// Impact states whether a product is expected to help or harm skin.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// Product is an immutable catalog record. Products are seeded or synced
// from an external source and never deleted during a session.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Rating      float64  `json:"rating"`
	Impact      Impact   `json:"impact"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	Concerns    []string `json:"concerns,omitempty"`
}

// SortKey selects a product ordering.
type SortKey string

const (
	SortRatingHigh SortKey = "rating-high"
	SortRatingLow  SortKey = "rating-low"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
)
