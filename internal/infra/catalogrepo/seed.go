package catalogrepo

import "github.com/skintrack/skintrack/internal/domain/catalog"

// SeedProducts is the sample catalog used when no database is configured.
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "niacinamide-serum", Name: "Niacinamide Serum", Brand: "The Ordinary",
			Rating: 88, Impact: catalog.ImpactPositive,
			Description: "10% niacinamide serum that evens tone and reduces blemishes",
			Benefits:    []string{"brightening", "pore refinement"},
		},
		{
			ID: "ceramide-cream", Name: "Ceramide Moisturizing Cream", Brand: "CeraVe",
			Rating: 84, Impact: catalog.ImpactPositive,
			Description: "Barrier repair moisturizer with three essential ceramides",
			Benefits:    []string{"hydration", "barrier support"},
		},
		{
			ID: "azelaic-acid", Name: "Azelaic Acid Booster", Brand: "Paula's Choice",
			Rating: 82, Impact: catalog.ImpactPositive,
			Description: "10% azelaic acid for redness and post-blemish marks",
			Benefits:    []string{"redness relief"},
			Concerns:    []string{"mild tingling on sensitive skin"},
		},
		{
			ID: "mineral-sunscreen", Name: "Mineral Sunscreen SPF 50", Brand: "EltaMD",
			Rating: 90, Impact: catalog.ImpactPositive,
			Description: "Zinc oxide broad spectrum sunscreen for sensitive skin",
			Benefits:    []string{"UV protection"},
		},
		{
			ID: "fragrance-toner", Name: "Fragranced Alcohol Toner", Brand: "Generic Beauty",
			Rating: 28, Impact: catalog.ImpactNegative,
			Description: "Astringent toner with denatured alcohol and added fragrance",
			Concerns:    []string{"drying", "fragrance irritation"},
		},
		{
			ID: "micellar-water", Name: "Micellar Cleansing Water", Brand: "Bioderma",
			Rating: 64, Impact: catalog.ImpactNeutral,
			Description: "Gentle no-rinse cleanser for makeup removal",
		},
	}
}
