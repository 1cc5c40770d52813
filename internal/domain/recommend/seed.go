package recommend

// DefaultItems returns the curated recommendation set served until a
// personalized analysis replaces it.
func DefaultItems() []Item {
	return []Item{
		{
			Category: CategoryFood,
			Text:     "Add a serving of fatty fish twice a week",
			IconName: "fish",
			Details: &Details{Food: &FoodDetails{
				Nutrients: []string{"omega-3", "vitamin D"},
				Serving:   "100-150g",
			}},
		},
		{
			Category: CategoryFood,
			Text:     "Snack on a handful of walnuts instead of chips",
			IconName: "nut",
			Details: &Details{Food: &FoodDetails{
				Nutrients: []string{"omega-3", "zinc"},
			}},
		},
		{
			Category: CategoryDrink,
			Text:     "Aim for 8 glasses of water spread through the day",
			IconName: "droplet",
		},
		{
			Category: CategoryDrink,
			Text:     "Swap the afternoon soda for green tea",
			IconName: "cup",
		},
		{
			Category: CategorySupplements,
			Text:     "Consider a zinc supplement with dinner",
			IconName: "pill",
			Details: &Details{Supplement: &SupplementDetails{
				Dosage:  "15mg",
				Timing:  "with food",
				Caution: "skip if your multivitamin already covers zinc",
			}},
		},
		{
			Category: CategoryMakeup,
			Text:     "Remove makeup fully before sleep",
			IconName: "sparkles",
			Details: &Details{Makeup: &MakeupDetails{
				RemovalBy: "oil cleanser, then a gentle foam",
			}},
		},
		{
			Category: CategoryLifestyle,
			Text:     "Keep a consistent sleep schedule, even on weekends",
			IconName: "moon",
			Details: &Details{Lifestyle: &LifestyleDetails{
				Frequency: "daily",
				Duration:  "7-9 hours",
			}},
		},
		{
			Category: CategorySkincare,
			Text:     "Apply broad-spectrum SPF 30+ every morning",
			IconName: "sun",
			LinkTo:   "/products",
			Details: &Details{Skincare: &SkincareDetails{
				WhenToApply: "last step of the morning routine",
			}},
		},
	}
}
