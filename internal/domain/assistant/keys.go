package assistant

import "fmt"

// Key naming for the personalized "for you" surface. Owned here so no
// caller spells a key by hand.

func userKey(userID int64, name string) string {
	return fmt.Sprintf("u:%d:%s", userID, name)
}

// MealPlanKey stores the current meal plan.
func MealPlanKey(userID int64) string {
	return userKey(userID, "fyp_meal_plan")
}

// GroceryListKey stores the grocery list derived from the meal plan.
func GroceryListKey(userID int64) string {
	return userKey(userID, "fyp_grocery_list")
}

// MealPreferencesKey stores dietary preferences used during generation.
func MealPreferencesKey(userID int64) string {
	return userKey(userID, "fyp_meal_preferences")
}

// PlanDataKey stores the raw model output for the current plan.
func PlanDataKey(userID int64) string {
	return userKey(userID, "meal_plan_data")
}

func guardName(userID int64, action string) string {
	return fmt.Sprintf("u:%d:inflight:%s", userID, action)
}
