package skinlog

import "fmt"

// All date-scoped key names live here so callers cannot drift. Keys are
// user-prefixed because the store is shared across accounts.

func userKey(userID int64, name string) string {
	return fmt.Sprintf("u:%d:%s", userID, name)
}

// NotesKey stores free-form notes for a date.
func NotesKey(userID int64, date string) string {
	return userKey(userID, "skin-notes-"+date)
}

// WaterKey stores the day's water intake.
func WaterKey(userID int64, date string) string {
	return userKey(userID, "water-intake-"+date)
}

// MoodKey stores the day's mood.
func MoodKey(userID int64, date string) string {
	return userKey(userID, "skin-mood-"+date)
}

// SleepKey stores the day's sleep summary.
func SleepKey(userID int64, date string) string {
	return userKey(userID, "skin-sleep-"+date)
}

// StressKey stores the day's stress level.
func StressKey(userID int64, date string) string {
	return userKey(userID, "skin-stress-"+date)
}

// FactorKey stores the per-category factor list for a date.
func FactorKey(userID int64, category FactorCategory, date string) string {
	return userKey(userID, fmt.Sprintf("skin-%s-%s", category, date))
}

// SelfieKey stores the AM or PM selfie list for a date.
func SelfieKey(userID int64, slot SelfieSlot, date string) string {
	return userKey(userID, fmt.Sprintf("%s-selfies-%s", slot, date))
}

// PlanKey stores the personalized plan generated for a date.
func PlanKey(userID int64, date string) string {
	return userKey(userID, "personalized-plan-"+date)
}
