package skinlog

import (
	"time"

	"github.com/google/uuid"
)

// FactorCategory identifies a logged influence on skin condition.
type FactorCategory string

const (
	FactorDiet    FactorCategory = "diet"
	FactorSleep   FactorCategory = "sleep"
	FactorWater   FactorCategory = "water"
	FactorStress  FactorCategory = "stress"
	FactorMakeup  FactorCategory = "makeup"
	FactorWeather FactorCategory = "weather"
	FactorCycle   FactorCategory = "cycle"
)

// Factor is a descriptive, unscored observation for a day.
type Factor struct {
	Category FactorCategory `json:"category"`
	Status   string         `json:"status"`
	IconName string         `json:"iconName,omitempty"`
	Details  string         `json:"details,omitempty"`
}

// SelfieSlot distinguishes morning and evening photo sets.
type SelfieSlot string

const (
	SelfieAM SelfieSlot = "am"
	SelfiePM SelfieSlot = "pm"
)

// DayLog is the full document a user edits for one date. Every field is
// persisted as its own date-scoped key and mutated by full overwrite.
type DayLog struct {
	Date        string                      `json:"date"`
	Notes       string                      `json:"notes,omitempty"`
	WaterIntake int                         `json:"waterIntake"`
	Mood        string                      `json:"mood,omitempty"`
	Sleep       string                      `json:"sleep,omitempty"`
	Stress      string                      `json:"stress,omitempty"`
	Factors     map[FactorCategory][]Factor `json:"factors,omitempty"`
	// Selfie entries may be null when a slot position was cleared.
	AMSelfies []*string `json:"amSelfies,omitempty"`
	PMSelfies []*string `json:"pmSelfies,omitempty"`
}

// Entry is the scored record persisted relationally: a parent skin log
// row plus a child daily-factors row referencing it by generated id.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	UserID       int64     `json:"userId"`
	Date         string    `json:"date"`
	OverallScore float64   `json:"overallScore"`
	Notes        string    `json:"notes,omitempty"`
	Factors      []Factor  `json:"factors"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DayScore is a single day's stored score, used by trend aggregation.
type DayScore struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// Horizon selects the trend window.
type Horizon string

const (
	HorizonDaily   Horizon = "daily"
	HorizonWeekly  Horizon = "weekly"
	HorizonMonthly Horizon = "monthly"
)

// TrendReport aggregates a period: the overall score, the previous
// period's score for delta computation, and ordered sub-scores.
type TrendReport struct {
	Horizon       Horizon    `json:"horizon"`
	OverallScore  float64    `json:"overallScore"`
	PreviousScore float64    `json:"previousScore"`
	Delta         float64    `json:"delta"`
	Label         string     `json:"label"`
	Scores        []DayScore `json:"scores"`
}
