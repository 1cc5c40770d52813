package assistant

import (
	"time"

	"github.com/skintrack/skintrack/pkg/metrics"
)

// ChatMessage is one turn of the conversation sent by the client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries the user's message plus prior turns. History is
// kept client-side; the service only trims it to the token budget.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatResponse is returned to the HTTP transport.
type ChatResponse struct {
	Message         string              `json:"message"`
	Answer          string              `json:"answer"`
	Source          string              `json:"source"`
	MatchedQuestion string              `json:"matchedQuestion"`
	Recommendations []TrendingQuery     `json:"recommendations,omitempty"`
	TokenUsage      *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// QuestionRecord represents a stored question row.
type QuestionRecord struct {
	ID           int64
	QuestionText string
}

// AnswerRecord captures the payload persisted in the KV cache.
type AnswerRecord struct {
	QuestionID int64     `json:"questionId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MealPlan is the personalized plan generated for a user.
type MealPlan struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Days        []MealPlanDay `json:"days"`
}

// MealPlanDay groups the meals suggested for one day.
type MealPlanDay struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// Meal is a single suggested meal.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SkinBenefit string `json:"skinBenefit,omitempty"`
}

// GroceryList is derived from the current meal plan.
type GroceryList struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Sections    []GrocerySection `json:"sections"`
}

// GrocerySection groups items by aisle.
type GrocerySection struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// RecipeIdeas bundles generated recipe suggestions.
type RecipeIdeas struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Recipes     []Recipe  `json:"recipes"`
}

// Recipe is a single suggestion.
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients,omitempty"`
	SkinBenefit string   `json:"skinBenefit,omitempty"`
}

// MealPreferences constrain plan generation.
type MealPreferences struct {
	Dietary   []string `json:"dietary,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	Dislikes  []string `json:"dislikes,omitempty"`
	SkinGoals []string `json:"skinGoals,omitempty"`
}
