package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skintrack/skintrack/internal/infra/kvstore"
	"github.com/skintrack/skintrack/internal/infra/llm/chatgpt"
	apperrors "github.com/skintrack/skintrack/pkg/errors"
	"github.com/skintrack/skintrack/pkg/metrics"
	"github.com/skintrack/skintrack/pkg/util"
)

// Service exposes the AI assistant capabilities.
type Service interface {
	Chat(ctx context.Context, userID int64, req ChatRequest) (ChatResponse, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
	GenerateMealPlan(ctx context.Context, userID int64) (MealPlan, error)
	GenerateGroceryList(ctx context.Context, userID int64) (GroceryList, error)
	GenerateRecipeIdeas(ctx context.Context, userID int64) (RecipeIdeas, error)
	SavePreferences(ctx context.Context, userID int64, prefs MealPreferences) error
}

// ChatClient is the LLM surface the assistant needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
	CreateEmbedding(ctx context.Context, req chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error)
}

type service struct {
	cfg     Config
	repo    QuestionRepository
	store   Store
	plans   kvstore.Store
	client  ChatClient
	logger  *slog.Logger
	counter *tokenCounter
	now     func() time.Time
}

// NewService wires up the assistant domain.
func NewService(cfg Config, repo QuestionRepository, store Store, plans kvstore.Store, client ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		repo:    repo,
		store:   store,
		plans:   plans,
		client:  client,
		logger:  logger.With("component", "assistant.service"),
		counter: newTokenCounter(cfg.Model),
		now:     util.NowUTC,
	}
}

func (s *service) Chat(ctx context.Context, userID int64, req ChatRequest) (ChatResponse, error) {
	question := strings.TrimSpace(req.Message)
	if question == "" {
		return ChatResponse{}, apperrors.Wrap("invalid_input", "message cannot be empty", nil)
	}

	// Follow-up turns carry context the cache cannot account for; only
	// standalone questions go through the semantic cache.
	var embedding []float32
	if len(req.History) == 0 {
		resp, vector, ok, err := s.answerFromCache(ctx, question)
		if err != nil {
			return ChatResponse{}, err
		}
		if ok {
			s.recordQuery(ctx, question)
			resp.Recommendations = s.recommendations(ctx)
			return resp, nil
		}
		embedding = vector
	}

	answer, usage, err := s.askLLM(ctx, question, req.History)
	if err != nil {
		return ChatResponse{}, err
	}

	if len(req.History) == 0 {
		s.cacheAnswer(ctx, question, answer, embedding)
	}
	s.recordQuery(ctx, question)

	return ChatResponse{
		Message:         question,
		Answer:          answer,
		Source:          "llm",
		MatchedQuestion: question,
		Recommendations: s.recommendations(ctx),
		TokenUsage:      usage,
	}, nil
}

// answerFromCache resolves a question through exact match first, then
// vector similarity. The computed embedding is returned so a subsequent
// insert does not have to embed the same text again.
func (s *service) answerFromCache(ctx context.Context, question string) (ChatResponse, []float32, bool, error) {
	var embedding []float32
	record, found, err := s.repo.FindExact(ctx, question)
	if err != nil {
		return ChatResponse{}, nil, false, apperrors.Wrap("assistant_error", "exact lookup failed", err)
	}
	if !found {
		embedding, err = s.embed(ctx, question)
		if err != nil {
			return ChatResponse{}, nil, false, err
		}
		match, ok, err := s.repo.FindNearest(ctx, embedding)
		if err != nil {
			return ChatResponse{}, nil, false, apperrors.Wrap("assistant_error", "similarity lookup failed", err)
		}
		if ok && match.Distance <= s.cfg.SimilarityThreshold {
			record = match.Question
			found = true
		}
	}
	if !found {
		return ChatResponse{}, embedding, false, nil
	}

	cached, ok, err := s.store.GetAnswer(ctx, record.ID)
	if err != nil {
		return ChatResponse{}, embedding, false, apperrors.Wrap("assistant_error", "cache lookup failed", err)
	}
	if !ok {
		return ChatResponse{}, embedding, false, nil
	}
	return ChatResponse{
		Message:         question,
		Answer:          cached.Answer,
		Source:          "cache",
		MatchedQuestion: record.QuestionText,
	}, embedding, true, nil
}

func (s *service) cacheAnswer(ctx context.Context, question, answer string, embedding []float32) {
	if len(embedding) == 0 {
		var err error
		embedding, err = s.embed(ctx, question)
		if err != nil {
			s.logger.Warn("embedding failed, skipping answer cache", "error", err)
			return
		}
	}
	record, err := s.repo.InsertQuestion(ctx, question, embedding)
	if err != nil {
		s.logger.Warn("question insert failed, skipping answer cache", "error", err)
		return
	}
	saved := AnswerRecord{
		QuestionID: record.ID,
		Question:   question,
		Answer:     answer,
		CreatedAt:  s.now(),
	}
	if err := s.store.SaveAnswer(ctx, saved, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("answer cache save failed", "error", err)
	}
}

func (s *service) recordQuery(ctx context.Context, question string) {
	if err := s.store.IncrementQuery(ctx, normalizeQuestion(question), question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
}

func (s *service) recommendations(ctx context.Context) []TrendingQuery {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
		return nil
	}
	return recs
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap("assistant_error", "failed to load trending queries", err)
	}
	return recs, nil
}

func (s *service) GenerateMealPlan(ctx context.Context, userID int64) (MealPlan, error) {
	release, err := s.acquireGuard(ctx, userID, "meal-plan")
	if err != nil {
		return MealPlan{}, err
	}
	defer release()

	prefs := s.loadPreferences(ctx, userID)
	prompt := "Create a 7 day skin-friendly meal plan." + preferencesClause(prefs) +
		` Respond strictly as JSON: {"days":[{"day":"Monday","meals":[{"name":"...","description":"...","skinBenefit":"..."}]}]}.`

	var plan MealPlan
	raw, err := s.generateJSON(ctx, prompt, &plan)
	if err != nil {
		return MealPlan{}, err
	}
	plan.GeneratedAt = s.now()

	encoded, err := json.Marshal(plan)
	if err != nil {
		return MealPlan{}, apperrors.Wrap("assistant_error", "failed to encode meal plan", err)
	}
	// A new plan invalidates the grocery list derived from the old one;
	// both keys change in one batch.
	err = s.plans.Replace(ctx, map[string]kvstore.Entry{
		MealPlanKey(userID): {Value: encoded},
		PlanDataKey(userID): {Value: []byte(raw)},
	}, []string{GroceryListKey(userID)})
	if err != nil {
		return MealPlan{}, apperrors.Wrap("assistant_error", "failed to save meal plan", err)
	}
	return plan, nil
}

func (s *service) GenerateGroceryList(ctx context.Context, userID int64) (GroceryList, error) {
	release, err := s.acquireGuard(ctx, userID, "grocery-list")
	if err != nil {
		return GroceryList{}, err
	}
	defer release()

	plan, ok, err := kvstore.GetJSON[MealPlan](ctx, s.plans, MealPlanKey(userID))
	if err != nil {
		s.logger.Warn("dropping corrupted meal plan key", "error", err)
		_ = s.plans.Remove(ctx, MealPlanKey(userID))
		ok = false
	}
	if !ok {
		return GroceryList{}, apperrors.Wrap("plan_missing", "generate a meal plan first", nil)
	}

	encodedPlan, err := json.Marshal(plan.Days)
	if err != nil {
		return GroceryList{}, apperrors.Wrap("assistant_error", "failed to encode meal plan", err)
	}
	prompt := "Build a grocery list covering this meal plan: " + string(encodedPlan) +
		` Respond strictly as JSON: {"sections":[{"name":"Produce","items":["..."]}]}.`

	var list GroceryList
	if _, err := s.generateJSON(ctx, prompt, &list); err != nil {
		return GroceryList{}, err
	}
	list.GeneratedAt = s.now()
	if err := kvstore.SetJSON(ctx, s.plans, GroceryListKey(userID), list, 0); err != nil {
		return GroceryList{}, apperrors.Wrap("assistant_error", "failed to save grocery list", err)
	}
	return list, nil
}

func (s *service) GenerateRecipeIdeas(ctx context.Context, userID int64) (RecipeIdeas, error) {
	release, err := s.acquireGuard(ctx, userID, "recipes")
	if err != nil {
		return RecipeIdeas{}, err
	}
	defer release()

	prefs := s.loadPreferences(ctx, userID)
	prompt := "Suggest 5 skin-supporting recipe ideas." + preferencesClause(prefs) +
		` Respond strictly as JSON: {"recipes":[{"name":"...","ingredients":["..."],"skinBenefit":"..."}]}.`

	var ideas RecipeIdeas
	if _, err := s.generateJSON(ctx, prompt, &ideas); err != nil {
		return RecipeIdeas{}, err
	}
	ideas.GeneratedAt = s.now()
	return ideas, nil
}

func (s *service) SavePreferences(ctx context.Context, userID int64, prefs MealPreferences) error {
	if err := kvstore.SetJSON(ctx, s.plans, MealPreferencesKey(userID), prefs, 0); err != nil {
		return apperrors.Wrap("assistant_error", "failed to save preferences", err)
	}
	return nil
}

// acquireGuard rejects duplicate long-running generations for the same
// user instead of letting a superseded result race the newer one.
func (s *service) acquireGuard(ctx context.Context, userID int64, action string) (func(), error) {
	name := guardName(userID, action)
	ok, err := s.store.TryAcquire(ctx, name, s.cfg.GenerationGuardTTL)
	if err != nil {
		return nil, apperrors.Wrap("assistant_error", "failed to acquire guard", err)
	}
	if !ok {
		return nil, apperrors.Wrap("generation_in_progress", "a generation is already running", nil)
	}
	return func() {
		if err := s.store.Release(context.WithoutCancel(ctx), name); err != nil {
			s.logger.Warn("guard release failed", "name", name, "error", err)
		}
	}, nil
}

func (s *service) loadPreferences(ctx context.Context, userID int64) MealPreferences {
	prefs, ok, err := kvstore.GetJSON[MealPreferences](ctx, s.plans, MealPreferencesKey(userID))
	if err != nil {
		s.logger.Warn("dropping corrupted preferences key", "error", err)
		_ = s.plans.Remove(ctx, MealPreferencesKey(userID))
		return MealPreferences{}
	}
	if !ok {
		return MealPreferences{}
	}
	return prefs
}

func preferencesClause(prefs MealPreferences) string {
	var parts []string
	if len(prefs.Dietary) > 0 {
		parts = append(parts, "dietary: "+strings.Join(prefs.Dietary, ", "))
	}
	if len(prefs.Allergies) > 0 {
		parts = append(parts, "allergies: "+strings.Join(prefs.Allergies, ", "))
	}
	if len(prefs.Dislikes) > 0 {
		parts = append(parts, "avoid: "+strings.Join(prefs.Dislikes, ", "))
	}
	if len(prefs.SkinGoals) > 0 {
		parts = append(parts, "skin goals: "+strings.Join(prefs.SkinGoals, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return " Constraints - " + strings.Join(parts, "; ") + "."
}

// generateJSON asks the model for a JSON payload and decodes it into out,
// returning the raw (fence-stripped) text as well.
func (s *service) generateJSON(ctx context.Context, prompt string, out any) (string, error) {
	answer, _, err := s.askLLM(ctx, prompt, nil)
	if err != nil {
		return "", err
	}
	raw := stripJSONFences(answer)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return "", apperrors.Wrap("llm_error", "model returned malformed JSON", err)
	}
	return raw, nil
}

func (s *service) askLLM(ctx context.Context, message string, history []ChatMessage) (string, *metrics.TokenUsage, error) {
	prompt := strings.TrimSpace(s.cfg.Prompt)
	if prompt == "" {
		prompt = "You are a supportive skin-health assistant. Be concise and practical."
	}
	messages := []chatgpt.Message{{Role: "system", Content: prompt}}
	for _, turn := range s.counter.trimHistory(history, s.cfg.HistoryTokenBudget) {
		messages = append(messages, chatgpt.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatgpt.Message{Role: "user", Content: message})

	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", nil, apperrors.Wrap("llm_error", "chat request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil, apperrors.Wrap("empty_result", "the model returned no answer, it may have refused the request", errors.New("empty choices"))
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", nil, apperrors.Wrap("empty_result", "the model returned no answer, it may have refused the request", nil)
	}
	var usage *metrics.TokenUsage
	if resp.Usage.TotalTokens > 0 {
		usage = &metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return answer, usage, nil
}

func (s *service) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := s.client.CreateEmbedding(ctx, chatgpt.EmbeddingRequest{
		Model: s.cfg.EmbeddingModel,
		Input: text,
	})
	if err != nil {
		return nil, apperrors.Wrap("llm_error", "embedding request failed", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, apperrors.Wrap("llm_error", "embedding response empty", fmt.Errorf("no data"))
	}
	vector := make([]float32, len(resp.Data[0].Embedding))
	copy(vector, resp.Data[0].Embedding)
	return vector, nil
}
