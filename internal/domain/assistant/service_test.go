package assistant_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skintrack/skintrack/internal/domain/assistant"
	"github.com/skintrack/skintrack/internal/infra/assistantrepo"
	"github.com/skintrack/skintrack/internal/infra/assistantstore"
	"github.com/skintrack/skintrack/internal/infra/kvstore"
	"github.com/skintrack/skintrack/internal/infra/llm/chatgpt"
	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

type stubChatClient struct {
	answers    []string
	embeddings [][]float32
	chatCalls  int
	embedCalls int
	err        error
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, _ chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	var resp chatgpt.ChatCompletionResponse
	if s.chatCalls < len(s.answers) {
		resp.Choices = []struct {
			Message chatgpt.Message `json:"message"`
		}{
			{Message: chatgpt.Message{Role: "assistant", Content: s.answers[s.chatCalls]}},
		}
		resp.Usage = chatgpt.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	}
	s.chatCalls++
	return resp, nil
}

func (s *stubChatClient) CreateEmbedding(_ context.Context, _ chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error) {
	var resp chatgpt.EmbeddingResponse
	vector := []float32{1, 0, 0}
	if s.embedCalls < len(s.embeddings) {
		vector = s.embeddings[s.embedCalls]
	}
	s.embedCalls++
	resp.Data = []struct {
		Embedding []float32 `json:"embedding"`
	}{
		{Embedding: vector},
	}
	return resp, nil
}

func newServiceUnderTest(client *stubChatClient) *assistant.ServiceForTest {
	return assistant.NewServiceForTest(
		assistant.Config{
			Model:               "gpt-test",
			EmbeddingModel:      "embed-test",
			Prompt:              "You are a skin assistant",
			CacheTTL:            time.Hour,
			TopRecommendations:  5,
			SimilarityThreshold: 0.3,
			HistoryTokenBudget:  200,
			GenerationGuardTTL:  time.Minute,
		},
		assistantrepo.NewMemoryRepository(),
		assistantstore.NewMemoryStore(),
		kvstore.NewMemoryStore(),
		client,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) },
	)
}

func TestChatEmptyMessage(t *testing.T) {
	svc := newServiceUnderTest(&stubChatClient{})
	_, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "  "})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestChatCachesStandaloneQuestions(t *testing.T) {
	client := &stubChatClient{answers: []string{"Drink more water."}}
	svc := newServiceUnderTest(client)

	first, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "How to reduce dryness?"})
	require.NoError(t, err)
	require.Equal(t, "llm", first.Source)
	require.Equal(t, "Drink more water.", first.Answer)
	require.NotNil(t, first.TokenUsage)

	second, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "How to reduce dryness?"})
	require.NoError(t, err)
	require.Equal(t, "cache", second.Source)
	require.Equal(t, "Drink more water.", second.Answer)
	require.Equal(t, 1, client.chatCalls)
}

func TestChatSimilarQuestionHitsCache(t *testing.T) {
	client := &stubChatClient{
		answers:    []string{"Use SPF daily."},
		embeddings: [][]float32{{1, 0, 0}, {0.99, 0.05, 0}},
	}
	svc := newServiceUnderTest(client)

	_, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "Should I wear sunscreen?"})
	require.NoError(t, err)

	resp, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "Do I need to wear sunscreen?"})
	require.NoError(t, err)
	require.Equal(t, "cache", resp.Source)
	require.Equal(t, "Should I wear sunscreen?", resp.MatchedQuestion)
	require.Equal(t, 1, client.chatCalls)
}

func TestChatWithHistorySkipsCache(t *testing.T) {
	client := &stubChatClient{answers: []string{"First answer.", "Follow-up answer."}}
	svc := newServiceUnderTest(client)

	_, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "What causes breakouts?"})
	require.NoError(t, err)

	resp, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{
		Message: "What causes breakouts?",
		History: []assistant.ChatMessage{{Role: "user", Content: "context"}},
	})
	require.NoError(t, err)
	require.Equal(t, "llm", resp.Source)
	require.Equal(t, 2, client.chatCalls)
}

func TestChatEmptyCompletionIsDistinctError(t *testing.T) {
	svc := newServiceUnderTest(&stubChatClient{})
	_, err := svc.Chat(context.Background(), 1, assistant.ChatRequest{Message: "hello"})
	require.True(t, apperrors.IsCode(err, "empty_result"))
}

func TestTrendingCountsQueries(t *testing.T) {
	client := &stubChatClient{answers: []string{"a", "b"}}
	svc := newServiceUnderTest(client)
	ctx := context.Background()

	_, err := svc.Chat(ctx, 1, assistant.ChatRequest{Message: "What helps redness?"})
	require.NoError(t, err)
	_, err = svc.Chat(ctx, 1, assistant.ChatRequest{Message: "what helps redness??"})
	require.NoError(t, err)

	trending, err := svc.Trending(ctx)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	require.Equal(t, int64(2), trending[0].Count)
}

func TestGenerateMealPlanClearsGroceryList(t *testing.T) {
	planJSON := `{"days":[{"day":"Monday","meals":[{"name":"Salmon bowl","skinBenefit":"omega-3"}]}]}`
	client := &stubChatClient{answers: []string{planJSON}}
	svc := newServiceUnderTest(client)
	ctx := context.Background()

	require.NoError(t, svc.PlansStore().Set(ctx, assistant.GroceryListKey(1), []byte(`{"sections":[]}`), 0))

	plan, err := svc.GenerateMealPlan(ctx, 1)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	require.Equal(t, "Salmon bowl", plan.Days[0].Meals[0].Name)

	_, ok, err := svc.PlansStore().Get(ctx, assistant.GroceryListKey(1))
	require.NoError(t, err)
	require.False(t, ok, "stale grocery list must be cleared")

	_, ok, err = svc.PlansStore().Get(ctx, assistant.PlanDataKey(1))
	require.NoError(t, err)
	require.True(t, ok, "raw plan payload must be stored")
}

func TestGenerateGroceryListRequiresPlan(t *testing.T) {
	svc := newServiceUnderTest(&stubChatClient{})
	_, err := svc.GenerateGroceryList(context.Background(), 1)
	require.True(t, apperrors.IsCode(err, "plan_missing"))
}

func TestGenerateGroceryListFromPlan(t *testing.T) {
	planJSON := `{"days":[{"day":"Monday","meals":[{"name":"Salmon bowl"}]}]}`
	listJSON := "```json\n" + `{"sections":[{"name":"Fish","items":["salmon"]}]}` + "\n```"
	client := &stubChatClient{answers: []string{planJSON, listJSON}}
	svc := newServiceUnderTest(client)
	ctx := context.Background()

	_, err := svc.GenerateMealPlan(ctx, 1)
	require.NoError(t, err)

	list, err := svc.GenerateGroceryList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Sections, 1)
	require.Equal(t, []string{"salmon"}, list.Sections[0].Items)
}

func TestGenerationGuardRejectsDuplicates(t *testing.T) {
	svc := newServiceUnderTest(&stubChatClient{answers: []string{`{"days":[]}`}})
	ctx := context.Background()

	ok, err := svc.GuardStore().TryAcquire(ctx, assistant.GuardName(1, "meal-plan"), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.GenerateMealPlan(ctx, 1)
	require.True(t, apperrors.IsCode(err, "generation_in_progress"))
}

func TestSaveAndUsePreferences(t *testing.T) {
	planJSON := `{"days":[]}`
	client := &stubChatClient{answers: []string{planJSON}}
	svc := newServiceUnderTest(client)
	ctx := context.Background()

	require.NoError(t, svc.SavePreferences(ctx, 1, assistant.MealPreferences{Dietary: []string{"vegan"}}))
	prefs := svc.LoadPreferencesForTest(ctx, 1)
	require.Equal(t, []string{"vegan"}, prefs.Dietary)
}
