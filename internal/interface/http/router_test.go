package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skintrack/skintrack/internal/domain/analysis"
	"github.com/skintrack/skintrack/internal/domain/assistant"
	"github.com/skintrack/skintrack/internal/domain/auth"
	"github.com/skintrack/skintrack/internal/domain/catalog"
	"github.com/skintrack/skintrack/internal/domain/recommend"
	"github.com/skintrack/skintrack/internal/domain/skinlog"
	"github.com/skintrack/skintrack/internal/infra/config"
	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

const testToken = "valid-token"

func TestRouter_Healthz(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/api/v1/healthz", "", "", newRouterUnderTest(t, &stubs{}))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_ListProducts(t *testing.T) {
	stubs := &stubs{
		catalog: stubCatalog{
			searchFn: func(_ context.Context, query string, sortKey catalog.SortKey) ([]catalog.Product, error) {
				require.Equal(t, "serum", query)
				require.Equal(t, catalog.SortRatingHigh, sortKey)
				return []catalog.Product{{ID: "p1", Name: "Niacinamide Serum"}}, nil
			},
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/products?query=serum&sort=rating-high", "", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	require.Equal(t, "p1", body.Products[0].ID)
}

func TestRouter_GetProductNotFound(t *testing.T) {
	stubs := &stubs{
		catalog: stubCatalog{
			getFn: func(_ context.Context, id string) (catalog.Product, error) {
				return catalog.Product{}, apperrors.Wrap("product_not_found", "no product with id "+id, nil)
			},
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/products/missing", "", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, "product_not_found", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_RecommendationsIsPublic(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/api/v1/recommendations", "", "", newRouterUnderTest(t, &stubs{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Sections []recommend.Section `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Sections)
	require.Equal(t, recommend.CategoryFood, body.Sections[0].Category)
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/api/v1/logs/2026-03-14", "", "", newRouterUnderTest(t, &stubs{}))
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_GetDayLog(t *testing.T) {
	stubs := &stubs{
		skinlog: stubSkinlog{
			getDayLogFn: func(_ context.Context, userID int64, date string) (skinlog.DayLog, error) {
				require.Equal(t, int64(1), userID)
				require.Equal(t, "2026-03-14", date)
				return skinlog.DayLog{Date: date, Notes: "calm day", WaterIntake: 6}, nil
			},
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/logs/2026-03-14", "", testToken, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)

	var log skinlog.DayLog
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &log))
	require.Equal(t, "calm day", log.Notes)
}

func TestRouter_CreateEntryReturnsCreated(t *testing.T) {
	stubs := &stubs{
		skinlog: stubSkinlog{
			createEntryFn: func(_ context.Context, _ int64, date string, score float64, notes string, _ []skinlog.Factor) (skinlog.Entry, error) {
				require.Equal(t, 72.0, score)
				return skinlog.Entry{Date: date, OverallScore: score, Notes: notes}, nil
			},
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/logs/2026-03-14/entries",
		`{"overallScore":72,"notes":"after new routine"}`, testToken, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRouter_MealPlanConflict(t *testing.T) {
	stubs := &stubs{
		assistant: stubAssistant{
			mealPlanFn: func(_ context.Context, _ int64) (assistant.MealPlan, error) {
				return assistant.MealPlan{}, apperrors.Wrap("generation_in_progress", "a meal plan is already being generated", nil)
			},
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/assistant/meal-plan", "", testToken, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusConflict, recorder.Code)
	require.Equal(t, "generation_in_progress", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_AnalyzeEmptyResultIsBadGateway(t *testing.T) {
	stubs := &stubs{
		analysis: stubAnalysis{
			analyzeFn: func(_ context.Context, _ int64, _ analysis.Request) (analysis.Response, error) {
				return analysis.Response{}, apperrors.Wrap("empty_result", "the analysis returned no result", nil)
			},
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/analysis",
		`{"image":"data:image/jpeg;base64,AAAA"}`, testToken, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusBadGateway, recorder.Code)
	require.Equal(t, "empty_result", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_SaveSelfiesKeepsNullEntries(t *testing.T) {
	stubs := &stubs{
		skinlog: stubSkinlog{
			saveSelfiesFn: func(_ context.Context, _ int64, date string, slot skinlog.SelfieSlot, urls []*string) error {
				require.Equal(t, skinlog.SelfiePM, slot)
				require.Len(t, urls, 2)
				require.Nil(t, urls[0])
				require.Equal(t, "selfies/pm-1.jpg", *urls[1])
				return nil
			},
		},
	}

	recorder := performRequest(http.MethodPut, "/api/v1/logs/2026-03-14/selfies/pm",
		`{"selfies":[null,"selfies/pm-1.jpg"]}`, testToken, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func performRequest(method, path, body, token string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, s *stubs) *http.Server {
	t.Helper()
	handler := NewHandler(&s.catalog, &s.skinlog, &s.assistant, &s.analysis, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, stubAuth{})
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubs struct {
	catalog   stubCatalog
	skinlog   stubSkinlog
	assistant stubAssistant
	analysis  stubAnalysis
}

type stubAuth struct{}

func (stubAuth) ValidateToken(_ context.Context, token string) (auth.Claims, error) {
	if token != testToken {
		return auth.Claims{}, apperrors.Wrap("invalid_token", "token validation failed", nil)
	}
	return auth.Claims{UserID: 1, Subject: "sub-1"}, nil
}

func (stubAuth) Profile(_ context.Context, _ int64) (auth.User, error) {
	return auth.User{ID: 1}, nil
}

type stubCatalog struct {
	searchFn func(ctx context.Context, query string, sortKey catalog.SortKey) ([]catalog.Product, error)
	getFn    func(ctx context.Context, id string) (catalog.Product, error)
}

func (s *stubCatalog) Search(ctx context.Context, query string, sortKey catalog.SortKey) ([]catalog.Product, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query, sortKey)
	}
	return nil, nil
}

func (s *stubCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return catalog.Product{ID: id}, nil
}

type stubSkinlog struct {
	getDayLogFn   func(ctx context.Context, userID int64, date string) (skinlog.DayLog, error)
	saveDayLogFn  func(ctx context.Context, userID int64, log skinlog.DayLog) error
	saveSelfiesFn func(ctx context.Context, userID int64, date string, slot skinlog.SelfieSlot, urls []*string) error
	createEntryFn func(ctx context.Context, userID int64, date string, score float64, notes string, factors []skinlog.Factor) (skinlog.Entry, error)
	trendFn       func(ctx context.Context, userID int64, horizon skinlog.Horizon) (skinlog.TrendReport, error)
}

func (s *stubSkinlog) GetDayLog(ctx context.Context, userID int64, date string) (skinlog.DayLog, error) {
	if s.getDayLogFn != nil {
		return s.getDayLogFn(ctx, userID, date)
	}
	return skinlog.DayLog{Date: date}, nil
}

func (s *stubSkinlog) SaveDayLog(ctx context.Context, userID int64, log skinlog.DayLog) error {
	if s.saveDayLogFn != nil {
		return s.saveDayLogFn(ctx, userID, log)
	}
	return nil
}

func (s *stubSkinlog) SaveSelfies(ctx context.Context, userID int64, date string, slot skinlog.SelfieSlot, urls []*string) error {
	if s.saveSelfiesFn != nil {
		return s.saveSelfiesFn(ctx, userID, date, slot, urls)
	}
	return nil
}

func (s *stubSkinlog) CreateEntry(ctx context.Context, userID int64, date string, score float64, notes string, factors []skinlog.Factor) (skinlog.Entry, error) {
	if s.createEntryFn != nil {
		return s.createEntryFn(ctx, userID, date, score, notes, factors)
	}
	return skinlog.Entry{}, nil
}

func (s *stubSkinlog) Trend(ctx context.Context, userID int64, horizon skinlog.Horizon) (skinlog.TrendReport, error) {
	if s.trendFn != nil {
		return s.trendFn(ctx, userID, horizon)
	}
	return skinlog.TrendReport{Horizon: horizon}, nil
}

type stubAssistant struct {
	chatFn        func(ctx context.Context, userID int64, req assistant.ChatRequest) (assistant.ChatResponse, error)
	trendingFn    func(ctx context.Context) ([]assistant.TrendingQuery, error)
	mealPlanFn    func(ctx context.Context, userID int64) (assistant.MealPlan, error)
	groceryFn     func(ctx context.Context, userID int64) (assistant.GroceryList, error)
	recipesFn     func(ctx context.Context, userID int64) (assistant.RecipeIdeas, error)
	preferencesFn func(ctx context.Context, userID int64, prefs assistant.MealPreferences) error
}

func (s *stubAssistant) Chat(ctx context.Context, userID int64, req assistant.ChatRequest) (assistant.ChatResponse, error) {
	if s.chatFn != nil {
		return s.chatFn(ctx, userID, req)
	}
	return assistant.ChatResponse{}, nil
}

func (s *stubAssistant) Trending(ctx context.Context) ([]assistant.TrendingQuery, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx)
	}
	return nil, nil
}

func (s *stubAssistant) GenerateMealPlan(ctx context.Context, userID int64) (assistant.MealPlan, error) {
	if s.mealPlanFn != nil {
		return s.mealPlanFn(ctx, userID)
	}
	return assistant.MealPlan{}, nil
}

func (s *stubAssistant) GenerateGroceryList(ctx context.Context, userID int64) (assistant.GroceryList, error) {
	if s.groceryFn != nil {
		return s.groceryFn(ctx, userID)
	}
	return assistant.GroceryList{}, nil
}

func (s *stubAssistant) GenerateRecipeIdeas(ctx context.Context, userID int64) (assistant.RecipeIdeas, error) {
	if s.recipesFn != nil {
		return s.recipesFn(ctx, userID)
	}
	return assistant.RecipeIdeas{}, nil
}

func (s *stubAssistant) SavePreferences(ctx context.Context, userID int64, prefs assistant.MealPreferences) error {
	if s.preferencesFn != nil {
		return s.preferencesFn(ctx, userID, prefs)
	}
	return nil
}

type stubAnalysis struct {
	analyzeFn func(ctx context.Context, userID int64, req analysis.Request) (analysis.Response, error)
}

func (s *stubAnalysis) Analyze(ctx context.Context, userID int64, req analysis.Request) (analysis.Response, error) {
	if s.analyzeFn != nil {
		return s.analyzeFn(ctx, userID, req)
	}
	return analysis.Response{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
