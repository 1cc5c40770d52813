package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skintrack/skintrack/internal/domain/analysis"
	"github.com/skintrack/skintrack/internal/domain/assistant"
	"github.com/skintrack/skintrack/internal/domain/catalog"
	"github.com/skintrack/skintrack/internal/domain/recommend"
	"github.com/skintrack/skintrack/internal/domain/skinlog"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	catalogSvc   catalog.Service
	skinlogSvc   skinlog.Service
	assistantSvc assistant.Service
	analysisSvc  analysis.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(catalogSvc catalog.Service, skinlogSvc skinlog.Service, assistantSvc assistant.Service, analysisSvc analysis.Service, logger *slog.Logger) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		skinlogSvc:   skinlogSvc,
		assistantSvc: assistantSvc,
		analysisSvc:  analysisSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListProducts returns the catalog filtered and sorted per query params.
func (h *Handler) ListProducts(c *gin.Context) {
	query := c.Query("query")
	sortKey := catalog.SortKey(c.Query("sort"))

	products, err := h.catalogSvc.Search(c.Request.Context(), query, sortKey)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns one product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Recommendations returns the curated recommendation set grouped into
// ordered category sections.
func (h *Handler) Recommendations(c *gin.Context) {
	sections := recommend.GroupSections(recommend.DefaultItems())
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetDayLog returns the full day log document for a date.
func (h *Handler) GetDayLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	log, err := h.skinlogSvc.GetDayLog(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// SaveDayLog overwrites the day log document for a date.
func (h *Handler) SaveDayLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var log skinlog.DayLog
	if err := c.ShouldBindJSON(&log); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	log.Date = c.Param("date")

	if err := h.skinlogSvc.SaveDayLog(c.Request.Context(), userID, log); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

type createEntryRequest struct {
	OverallScore float64          `json:"overallScore"`
	Notes        string           `json:"notes"`
	Factors      []skinlog.Factor `json:"factors"`
}

// CreateEntry records a scored skin log entry for a date.
func (h *Handler) CreateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	entry, err := h.skinlogSvc.CreateEntry(c.Request.Context(), userID, c.Param("date"), req.OverallScore, req.Notes, req.Factors)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type saveSelfiesRequest struct {
	// Entries may be null when a slot position was cleared.
	Selfies []*string `json:"selfies"`
}

// SaveSelfies overwrites the AM or PM selfie list for a date.
func (h *Handler) SaveSelfies(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req saveSelfiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	slot := skinlog.SelfieSlot(c.Param("slot"))
	if err := h.skinlogSvc.SaveSelfies(c.Request.Context(), userID, c.Param("date"), slot, req.Selfies); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Trend aggregates scores for the requested horizon.
func (h *Handler) Trend(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	report, err := h.skinlogSvc.Trend(c.Request.Context(), userID, skinlog.Horizon(c.Param("horizon")))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Analyze runs the photo analysis pipeline.
func (h *Handler) Analyze(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req analysis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.analysisSvc.Analyze(c.Request.Context(), userID, req)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Chat answers a skin question, via cache when possible.
func (h *Handler) Chat(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req assistant.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.assistantSvc.Chat(c.Request.Context(), userID, req)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Trending returns the most asked questions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.assistantSvc.Trending(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queries": items})
}

// MealPlan generates and stores a fresh weekly meal plan.
func (h *Handler) MealPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	plan, err := h.assistantSvc.GenerateMealPlan(c.Request.Context(), userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GroceryList derives a grocery list from the stored meal plan.
func (h *Handler) GroceryList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	list, err := h.assistantSvc.GenerateGroceryList(c.Request.Context(), userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Recipes generates recipe ideas honoring meal preferences.
func (h *Handler) Recipes(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ideas, err := h.assistantSvc.GenerateRecipeIdeas(c.Request.Context(), userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// SavePreferences stores dietary preferences used by generation prompts.
func (h *Handler) SavePreferences(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var prefs assistant.MealPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	if err := h.assistantSvc.SavePreferences(c.Request.Context(), userID, prefs); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func requireUserID(c *gin.Context) (int64, bool) {
	claims, ok := getClaims(c)
	if !ok || claims.UserID == 0 {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "authentication required", nil))
		return 0, false
	}
	return claims.UserID, true
}
