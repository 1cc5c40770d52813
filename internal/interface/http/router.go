package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skintrack/skintrack/internal/domain/auth"
	"github.com/skintrack/skintrack/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/healthz", handler.Healthz)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.GET("/recommendations", handler.Recommendations)

		protected := api.Group("")
		protected.Use(authMiddleware(authSvc))
		{
			protected.GET("/logs/:date", handler.GetDayLog)
			protected.PUT("/logs/:date", handler.SaveDayLog)
			protected.POST("/logs/:date/entries", handler.CreateEntry)
			protected.PUT("/logs/:date/selfies/:slot", handler.SaveSelfies)
			protected.GET("/trends/:horizon", handler.Trend)
			protected.POST("/analysis", handler.Analyze)
			protected.POST("/assistant/chat", handler.Chat)
			protected.GET("/assistant/trending", handler.Trending)
			protected.POST("/assistant/meal-plan", handler.MealPlan)
			protected.POST("/assistant/grocery-list", handler.GroceryList)
			protected.POST("/assistant/recipes", handler.Recipes)
			protected.PUT("/assistant/preferences", handler.SavePreferences)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
