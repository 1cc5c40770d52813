package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/skintrack/skintrack/internal/domain/analysis"
	"github.com/skintrack/skintrack/internal/domain/assistant"
	"github.com/skintrack/skintrack/internal/domain/auth"
	"github.com/skintrack/skintrack/internal/domain/catalog"
	"github.com/skintrack/skintrack/internal/domain/skinlog"
	"github.com/skintrack/skintrack/internal/infra/analysisapi"
	"github.com/skintrack/skintrack/internal/infra/assistantrepo"
	"github.com/skintrack/skintrack/internal/infra/assistantstore"
	"github.com/skintrack/skintrack/internal/infra/catalogrepo"
	"github.com/skintrack/skintrack/internal/infra/config"
	"github.com/skintrack/skintrack/internal/infra/kvstore"
	"github.com/skintrack/skintrack/internal/infra/llm/chatgpt"
	"github.com/skintrack/skintrack/internal/infra/selfiestore"
	"github.com/skintrack/skintrack/internal/infra/skinlogrepo"
	"github.com/skintrack/skintrack/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
		OIDC: auth.OIDCConfig{
			Issuer:   cfg.Auth.OIDCIssuer,
			Audience: cfg.Auth.OIDCAudience,
		},
	}
}

func provideCatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{CacheTTL: cfg.Catalog.CacheTTL}
}

func provideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		Model:               cfg.LLM.Model,
		EmbeddingModel:      cfg.LLM.EmbeddingModel,
		Temperature:         cfg.LLM.Temperature,
		Prompt:              cfg.Assistant.Prompt,
		CacheTTL:            cfg.Assistant.CacheTTL,
		TopRecommendations:  cfg.Assistant.TopRecommendations,
		SimilarityThreshold: cfg.Assistant.SimilarityThreshold,
		HistoryTokenBudget:  cfg.Assistant.HistoryTokenBudget,
		GenerationGuardTTL:  cfg.Assistant.GenerationGuardTTL,
	}
}

func provideAnalysisConfig(cfg *config.Config) analysis.Config {
	return analysis.Config{
		MaxUploadBytes: cfg.Analysis.MaxUploadBytes,
		KeepCopies:     cfg.Analysis.KeepCopies,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideAnalysisClient(cfg *config.Config) *analysisapi.Client {
	return analysisapi.NewClient(cfg.Analysis.Endpoint)
}

// providePostgresPool returns nil when Postgres is not configured or not
// reachable; repositories then fall back to memory twins.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideCatalogRepository(pool *pgxpool.Pool) catalog.Repository {
	if pool == nil {
		return catalogrepo.NewMemoryRepository(catalogrepo.SeedProducts())
	}
	return catalogrepo.NewPostgresRepository(pool)
}

func provideSkinlogRepository(pool *pgxpool.Pool) skinlog.Repository {
	if pool == nil {
		return skinlogrepo.NewMemoryRepository()
	}
	return skinlogrepo.NewPostgresRepository(pool)
}

func provideUserRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideQuestionRepository(pool *pgxpool.Pool) assistant.QuestionRepository {
	if pool == nil {
		return assistantrepo.NewMemoryRepository()
	}
	return assistantrepo.NewPostgresRepository(pool)
}

// provideValkeyClient returns nil when valkey is disabled or unreachable.
func provideValkeyClient(cfg *config.Config, logger *slog.Logger) valkey.Client {
	if !cfg.Valkey.Enabled {
		return nil
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory stores", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory stores", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory stores", "error", err)
		client.Close()
		return nil
	}
	logger.Info("valkey enabled", "addr", cfg.Valkey.Addr)
	return client
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideKVStore(client valkey.Client) kvstore.Store {
	if client == nil {
		return kvstore.NewMemoryStore()
	}
	return kvstore.NewValkeyStore(client, "skintrack")
}

func provideAssistantStore(client valkey.Client) assistant.Store {
	if client == nil {
		return assistantstore.NewMemoryStore()
	}
	return assistantstore.NewValkeyStore(client, "assistant")
}

func provideSelfieStorage(cfg *config.Config, logger *slog.Logger) analysis.ObjectStorage {
	if !cfg.Storage.Enabled {
		return selfiestore.NewMemoryStorage()
	}
	storage, err := selfiestore.NewS3Storage(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize object storage, falling back to memory", "error", err)
		return selfiestore.NewMemoryStorage()
	}
	return storage
}
