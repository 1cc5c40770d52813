package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	Assistant AssistantConfig `yaml:"assistant"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Storage   StorageConfig   `yaml:"storage"`
	Valkey    ValkeyConfig    `yaml:"valkey"`
	Postgres  PostgresConfig  `yaml:"postgres"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// AuthConfig controls token verification.
type AuthConfig struct {
	Secret       string        `yaml:"secret"`
	TokenTTL     time.Duration `yaml:"tokenTtl"`
	OIDCIssuer   string        `yaml:"oidcIssuer"`
	OIDCAudience string        `yaml:"oidcAudience"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// AssistantConfig controls the skin assistant behavior.
type AssistantConfig struct {
	Prompt              string        `yaml:"prompt"`
	CacheTTL            time.Duration `yaml:"cacheTtl"`
	TopRecommendations  int           `yaml:"topRecommendations"`
	SimilarityThreshold float64       `yaml:"similarityThreshold"`
	HistoryTokenBudget  int           `yaml:"historyTokenBudget"`
	GenerationGuardTTL  time.Duration `yaml:"generationGuardTtl"`
}

// AnalysisConfig points at the hosted photo analysis function.
type AnalysisConfig struct {
	Endpoint       string `yaml:"endpoint"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
	KeepCopies     bool   `yaml:"keepCopies"`
}

// CatalogConfig tunes the product catalog cache.
type CatalogConfig struct {
	CacheTTL time.Duration `yaml:"cacheTtl"`
}

// StorageConfig contains S3-compatible object storage credentials.
type StorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
	if v := os.Getenv("AUTH_OIDC_ISSUER"); v != "" {
		cfg.Auth.OIDCIssuer = v
	}
	if v := os.Getenv("AUTH_OIDC_AUDIENCE"); v != "" {
		cfg.Auth.OIDCAudience = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ASSISTANT_PROMPT"); v != "" {
		cfg.Assistant.Prompt = v
	}
	if v := os.Getenv("ASSISTANT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Assistant.CacheTTL = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Assistant.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_HISTORY_TOKEN_BUDGET"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.HistoryTokenBudget = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_GUARD_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Assistant.GenerationGuardTTL = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_ENDPOINT"); v != "" {
		cfg.Analysis.Endpoint = v
	}
	if v := os.Getenv("ANALYSIS_MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Analysis.MaxUploadBytes = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_KEEP_COPIES"); v != "" {
		cfg.Analysis.KeepCopies = isTruthy(v)
	}
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.CacheTTL = parsed
		}
	}
	if v := os.Getenv("STORAGE_ENABLED"); v != "" {
		cfg.Storage.Enabled = isTruthy(v)
	}
	if v := os.Getenv("STORAGE_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("STORAGE_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("STORAGE_REGION"); v != "" {
		cfg.Storage.Region = v
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Valkey.Addr = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/analysis",
					"/api/v1/assistant/chat",
				},
			},
		},
		Auth: AuthConfig{
			Secret:   "dev-secret-change-me",
			TokenTTL: 24 * time.Hour,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0.4,
		},
		Assistant: AssistantConfig{
			Prompt:              "You are a friendly skincare assistant. Give practical, evidence-based advice about skin health, diet, and daily habits. Keep answers concise.",
			CacheTTL:            6 * time.Hour,
			TopRecommendations:  10,
			SimilarityThreshold: 0.35,
			HistoryTokenBudget:  2000,
			GenerationGuardTTL:  2 * time.Minute,
		},
		Analysis: AnalysisConfig{
			Endpoint:       "https://api.skintrack.app/analyze-skin",
			MaxUploadBytes: 10 << 20,
			KeepCopies:     false,
		},
		Catalog: CatalogConfig{
			CacheTTL: time.Hour,
		},
		Storage: StorageConfig{
			Enabled: false,
			Bucket:  "skintrack-photos",
			Region:  "auto",
		},
		Valkey: ValkeyConfig{
			Enabled: false,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
			MinConns: 0,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Auth.OIDCIssuer == "" && strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty without an oidc issuer")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if c.Assistant.Prompt == "" {
		return errors.New("assistant.prompt cannot be empty")
	}
	if c.Assistant.CacheTTL < 0 {
		return errors.New("assistant.cacheTtl cannot be negative")
	}
	if c.Assistant.TopRecommendations < 0 {
		return errors.New("assistant.topRecommendations cannot be negative")
	}
	if c.Assistant.SimilarityThreshold < 0 {
		return errors.New("assistant.similarityThreshold must be non-negative")
	}
	if c.Assistant.HistoryTokenBudget < 0 {
		return errors.New("assistant.historyTokenBudget cannot be negative")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.Analysis.Endpoint == "" {
		return errors.New("analysis.endpoint cannot be empty")
	}
	if c.Analysis.MaxUploadBytes <= 0 {
		return errors.New("analysis.maxUploadBytes must be positive")
	}
	if c.Catalog.CacheTTL < 0 {
		return errors.New("catalog.cacheTtl cannot be negative")
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Storage.Enabled {
		if strings.TrimSpace(c.Storage.Endpoint) == "" {
			return errors.New("storage.endpoint cannot be empty when storage is enabled")
		}
		if strings.TrimSpace(c.Storage.Bucket) == "" {
			return errors.New("storage.bucket cannot be empty when storage is enabled")
		}
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
