package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/skintrack/skintrack/internal/infra/kvstore"
	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

const listCacheKey = "catalog:products"

// Config holds runtime knobs for the catalog service.
type Config struct {
	CacheTTL time.Duration
}

// Service exposes product browsing.
type Service interface {
	Search(ctx context.Context, query string, sortKey SortKey) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
}

type service struct {
	cfg    Config
	repo   Repository
	cache  kvstore.Store
	logger *slog.Logger
}

// NewService wires up the catalog domain.
func NewService(cfg Config, repo Repository, cache kvstore.Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		cache:  cache,
		logger: logger.With("component", "catalog.service"),
	}
}

// Search recomputes the derived list on every call; filtering and sorting
// stay pure so the handler can invoke this per keystroke cheaply.
func (s *service) Search(ctx context.Context, query string, sortKey SortKey) ([]Product, error) {
	products, err := s.loadAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "failed to load products", err)
	}
	return Sort(FilterBySearch(products, query), sortKey), nil
}

func (s *service) Get(ctx context.Context, id string) (Product, error) {
	product, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, apperrors.Wrap("catalog_error", "failed to load product", err)
	}
	if !found {
		return Product{}, apperrors.Wrap("product_not_found", "product not found", nil)
	}
	return product, nil
}

func (s *service) loadAll(ctx context.Context) ([]Product, error) {
	if s.cfg.CacheTTL > 0 {
		cached, ok, err := kvstore.GetJSON[[]Product](ctx, s.cache, listCacheKey)
		if err != nil {
			s.logger.Warn("product cache read failed, dropping key", "error", err)
			_ = s.cache.Remove(ctx, listCacheKey)
		} else if ok {
			return cached, nil
		}
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cfg.CacheTTL > 0 {
		if err := kvstore.SetJSON(ctx, s.cache, listCacheKey, products, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("product cache write failed", "error", err)
		}
	}
	return products, nil
}
