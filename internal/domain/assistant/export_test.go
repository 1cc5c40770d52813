package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/skintrack/skintrack/internal/infra/kvstore"
)

// Test-only exports. The service tests live in the external assistant_test
// package so they can import the in-memory infra implementations without
// creating an import cycle; these hooks give them access to the unexported
// internals they exercise.

// ServiceForTest names the unexported service type for external tests.
type ServiceForTest = service

// GuardName exposes guardName.
var GuardName = guardName

// NewServiceForTest builds a service with a byte-estimate token counter
// (no encoder) and a fixed clock, mirroring the in-package test setup.
func NewServiceForTest(cfg Config, repo QuestionRepository, store Store, plans kvstore.Store, client ChatClient, logger *slog.Logger, now func() time.Time) *ServiceForTest {
	return &service{
		cfg:     cfg,
		repo:    repo,
		store:   store,
		plans:   plans,
		client:  client,
		logger:  logger,
		counter: &tokenCounter{},
		now:     now,
	}
}

// PlansStore exposes the plans kv store.
func (s *service) PlansStore() kvstore.Store { return s.plans }

// GuardStore exposes the assistant store.
func (s *service) GuardStore() Store { return s.store }

// LoadPreferencesForTest exposes loadPreferences.
func (s *service) LoadPreferencesForTest(ctx context.Context, userID int64) MealPreferences {
	return s.loadPreferences(ctx, userID)
}
