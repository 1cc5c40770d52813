//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/skintrack/skintrack/internal/bootstrap"
	"github.com/skintrack/skintrack/internal/domain/analysis"
	"github.com/skintrack/skintrack/internal/domain/assistant"
	"github.com/skintrack/skintrack/internal/domain/auth"
	"github.com/skintrack/skintrack/internal/domain/catalog"
	"github.com/skintrack/skintrack/internal/domain/skinlog"
	"github.com/skintrack/skintrack/internal/infra/analysisapi"
	"github.com/skintrack/skintrack/internal/infra/config"
	"github.com/skintrack/skintrack/internal/infra/llm/chatgpt"
	httpiface "github.com/skintrack/skintrack/internal/interface/http"
	"github.com/skintrack/skintrack/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideCatalogConfig,
		provideAssistantConfig,
		provideAnalysisConfig,
		provideChatGPTClient,
		provideAnalysisClient,
		providePostgresPool,
		provideValkeyClient,
		provideKVStore,
		provideAssistantStore,
		provideCatalogRepository,
		provideSkinlogRepository,
		provideUserRepository,
		provideQuestionRepository,
		provideSelfieStorage,
		auth.NewService,
		catalog.NewService,
		skinlog.NewService,
		assistant.NewService,
		analysis.NewService,
		wire.Bind(new(assistant.ChatClient), new(*chatgpt.Client)),
		wire.Bind(new(analysis.RemoteClient), new(*analysisapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
