package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday/external/chatcompletion"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	chatClient := chatcompletion.NewClient(chatcompletion.ClientConfig{
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.OpenAITimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OpenAICircuitEnabled,
			FailureThreshold: cfg.OpenAICircuitFailureCount,
			OpenTimeout:      cfg.OpenAICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OpenAICircuitHalfOpenMaxReq,
		},
	})
	probeSvc := usecase.NewChatProbeService(chatClient, usecase.ChatProbeConfig{
		APIKey:   cfg.OpenAIAPIKey,
		Model:    cfg.OpenAIModel,
		CacheTTL: cfg.ChatProbeCacheTTL,
	}, logger)

	handler := httpapi.NewHandler(probeSvc, httpapi.BuildInfo{
		Environment: cfg.AppEnv,
		Service:     cfg.ServiceName,
		Version:     cfg.ServiceVersion,
	}, logger)
	router := httpapi.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
