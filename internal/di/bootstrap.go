package di

import (
	"context"
	"fmt"

	"github.com/medai-pro/medai-server-go/internal/config"
	"github.com/medai-pro/medai-server-go/internal/domain/directory"
	"github.com/medai-pro/medai-server-go/internal/domain/doctor"
	"github.com/medai-pro/medai-server-go/internal/gemini"
	"github.com/medai-pro/medai-server-go/internal/handler"
	"github.com/medai-pro/medai-server-go/internal/logging"
	"github.com/medai-pro/medai-server-go/internal/metrics"
	"github.com/medai-pro/medai-server-go/internal/server"
)

// InitializeApp wires the application dependencies and returns the App.
// The Gemini model fallback loop runs here, once, before the server starts.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metricsStore := metrics.NewStore()

	geminiClient, err := gemini.NewClient(ctx, cfg, metricsStore, logger)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	prompts, err := doctor.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("doctor prompts: %w", err)
	}

	dir, err := directory.NewDirectory()
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}

	doctorHandler := handler.NewDoctorHandler(geminiClient, prompts, logger)
	directoryHandler := handler.NewDirectoryHandler(dir)

	router := handler.NewRouter(cfg, logger, geminiClient, metricsStore, doctorHandler, directoryHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg), nil
}
