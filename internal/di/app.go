package di

import (
	"log/slog"
	"net/http"

	"github.com/medai-pro/medai-server-go/internal/config"
)

// App bundles the wired application components.
type App struct {
	Server *http.Server
	Logger *slog.Logger
	Config *config.Config
}

// NewApp creates an App instance.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		Server: server,
		Logger: logger,
		Config: cfg,
	}
}
