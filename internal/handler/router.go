package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/medai-pro/medai-server-go/internal/config"
	"github.com/medai-pro/medai-server-go/internal/gemini"
	"github.com/medai-pro/medai-server-go/internal/httperror"
	"github.com/medai-pro/medai-server-go/internal/metrics"
	"github.com/medai-pro/medai-server-go/internal/middleware"
)

// NewRouter builds the HTTP router with middleware and all routes.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	client gemini.LLM,
	metricsStore *metrics.Store,
	doctorHandler *DoctorHandler,
	directoryHandler *DirectoryHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		newRecovery(logger),
		cors.New(newCORSConfig()),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(cfg),
	)

	RegisterHealthRoutes(router, client, metricsStore)
	doctorHandler.RegisterRoutes(router)
	directoryHandler.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, httperror.NewNotFound())
	})

	return router
}

// newRecovery is the outer fault boundary: full detail stays in the server
// log, the client only sees the generic envelope.
func newRecovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.Error("panic_recovered",
				"request_id", middleware.GetRequestID(c),
				"path", c.Request.URL.Path,
				"err", recovered,
			)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

// newCORSConfig allows every origin for GET/POST/OPTIONS with Content-Type,
// applied uniformly to all routes.
func newCORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	return corsConfig
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
