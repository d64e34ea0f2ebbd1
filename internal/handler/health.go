package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medai-pro/medai-server-go/internal/gemini"
	"github.com/medai-pro/medai-server-go/internal/metrics"
)

// HealthResponse is the health check body. This endpoint never fails.
type HealthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	GeminiConfigured bool   `json:"gemini_configured"`
	Model            string `json:"model"`
}

// RegisterHealthRoutes registers the health and metrics routes.
func RegisterHealthRoutes(router *gin.Engine, client gemini.LLM, metricsStore *metrics.Store) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:           "ok",
			Timestamp:        time.Now().Format(time.RFC3339),
			GeminiConfigured: client.Configured(),
			Model:            modelLabel(client),
		})
	})

	router.GET("/api/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metricsStore.Snapshot())
	})
}

// modelLabel reports the active model identifier, with fallback labels when
// no handle exists or the identifier cannot be determined.
func modelLabel(client gemini.LLM) string {
	if !client.Ready() {
		return "Unknown"
	}
	if name := client.ActiveModel(); name != "" {
		return name
	}
	return "Initialized"
}
