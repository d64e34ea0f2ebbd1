package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/medai-pro/medai-server-go/internal/metrics"
)

func getHealth(t *testing.T, client *mockLLM) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterHealthRoutes(router, client, metrics.NewStore())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload HealthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestHealthUnconfigured(t *testing.T) {
	payload := getHealth(t, &mockLLM{})

	if payload.Status != "ok" {
		t.Fatalf("unexpected status: %s", payload.Status)
	}
	if payload.GeminiConfigured {
		t.Fatalf("did not expect gemini_configured")
	}
	if payload.Model != "Unknown" {
		t.Fatalf("expected Unknown model, got %s", payload.Model)
	}
	if _, err := time.Parse(time.RFC3339, payload.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", payload.Timestamp)
	}
}

func TestHealthConfiguredWithoutHandle(t *testing.T) {
	// Key present but every candidate model failed.
	payload := getHealth(t, &mockLLM{configured: true})

	if !payload.GeminiConfigured {
		t.Fatalf("expected gemini_configured with key present")
	}
	if payload.Model != "Unknown" {
		t.Fatalf("expected Unknown model, got %s", payload.Model)
	}
}

func TestHealthActiveModel(t *testing.T) {
	payload := getHealth(t, &mockLLM{configured: true, ready: true, model: "gemini-1.5-flash"})
	if payload.Model != "gemini-1.5-flash" {
		t.Fatalf("expected active model, got %s", payload.Model)
	}

	payload = getHealth(t, &mockLLM{configured: true, ready: true, model: ""})
	if payload.Model != "Initialized" {
		t.Fatalf("expected Initialized fallback, got %s", payload.Model)
	}
}

func TestMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterHealthRoutes(router, &mockLLM{}, metrics.NewStore())

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]float64
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["total_calls"]; !ok {
		t.Fatalf("expected total_calls counter: %v", payload)
	}
}
