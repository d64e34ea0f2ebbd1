package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/medai-pro/medai-server-go/internal/domain/directory"
)

func newDirectoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir, err := directory.NewDirectory()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}

	router := gin.New()
	NewDirectoryHandler(dir).RegisterRoutes(router)
	return router
}

func TestSpecialistsEndpoint(t *testing.T) {
	router := newDirectoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/specialists", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload SpecialistsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success {
		t.Fatalf("expected success true")
	}
	if len(payload.Specialists) != 5 {
		t.Fatalf("expected 5 specialists, got %d", len(payload.Specialists))
	}
	for i, specialist := range payload.Specialists {
		if specialist.ID != i+1 {
			t.Fatalf("expected stable id %d, got %d", i+1, specialist.ID)
		}
	}
}

func TestHealthTipsEndpoint(t *testing.T) {
	router := newDirectoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health-tips", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload TipsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || len(payload.Tips) != 5 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
