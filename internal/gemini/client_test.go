package gemini

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/medai-pro/medai-server-go/internal/config"
	"github.com/medai-pro/medai-server-go/internal/metrics"
)

func TestNewClientWithoutKey(t *testing.T) {
	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			CandidateModels: []string{"gemini-pro"},
			TimeoutSeconds:  5,
		},
	}

	client, err := NewClient(context.Background(), cfg, metrics.NewStore(), slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Configured() {
		t.Fatalf("did not expect configured without key")
	}
	if client.Ready() {
		t.Fatalf("did not expect ready without key")
	}
	if client.ActiveModel() != "" {
		t.Fatalf("unexpected active model: %s", client.ActiveModel())
	}

	if _, err := client.Generate(context.Background(), "prompt"); err != ErrNotInitialized {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestNewClientRejectsNilDeps(t *testing.T) {
	if _, err := NewClient(context.Background(), nil, metrics.NewStore(), slog.Default()); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewClient(context.Background(), &config.Config{}, nil, slog.Default()); err == nil {
		t.Fatalf("expected error for nil metrics store")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 150)
	if got := truncate(long, 100); len(got) != 100 {
		t.Fatalf("expected 100 chars, got %d", len(got))
	}
	if got := truncate("short", 100); got != "short" {
		t.Fatalf("unexpected truncation: %s", got)
	}
}
