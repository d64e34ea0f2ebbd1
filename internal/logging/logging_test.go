package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/medai-pro/medai-server-go/internal/config"
)

func TestNewLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggingConfig{
		LogDir:     dir,
		Level:      "info",
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   true,
	}
	_, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "server.log")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
}

func TestNewLoggerRejectsBadRotation(t *testing.T) {
	cfg := config.LoggingConfig{
		LogDir:     t.TempDir(),
		Level:      "info",
		MaxSizeMB:  0,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}
	if _, err := NewLogger(cfg); err == nil {
		t.Fatalf("expected error for zero max size")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("DEBUG").String() != "DEBUG" {
		t.Fatalf("unexpected level for debug")
	}
	if parseLevel("warning").String() != "WARN" {
		t.Fatalf("unexpected level for warning")
	}
	if parseLevel("bogus").String() != "INFO" {
		t.Fatalf("unexpected default level")
	}
}
