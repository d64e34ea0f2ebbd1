package metrics

import (
	"testing"
	"time"

	"github.com/medai-pro/medai-server-go/internal/llm"
)

func TestStoreRecordsMetrics(t *testing.T) {
	store := NewStore()
	store.RecordSuccess(120*time.Millisecond, llm.Usage{InputTokens: 2, OutputTokens: 3})
	store.RecordError(50 * time.Millisecond)

	usage := store.UsageTotals()
	if usage.InputTokens != 2 || usage.OutputTokens != 3 || usage.TotalTokens != 5 {
		t.Fatalf("unexpected usage totals: %+v", usage)
	}

	snapshot := store.Snapshot()
	if snapshot["total_calls"] != 2 {
		t.Fatalf("expected total_calls 2, got %v", snapshot["total_calls"])
	}
	if snapshot["total_errors"] != 1 {
		t.Fatalf("expected total_errors 1, got %v", snapshot["total_errors"])
	}
	if snapshot["total_duration_ms"] != 170 {
		t.Fatalf("expected total_duration_ms 170, got %v", snapshot["total_duration_ms"])
	}
	if snapshot["avg_duration_ms"] != 85 {
		t.Fatalf("expected avg_duration_ms 85, got %v", snapshot["avg_duration_ms"])
	}
}
