package doctor

import (
	"strings"
	"testing"
)

func TestNewPrompts(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system, err := prompts.System()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(system, "You are MedAI Pro") {
		t.Fatalf("unexpected system prompt start: %q", system[:40])
	}
	if !strings.Contains(system, "max 150 words total") {
		t.Fatalf("system prompt missing word limit")
	}
	if !strings.Contains(system, "This is NOT professional medical advice") {
		t.Fatalf("system prompt missing disclaimer")
	}
}

func TestConsultation(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full, err := prompts.Consultation("sore throat and fever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(full, "User Symptom: sore throat and fever") {
		t.Fatalf("prompt missing user symptom section")
	}
	if !strings.HasSuffix(full, "Be VERY BRIEF and CONCISE.") {
		t.Fatalf("prompt missing trailing instruction")
	}
	if !strings.HasPrefix(full, "You are MedAI Pro") {
		t.Fatalf("prompt missing system instruction prefix")
	}
}

func TestConsultationKeepsRawInput(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full, err := prompts.Consultation("pain {left side} > 2 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(full, "User Symptom: pain {left side} > 2 days") {
		t.Fatalf("user input was not inserted verbatim")
	}
}
