package gemini

import "context"

// LLM is the completion interface consumed by handlers.
// Tests inject mock implementations through it.
type LLM interface {
	// Generate performs a single completion round trip.
	Generate(ctx context.Context, prompt string) (string, error)

	// Configured reports whether an API key was present at startup.
	Configured() bool

	// Ready reports whether a model handle is available.
	Ready() bool

	// ActiveModel returns the model identifier chosen at startup.
	ActiveModel() string
}

// Compile-time check that Client implements LLM.
var _ LLM = (*Client)(nil)
