package doctor

import (
	"embed"
	"fmt"

	"github.com/medai-pro/medai-server-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// Prompts holds the consultation prompt bundle.
type Prompts struct {
	bundle *prompt.Bundle
}

// NewPrompts loads the embedded consultation prompts.
func NewPrompts() (*Prompts, error) {
	bundle, err := prompt.LoadBundle(promptsFS, "prompts", "doctor")
	if err != nil {
		return nil, fmt.Errorf("load doctor prompts: %w", err)
	}
	return &Prompts{bundle: bundle}, nil
}

// System returns the fixed consultation instruction.
// Its wording is part of the observable output contract.
func (p *Prompts) System() (string, error) {
	data, err := p.bundle.Prompt("consult")
	if err != nil {
		return "", err
	}
	return p.bundle.Field(data, "system", "consult.system")
}

// Consultation builds the full prompt for one symptom message:
// the fixed instruction followed by the user's raw input. The result is a
// single string sent as one completion payload.
func (p *Prompts) Consultation(message string) (string, error) {
	system, err := p.System()
	if err != nil {
		return "", err
	}

	data, err := p.bundle.Prompt("consult")
	if err != nil {
		return "", err
	}
	template, err := p.bundle.Field(data, "user", "consult.user")
	if err != nil {
		return "", err
	}
	user, err := prompt.FormatTemplate(template, map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("format consult.user: %w", err)
	}

	return system + "\n\n" + user, nil
}
