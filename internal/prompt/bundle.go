package prompt

import (
	"fmt"
	"io/fs"
)

// Bundle groups the loaded prompts of one domain with an error label.
type Bundle struct {
	label   string
	prompts map[string]map[string]string
}

// LoadBundle loads every YAML prompt under dir into a Bundle.
func LoadBundle(fsys fs.FS, dir string, label string) (*Bundle, error) {
	loaded, err := LoadYAMLDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &Bundle{label: label, prompts: loaded}, nil
}

// Prompt returns the prompt map registered under name.
func (b *Bundle) Prompt(name string) (map[string]string, error) {
	if b == nil || b.prompts == nil {
		return nil, fmt.Errorf("prompts not initialized")
	}
	promptMap, ok := b.prompts[name]
	if !ok {
		return nil, fmt.Errorf("%s prompt not found: %s", b.label, name)
	}
	return promptMap, nil
}

// Field returns a required field from a prompt map.
func (b *Bundle) Field(data map[string]string, key string, label string) (string, error) {
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("prompt field missing: %s", label)
	}
	return value, nil
}
