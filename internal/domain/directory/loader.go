package directory

import (
	"embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

//go:embed data/*.json
var dataFS embed.FS

// Specialist is one entry of the static specialist directory.
type Specialist struct {
	ID        int     `json:"id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required"`
	Specialty string  `json:"specialty" validate:"required"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
}

// Directory holds the static datasets loaded at startup.
// Both lists are immutable for the process lifetime.
type Directory struct {
	specialists []Specialist
	tips        []string
}

// NewDirectory loads and validates the embedded datasets.
func NewDirectory() (*Directory, error) {
	specialists, err := loadSpecialists()
	if err != nil {
		return nil, err
	}
	tips, err := loadTips()
	if err != nil {
		return nil, err
	}
	return &Directory{specialists: specialists, tips: tips}, nil
}

// Specialists returns a copy of the specialist directory.
func (d *Directory) Specialists() []Specialist {
	out := make([]Specialist, len(d.specialists))
	copy(out, d.specialists)
	return out
}

// Tips returns a copy of the health tips.
func (d *Directory) Tips() []string {
	out := make([]string, len(d.tips))
	copy(out, d.tips)
	return out
}

func loadSpecialists() ([]Specialist, error) {
	raw, err := dataFS.ReadFile("data/specialists.json")
	if err != nil {
		return nil, fmt.Errorf("read specialists data: %w", err)
	}

	var specialists []Specialist
	if err := json.Unmarshal(raw, &specialists); err != nil {
		return nil, fmt.Errorf("parse specialists data: %w", err)
	}
	if len(specialists) == 0 {
		return nil, fmt.Errorf("specialists data is empty")
	}

	validate := validator.New()
	for i, specialist := range specialists {
		if err := validate.Struct(specialist); err != nil {
			return nil, fmt.Errorf("invalid specialist at index %d: %w", i, err)
		}
	}
	return specialists, nil
}

func loadTips() ([]string, error) {
	raw, err := dataFS.ReadFile("data/tips.json")
	if err != nil {
		return nil, fmt.Errorf("read tips data: %w", err)
	}

	var tips []string
	if err := json.Unmarshal(raw, &tips); err != nil {
		return nil, fmt.Errorf("parse tips data: %w", err)
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("tips data is empty")
	}
	for i, tip := range tips {
		if tip == "" {
			return nil, fmt.Errorf("blank tip at index %d", i)
		}
	}
	return tips, nil
}
