// Package plan defines the YAML description of a card-sheet job: which
// source images to crop, where their corners sit, and how the finished
// sheet should be written.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/flatbed/model"
)

// Plan describes one output sheet built from one or two cropped cards.
type Plan struct {
	Version     string  `yaml:"version"`
	Output      string  `yaml:"output"`
	CardWidthCM float64 `yaml:"card_width_cm"`
	Cards       []Card  `yaml:"cards"`
}

// Card describes a single crop: the source file, the page and render DPI
// when the source is a PDF, the marked corners in source-pixel space
// (ordered top-left, top-right, bottom-right, bottom-left), and optional
// post-processing.
type Card struct {
	Source   string        `yaml:"source"`
	Page     int           `yaml:"page,omitempty"`
	DPI      int           `yaml:"dpi,omitempty"`
	Corners  [4][2]float64 `yaml:"corners"`
	Rotation int           `yaml:"rotation,omitempty"`
	Adjust   []Adjustment  `yaml:"adjust,omitempty"`
}

// Adjustment records one cosmetic operation by name.
type Adjustment struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value,omitempty"`
}

// CornerSet converts the card's corner coordinates to the model type.
func (c Card) CornerSet() model.CornerSet {
	var cs model.CornerSet
	for i, p := range c.Corners {
		cs[i] = model.Point{X: p[0], Y: p[1]}
	}
	return cs
}

// Adjustments converts the card's adjustment list to the model type.
func (c Card) Adjustments() []model.Adjustment {
	if len(c.Adjust) == 0 {
		return nil
	}
	out := make([]model.Adjustment, len(c.Adjust))
	for i, a := range c.Adjust {
		out[i] = model.Adjustment{Op: a.Op, Value: a.Value}
	}
	return out
}

// Validate checks the structural constraints a plan must meet before it can
// be executed.
func (p *Plan) Validate() error {
	if len(p.Cards) == 0 || len(p.Cards) > 2 {
		return fmt.Errorf("plan: %d cards, a sheet holds one or two", len(p.Cards))
	}
	if p.Output == "" {
		return fmt.Errorf("plan: no output path")
	}
	if p.CardWidthCM <= 0 {
		return fmt.Errorf("plan: card width %.2f cm is not positive", p.CardWidthCM)
	}
	for i, c := range p.Cards {
		if c.Source == "" {
			return fmt.Errorf("plan: card %d has no source", i)
		}
	}
	return nil
}

// Write writes a plan to a YAML file.
func Write(p *Plan, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read reads a plan from a YAML file.
func Read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
