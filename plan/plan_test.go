package plan

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/flatbed/model"
)

func testPlan() *Plan {
	return &Plan{
		Version:     "1.0",
		Output:      "sheet.png",
		CardWidthCM: 8.6,
		Cards: []Card{
			{
				Source:  "front.jpg",
				Corners: [4][2]float64{{100, 100}, {700, 120}, {680, 580}, {120, 560}},
				Adjust:  []Adjustment{{Op: "contrast", Value: 1.2}},
			},
			{
				Source:   "back.pdf",
				Page:     1,
				DPI:      300,
				Corners:  [4][2]float64{{50, 50}, {900, 60}, {890, 580}, {60, 570}},
				Rotation: 90,
			},
		},
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	want := testPlan()
	if err := Write(want, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %+v, want %+v", got, want)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Read() on a missing file succeeded, want error")
	}
}

func TestCardCornerSet(t *testing.T) {
	c := testPlan().Cards[0]
	want := model.CornerSet{
		{X: 100, Y: 100}, {X: 700, Y: 120}, {X: 680, Y: 580}, {X: 120, Y: 560},
	}
	if got := c.CornerSet(); got != want {
		t.Errorf("CornerSet() = %v, want %v", got, want)
	}
}

func TestCardAdjustments(t *testing.T) {
	c := testPlan().Cards[0]
	want := []model.Adjustment{{Op: "contrast", Value: 1.2}}
	if got := c.Adjustments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Adjustments() = %v, want %v", got, want)
	}
	if got := testPlan().Cards[1].Adjustments(); got != nil {
		t.Errorf("Adjustments() on a plain card = %v, want nil", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr bool
	}{
		{"valid", func(p *Plan) {}, false},
		{"no cards", func(p *Plan) { p.Cards = nil }, true},
		{"three cards", func(p *Plan) { p.Cards = append(p.Cards, p.Cards[0]) }, true},
		{"no output", func(p *Plan) { p.Output = "" }, true},
		{"zero width", func(p *Plan) { p.CardWidthCM = 0 }, true},
		{"blank source", func(p *Plan) { p.Cards[0].Source = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlan()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
