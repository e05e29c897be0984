package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sliderHeight  = 12.0
	sliderSpacing = 34.0
	panelPadding  = 10.0
)

// Panel stacks sliders vertically over a translucent background.
type Panel struct {
	Title   string
	X, Y    float64
	Width   float64
	Sliders []*Slider
}

// NewPanel creates an empty panel at the given position.
func NewPanel(title string, x, y, width float64) *Panel {
	return &Panel{Title: title, X: x, Y: y, Width: width}
}

// AddSlider appends a slider below the previous one and returns it so the
// caller can poll its Value.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     p.X + panelPadding,
		Y:     p.Y + 25 + sliderSpacing*float64(len(p.Sliders)) + (sliderSpacing - sliderHeight),
		W:     p.Width - 2*panelPadding,
		H:     sliderHeight,
	}
	p.Sliders = append(p.Sliders, s)
	return s
}

// Update handles input for all sliders.
func (p *Panel) Update() {
	for _, s := range p.Sliders {
		s.Update()
	}
}

// Draw renders the panel background, title and sliders.
func (p *Panel) Draw(screen *ebiten.Image) {
	height := 30 + sliderSpacing*float64(len(p.Sliders))
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(height),
		color.RGBA{R: 40, G: 40, B: 45, A: 230}, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(height),
		2, color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+5))

	for _, s := range p.Sliders {
		s.Draw(screen)
	}
}
