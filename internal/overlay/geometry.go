package overlay

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/sensor"
)

// Mode selects how millimetres are mapped to pixels.
type Mode int

const (
	// Proportional fits the largest selected sensor into the canvas.
	Proportional Mode = iota
	// Physical draws sensors at their true size on the viewer's screen.
	Physical
)

func (m Mode) String() string {
	if m == Physical {
		return "physical"
	}
	return "proportional"
}

// MarshalText lets the mode appear by name in JSON.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Viewport is the drawable canvas in pixels. Every box is centered on
// (CenterX, Height/2).
type Viewport struct {
	Width   float64
	Height  float64
	CenterX float64
}

// Screen describes the viewer's display for Physical mode.
type Screen struct {
	DiagonalInches float64
	DiagonalPx     float64
}

// Box is the on-canvas geometry of one sensor.
type Box struct {
	Model          string       `json:"model"`
	Index          int          `json:"index"`
	PixelWidth     float64      `json:"pixelWidth"`
	PixelHeight    float64      `json:"pixelHeight"`
	Left           float64      `json:"left"`
	Top            float64      `json:"top"`
	AlignItems     sensor.Align `json:"alignItems"`
	JustifyContent sensor.Align `json:"justifyContent"`
	Visible        bool         `json:"visible"`
}

// ProportionalFactor returns the largest factor at which every selected
// sensor fits the viewport on both axes. An empty selection yields 1.
func ProportionalFactor(selected []*sensor.Sensor, vp Viewport) float64 {
	if len(selected) == 0 {
		return 1
	}
	widths := make([]float64, len(selected))
	heights := make([]float64, len(selected))
	for i, s := range selected {
		widths[i] = s.Width
		heights[i] = s.Height
	}
	maxW := floats.Max(widths)
	maxH := floats.Max(heights)
	if !(maxW > 0) || !(maxH > 0) {
		return 1
	}
	return safeFactor(math.Min(vp.Width/maxW, vp.Height/maxH))
}

// PhysicalFactor returns screen pixels per millimetre. The second result is
// false when the screen description cannot produce a usable factor, e.g.
// while the user is still typing the screen size.
func PhysicalFactor(scr Screen) (float64, bool) {
	if !usable(scr.DiagonalInches) || !usable(scr.DiagonalPx) {
		return 1, false
	}
	pxPerInch := scr.DiagonalPx / scr.DiagonalInches
	f := pxPerInch / config.MmPerInch
	if !usable(f) {
		return 1, false
	}
	return f, true
}

// Factor dispatches on mode. In Physical mode an unusable screen falls back
// to 1 and reports false so callers may substitute a previous factor.
func Factor(mode Mode, selected []*sensor.Sensor, vp Viewport, scr Screen) (float64, bool) {
	if mode == Physical {
		return PhysicalFactor(scr)
	}
	return ProportionalFactor(selected, vp), true
}

// Place computes the box of a single sensor at factor f.
func Place(s *sensor.Sensor, f float64, vp Viewport) Box {
	w := s.Width * f
	h := s.Height * f
	return Box{
		Model:          s.Model,
		Index:          s.Index,
		PixelWidth:     w,
		PixelHeight:    h,
		Left:           vp.CenterX - w/2,
		Top:            vp.Height/2 - h/2,
		AlignItems:     s.Anchor.AlignItems(),
		JustifyContent: s.Anchor.JustifyContent(),
	}
}

// Layout places every catalog sensor, selected or not, so that toggling a
// selection only flips Visible and never moves anything.
func Layout(all []sensor.Sensor, visible func(index int) bool, f float64, vp Viewport) []Box {
	if !usable(f) {
		f = 1
	}
	boxes := make([]Box, len(all))
	for i := range all {
		b := Place(&all[i], f, vp)
		b.Visible = visible(all[i].Index)
		boxes[i] = b
	}
	return boxes
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func safeFactor(f float64) float64 {
	if !usable(f) {
		return 1
	}
	return f
}
