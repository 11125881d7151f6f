package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"sensor-compare.klederson.com/internal/sensor"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestRenderTooSmall(t *testing.T) {
	if got := Render(3, 10, Cell{8, 16}, nil, nil); got != "" {
		t.Errorf("Render() on a 3-column grid = %q, want empty", got)
	}
	if got := Render(40, 10, Cell{0, 16}, nil, nil); got != "" {
		t.Errorf("Render() with zero cell width = %q, want empty", got)
	}
}

func TestRenderOutlineAndLabel(t *testing.T) {
	sensors := []sensor.Sensor{
		{Model: "A", Logo: "Acme", Width: 20, Height: 12, Anchor: "bottom-left", Index: 0},
	}
	cell := Cell{Width: 8, Height: 16}
	box := Box{
		Model: "A", Index: 0,
		Left: 40, Top: 32, PixelWidth: 160, PixelHeight: 96,
		AlignItems: sensor.AlignEnd, JustifyContent: sensor.AlignStart,
		Visible: true,
	}

	lines := plainLines(Render(40, 12, cell, []Box{box}, sensors))
	if len(lines) != 12 {
		t.Fatalf("got %d rows, want 12", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 40 {
			t.Errorf("row %d has %d columns, want 40", i, n)
		}
	}

	// Cells 5..24 x 2..7.
	top := []rune(lines[2])
	if top[5] != '+' || top[24] != '+' || top[10] != '-' {
		t.Errorf("top border = %q", lines[2])
	}
	side := []rune(lines[4])
	if side[5] != '|' || side[24] != '|' {
		t.Errorf("side border = %q", lines[4])
	}
	if !strings.Contains(lines[7], "+Acme A") {
		t.Errorf("bottom-left label missing: %q", lines[7])
	}
}

func TestRenderHiddenBoxes(t *testing.T) {
	sensors := []sensor.Sensor{{Model: "A", Width: 20, Height: 12}}
	box := Box{Model: "A", Left: 40, Top: 32, PixelWidth: 160, PixelHeight: 96}

	out := ansi.Strip(Render(40, 12, Cell{8, 16}, []Box{box}, sensors))
	if strings.ContainsAny(out, "|-") {
		t.Errorf("hidden box was drawn:\n%s", out)
	}
	// Only the canvas center mark remains.
	if strings.Count(out, "+") != 1 {
		t.Errorf("want exactly the center mark, got:\n%s", out)
	}
}

func TestRenderLabelCollision(t *testing.T) {
	sensors := []sensor.Sensor{
		{Model: "Big", Width: 30, Height: 20, Index: 0},
		{Model: "Small", Width: 20, Height: 20, Index: 1},
	}
	cell := Cell{Width: 8, Height: 16}
	// Same bottom edge, both centered: the second label must move up a row.
	boxes := []Box{
		{Model: "Big", Index: 0, Left: 0, Top: 0, PixelWidth: 320, PixelHeight: 160,
			AlignItems: sensor.AlignEnd, JustifyContent: sensor.AlignCenter, Visible: true},
		{Model: "Small", Index: 1, Left: 80, Top: 0, PixelWidth: 160, PixelHeight: 160,
			AlignItems: sensor.AlignEnd, JustifyContent: sensor.AlignCenter, Visible: true},
	}
	lines := plainLines(Render(40, 12, cell, boxes, sensors))
	if !strings.Contains(lines[9], "Small") {
		t.Errorf("inner label not on its border: %q", lines[9])
	}
	if strings.Contains(lines[9], "Big") {
		t.Errorf("labels overlap on row 9: %q", lines[9])
	}
	if !strings.Contains(lines[8], "Big") {
		t.Errorf("colliding label not moved inward: %q", lines[8])
	}
}

func TestCanvasViewport(t *testing.T) {
	vp := CanvasViewport(100, 20, Cell{Width: 8, Height: 16})
	if vp.Width != 800 || vp.Height != 320 || vp.CenterX != 400 {
		t.Errorf("CanvasViewport() = %+v", vp)
	}
}
