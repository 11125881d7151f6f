package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sensor-compare.klederson.com/internal/overlay"
)

// RenderOverlayPanel wraps the overlay canvas with a styled border.
// The canvas itself is drawn by the overlay package.
func RenderOverlayPanel(width, height int, canvas, legend string) string {
	content := canvas + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderLegend describes the scale of the overlay: how many millimetres one
// character cell spans horizontally at factor f.
func RenderLegend(width int, mode overlay.Mode, f float64, cell overlay.Cell) string {
	var label string
	if mode == overlay.Physical {
		label = "real size"
	} else {
		label = "largest selected sensor fits the canvas"
	}
	scale := ""
	if f > 0 {
		scale = fmt.Sprintf("  1 col = %.2f mm", cell.Width/f)
	}
	legend := StyleHelp.Render(label) + StyleSeparator.Render(scale)

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
