package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sensor-compare.klederson.com/internal/sensor"
)

// RenderDetailPanel renders the sensor detail overlay that replaces the
// overlay canvas. largestArea is the area of the biggest catalog sensor and
// scales the area bar.
func RenderDetailPanel(s *sensor.Sensor, selected bool, largestArea float64, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("SENSOR DETAIL")
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint

	sep := StyleSeparator.Render(strings.Repeat("-", innerW))

	lines := []string{titleLine, sep, ""}

	labelSty := lipgloss.NewStyle().Foreground(ColorMidGreen)
	valSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)

	aspect, ok := sensor.FormatAspectRatio(s)
	if !ok {
		aspect = sensor.Missing
	}
	state := "no"
	if selected {
		state = "yes"
	}

	fields := []struct{ label, value string }{
		{"Model", s.Model},
		{"Logo", sensor.LogoName(s.Logo)},
		{"Size", sensor.FormatDimensions(s) + " mm"},
		{"Aspect", aspect},
		{"Diagonal", sensor.FormatDiagonal(s) + " mm"},
		{"Area", sensor.FormatArea(s) + " mm2"},
		{"Resolution", sensor.FormatResolution(s)},
		{"Crop (S35)", sensor.FormatCropFactor(s)},
		{"Density", sensor.FormatDensity(s) + " px/mm2"},
		{"Anchor", string(s.Anchor)},
		{"Selected", state},
	}

	for _, f := range fields {
		label := labelSty.Render(fmt.Sprintf("  %-12s", f.label))
		lines = append(lines, label+valSty.Render(f.value))
	}

	lines = append(lines, "")

	barWidth := innerW - 22
	if barWidth < 10 {
		barWidth = 10
	}
	ratio := 0.0
	if largestArea > 0 {
		ratio = s.Area / largestArea
	}
	bar := renderAreaBar(ratio, barWidth)
	pct := valSty.Render(fmt.Sprintf(" %3.0f%%", ratio*100))
	lines = append(lines, labelSty.Render("  Area  ")+bar+pct)

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 && height > 2 {
		lines = lines[:height-2]
	}

	return StylePanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderAreaBar fills ratio (clamped to 0..1) of width cells.
func renderAreaBar(ratio float64, width int) string {
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	filledPart := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Render(strings.Repeat("|", filled))
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}
