package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/overlay"
)

// StatusInfo is what the status bar reports about the current view.
type StatusInfo struct {
	Mode        overlay.Mode
	Factor      float64
	FactorValid bool
	Selected    int
	Total       int
	Screen      compare.Display
	Sort        compare.SortState
	Message     string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st StatusInfo) string {
	var mode string
	if st.Mode == overlay.Physical {
		mode = StyleStatusRealSize.Render("[REAL SIZE]")
	} else {
		mode = StyleStatusMode.Render("[FIT]")
	}

	factor := fmt.Sprintf(" %.2f px/mm", st.Factor)
	if !st.FactorValid {
		factor = StyleStatusError.Render(factor + "?")
	}

	screen := fmt.Sprintf("  Screen: %sin", st.Screen.ScreenInput)
	if !st.Screen.ScreenValid {
		screen = StyleStatusError.Render(screen)
	}

	sortLabel := "catalog"
	if st.Sort.Active() {
		sortLabel = st.Sort.Primary.String() + " " + st.Sort.Direction.String()
	}

	info := fmt.Sprintf("  Selected: %d/%d  Sort: %s", st.Selected, st.Total, sortLabel)
	content := mode + factor + screen + StyleStatusBar.Foreground(ColorGreen).Render(info)
	if st.Message != "" {
		content += "  " + StyleFilterActive.Render(st.Message)
	}

	gap := width - StyleStatusBar.GetHorizontalPadding() - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
