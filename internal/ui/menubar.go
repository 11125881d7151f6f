package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sensor-compare.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, catalogSize int, allTable bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"/", "search"},
		{"R", "eal size"},
		{"I", "nch"},
		{"E", "xport"},
		{"?", "help"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	table := "SELECTED"
	if allTable {
		table = "ALL"
	}
	right := StyleStatusMode.Render(table) + "  " +
		StyleMenuLabel.Render(fmt.Sprintf("Catalog: %d", catalogSize)) + " "

	left := StyleMenuKey.Render(title) + menu.String()

	gap := width - StyleMenuBar.GetHorizontalPadding() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
