package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, the overlay panel, the sensor table and
// the status bar.
func ComposeLayout(menuBar, overlayPanel, tablePanel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, overlayPanel, tablePanel, statusBar)
}
