package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sensor-compare.klederson.com/internal/compare"
)

// TableState holds what the sensor table needs besides its rows.
type TableState struct {
	Title      string
	Cursor     int
	Sort       compare.SortState
	Sortable   bool   // All table: headers carry hotkeys and sort arrows
	Groups     bool   // logo cell only on the first row of each group
	SearchLine string // prerendered search input, empty to hide
	Active     bool
}

const (
	colCheck = iota
	colLogo
	colModel
)

// RenderSensorTable renders a scrollable table of sensor rows. The header
// stays fixed; only the body scrolls so the cursor row is always visible.
func RenderSensorTable(rows []compare.Row, width, height int, st TableState) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render(fmt.Sprintf("%s [%d]", st.Title, len(rows)))
	header := []string{title, StyleSeparator.Render(strings.Repeat("-", innerW))}
	if st.SearchLine != "" {
		header = append(header, st.SearchLine)
	}

	innerH := height - 2
	// Table chrome: top border, header row, header separator, bottom border.
	bodyH := innerH - len(header) - 4
	if bodyH < 1 {
		bodyH = 1
	}

	viewStart := 0
	if st.Cursor >= bodyH {
		viewStart = st.Cursor - bodyH + 1
	}
	viewEnd := viewStart + bodyH
	if viewEnd > len(rows) {
		viewEnd = len(rows)
	}

	var body string
	if len(rows) == 0 {
		body = StyleHelp.Render(" No sensors...")
	} else {
		body = buildTable(rows[viewStart:viewEnd], viewStart, innerW, st).String()
	}

	lines := append(header, strings.Split(body, "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	panel := StylePanelBorder
	if st.Active {
		panel = StylePanelActive
	}
	rendered := panel.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))

	// lipgloss Height() only sets a minimum; clamp overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	return strings.Join(outLines, "\n")
}

func buildTable(rows []compare.Row, offset, width int, st TableState) *table.Table {
	headers := []string{"", "Logo", "Model"}
	for _, c := range compare.Columns {
		h := c.Title
		if st.Sortable {
			h = c.Hotkey + ":" + h
			if st.Sort.Sorts(c) {
				h += " " + sortArrow(st.Sort.Direction)
			}
		}
		headers = append(headers, h)
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = rowCells(r, st.Groups)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleTableBorder).
		BorderColumn(false).
		Width(width).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTableHeader
			}
			if row < 0 || row >= len(rows) {
				return StyleTableCell
			}
			if offset+row == st.Cursor {
				return cursorRowSty
			}
			switch {
			case col == colLogo:
				return StyleTableLogo
			case rows[row].Selected:
				return StyleTableSelected
			}
			return StyleTableCell
		})
}

func rowCells(r compare.Row, groups bool) []string {
	check := "[ ]"
	if r.Selected {
		check = "[x]"
	}
	logo := r.LogoName
	if groups && r.GroupSpan == 0 {
		logo = ""
	}
	ar := r.AspectRatio
	if ar == "" {
		ar = "-"
	}
	return []string{
		check, logo, r.Model,
		r.Dimensions, ar, r.Diagonal, r.Area, r.Resolution, r.CropFactor, r.Density,
	}
}

func sortArrow(d compare.Direction) string {
	if d == compare.Desc {
		return "v"
	}
	return "^"
}

// RenderSearchLine renders the search input line above the All table.
func RenderSearchLine(input string, active bool) string {
	if active {
		return " " + StyleFilterActive.Render("/") + input
	}
	if input == "" {
		return " " + StyleFilterInactive.Render("/ search")
	}
	return " " + StyleFilterInactive.Render("/"+input) + StyleHelp.Render("  [esc] clear")
}
