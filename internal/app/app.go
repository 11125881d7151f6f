package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/export"
	"sensor-compare.klederson.com/internal/logging"
	"sensor-compare.klederson.com/internal/overlay"
	"sensor-compare.klederson.com/internal/sensor"
	"sensor-compare.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	session     *compare.Session
	settings    *config.Settings
	cell        overlay.Cell
	largestArea float64
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeScreen
)

// AppModel is the root Bubble Tea model for the sensor comparison TUI.
type AppModel struct {
	width  int
	height int

	allTable bool
	cursor   int
	detail   bool
	input    inputMode
	message  string

	search     textinput.Model
	screen     textinput.Model
	screenPrev string
	keys       keyMap
	help       help.Model

	shared *shared

	// Cached view, recomputed after every change.
	view compare.View
}

// New creates an AppModel over a catalog with the default selection.
func New(c *sensor.Catalog, settings *config.Settings) AppModel {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "model or logo"
	search.CharLimit = 64

	screen := textinput.New()
	screen.Prompt = ""
	screen.CharLimit = 8

	largest := 0.0
	for _, s := range c.Sensors() {
		if s.Area > largest {
			largest = s.Area
		}
	}

	m := AppModel{
		allTable: true,
		search:   search,
		screen:   screen,
		keys:     defaultKeys(),
		help:     help.New(),
		shared: &shared{
			session:  compare.NewSession(c, settings.ScreenDiagonalInches()),
			settings: settings,
			cell: overlay.Cell{
				Width:  float64(settings.Cell.WidthPx),
				Height: float64(settings.Cell.HeightPx),
			},
			largestArea: largest,
		},
	}
	m.refresh()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.input {
		case modeSearch:
			return m.handleSearchKey(msg)
		case modeScreen:
			return m.handleScreenKey(msg)
		}
		return m.handleKey(msg)

	case ExportedMsg:
		if msg.Err != nil {
			logging.L().Error("export failed", "err", msg.Err)
			m.message = "export failed: " + msg.Err.Error()
		} else {
			logging.L().Info("exported sensors", "path", msg.Path)
			m.message = "exported " + msg.Path
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	s := m.shared.session
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		switch {
		case m.detail:
			m.detail = false
		case m.help.ShowAll:
			m.help.ShowAll = false
		case s.Search() != "":
			s.ClearSearch()
			m.search.SetValue("")
			m.refresh()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		if len(rows) > 0 {
			m.cursor = len(rows) - 1
		}

	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.current(); ok {
			s.ToggleIndex(r.Index)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Logo):
		if r, ok := m.current(); ok {
			s.ToggleLogo(r.Logo)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Switch):
		m.allTable = !m.allTable
		m.cursor = 0
		m.detail = false

	case key.Matches(msg, m.keys.Sort):
		if col, ok := compare.ColumnByHotkey(msg.String()); ok {
			s.ChangeSort(col)
			m.allTable = true
			m.refresh()
		}

	case key.Matches(msg, m.keys.Search):
		m.input = modeSearch
		m.allTable = true
		m.search.SetValue(s.Search())
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.RealSize):
		s.ToggleRealPhysicalSize()
		m.refresh()

	case key.Matches(msg, m.keys.Screen):
		m.input = modeScreen
		m.screenPrev = s.Display().ScreenInput
		m.screen.SetValue(m.screenPrev)
		m.screen.CursorEnd()
		return m, m.screen.Focus()

	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.shared.settings.ExportDir, rows)

	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.current(); ok {
			m.detail = !m.detail
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleSearchKey edits the search field. The table filters as the user
// types; enter keeps the query and esc clears it.
func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.input = modeNormal
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.input = modeNormal
		m.search.Blur()
		m.search.SetValue("")
		m.shared.session.ClearSearch()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.shared.session.SetSearch(m.search.Value())
	m.cursor = 0
	m.refresh()
	return m, cmd
}

// handleScreenKey edits the screen diagonal. Every keystroke is applied so
// the real-size overlay follows the input; esc restores the previous value.
func (m AppModel) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.input = modeNormal
		m.screen.Blur()
		return m, nil
	case tea.KeyEsc:
		m.input = modeNormal
		m.screen.Blur()
		m.shared.session.SetScreenSize(m.screenPrev)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	m.shared.session.SetScreenSize(m.screen.Value())
	m.refresh()
	return m, cmd
}

// layout splits the body between the overlay panel and the table panel.
func (m AppModel) layout() (overlayH, tableH int) {
	bodyH := m.height - 2
	if bodyH < 10 {
		bodyH = 10
	}
	overlayH = bodyH * 45 / 100
	if overlayH < 6 {
		overlayH = 6
	}
	return overlayH, bodyH - overlayH
}

// canvasSize is the overlay grid inside the panel border, minus the legend.
func (m AppModel) canvasSize() (cols, rows int) {
	overlayH, _ := m.layout()
	cols = m.width - 4
	rows = overlayH - 3
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (m *AppModel) refresh() {
	cols, rows := m.canvasSize()
	vp := overlay.CanvasViewport(cols, rows, m.shared.cell)
	m.view = m.shared.session.View(vp, m.shared.settings.ScreenDiagonalPx())

	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n == 0 {
		m.detail = false
	}
}

func (m AppModel) rows() []compare.Row {
	if m.allTable {
		return m.view.All
	}
	return m.view.Selected
}

func (m AppModel) current() (compare.Row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return compare.Row{}, false
	}
	return rows[m.cursor], true
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return fmt.Sprintf("Initializing %s...", config.AppName)
	}

	overlayH, tableH := m.layout()
	s := m.shared.session
	c := s.Catalog()

	menuBar := ui.RenderMenuBar(m.width, c.Len(), m.allTable)

	var top string
	if r, ok := m.current(); ok && m.detail {
		top = ui.RenderDetailPanel(c.Get(r.Index), r.Selected, m.shared.largestArea, m.width, overlayH)
	} else {
		cols, rows := m.canvasSize()
		canvas := overlay.Render(cols, rows, m.shared.cell, m.view.Boxes, c.Sensors())
		legend := ui.RenderLegend(cols, m.view.Mode, m.view.Factor, m.shared.cell)
		top = ui.RenderOverlayPanel(m.width, overlayH, canvas, legend)
	}

	var bottom string
	if m.help.ShowAll {
		bottom = ui.StylePanelActive.Width(m.width - 2).Height(tableH - 2).Render(m.help.View(m.keys))
	} else {
		st := ui.TableState{
			Title:  "SELECTED SENSORS",
			Cursor: m.cursor,
			Sort:   m.view.Sort,
			Active: !m.detail,
		}
		if m.allTable {
			st.Title = "ALL SENSORS"
			st.Sortable = true
			st.Groups = !m.view.Sort.Active()
			if m.input == modeSearch {
				st.SearchLine = ui.RenderSearchLine(m.search.View(), true)
			} else {
				st.SearchLine = ui.RenderSearchLine(m.view.Search, false)
			}
		}
		bottom = ui.RenderSensorTable(m.rows(), m.width, tableH, st)
	}

	info := ui.StatusInfo{
		Mode:        m.view.Mode,
		Factor:      m.view.Factor,
		FactorValid: m.view.FactorValid,
		Selected:    len(m.view.Selected),
		Total:       c.Len(),
		Screen:      m.view.Display,
		Sort:        m.view.Sort,
		Message:     m.message,
	}
	if m.input == modeScreen {
		info.Screen.ScreenInput = m.screen.View()
		info.Message = "enter to keep, esc to cancel"
	}
	statusBar := ui.RenderStatusBar(m.width, info)

	return ui.ComposeLayout(menuBar, top, bottom, statusBar)
}

func exportCmd(dir string, rows []compare.Row) tea.Cmd {
	rows = append([]compare.Row(nil), rows...)
	return func() tea.Msg {
		path, err := export.ExportFile(dir, rows)
		return ExportedMsg{Path: path, Err: err}
	}
}
