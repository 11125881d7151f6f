package compare

import (
	"encoding/json"
	"errors"
	"fmt"

	"sensor-compare.klederson.com/internal/logging"
	"sensor-compare.klederson.com/internal/overlay"
	"sensor-compare.klederson.com/internal/sensor"
)

var ErrUnknownSensor = errors.New("unknown sensor")

// Session is the interaction state of one comparison view: selection, sort,
// search and display mode. It has a single writer; every mutation is
// followed by a call to View before the next input is handled.
type Session struct {
	catalog   *sensor.Catalog
	selection *Selection
	sort      SortState
	search    string
	display   Display

	// lastPhysical is the most recent usable real-size factor, reused while
	// the screen-size input is being edited. Zero when there was none.
	lastPhysical float64
}

// NewSession starts a session with the default selection, catalog order, an
// empty search and proportional mode. screenInches prefills the screen-size
// field.
func NewSession(c *sensor.Catalog, screenInches float64) *Session {
	s := &Session{
		catalog:   c,
		selection: NewSelection(c),
	}
	s.SetScreenSize(FormatScreenSize(screenInches))
	return s
}

// Reload swaps in a new catalog. Selected sensors are matched by model and
// dropped when they no longer exist.
func (s *Session) Reload(c *sensor.Catalog) {
	s.selection.Rebind(c)
	s.catalog = c
}

// Catalog returns the catalog the session compares.
func (s *Session) Catalog() *sensor.Catalog { return s.catalog }

// Selection exposes the selection for read access.
func (s *Session) Selection() *Selection { return s.selection }

// Sort returns the current sort state.
func (s *Session) Sort() SortState { return s.sort }

// Search returns the raw search input.
func (s *Session) Search() string { return s.search }

// Display returns the display-mode state.
func (s *Session) Display() Display { return s.display }

// ToggleSensor flips the selection state of the named sensor.
func (s *Session) ToggleSensor(model string) error {
	sn, ok := s.catalog.ByModel(model)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSensor, model)
	}
	s.selection.Toggle(sn.Index)
	logging.L().Debug("toggle sensor", "model", model, "selected", s.selection.Contains(sn.Index))
	return nil
}

// ToggleIndex flips the selection state of the sensor at catalog index i.
func (s *Session) ToggleIndex(i int) {
	s.selection.Toggle(i)
}

// ToggleLogo selects or deselects a whole manufacturer group.
func (s *Session) ToggleLogo(logo string) {
	s.selection.ToggleLogo(logo)
	sel, total := s.selection.LogoState(logo)
	logging.L().Debug("toggle logo", "logo", logo, "selected", sel, "total", total)
}

// ChangeSort cycles the sort state for a header click.
func (s *Session) ChangeSort(col Column) {
	s.sort = s.sort.Cycle(col)
	logging.L().Debug("change sort", "column", col.Name, "direction", s.sort.Direction.String())
}

// SetSort replaces the sort state. A secondary key or direction without a
// primary key is dropped.
func (s *Session) SetSort(st SortState) {
	if !st.Active() {
		st = SortState{}
	} else if st.Direction == DirNone {
		st.Direction = Asc
	}
	s.sort = st
}

// SetSearch stores the raw search input.
func (s *Session) SetSearch(q string) { s.search = q }

// ClearSearch empties the search input.
func (s *Session) ClearSearch() { s.search = "" }

// SetRealPhysicalSize switches between proportional and real-size mode.
func (s *Session) SetRealPhysicalSize(on bool) { s.display.RealPhysicalSize = on }

// ToggleRealPhysicalSize flips real-size mode.
func (s *Session) ToggleRealPhysicalSize() { s.display.RealPhysicalSize = !s.display.RealPhysicalSize }

// SetScreenSize stores the screen-size input as typed and reports whether
// it parsed. An unusable input is kept so the user can continue editing.
func (s *Session) SetScreenSize(input string) bool {
	v, ok := ParseScreenSize(input)
	s.display.ScreenInput = input
	s.display.ScreenInches = v
	s.display.ScreenValid = ok
	if !ok {
		logging.L().Debug("unusable screen size", "input", input)
	}
	return ok
}

// Mode returns the overlay mode implied by the display state.
func (s *Session) Mode() overlay.Mode {
	if s.display.RealPhysicalSize {
		return overlay.Physical
	}
	return overlay.Proportional
}

// View is the render-ready state of a session.
type View struct {
	Mode        overlay.Mode  `json:"mode"`
	Factor      float64       `json:"factor"`
	FactorValid bool          `json:"factorValid"`
	Boxes       []overlay.Box `json:"boxes"`
	Selected    []Row         `json:"selected"`
	All         []Row         `json:"all"`
	Sort        SortState     `json:"sort"`
	Search      string        `json:"search"`
	Display     Display       `json:"display"`
}

// View recomputes everything derived from the session for a canvas and a
// screen measured diagonalPx pixels across. In real-size mode an unusable
// screen size reuses the last good factor, or 1 if there was none.
func (s *Session) View(vp overlay.Viewport, diagonalPx float64) View {
	selected := s.selection.Sensors()
	mode := s.Mode()
	f, ok := overlay.Factor(mode, selected, vp, overlay.Screen{
		DiagonalInches: s.display.ScreenInches,
		DiagonalPx:     diagonalPx,
	})
	if mode == overlay.Physical {
		if ok {
			s.lastPhysical = f
		} else if s.lastPhysical > 0 {
			f = s.lastPhysical
		}
	}

	all := s.catalog.Sensors()
	boxes := overlay.Layout(all, s.selection.Contains, f, vp)

	listed := FilterSort(Pointers(s.catalog), s.search, s.sort)
	allRows := Rows(listed, s.selection.Contains)
	if !s.sort.Active() {
		MarkGroups(allRows)
	}

	return View{
		Mode:        mode,
		Factor:      f,
		FactorValid: ok,
		Boxes:       boxes,
		Selected:    Rows(selected, func(int) bool { return true }),
		All:         allRows,
		Sort:        s.sort,
		Search:      s.search,
		Display:     s.display,
	}
}

// MarshalJSON writes the sort state with key and direction names.
func (st SortState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Primary   string `json:"primary,omitempty"`
		Secondary string `json:"secondary,omitempty"`
		Direction string `json:"direction,omitempty"`
	}{st.Primary.String(), st.Secondary.String(), st.Direction.String()})
}
