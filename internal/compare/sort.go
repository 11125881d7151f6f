package compare

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"sensor-compare.klederson.com/internal/sensor"
)

var ErrUnknownColumn = errors.New("unknown sort column")

// SortKey names a sortable sensor field.
type SortKey int

const (
	KeyNone SortKey = iota
	KeyWidth
	KeyHeight
	KeyAspectRatio
	KeyDiagonal
	KeyArea
	KeyResolutionX
	KeyResolutionY
	KeyCropFactor
	KeyDensity
)

var keyNames = map[SortKey]string{
	KeyWidth:       "width",
	KeyHeight:      "height",
	KeyAspectRatio: "aspectRatio",
	KeyDiagonal:    "diagonal",
	KeyArea:        "area",
	KeyResolutionX: "resolutionX",
	KeyResolutionY: "resolutionY",
	KeyCropFactor:  "cropFactor",
	KeyDensity:     "photositeDensity",
}

func (k SortKey) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return ""
}

// Value returns the field behind k. The second result is false when the
// sensor does not carry the field.
func (k SortKey) Value(s *sensor.Sensor) (float64, bool) {
	switch k {
	case KeyWidth:
		return s.Width, true
	case KeyHeight:
		return s.Height, true
	case KeyAspectRatio:
		return sensor.AspectRatioValue(s)
	case KeyDiagonal:
		return s.Diagonal, true
	case KeyArea:
		return s.Area, true
	case KeyResolutionX:
		return float64(s.ResolutionX), s.ResolutionX > 0
	case KeyResolutionY:
		return float64(s.ResolutionY), s.ResolutionY > 0
	case KeyCropFactor:
		return s.CropFactor, s.CropFactor > 0
	case KeyDensity:
		return s.PhotositeDensity, s.PhotositeDensity > 0
	}
	return 0, false
}

// Direction is the sort order of the All table.
type Direction int

const (
	DirNone Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	}
	return ""
}

// ParseDirection accepts "asc", "desc" or "".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DirNone, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return DirNone, fmt.Errorf("unknown sort direction %q", s)
}

// Column is a sortable table header. Some headers stand for two fields,
// e.g. Dimensions sorts by width, then height.
type Column struct {
	Name   string
	Title  string
	Key    SortKey
	Key2   SortKey
	Hotkey string
}

// Columns lists the sortable headers of the All table in display order.
var Columns = []Column{
	{Name: "dimensions", Title: "Dimensions (mm)", Key: KeyWidth, Key2: KeyHeight, Hotkey: "1"},
	{Name: "aspectRatio", Title: "Aspect Ratio", Key: KeyAspectRatio, Hotkey: "2"},
	{Name: "diagonal", Title: "Diagonal (mm)", Key: KeyDiagonal, Hotkey: "3"},
	{Name: "area", Title: "Area (mm²)", Key: KeyArea, Hotkey: "4"},
	{Name: "resolution", Title: "Resolution (px)", Key: KeyResolutionX, Key2: KeyResolutionY, Hotkey: "5"},
	{Name: "cropFactor", Title: "Crop Factor (S35)", Key: KeyCropFactor, Hotkey: "6"},
	{Name: "density", Title: "Density (px/mm²)", Key: KeyDensity, Hotkey: "7"},
}

// ColumnByName finds a column by its name or by its primary key name,
// case-insensitively.
func ColumnByName(name string) (Column, error) {
	for _, c := range Columns {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Key.String(), name) {
			return c, nil
		}
	}
	return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// ColumnByHotkey finds the column bound to a key press.
func ColumnByHotkey(k string) (Column, bool) {
	for _, c := range Columns {
		if c.Hotkey == k {
			return c, true
		}
	}
	return Column{}, false
}

// SortState is the All table ordering. The zero value means catalog order.
type SortState struct {
	Primary   SortKey
	Secondary SortKey
	Direction Direction
}

// Active reports whether any sort is applied.
func (st SortState) Active() bool {
	return st.Primary != KeyNone
}

// Sorts reports whether the column is the current primary sort.
func (st SortState) Sorts(col Column) bool {
	return st.Active() && st.Primary == col.Key
}

// Cycle advances the state for a click on col: a new column sorts
// ascending, then descending, then back to catalog order.
func (st SortState) Cycle(col Column) SortState {
	if st.Primary != col.Key {
		return SortState{Primary: col.Key, Secondary: col.Key2, Direction: Asc}
	}
	if st.Direction == Asc {
		return SortState{Primary: col.Key, Secondary: col.Key2, Direction: Desc}
	}
	return SortState{}
}

// Sort returns a stably sorted copy of list. Both keys use the same
// direction. Sensors missing a key value go last in either direction.
func Sort(list []*sensor.Sensor, st SortState) []*sensor.Sensor {
	out := slices.Clone(list)
	if !st.Active() {
		return out
	}
	dir := 1
	if st.Direction == Desc {
		dir = -1
	}
	slices.SortStableFunc(out, func(a, b *sensor.Sensor) int {
		if c := compareKey(st.Primary, a, b, dir); c != 0 {
			return c
		}
		if st.Secondary != KeyNone {
			return compareKey(st.Secondary, a, b, dir)
		}
		return 0
	})
	return out
}

func compareKey(k SortKey, a, b *sensor.Sensor, dir int) int {
	va, oka := k.Value(a)
	vb, okb := k.Value(b)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return 1
	case !okb:
		return -1
	case va < vb:
		return -dir
	case va > vb:
		return dir
	}
	return 0
}
