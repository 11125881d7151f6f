package compare

import (
	"math"
	"strconv"
	"strings"
)

// Display holds the real-size toggle and the screen-size text field.
type Display struct {
	RealPhysicalSize bool    `json:"realPhysicalSize"`
	ScreenInput      string  `json:"screenInput"`
	ScreenInches     float64 `json:"screenInches"` // 0 while ScreenInput is unusable
	ScreenValid      bool    `json:"screenValid"`
}

// ParseScreenSize reads a screen diagonal in inches as typed by a user. A
// comma is accepted as decimal separator. Empty, non-numeric, non-finite
// and non-positive inputs are rejected.
func ParseScreenSize(input string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// FormatScreenSize renders inches the way the input field is prefilled.
func FormatScreenSize(inches float64) string {
	return strconv.FormatFloat(inches, 'f', 1, 64)
}
