package sensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Missing is shown for metrics the catalog does not know.
const Missing = "-"

var printer = message.NewPrinter(language.English)

// FormatDimensions returns "W x H" with two decimals each.
func FormatDimensions(s *Sensor) string {
	return fmt.Sprintf("%.2f x %.2f", s.Width, s.Height)
}

// FormatWidth returns the width with two decimals.
func FormatWidth(s *Sensor) string {
	return strconv.FormatFloat(s.Width, 'f', 2, 64)
}

// FormatHeight returns the height with two decimals.
func FormatHeight(s *Sensor) string {
	return strconv.FormatFloat(s.Height, 'f', 2, 64)
}

// AspectRatioValue parses the "N:M" aspect ratio into N/M. It returns false
// when the field is empty or malformed.
func AspectRatioValue(s *Sensor) (float64, bool) {
	return parseRatio(s.AspectRatio)
}

func parseRatio(ratio string) (float64, bool) {
	parts := strings.Split(ratio, ":")
	if len(parts) != 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || m == 0 {
		return 0, false
	}
	v := n / m
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// FormatAspectRatio normalizes the aspect ratio to "x.xx:1". The second
// result is false when there is nothing sensible to show.
func FormatAspectRatio(s *Sensor) (string, bool) {
	v, ok := AspectRatioValue(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f:1", v), true
}

// FormatResolution returns "X x Y" or Missing.
func FormatResolution(s *Sensor) string {
	if !s.HasResolution() {
		return Missing
	}
	return fmt.Sprintf("%d x %d", s.ResolutionX, s.ResolutionY)
}

// FormatDensity returns the photosite density with English digit grouping.
func FormatDensity(s *Sensor) string {
	if s.PhotositeDensity == 0 {
		return Missing
	}
	return printer.Sprintf("%v", number.Decimal(s.PhotositeDensity, number.MaxFractionDigits(3)))
}

// FormatCropFactor returns the crop factor as stored, or Missing.
func FormatCropFactor(s *Sensor) string {
	if s.CropFactor == 0 {
		return Missing
	}
	return strconv.FormatFloat(s.CropFactor, 'f', -1, 64)
}

// FormatArea returns the stored area with two decimals.
func FormatArea(s *Sensor) string {
	return strconv.FormatFloat(s.Area, 'f', 2, 64)
}

// FormatDiagonal returns the stored diagonal with two decimals.
func FormatDiagonal(s *Sensor) string {
	return strconv.FormatFloat(s.Diagonal, 'f', 2, 64)
}
