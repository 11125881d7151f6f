package sensor

import (
	"math"
	"strings"
)

// Align is a flexbox-style alignment used to place a model label inside its box.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Anchor names the corner or edge a label sticks to, e.g. "top-left" or
// "bottom-center". Only the vertical prefix and horizontal suffix matter.
type Anchor string

// DefaultAnchor is used for sensors whose catalog entry has no anchor.
const DefaultAnchor Anchor = "bottom-center"

// AlignItems returns the vertical label alignment: top anchors align to the
// start of the box, everything else to the end.
func (a Anchor) AlignItems() Align {
	if strings.HasPrefix(strings.ToLower(string(a)), "top") {
		return AlignStart
	}
	return AlignEnd
}

// JustifyContent returns the horizontal label alignment.
func (a Anchor) JustifyContent() Align {
	s := strings.ToLower(string(a))
	if strings.HasSuffix(s, "left") {
		return AlignStart
	}
	if strings.HasSuffix(s, "center") {
		return AlignCenter
	}
	return AlignEnd
}

// Valid reports whether the anchor is one of {top,bottom} x {left,center,right}.
func (a Anchor) Valid() bool {
	s := strings.ToLower(string(a))
	if !strings.HasPrefix(s, "top") && !strings.HasPrefix(s, "bottom") {
		return false
	}
	return strings.HasSuffix(s, "left") || strings.HasSuffix(s, "center") || strings.HasSuffix(s, "right")
}

// Sensor is one image-sensor format. Zero values in the optional numeric
// fields mean "not known".
type Sensor struct {
	Model     string `yaml:"model" json:"model"`
	Logo      string `yaml:"logo" json:"logo"`
	Color     string `yaml:"color" json:"color"`
	TextColor string `yaml:"textColor" json:"textColor"`

	Width    float64 `yaml:"width" json:"width"`       // mm
	Height   float64 `yaml:"height" json:"height"`     // mm
	Diagonal float64 `yaml:"diagonal" json:"diagonal"` // mm
	Area     float64 `yaml:"area" json:"area"`         // mm²

	AspectRatio      string  `yaml:"aspectRatio" json:"aspectRatio"`
	ResolutionX      int     `yaml:"resolutionX" json:"resolutionX,omitempty"`
	ResolutionY      int     `yaml:"resolutionY" json:"resolutionY,omitempty"`
	CropFactor       float64 `yaml:"cropFactor" json:"cropFactor,omitempty"`
	PhotositeDensity float64 `yaml:"photositeDensity" json:"photositeDensity,omitempty"`

	Anchor  Anchor `yaml:"anchor" json:"anchor"`
	Default bool   `yaml:"default" json:"default"`

	// Index is the position in the catalog, assigned at load time.
	Index int `yaml:"-" json:"index"`
}

// HasResolution reports whether both resolution axes are known.
func (s *Sensor) HasResolution() bool {
	return s.ResolutionX > 0 && s.ResolutionY > 0
}

// DisplayName returns "logo model", the label drawn on the overlay.
func (s *Sensor) DisplayName() string {
	if s.Logo == "" {
		return s.Model
	}
	return s.Logo + " " + s.Model
}

// ComputedDiagonal returns sqrt(width² + height²).
func (s *Sensor) ComputedDiagonal() float64 {
	return math.Hypot(s.Width, s.Height)
}

// ComputedArea returns width * height.
func (s *Sensor) ComputedArea() float64 {
	return s.Width * s.Height
}
