package sensor

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"sensor-compare.klederson.com/internal/config"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrEmptyModel         = errors.New("sensor model is empty")
	ErrDuplicateModel     = errors.New("duplicate sensor model")
	ErrInvalidDimensions  = errors.New("sensor width and height must be positive")
	ErrInvalidAnchor      = errors.New("invalid sensor anchor")
	ErrMetricMismatch     = errors.New("stored metric disagrees with width/height")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
)

// Catalog is the immutable, validated list of known sensors. It is built
// once and never mutated afterwards.
type Catalog struct {
	sensors []Sensor
	byModel map[string]int
}

type catalogFile struct {
	Sensors []Sensor `yaml:"sensors"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Sensors)
}

// New validates the given sensors and builds a catalog from a copy of them.
// Missing area and diagonal are computed; stored ones must agree with the
// dimensions within config.MetricTolerance.
func New(sensors []Sensor) (*Catalog, error) {
	c := &Catalog{
		sensors: make([]Sensor, len(sensors)),
		byModel: make(map[string]int, len(sensors)),
	}
	for i, s := range sensors {
		if err := normalize(&s); err != nil {
			return nil, fmt.Errorf("sensor %d (%q): %w", i, s.Model, err)
		}
		if _, ok := c.byModel[s.Model]; ok {
			return nil, fmt.Errorf("sensor %d: %w: %q", i, ErrDuplicateModel, s.Model)
		}
		s.Index = i
		c.sensors[i] = s
		c.byModel[s.Model] = i
	}
	return c, nil
}

func normalize(s *Sensor) error {
	if s.Model == "" {
		return ErrEmptyModel
	}
	if !(s.Width > 0) || !(s.Height > 0) || math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		return ErrInvalidDimensions
	}
	if s.Anchor == "" {
		s.Anchor = DefaultAnchor
	} else if !s.Anchor.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAnchor, s.Anchor)
	}
	if s.AspectRatio != "" {
		if _, ok := AspectRatioValue(s); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s.AspectRatio)
		}
	}

	if s.Diagonal == 0 {
		s.Diagonal = s.ComputedDiagonal()
	} else if !agrees(s.Diagonal, s.ComputedDiagonal()) {
		return fmt.Errorf("%w: diagonal %.2f, computed %.2f", ErrMetricMismatch, s.Diagonal, s.ComputedDiagonal())
	}
	if s.Area == 0 {
		s.Area = s.ComputedArea()
	} else if !agrees(s.Area, s.ComputedArea()) {
		return fmt.Errorf("%w: area %.2f, computed %.2f", ErrMetricMismatch, s.Area, s.ComputedArea())
	}
	return nil
}

func agrees(stored, computed float64) bool {
	tol := math.Max(config.MetricTolerance, computed*config.MetricRelTolerance)
	return math.Abs(stored-computed) <= tol
}

// Len returns the number of sensors.
func (c *Catalog) Len() int {
	return len(c.sensors)
}

// Get returns the sensor at catalog position i.
func (c *Catalog) Get(i int) *Sensor {
	return &c.sensors[i]
}

// Sensors returns a copy of all sensors in catalog order.
func (c *Catalog) Sensors() []Sensor {
	out := make([]Sensor, len(c.sensors))
	copy(out, c.sensors)
	return out
}

// ByModel looks a sensor up by its model name.
func (c *Catalog) ByModel(model string) (*Sensor, bool) {
	i, ok := c.byModel[model]
	if !ok {
		return nil, false
	}
	return &c.sensors[i], true
}

// Logos returns the distinct logo keys in order of first appearance.
func (c *Catalog) Logos() []string {
	seen := make(map[string]bool)
	var logos []string
	for _, s := range c.sensors {
		if !seen[s.Logo] {
			seen[s.Logo] = true
			logos = append(logos, s.Logo)
		}
	}
	return logos
}

// CountLogo returns how many sensors carry the given logo.
func (c *Catalog) CountLogo(logo string) int {
	n := 0
	for _, s := range c.sensors {
		if s.Logo == logo {
			n++
		}
	}
	return n
}

// Defaults returns the catalog indices of sensors marked as pre-selected.
func (c *Catalog) Defaults() []int {
	var idx []int
	for _, s := range c.sensors {
		if s.Default {
			idx = append(idx, s.Index)
		}
	}
	return idx
}
