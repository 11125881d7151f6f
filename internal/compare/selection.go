package compare

import (
	"slices"

	"sensor-compare.klederson.com/internal/sensor"
)

// Selection is the subset of the catalog shown in the overlay and the
// Selected table. Members are catalog indices kept in insertion order;
// Sensors returns them in catalog order.
type Selection struct {
	catalog *sensor.Catalog
	order   []int
}

// NewSelection starts with every sensor flagged as default.
func NewSelection(c *sensor.Catalog) *Selection {
	return &Selection{
		catalog: c,
		order:   c.Defaults(),
	}
}

// Contains reports whether the sensor at catalog index i is selected.
func (s *Selection) Contains(i int) bool {
	return slices.Contains(s.order, i)
}

// Len returns the number of selected sensors.
func (s *Selection) Len() int {
	return len(s.order)
}

// Toggle removes the sensor if it is selected, otherwise appends it.
func (s *Selection) Toggle(i int) {
	if i < 0 || i >= s.catalog.Len() {
		return
	}
	if pos := slices.Index(s.order, i); pos >= 0 {
		s.order = slices.Delete(s.order, pos, pos+1)
		return
	}
	s.order = append(s.order, i)
}

// ToggleLogo selects every sensor of a manufacturer, or deselects all of
// them when the whole group is already selected. A partial group becomes
// fully selected, so two calls never leave a mixed state behind.
func (s *Selection) ToggleLogo(logo string) {
	selected := 0
	for _, i := range s.order {
		if s.catalog.Get(i).Logo == logo {
			selected++
		}
	}
	allSelected := selected == s.catalog.CountLogo(logo)

	without := s.order[:0:0]
	for _, i := range s.order {
		if s.catalog.Get(i).Logo != logo {
			without = append(without, i)
		}
	}
	if !allSelected {
		for j := 0; j < s.catalog.Len(); j++ {
			if s.catalog.Get(j).Logo == logo {
				without = append(without, j)
			}
		}
	}
	s.order = without
}

// LogoState reports how many sensors of a logo are selected and how many
// exist in the catalog.
func (s *Selection) LogoState(logo string) (selected, total int) {
	for _, i := range s.order {
		if s.catalog.Get(i).Logo == logo {
			selected++
		}
	}
	return selected, s.catalog.CountLogo(logo)
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.order = nil
}

// Insertion returns the selected catalog indices in the order they were
// selected.
func (s *Selection) Insertion() []int {
	return slices.Clone(s.order)
}

// Indices returns the selected catalog indices in catalog order.
func (s *Selection) Indices() []int {
	idx := slices.Clone(s.order)
	slices.Sort(idx)
	return idx
}

// Sensors returns the selected sensors in catalog order.
func (s *Selection) Sensors() []*sensor.Sensor {
	idx := s.Indices()
	out := make([]*sensor.Sensor, len(idx))
	for k, i := range idx {
		out[k] = s.catalog.Get(i)
	}
	return out
}

// Rebind moves the selection onto a reloaded catalog, keeping sensors whose
// model still exists and dropping the rest.
func (s *Selection) Rebind(c *sensor.Catalog) {
	kept := make([]int, 0, len(s.order))
	for _, i := range s.order {
		if ns, ok := c.ByModel(s.catalog.Get(i).Model); ok {
			kept = append(kept, ns.Index)
		}
	}
	s.catalog = c
	s.order = kept
}
