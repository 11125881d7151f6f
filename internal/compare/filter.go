package compare

import (
	"strings"

	"golang.org/x/text/cases"

	"sensor-compare.klederson.com/internal/sensor"
)

// NormalizeQuery trims and case-folds a search string.
func NormalizeQuery(q string) string {
	return cases.Fold().String(strings.TrimSpace(q))
}

// Filter keeps sensors whose model or logo contains the query, ignoring
// case. An empty query keeps everything. Catalog order is preserved.
func Filter(all []*sensor.Sensor, query string) []*sensor.Sensor {
	q := NormalizeQuery(query)
	out := make([]*sensor.Sensor, 0, len(all))
	if q == "" {
		return append(out, all...)
	}
	fold := cases.Fold()
	for _, s := range all {
		if strings.Contains(fold.String(s.Model), q) || strings.Contains(fold.String(s.Logo), q) {
			out = append(out, s)
		}
	}
	return out
}

// FilterSort applies Filter, then Sort.
func FilterSort(all []*sensor.Sensor, query string, st SortState) []*sensor.Sensor {
	return Sort(Filter(all, query), st)
}

// Pointers returns pointers into the catalog in catalog order.
func Pointers(c *sensor.Catalog) []*sensor.Sensor {
	out := make([]*sensor.Sensor, c.Len())
	for i := range out {
		out[i] = c.Get(i)
	}
	return out
}
