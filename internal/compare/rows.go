package compare

import "sensor-compare.klederson.com/internal/sensor"

// Row is one table line of display-ready metrics.
type Row struct {
	Index    int    `json:"index"`
	Model    string `json:"model"`
	Logo     string `json:"logo"`
	LogoName string `json:"logoName"`
	Selected bool   `json:"selected"`

	Width       string `json:"width"`
	Height      string `json:"height"`
	Dimensions  string `json:"dimensions"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	Diagonal    string `json:"diagonal"`
	Area        string `json:"area"`
	Resolution  string `json:"resolution"`
	CropFactor  string `json:"cropFactor"`
	Density     string `json:"density"`

	// GroupSpan is set on the first row of each logo group while the table
	// is in catalog order: the number of rows carrying that logo.
	GroupSpan int `json:"groupSpan,omitempty"`
}

// NewRow derives the display metrics of s.
func NewRow(s *sensor.Sensor, selected bool) Row {
	ar, _ := sensor.FormatAspectRatio(s)
	return Row{
		Index:       s.Index,
		Model:       s.Model,
		Logo:        s.Logo,
		LogoName:    sensor.LogoName(s.Logo),
		Selected:    selected,
		Width:       sensor.FormatWidth(s),
		Height:      sensor.FormatHeight(s),
		Dimensions:  sensor.FormatDimensions(s),
		AspectRatio: ar,
		Diagonal:    sensor.FormatDiagonal(s),
		Area:        sensor.FormatArea(s),
		Resolution:  sensor.FormatResolution(s),
		CropFactor:  sensor.FormatCropFactor(s),
		Density:     sensor.FormatDensity(s),
	}
}

// Rows builds rows for list, marking selected ones.
func Rows(list []*sensor.Sensor, selected func(index int) bool) []Row {
	rows := make([]Row, len(list))
	for i, s := range list {
		rows[i] = NewRow(s, selected(s.Index))
	}
	return rows
}

// MarkGroups sets GroupSpan on the first row of every logo to the number
// of rows with that logo.
func MarkGroups(rows []Row) {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Logo]++
	}
	seen := make(map[string]bool)
	for i := range rows {
		if !seen[rows[i].Logo] {
			seen[rows[i].Logo] = true
			rows[i].GroupSpan = counts[rows[i].Logo]
		}
	}
}
