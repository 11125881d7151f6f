package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/config"
)

// Header is the column order of exported tables.
var Header = []string{
	"logo", "model", "selected",
	"width_mm", "height_mm", "aspect_ratio", "diagonal_mm", "area_mm2",
	"resolution_px", "crop_factor_s35", "density_px_mm2",
}

func record(r compare.Row) []string {
	sel := "false"
	if r.Selected {
		sel = "true"
	}
	return []string{
		r.Logo, r.Model, sel,
		r.Width, r.Height, r.AspectRatio, r.Diagonal, r.Area,
		r.Resolution, r.CropFactor, r.Density,
	}
}

// WriteRows writes a header line followed by one line per row.
func WriteRows(w io.Writer, rows []compare.Row) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("csv write %s: %w", r.Model, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return bw.Flush()
}

// ExportFile writes rows to a new file in dir and returns its path. The
// name carries a short random suffix so repeated exports never collide.
func ExportFile(dir string, rows []compare.Row) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("%s-%s.csv", config.ExportPrefix, uuid.NewString()[:8])
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv create %s: %w", path, err)
	}
	if err := WriteRows(f, rows); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("csv close %s: %w", path, err)
	}
	return path, nil
}
