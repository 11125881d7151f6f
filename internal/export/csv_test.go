package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/sensor"
)

func sampleRows() []compare.Row {
	a := &sensor.Sensor{Model: "Alexa 35", Logo: "ARRI", Width: 27.99, Height: 19.22, Area: 537.97, Diagonal: 33.95,
		AspectRatio: "4608:3164", ResolutionX: 4608, ResolutionY: 3164, PhotositeDensity: 27101, CropFactor: 0.92}
	b := &sensor.Sensor{Model: "Super 16, 3-perf", Logo: "Analog", Width: 12.52, Height: 7.41, Area: 92.77, Diagonal: 14.55}
	return []compare.Row{compare.NewRow(a, true), compare.NewRow(b, false)}
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRows(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteRows() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(Header, ",") {
		t.Errorf("header = %v", records[0])
	}

	tests := []struct {
		name string
		rec  []string
		want []string
	}{
		{
			name: "full metrics",
			rec:  records[1],
			want: []string{"ARRI", "Alexa 35", "true", "27.99", "19.22", "1.46:1", "33.95", "537.97", "4608 x 3164", "0.92", "27,101"},
		},
		{
			name: "missing metrics and a comma in the model",
			rec:  records[2],
			want: []string{"Analog", "Super 16, 3-perf", "false", "12.52", "7.41", "", "14.55", "92.77", "-", "-", "-"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Join(tt.rec, "|") != strings.Join(tt.want, "|") {
				t.Errorf("record = %q, want %q", tt.rec, tt.want)
			}
		})
	}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportFile(dir, sampleRows())
	if err != nil {
		t.Fatalf("ExportFile() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not in %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "sensors-") || filepath.Ext(path) != ".csv" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "logo,model,selected") {
		t.Errorf("file starts with %q", string(data[:20]))
	}

	other, err := ExportFile(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if other == path {
		t.Error("two exports wrote the same file")
	}
}

func TestExportFileMissingDir(t *testing.T) {
	if _, err := ExportFile(filepath.Join(t.TempDir(), "nope", "deeper"), nil); err == nil {
		t.Error("ExportFile() into a missing directory should fail")
	}
}
