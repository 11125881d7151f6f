package compare

import (
	"slices"
	"testing"

	"sensor-compare.klederson.com/internal/sensor"
)

// testCatalog has two logos with two sensors each; A and D are defaults.
func testCatalog(t *testing.T) *sensor.Catalog {
	t.Helper()
	c, err := sensor.New([]sensor.Sensor{
		{Model: "A", Logo: "x", Width: 36, Height: 24, Default: true, AspectRatio: "3:2",
			ResolutionX: 6000, ResolutionY: 4000, CropFactor: 0.72, PhotositeDensity: 27778},
		{Model: "B", Logo: "x", Width: 17.3, Height: 13, AspectRatio: "4:3"},
		{Model: "C", Logo: "y", Width: 24.89, Height: 18.66, CropFactor: 1,
			ResolutionX: 4096, ResolutionY: 3072},
		{Model: "D", Logo: "y", Width: 36, Height: 20, AspectRatio: "16:9", Default: true},
	})
	if err != nil {
		t.Fatalf("sensor.New: %v", err)
	}
	return c
}

func models(list []*sensor.Sensor) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Model
	}
	return out
}

func TestToggleLogoExample(t *testing.T) {
	c, err := sensor.New([]sensor.Sensor{
		{Model: "A", Logo: "x", Width: 36, Height: 24, Default: true},
		{Model: "B", Logo: "x", Width: 17.3, Height: 13},
	})
	if err != nil {
		t.Fatal(err)
	}
	sel := NewSelection(c)
	if got := models(sel.Sensors()); !slices.Equal(got, []string{"A"}) {
		t.Fatalf("initial selection = %v, want [A]", got)
	}

	sel.ToggleLogo("x")
	if got := models(sel.Sensors()); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("after first ToggleLogo = %v, want [A B]", got)
	}
	sel.ToggleLogo("x")
	if sel.Len() != 0 {
		t.Errorf("after second ToggleLogo = %v, want empty", models(sel.Sensors()))
	}
}

func TestToggleLogo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Selection)
		logo  string
		want  []string
	}{
		{
			name: "partial group becomes full",
			logo: "y",
			want: []string{"A", "C", "D"},
		},
		{
			name:  "full group is cleared",
			setup: func(s *Selection) { s.Toggle(2) },
			logo:  "y",
			want:  []string{"A"},
		},
		{
			name:  "empty group becomes full",
			setup: func(s *Selection) { s.Clear() },
			logo:  "x",
			want:  []string{"A", "B"},
		},
		{
			name: "unknown logo leaves selection alone",
			logo: "z",
			want: []string{"A", "D"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(testCatalog(t))
			if tt.setup != nil {
				tt.setup(sel)
			}
			sel.ToggleLogo(tt.logo)
			if got := models(sel.Sensors()); !slices.Equal(got, tt.want) {
				t.Errorf("ToggleLogo(%q) = %v, want %v", tt.logo, got, tt.want)
			}
		})
	}
}

func TestToggleLogoTwiceFromFullOrEmpty(t *testing.T) {
	sel := NewSelection(testCatalog(t))
	sel.Clear()
	sel.ToggleLogo("y")
	sel.ToggleLogo("y")
	if sel.Len() != 0 {
		t.Errorf("empty -> full -> empty failed: %v", models(sel.Sensors()))
	}
}

func TestToggle(t *testing.T) {
	sel := NewSelection(testCatalog(t))
	sel.Toggle(2)
	if !sel.Contains(2) {
		t.Error("Toggle(2) did not select C")
	}
	if got := sel.Insertion(); !slices.Equal(got, []int{0, 3, 2}) {
		t.Errorf("Insertion() = %v, want [0 3 2]", got)
	}
	if got := sel.Indices(); !slices.Equal(got, []int{0, 2, 3}) {
		t.Errorf("Indices() = %v, want [0 2 3]", got)
	}
	if got := models(sel.Sensors()); !slices.Equal(got, []string{"A", "C", "D"}) {
		t.Errorf("Sensors() = %v, want catalog order", got)
	}

	sel.Toggle(0)
	if sel.Contains(0) {
		t.Error("Toggle(0) did not deselect A")
	}

	sel.Toggle(-1)
	sel.Toggle(99)
	if sel.Len() != 2 {
		t.Errorf("out-of-range toggles changed the selection: %v", sel.Indices())
	}
}

func TestLogoState(t *testing.T) {
	sel := NewSelection(testCatalog(t))
	if n, total := sel.LogoState("y"); n != 1 || total != 2 {
		t.Errorf("LogoState(y) = %d/%d, want 1/2", n, total)
	}
}

func TestRebind(t *testing.T) {
	sel := NewSelection(testCatalog(t))
	next, err := sensor.New([]sensor.Sensor{
		{Model: "D", Logo: "y", Width: 36, Height: 20},
		{Model: "E", Logo: "z", Width: 10, Height: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	sel.Rebind(next)
	if got := models(sel.Sensors()); !slices.Equal(got, []string{"D"}) {
		t.Errorf("after Rebind = %v, want [D]", got)
	}
	if got := sel.Indices(); !slices.Equal(got, []int{0}) {
		t.Errorf("Indices() after Rebind = %v, want [0]", got)
	}
}
