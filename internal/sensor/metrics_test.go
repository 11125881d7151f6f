package sensor

import (
	"math"
	"testing"
)

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want string
	}{
		{"full frame", 36, 24, "36.00 x 24.00"},
		{"rounds to two decimals", 24.892, 18.666, "24.89 x 18.67"},
		{"small", 5.76, 4.29, "5.76 x 4.29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sensor{Width: tt.w, Height: tt.h}
			if got := FormatDimensions(s); got != tt.want {
				t.Errorf("FormatDimensions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAspectRatio(t *testing.T) {
	tests := []struct {
		name   string
		ratio  string
		want   string
		wantOK bool
	}{
		{"three by two", "3:2", "1.50:1", true},
		{"already normalized", "1.69:1", "1.69:1", true},
		{"resolution ratio", "4608:3164", "1.46:1", true},
		{"spaces", " 16 : 9 ", "1.78:1", true},
		{"empty", "", "", false},
		{"no colon", "1.78", "", false},
		{"too many parts", "1:2:3", "", false},
		{"zero denominator", "4:0", "", false},
		{"not a number", "a:b", "", false},
		{"zero numerator", "0:1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatAspectRatio(&Sensor{AspectRatio: tt.ratio})
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FormatAspectRatio(%q) = (%q, %v), want (%q, %v)", tt.ratio, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAspectRatioValue(t *testing.T) {
	v, ok := AspectRatioValue(&Sensor{AspectRatio: "4:3"})
	if !ok || math.Abs(v-4.0/3.0) > 1e-12 {
		t.Errorf("AspectRatioValue(4:3) = (%v, %v)", v, ok)
	}
}

func TestFormatResolution(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"known", 4608, 3164, "4608 x 3164"},
		{"missing", 0, 0, Missing},
		{"one axis missing", 4096, 0, Missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResolution(&Sensor{ResolutionX: tt.x, ResolutionY: tt.y}); got != tt.want {
				t.Errorf("FormatResolution() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDensity(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		want    string
	}{
		{"grouped", 27101, "27,101"},
		{"fraction kept", 14692.5, "14,692.5"},
		{"small", 950, "950"},
		{"missing", 0, Missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDensity(&Sensor{PhotositeDensity: tt.density}); got != tt.want {
				t.Errorf("FormatDensity(%v) = %q, want %q", tt.density, got, tt.want)
			}
		})
	}
}

func TestFormatCropFactor(t *testing.T) {
	tests := []struct {
		crop float64
		want string
	}{
		{0.72, "0.72"},
		{1, "1"},
		{2.14, "2.14"},
		{0, Missing},
	}
	for _, tt := range tests {
		if got := FormatCropFactor(&Sensor{CropFactor: tt.crop}); got != tt.want {
			t.Errorf("FormatCropFactor(%v) = %q, want %q", tt.crop, got, tt.want)
		}
	}
}

func TestFormatAreaDiagonal(t *testing.T) {
	s := &Sensor{Width: 36, Height: 24, Area: 864, Diagonal: 43.2666}
	if got := FormatArea(s); got != "864.00" {
		t.Errorf("FormatArea() = %q", got)
	}
	if got := FormatDiagonal(s); got != "43.27" {
		t.Errorf("FormatDiagonal() = %q", got)
	}
	if got := FormatWidth(s) + "/" + FormatHeight(s); got != "36.00/24.00" {
		t.Errorf("FormatWidth/FormatHeight = %q", got)
	}
}

func TestAnchorAlignment(t *testing.T) {
	tests := []struct {
		anchor  Anchor
		items   Align
		justify Align
		valid   bool
	}{
		{"top-left", AlignStart, AlignStart, true},
		{"top-center", AlignStart, AlignCenter, true},
		{"top-right", AlignStart, AlignEnd, true},
		{"bottom-left", AlignEnd, AlignStart, true},
		{"bottom-center", AlignEnd, AlignCenter, true},
		{"bottom-right", AlignEnd, AlignEnd, true},
		{"middle", AlignEnd, AlignEnd, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			if got := tt.anchor.AlignItems(); got != tt.items {
				t.Errorf("AlignItems() = %q, want %q", got, tt.items)
			}
			if got := tt.anchor.JustifyContent(); got != tt.justify {
				t.Errorf("JustifyContent() = %q, want %q", got, tt.justify)
			}
			if got := tt.anchor.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestLogoName(t *testing.T) {
	if got := LogoName("Blackmagic"); got != "Blackmagic Design" {
		t.Errorf("LogoName(Blackmagic) = %q", got)
	}
	if got := LogoName("Kodak"); got != "Kodak" {
		t.Errorf("LogoName(Kodak) = %q, want raw key", got)
	}
	if got := LogoAsset("red"); got != "red.png" {
		t.Errorf("LogoAsset(red) = %q", got)
	}
}
