package sensor

import "strings"

type logoInfo struct {
	name  string
	asset string
}

// logoTable maps lowercase logo keys to a display name and artwork file.
var logoTable = map[string]logoInfo{
	"analog":     {"Analog", "analog.svg"},
	"arri":       {"ARRI", "arri.svg"},
	"canon":      {"Canon", "canon.svg"},
	"red":        {"RED", "red.png"},
	"blackmagic": {"Blackmagic Design", "blackmagic.svg"},
	"panasonic":  {"Panasonic", "panasonic.svg"},
	"panavision": {"Panavision", "panavision.svg"},
	"sony":       {"Sony", "sony.svg"},
}

// LogoName returns a human-readable manufacturer name, falling back to the
// raw key for unknown logos.
func LogoName(logo string) string {
	if info, ok := logoTable[strings.ToLower(logo)]; ok {
		return info.name
	}
	return logo
}

// LogoAsset returns the artwork file for a logo, or "" if there is none.
func LogoAsset(logo string) string {
	return logoTable[strings.ToLower(logo)].asset
}
