package config

import "time"

const (
	// Physical units
	MmPerInch = 25.4

	// Screen defaults, used when the real display cannot be measured
	DefaultScreenWidthPx  = 1920
	DefaultScreenHeightPx = 1080
	DefaultScreenDPI      = 96.0 // CSS reference pixel density

	// Terminal cell size in screen pixels (chars are ~2:1 tall)
	CellWidthPx  = 8
	CellHeightPx = 16

	// Comparison canvas (HTTP clients without their own bounds)
	CanvasOffset = 50  // horizontal margin on each side
	CanvasHeight = 700 // fixed canvas height

	// Catalog validation: stored area/diagonal must be within
	// max(MetricTolerance, computed*MetricRelTolerance) of the computed value
	MetricTolerance    = 0.01
	MetricRelTolerance = 0.005

	// HTTP server
	DefaultAddr         = ":3000"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second

	// Export
	ExportPrefix = "sensors"

	// App
	AppName    = "SENSOR-COMPARE"
	AppVersion = "1.0"
)
