package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ScreenSettings describes the physical display used for real-size mode.
type ScreenSettings struct {
	WidthPx        int     `yaml:"width_px"`
	HeightPx       int     `yaml:"height_px"`
	DiagonalInches float64 `yaml:"diagonal_inches"` // 0 = derive from DPI
}

// CellSettings is the pixel size of one terminal character cell.
type CellSettings struct {
	WidthPx  int `yaml:"width_px"`
	HeightPx int `yaml:"height_px"`
}

type ServerSettings struct {
	Addr            string `yaml:"addr"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
}

type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Settings is the top-level structure for sensor-compare.yaml.
type Settings struct {
	Catalog   string         `yaml:"catalog"` // empty = embedded catalog
	ExportDir string         `yaml:"export_dir"`
	Screen    ScreenSettings `yaml:"screen"`
	Cell      CellSettings   `yaml:"cell"`
	Server    ServerSettings `yaml:"server"`
	Log       LogSettings    `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		ExportDir: ".",
		Screen: ScreenSettings{
			WidthPx:  DefaultScreenWidthPx,
			HeightPx: DefaultScreenHeightPx,
		},
		Cell: CellSettings{
			WidthPx:  CellWidthPx,
			HeightPx: CellHeightPx,
		},
		Server: ServerSettings{
			Addr:            DefaultAddr,
			ReadTimeoutSec:  int(DefaultReadTimeout.Seconds()),
			WriteTimeoutSec: int(DefaultWriteTimeout.Seconds()),
		},
		Log: LogSettings{Level: "info"},
	}
}

// LoadSettings reads and parses a settings file on top of Default, then
// applies environment overrides. An empty path skips the file.
func LoadSettings(path string) (*Settings, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}
	cfg.Catalog = getEnv("SENSOR_COMPARE_CATALOG", cfg.Catalog)
	cfg.Server.Addr = getEnv("SENSOR_COMPARE_ADDR", cfg.Server.Addr)
	cfg.Server.ReadTimeoutSec = getEnvAsInt("SENSOR_COMPARE_READ_TIMEOUT", cfg.Server.ReadTimeoutSec)
	cfg.Server.WriteTimeoutSec = getEnvAsInt("SENSOR_COMPARE_WRITE_TIMEOUT", cfg.Server.WriteTimeoutSec)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise divide by zero later on.
func (s *Settings) Validate() error {
	if s.Screen.WidthPx <= 0 || s.Screen.HeightPx <= 0 {
		return errors.New("settings: screen size must be positive")
	}
	if s.Screen.DiagonalInches < 0 {
		return errors.New("settings: screen diagonal must not be negative")
	}
	if s.Cell.WidthPx <= 0 || s.Cell.HeightPx <= 0 {
		return errors.New("settings: cell size must be positive")
	}
	return nil
}

// ScreenDiagonalPx returns the screen diagonal in pixels.
func (s *Settings) ScreenDiagonalPx() float64 {
	return math.Hypot(float64(s.Screen.WidthPx), float64(s.Screen.HeightPx))
}

// ScreenDiagonalInches returns the configured diagonal, or one derived from
// the pixel diagonal at DefaultScreenDPI.
func (s *Settings) ScreenDiagonalInches() float64 {
	if s.Screen.DiagonalInches > 0 {
		return s.Screen.DiagonalInches
	}
	return s.ScreenDiagonalPx() / DefaultScreenDPI
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
