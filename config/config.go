// Package config holds the YAML style and layout configuration for rendered
// Gantt charts. Chart data (axes, tracks, content) is JSON and lives in the
// gantt package; this file only controls how that data looks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for SVG Gantt chart generation.
// This structure maps directly to YAML configuration files and controls:
//   - Font and color settings
//   - Canvas width and paddings around the content area
//   - Track geometry (default height, selector inset, task bar height)
//   - X axis behavior (clamping, nice domain, tick count, grid)
//   - Data point markers
//   - Output storage
//
// Values missing from a file keep their defaults from Default.
type Config struct {
	LogLevel int `yaml:"log_level"` // slog level: -4 debug, 0 info, 4 warn, 8 error

	Font    FontConfig    `yaml:"font"`
	Colors  ColorConfig   `yaml:"colors"`
	Layout  LayoutConfig  `yaml:"layout"`
	Track   TrackConfig   `yaml:"track"`
	Axis    AxisConfig    `yaml:"axis"`
	Marker  MarkerConfig  `yaml:"marker"`
	Storage StorageConfig `yaml:"storage"`
}

type FontConfig struct {
	Family string  `yaml:"family"` // Font family for all text elements (e.g., "Arial, sans-serif")
	Size   float64 `yaml:"size"`   // Font size in pixels, also used to measure track labels
}

type ColorConfig struct {
	Background       string `yaml:"background"`        // SVG background color
	Axis             string `yaml:"axis"`              // Axis lines and tick text
	Grid             string `yaml:"grid"`              // Grid lines
	Text             string `yaml:"text"`              // Track labels and axis label
	Selector         string `yaml:"selector"`          // Track selector fill
	SelectorSelected string `yaml:"selector_selected"` // Track selector fill when aria-selected="true"
	Activity         string `yaml:"activity"`          // Activity bar fill when the item has no color
	Task             string `yaml:"task"`              // Task bar fill when the item has no color
	TaskCompletion   string `yaml:"task_completion"`   // Fill of the completed part of a task
	DataPoint        string `yaml:"data_point"`        // Event marker fill when the item has no color
}

type LayoutConfig struct {
	Width         float64 `yaml:"width"`           // Total SVG width in pixels
	PaddingTop    float64 `yaml:"padding_top"`     // Top padding in pixels
	PaddingRight  float64 `yaml:"padding_right"`   // Right padding in pixels
	PaddingBottom float64 `yaml:"padding_bottom"`  // Bottom padding in pixels
	PaddingLeft   float64 `yaml:"padding_left"`    // Left padding in pixels
	XAxisHeight   float64 `yaml:"x_axis_height"`   // Space reserved above the content for the X axis
	MinYAxisWidth float64 `yaml:"min_y_axis_width"` // Lower bound for the track label column
	TickPadding   float64 `yaml:"tick_padding"`    // Gap between a tick label and the content area
}

type TrackConfig struct {
	DefaultHeight   float64 `yaml:"default_height"`   // Track height when a track has no dimension.trackHeight
	SelectorPadding float64 `yaml:"selector_padding"` // Inset of the track selector inside its track
	TaskBarHeight   float64 `yaml:"task_bar_height"`  // Height of a task bar, capped at the track height
	MinBarWidth     float64 `yaml:"min_bar_width"`    // Width of zero-duration activities and tasks
}

type AxisConfig struct {
	Clamp     bool `yaml:"clamp"`      // Clamp out-of-domain dates to the nearest edge
	Nice      bool `yaml:"nice"`       // Snap the X domain to round tick values
	TickCount int  `yaml:"tick_count"` // Approximate number of X ticks
	ShowGrid  bool `yaml:"show_grid"`  // Draw vertical and horizontal grid lines
}

type MarkerConfig struct {
	Shape string  `yaml:"shape"` // Default marker shape: "circle", "square", "diamond", "triangle", "cross"
	Size  float64 `yaml:"size"`  // Marker half size in pixels
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	OutputDir string `yaml:"output_dir"`

	// GCS storage options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

// Default returns the configuration used when no file is given.
// These defaults provide a good starting point for most charts:
//   - 1024px canvas with 10px paddings and a 40px X axis band
//   - 41px tracks with a 24px task bar
//   - clamped, niced X axis with about 6 ticks
//   - circle markers
func Default() *Config {
	return &Config{
		LogLevel: 0,
		Font: FontConfig{
			Family: "Arial, sans-serif",
			Size:   12,
		},
		Colors: ColorConfig{
			Background:       "#ffffff",
			Axis:             "#333333",
			Grid:             "#e6e6e6",
			Text:             "#1c1f21",
			Selector:         "#f5f5f5",
			SelectorSelected: "#d6e8f7",
			Activity:         "#a4d5f2",
			Task:             "#1c7ac5",
			TaskCompletion:   "#0d4f87",
			DataPoint:        "#4285f4",
		},
		Layout: LayoutConfig{
			Width:         1024,
			PaddingTop:    10,
			PaddingRight:  10,
			PaddingBottom: 10,
			PaddingLeft:   10,
			XAxisHeight:   40,
			MinYAxisWidth: 60,
			TickPadding:   8,
		},
		Track: TrackConfig{
			DefaultHeight:   41,
			SelectorPadding: 2,
			TaskBarHeight:   24,
			MinBarWidth:     4,
		},
		Axis: AxisConfig{
			Clamp:     true,
			Nice:      false,
			TickCount: 6,
			ShowGrid:  true,
		},
		Marker: MarkerConfig{
			Shape: "circle",
			Size:  6,
		},
		Storage: StorageConfig{
			Type:      "local",
			OutputDir: ".",
		},
	}
}

// Load loads configuration from a YAML file or returns the default config if
// no file is specified. Keys present in the file override the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects geometry that cannot produce a chart.
func (c *Config) Validate() error {
	if c.Layout.Width <= 0 {
		return fmt.Errorf("layout.width must be positive, got %v", c.Layout.Width)
	}
	if c.Track.DefaultHeight <= 0 {
		return fmt.Errorf("track.default_height must be positive, got %v", c.Track.DefaultHeight)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font.size must be positive, got %v", c.Font.Size)
	}
	switch c.Storage.Type {
	case "local", "gcs":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}
