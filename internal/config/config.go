// Package config provides the tunable settings of the ray caster.
// Settings are loaded from a JSON file on top of built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/scene"
)

// Config holds all settings
type Config struct {
	Window   WindowConfig   `json:"window"`
	Viewer   ViewerConfig   `json:"viewer"`
	Schedule ScheduleConfig `json:"schedule"`
	Minimap  MinimapConfig  `json:"minimap"`

	// Draw the ray fan and hit markers in the top-down view
	ShowRays bool `json:"show_rays"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// ViewerConfig defines the ray fan and how it moves
type ViewerConfig struct {
	FOV        int     `json:"fov"`     // Field of view in whole degrees
	StartX     float64 `json:"start_x"` // Initial position
	StartY     float64 `json:"start_y"`
	Speed      float64 `json:"speed"`       // Pixels per second along the forward ray
	RotateStep float64 `json:"rotate_step"` // Radians per tick while a turn key is held
}

// ScheduleConfig defines how the two maps alternate
type ScheduleConfig struct {
	StartOnB bool    `json:"start_on_b"`
	Period   float64 `json:"period"` // Seconds between switches, 0 disables switching
	Lead     float64 `json:"lead"`   // Seconds of flicker before each switch
	Rate     float64 `json:"rate"`   // Flicker steps per second
}

// MinimapConfig places the minimap in the top-right corner
type MinimapConfig struct {
	Enabled bool    `json:"enabled"`
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	schedule := scene.DefaultSchedule()
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "DOOM",
			Resizable: true,
		},
		Viewer: ViewerConfig{
			FOV:        raycast.DefaultFOV,
			StartX:     100,
			StartY:     150,
			Speed:      90,
			RotateStep: 0.02,
		},
		Schedule: ScheduleConfig{
			StartOnB: schedule.Start == scene.VariantB,
			Period:   schedule.Period,
			Lead:     schedule.Lead,
			Rate:     schedule.Rate,
		},
		Minimap: MinimapConfig{
			Enabled: true,
			Scale:   0.25,
			OffsetX: 20,
			OffsetY: 20,
		},
		ShowRays: true,
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the settings for values the renderer cannot work with
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Viewer.FOV <= 0 || c.Viewer.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be between 1 and 179 degrees, got %d", c.Viewer.FOV))
	}
	if c.Viewer.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %g", c.Viewer.Speed))
	}
	if c.Schedule.Period < 0 || c.Schedule.Lead < 0 || c.Schedule.Rate < 0 {
		errs = append(errs, errors.New("schedule values must not be negative"))
	}
	if c.Schedule.Period > 0 && c.Schedule.Lead > c.Schedule.Period {
		errs = append(errs, fmt.Errorf("flicker lead %g exceeds period %g", c.Schedule.Lead, c.Schedule.Period))
	}
	if c.Minimap.Scale <= 0 || c.Minimap.Scale > 1 {
		errs = append(errs, fmt.Errorf("minimap scale must be in (0, 1], got %g", c.Minimap.Scale))
	}

	return errors.Join(errs...)
}

// MapSchedule converts the schedule settings for the scene package
func (c *Config) MapSchedule() scene.Schedule {
	start := scene.VariantA
	if c.Schedule.StartOnB {
		start = scene.VariantB
	}
	return scene.Schedule{
		Start:  start,
		Period: c.Schedule.Period,
		Lead:   c.Schedule.Lead,
		Rate:   c.Schedule.Rate,
	}
}

// StartPosition returns where the viewer is created
func (c *Config) StartPosition() raycast.Point {
	return raycast.Point{X: c.Viewer.StartX, Y: c.Viewer.StartY}
}
