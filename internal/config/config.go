package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Window   WindowConfig
	Chart    ChartConfig
	Defaults DefaultsConfig
	Limits   LimitsConfig
	Log      LogConfig

	// File is the config file that was read, empty when none was found.
	File string
}

// WindowConfig holds the initial window size
type WindowConfig struct {
	Width  float32
	Height float32
}

// ChartConfig holds the pixel size of rendered plots
type ChartConfig struct {
	Width  int
	Height int
}

// DefaultsConfig holds the values the input fields start with
type DefaultsConfig struct {
	Temperatures  string
	WavelengthMin float64
	WavelengthMax float64
	Samples       int
	Spacing       string
}

// LimitsConfig bounds what the input panel accepts
type LimitsConfig struct {
	MinSamples int
	MaxSamples int
	MaxCurves  int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level zerolog.Level
}

// Load reads configuration from defaults, an optional planckplot.yaml and
// PLANCKPLOT_* environment variables. An empty path searches the user config
// directory and the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 900)
	v.SetDefault("window.height", 700)
	v.SetDefault("chart.width", 1024)
	v.SetDefault("chart.height", 640)
	v.SetDefault("defaults.temperatures", "288.0")
	v.SetDefault("defaults.wavelength_min", 5.0e-6)
	v.SetDefault("defaults.wavelength_max", 20.0e-6)
	v.SetDefault("defaults.samples", 300)
	v.SetDefault("defaults.spacing", "linear")
	v.SetDefault("limits.min_samples", 100)
	v.SetDefault("limits.max_samples", 100000)
	v.SetDefault("limits.max_curves", 12)
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("planckplot")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "planckplot"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Environment variables override file values
	v.SetEnvPrefix("PLANCKPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	level, err := zerolog.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	cfg := &Config{
		Window: WindowConfig{
			Width:  float32(v.GetFloat64("window.width")),
			Height: float32(v.GetFloat64("window.height")),
		},
		Chart: ChartConfig{
			Width:  v.GetInt("chart.width"),
			Height: v.GetInt("chart.height"),
		},
		Defaults: DefaultsConfig{
			Temperatures:  v.GetString("defaults.temperatures"),
			WavelengthMin: v.GetFloat64("defaults.wavelength_min"),
			WavelengthMax: v.GetFloat64("defaults.wavelength_max"),
			Samples:       v.GetInt("defaults.samples"),
			Spacing:       v.GetString("defaults.spacing"),
		},
		Limits: LimitsConfig{
			MinSamples: v.GetInt("limits.min_samples"),
			MaxSamples: v.GetInt("limits.max_samples"),
			MaxCurves:  v.GetInt("limits.max_curves"),
		},
		Log:  LogConfig{Level: level},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the limits are usable.
func (c *Config) Validate() error {
	switch {
	case c.Limits.MinSamples < 2:
		return fmt.Errorf("limits.min_samples must be at least 2, got %d", c.Limits.MinSamples)
	case c.Limits.MaxSamples < c.Limits.MinSamples:
		return fmt.Errorf("limits.max_samples (%d) is below limits.min_samples (%d)", c.Limits.MaxSamples, c.Limits.MinSamples)
	case c.Limits.MaxCurves < 1:
		return fmt.Errorf("limits.max_curves must be at least 1, got %d", c.Limits.MaxCurves)
	case c.Chart.Width <= 0 || c.Chart.Height <= 0:
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	}
	return nil
}
