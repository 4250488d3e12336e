// Package config holds the immutable runtime configuration shared by every cell
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vaxcell/parameter"
)

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "VAXCELL_"

// Verbosity levels accepted by the event sinks
const (
	VerbositySilent = 0
	VerbosityEvents = 1
	VerbosityRaw    = 2
)

// Config is built once at startup and shared read-only by all cells
// Bands is derived from the base bands and ColorSensitivity by Validate
type Config struct {
	ColorSensitivity int `env:"COLOR_SENSITIVITY"`
	MaxVariation     int `env:"MAX_VARIATION"`
	CertaintyLevel   int `env:"CERTAINTY_LEVEL"`
	// Durations use Go syntax in the environment: "2s", "1500ms"; a bare "2" is rejected
	InoculationDuration time.Duration `env:"INOCULATION_DURATION"`
	ImmuneFadeDuration  time.Duration `env:"IMMUNE_FADE_DURATION"`
	FadeFloor           float64       `env:"FADE_FLOOR"`
	Verbosity           int           `env:"VERBOSITY"`

	Audio Audio `envPrefix:"AUDIO_"`

	// Base bands before widening; not read from the environment
	Base  Bands
	Bands Bands
}

// Audio controls the transition cue player
type Audio struct {
	Enabled bool    `env:"ENABLED"`
	Volume  float64 `env:"VOLUME"`
}

// Default returns the calibrated defaults with bands already derived
func Default() *Config {
	cfg := &Config{
		ColorSensitivity:    parameter.ColorSensitivity,
		MaxVariation:        parameter.MaxVariation,
		CertaintyLevel:      parameter.CertaintyLevel,
		InoculationDuration: parameter.InoculationDuration,
		ImmuneFadeDuration:  parameter.ImmuneFadeDuration,
		FadeFloor:           parameter.FadeFloor,
		Verbosity:           VerbositySilent,
		Audio: Audio{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Base: DefaultBands(),
	}
	cfg.Bands = cfg.Base.Widen(cfg.ColorSensitivity)
	return cfg
}

// Load overlays environment variables on the defaults and validates the result
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment; nil reads the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := Default()
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the cells cannot run with and re-derives Bands
func (c *Config) Validate() error {
	if err := c.checkValues(); err != nil {
		return err
	}
	c.Bands = c.Base.Widen(c.ColorSensitivity)
	return nil
}

// Check is Validate without mutation; it also fails when Bands no longer
// matches Base widened by ColorSensitivity
func (c *Config) Check() error {
	if err := c.checkValues(); err != nil {
		return err
	}
	if c.Bands != c.Base.Widen(c.ColorSensitivity) {
		return errors.New("bands are stale, call Validate after changing sensitivity or base bands")
	}
	return nil
}

func (c *Config) checkValues() error {
	if c.ColorSensitivity < 0 {
		return errors.Errorf("color sensitivity must be >= 0, got %d", c.ColorSensitivity)
	}
	if c.MaxVariation < 0 {
		return errors.Errorf("max variation must be >= 0, got %d", c.MaxVariation)
	}
	if c.CertaintyLevel < 1 {
		return errors.Errorf("certainty level must be >= 1, got %d", c.CertaintyLevel)
	}
	if c.InoculationDuration <= 0 {
		return errors.Errorf("inoculation duration must be positive, got %v", c.InoculationDuration)
	}
	if c.ImmuneFadeDuration <= 0 {
		return errors.Errorf("immune fade duration must be positive, got %v", c.ImmuneFadeDuration)
	}
	if c.FadeFloor <= 0 || c.FadeFloor >= 1 {
		return errors.Errorf("fade floor must be in (0,1), got %g", c.FadeFloor)
	}
	if c.Verbosity < VerbositySilent || c.Verbosity > VerbosityRaw {
		return errors.Errorf("verbosity must be 0..2, got %d", c.Verbosity)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio volume must be in [0,1], got %g", c.Audio.Volume)
	}
	if err := c.Base.Validate(); err != nil {
		return errors.Wrap(err, "base bands")
	}
	return nil
}
