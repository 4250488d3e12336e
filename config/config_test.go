package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	if cfg.CertaintyLevel != 6 || cfg.MaxVariation != 5 {
		t.Errorf("unexpected filter defaults: certainty=%d variation=%d", cfg.CertaintyLevel, cfg.MaxVariation)
	}
	if cfg.InoculationDuration != 2*time.Second || cfg.ImmuneFadeDuration != 6*time.Second {
		t.Errorf("unexpected durations: %v %v", cfg.InoculationDuration, cfg.ImmuneFadeDuration)
	}

	// Sensitivity 1 widens the red R band 30..42 to 29..43
	if got := cfg.Bands.Red[0]; got != (Band{29, 43}) {
		t.Errorf("expected widened red R band {29 43}, got %v", got)
	}
	if got := cfg.Base.Red[0]; got != (Band{30, 42}) {
		t.Errorf("base band should stay unwidened, got %v", got)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"VAXCELL_COLOR_SENSITIVITY":    "3",
		"VAXCELL_CERTAINTY_LEVEL":      "4",
		"VAXCELL_INOCULATION_DURATION": "500ms",
		"VAXCELL_FADE_FLOOR":           "0.25",
		"VAXCELL_VERBOSITY":            "2",
		"VAXCELL_AUDIO_ENABLED":        "false",
	})
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.ColorSensitivity != 3 {
		t.Errorf("expected sensitivity 3, got %d", cfg.ColorSensitivity)
	}
	if cfg.CertaintyLevel != 4 {
		t.Errorf("expected certainty 4, got %d", cfg.CertaintyLevel)
	}
	if cfg.InoculationDuration != 500*time.Millisecond {
		t.Errorf("expected 500ms inoculation, got %v", cfg.InoculationDuration)
	}
	if cfg.FadeFloor != 0.25 {
		t.Errorf("expected fade floor 0.25, got %g", cfg.FadeFloor)
	}
	if cfg.Verbosity != VerbosityRaw {
		t.Errorf("expected verbosity 2, got %d", cfg.Verbosity)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio disabled")
	}

	// Untouched values keep their defaults
	if cfg.MaxVariation != 5 {
		t.Errorf("expected default max variation, got %d", cfg.MaxVariation)
	}
	if cfg.ImmuneFadeDuration != 6*time.Second {
		t.Errorf("expected default fade duration, got %v", cfg.ImmuneFadeDuration)
	}

	// Bands follow the overridden sensitivity
	if got := cfg.Bands.Green[1]; got != (Band{22, 33}) {
		t.Errorf("expected green G band {22 33}, got %v", got)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	_, err := LoadFrom(map[string]string{"VAXCELL_CERTAINTY_LEVEL": "many"})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("expected wrapped parse error, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative sensitivity", func(c *Config) { c.ColorSensitivity = -1 }, "sensitivity"},
		{"negative variation", func(c *Config) { c.MaxVariation = -1 }, "variation"},
		{"zero window", func(c *Config) { c.CertaintyLevel = 0 }, "certainty"},
		{"zero inoculation", func(c *Config) { c.InoculationDuration = 0 }, "inoculation"},
		{"negative fade", func(c *Config) { c.ImmuneFadeDuration = -time.Second }, "fade duration"},
		{"floor zero", func(c *Config) { c.FadeFloor = 0 }, "fade floor"},
		{"floor one", func(c *Config) { c.FadeFloor = 1 }, "fade floor"},
		{"verbosity", func(c *Config) { c.Verbosity = 3 }, "verbosity"},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }, "volume"},
		{"empty band", func(c *Config) { c.Base.White[0] = Band{Lo: 12, Hi: 10} }, "white band channel r is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}

			cfg = Default()
			tt.mutate(cfg)
			if err := cfg.Check(); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Check: expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckDetectsStaleBands(t *testing.T) {
	cfg := Default()
	if err := cfg.Check(); err != nil {
		t.Fatalf("default config should pass Check: %v", err)
	}

	cfg.ColorSensitivity = 3
	before := cfg.Bands
	if err := cfg.Check(); err == nil || !strings.Contains(err.Error(), "stale") {
		t.Errorf("expected stale bands error, got %v", err)
	}
	if cfg.Bands != before {
		t.Error("Check must not re-derive bands")
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("bands re-derived by Validate should pass Check: %v", err)
	}
}

func TestLoadFromDurationsNeedUnits(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"VAXCELL_IMMUNE_FADE_DURATION": "6"}); err == nil {
		t.Error("bare number should be rejected as a duration")
	}
	cfg, err := LoadFrom(map[string]string{"VAXCELL_IMMUNE_FADE_DURATION": "6s"})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.ImmuneFadeDuration != 6*time.Second {
		t.Errorf("expected 6s, got %v", cfg.ImmuneFadeDuration)
	}
}

func TestToleranceMatch(t *testing.T) {
	tol := Tolerance{{0, 4}, {25, 30}, {17, 28}}

	if !tol.Match(0, 25, 28) {
		t.Error("inclusive bounds should match")
	}
	if tol.Match(5, 25, 28) {
		t.Error("R=5 is outside 0..4")
	}
	if tol.Match(2, 31, 20) {
		t.Error("G=31 is outside 25..30")
	}
}
