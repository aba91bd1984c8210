package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Particle.Lifetime != 60 {
		t.Errorf("expected Lifetime 60, got %d", cfg.Particle.Lifetime)
	}
	if cfg.Emission.Mode != ModeDynamic {
		t.Errorf("expected dynamic emission, got %q", cfg.Emission.Mode)
	}
	if cfg.Color.Base != "#ff0001" {
		t.Errorf("expected base colour #ff0001, got %q", cfg.Color.Base)
	}
	if cfg.Screen.FPS != 60 {
		t.Errorf("expected FPS 60, got %d", cfg.Screen.FPS)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Emission.Thresholds[0] = 999
	cp.Emission.Counts[0] = 999

	if cfg.Emission.Thresholds[0] == 999 || cfg.Emission.Counts[0] == 999 {
		t.Error("Clone shares emission tables with the original")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{"zero lifetime", func(c *Config) { c.Particle.Lifetime = 0 }, "lifetime"},
		{"drag of one", func(c *Config) { c.Particle.Drag = 1 }, "drag"},
		{"negative drag", func(c *Config) { c.Particle.Drag = -0.5 }, "drag"},
		{"zero clamp", func(c *Config) { c.Particle.VelocityClamp = 0 }, "velocity_clamp"},
		{"zero scale divisor", func(c *Config) { c.Particle.VelocityScaleDivisor = 0 }, "velocity_scale_divisor"},
		{"zero size", func(c *Config) { c.Particle.Size = 0 }, "size"},
		{"unknown variant", func(c *Config) { c.Particle.Variant = "confetti" }, "variant"},
		{"unknown mode", func(c *Config) { c.Emission.Mode = "burst" }, "mode"},
		{"zero jitter divisor", func(c *Config) { c.Emission.JitterDivisor = 0 }, "jitter_divisor"},
		{"non-increasing thresholds", func(c *Config) { c.Emission.Thresholds = []float64{15, 15, 60, 120} }, "strictly increasing"},
		{"decreasing thresholds", func(c *Config) { c.Emission.Thresholds = []float64{15, 30, 20, 120} }, "strictly increasing"},
		{"count table too short", func(c *Config) { c.Emission.Counts = []int{2, 5, 8, 14} }, "counts"},
		{"negative count", func(c *Config) { c.Emission.Counts = []int{2, -5, 8, 14, 20} }, "counts[1]"},
		{"negative fixed count", func(c *Config) {
			c.Emission.Mode = ModeFixed
			c.Emission.FixedCount = -1
		}, "fixed_count"},
		{"bad base colour", func(c *Config) { c.Color.Base = "red" }, "color.base"},
		{"zero concavity", func(c *Config) { c.Color.SlopeConcavity = 0 }, "slope_concavity"},
		{"zero brightness decline", func(c *Config) { c.Color.BrightnessDecline = 0 }, "brightness_decline"},
		{"negative hue noise", func(c *Config) { c.Color.HueNoise = -1 }, "hue_noise"},
		{"bias above one", func(c *Config) { c.Color.HueNoiseBias = 1.5 }, "hue_noise_bias"},
		{"zero fps", func(c *Config) { c.Screen.FPS = 0 }, "fps"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "log level"},
		{"kinetic without gravity", func(c *Config) {
			c.Particle.Variant = VariantKinetic
			c.Particle.Gravity.X, c.Particle.Gravity.Y = 0, 0
		}, "gravity"},

		{"NaN size", func(c *Config) { c.Particle.Size = math.NaN() }, "particle.size"},
		{"NaN gravity", func(c *Config) { c.Particle.Gravity.Y = math.NaN() }, "gravity.y"},
		{"NaN drag", func(c *Config) { c.Particle.Drag = math.NaN() }, "particle.drag"},
		{"NaN velocity clamp", func(c *Config) { c.Particle.VelocityClamp = math.NaN() }, "velocity_clamp"},
		{"infinite velocity clamp", func(c *Config) { c.Particle.VelocityClamp = math.Inf(1) }, "velocity_clamp"},
		{"NaN scale divisor", func(c *Config) { c.Particle.VelocityScaleDivisor = math.NaN() }, "velocity_scale_divisor"},
		{"NaN fixed jitter", func(c *Config) { c.Emission.FixedJitter = math.NaN() }, "fixed_jitter"},
		{"NaN offset", func(c *Config) { c.Emission.Offset.X = math.NaN() }, "offset.x"},
		{"NaN jitter divisor", func(c *Config) { c.Emission.JitterDivisor = math.NaN() }, "jitter_divisor"},
		{"NaN threshold", func(c *Config) { c.Emission.Thresholds = []float64{15, math.NaN(), 60, 120} }, "thresholds[1]"},
		{"infinite threshold", func(c *Config) { c.Emission.Thresholds = []float64{15, 30, 60, math.Inf(1)} }, "thresholds[3]"},
		{"NaN linear speed", func(c *Config) { c.Color.LinearSpeed = math.NaN() }, "linear_speed"},
		{"NaN concavity", func(c *Config) { c.Color.SlopeConcavity = math.NaN() }, "slope_concavity"},
		{"NaN brightness decline", func(c *Config) { c.Color.BrightnessDecline = math.NaN() }, "brightness_decline"},
		{"NaN brightness noise", func(c *Config) { c.Color.BrightnessNoise = math.NaN() }, "brightness_noise"},
		{"NaN hue noise bias", func(c *Config) { c.Color.HueNoiseBias = math.NaN() }, "hue_noise_bias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateIgnoresUnusedMode(t *testing.T) {
	cfg := Default()
	cfg.Emission.Mode = ModeFixed
	cfg.Emission.JitterDivisor = 0
	cfg.Emission.Thresholds = nil
	cfg.Emission.Counts = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed mode should not validate dynamic table: %v", err)
	}

	cfg = Default()
	cfg.Color.Slope = false
	cfg.Color.SlopeConcavity = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("linear hue ageing should not need concavity: %v", err)
	}
}

func TestHueNoiseShift(t *testing.T) {
	tests := []struct {
		noise int
		bias  float64
		want  float64
	}{
		{12, 0.5, 0},
		{12, 0, -12},
		{12, 1, 12},
		{12, 0.75, 6},
		{0, 0.3, 0},
		{1, 0.25, 0}, // 0.5 rounds away from zero to index 1
		{3, 0.25, -1}, // 1.5 -> 2
	}
	for _, tt := range tests {
		c := ColorConfig{HueNoise: tt.noise, HueNoiseBias: tt.bias}
		if got := c.HueNoiseShift(); got != tt.want {
			t.Errorf("HueNoiseShift(noise=%d, bias=%g) = %g, want %g", tt.noise, tt.bias, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sparkles.yaml")

	configContent := `
seed: 99
particle:
  lifetime: 90
  gravity:
    x: 0
    y: -0.05
emission:
  mode: fixed
  fixed_count: 3
color:
  base: "#ffa020"
  random: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	base := Default()
	cfg, err := LoadFromFile(base, configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Seed != 99 {
		t.Errorf("expected Seed 99, got %d", cfg.Seed)
	}
	if cfg.Particle.Lifetime != 90 {
		t.Errorf("expected Lifetime 90, got %d", cfg.Particle.Lifetime)
	}
	if cfg.Particle.Gravity.Y != -0.05 {
		t.Errorf("expected gravity y -0.05, got %g", cfg.Particle.Gravity.Y)
	}
	if cfg.Emission.Mode != ModeFixed || cfg.Emission.FixedCount != 3 {
		t.Errorf("expected fixed mode with 3 particles, got %q/%d", cfg.Emission.Mode, cfg.Emission.FixedCount)
	}
	if !cfg.Color.Random || cfg.Color.Base != "#ffa020" {
		t.Errorf("colour section not applied: %+v", cfg.Color)
	}
	// untouched fields keep base values
	if cfg.Particle.Drag != 0.85 {
		t.Errorf("expected Drag 0.85 from base, got %g", cfg.Particle.Drag)
	}
	if base.Particle.Lifetime != 60 {
		t.Error("LoadFromFile modified the base config")
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(Default(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("particle: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(Default(), bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadAppliesEnvAndValidates(t *testing.T) {
	t.Setenv("SPARKLES_PARTICLE_LIFETIME", "30")
	t.Setenv("SPARKLES_EMISSION_THRESHOLDS", "10,20")
	t.Setenv("SPARKLES_EMISSION_COUNTS", "1,2,3")
	t.Setenv("SPARKLES_COLOR_RANDOM", "true")

	cfg, err := Load(Default(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Particle.Lifetime != 30 {
		t.Errorf("expected Lifetime 30 from env, got %d", cfg.Particle.Lifetime)
	}
	if len(cfg.Emission.Thresholds) != 2 || cfg.Emission.Thresholds[1] != 20 {
		t.Errorf("expected thresholds [10 20], got %v", cfg.Emission.Thresholds)
	}
	if len(cfg.Emission.Counts) != 3 || cfg.Emission.Counts[2] != 3 {
		t.Errorf("expected counts [1 2 3], got %v", cfg.Emission.Counts)
	}
	if !cfg.Color.Random {
		t.Error("expected Random from env")
	}
	if cfg.Particle.Drag != 0.85 {
		t.Errorf("unset env var changed Drag to %g", cfg.Particle.Drag)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("SPARKLES_PARTICLE_DRAG", "1.5")
	_, err := Load(Default(), "")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	t.Setenv("SPARKLES_PARTICLE_DRAG", "not-a-number")
	if _, err := Load(Default(), ""); err == nil {
		t.Error("expected parse error for malformed env value")
	}
}

func TestLoadRejectsNonFiniteValues(t *testing.T) {
	for _, key := range []string{
		"SPARKLES_COLOR_BRIGHTNESS_DECLINE",
		"SPARKLES_PARTICLE_VELOCITY_CLAMP",
		"SPARKLES_PARTICLE_DRAG",
		"SPARKLES_EMISSION_JITTER_DIVISOR",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "NaN")
			if _, err := Load(Default(), ""); !errors.Is(err, ErrInvalid) {
				t.Errorf("%s=NaN: expected ErrInvalid, got %v", key, err)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("color:\n  hue_noise_bias: .nan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(Default(), path); !errors.Is(err, ErrInvalid) {
		t.Errorf(".nan in YAML: expected ErrInvalid, got %v", err)
	}
}

func TestYAMLRoundTripKeepsFields(t *testing.T) {
	out, err := Default().YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	s := string(out)
	for _, key := range []string{"velocity_clamp: 200", "mode: dynamic", "lifetime: 60"} {
		if !strings.Contains(s, key) {
			t.Errorf("YAML output missing %q:\n%s", key, s)
		}
	}
}
