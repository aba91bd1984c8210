// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Fixed limits of the colour-ageing model.
const (
	DeathBrightness = 7.0
	HueMin          = 0.0
	HueMax          = 359.0
	BrightnessMin   = 0.0
	BrightnessMax   = 99.0
)

const (
	ModeDynamic = "dynamic"
	ModeFixed   = "fixed"

	VariantSparkle = "sparkle"
	VariantKinetic = "kinetic"
)

const (
	DefaultFPS   = 60
	EnvPrefix    = "SPARKLES_"
	DefaultTitle = "sparkles"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds every simulation and host parameter. It is treated as
// immutable once validated.
type Config struct {
	Seed     int64          `yaml:"seed" env:"SEED"`
	Screen   ScreenConfig   `yaml:"screen" envPrefix:"SCREEN_"`
	Particle ParticleConfig `yaml:"particle" envPrefix:"PARTICLE_"`
	Emission EmissionConfig `yaml:"emission" envPrefix:"EMISSION_"`
	Color    ColorConfig    `yaml:"color" envPrefix:"COLOR_"`
	Debug    DebugConfig    `yaml:"debug" envPrefix:"DEBUG_"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOG_"`
}

// ScreenConfig describes the overlay surface. Zero width or height means
// "size of the primary monitor".
type ScreenConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	FPS    int    `yaml:"fps" env:"FPS"`
	Title  string `yaml:"title" env:"TITLE"`
}

// ParticleConfig holds the physics parameters shared by all particles.
type ParticleConfig struct {
	Variant              string     `yaml:"variant" env:"VARIANT"`
	Size                 float64    `yaml:"size" env:"SIZE"`
	Lifetime             int        `yaml:"lifetime" env:"LIFETIME"`
	Gravity              utils.Vec2 `yaml:"gravity"`
	Drag                 float64    `yaml:"drag" env:"DRAG"`
	VelocityClamp        float64    `yaml:"velocity_clamp" env:"VELOCITY_CLAMP"`
	VelocityScaleDivisor float64    `yaml:"velocity_scale_divisor" env:"VELOCITY_SCALE_DIVISOR"`
}

// EmissionConfig selects how many particles are spawned per frame and how
// much jitter they get.
type EmissionConfig struct {
	Mode string `yaml:"mode" env:"MODE"`

	// Fixed mode.
	FixedCount  int        `yaml:"fixed_count" env:"FIXED_COUNT"`
	FixedJitter float64    `yaml:"fixed_jitter" env:"FIXED_JITTER"`
	Offset      utils.Vec2 `yaml:"offset"`

	// Dynamic mode. Counts has one more entry than Thresholds: the last
	// count applies to any speed at or above the last threshold.
	JitterDivisor float64   `yaml:"jitter_divisor" env:"JITTER_DIVISOR"`
	Thresholds    []float64 `yaml:"thresholds" env:"THRESHOLDS" envSeparator:","`
	Counts        []int     `yaml:"counts" env:"COUNTS" envSeparator:","`
}

// ColorConfig drives the initial colour and its decay with age.
type ColorConfig struct {
	Base              string  `yaml:"base" env:"BASE"`
	Random            bool    `yaml:"random" env:"RANDOM"`
	AgeHue            bool    `yaml:"age_hue" env:"AGE_HUE"`
	LinearSpeed       float64 `yaml:"linear_speed" env:"LINEAR_SPEED"`
	Slope             bool    `yaml:"slope" env:"SLOPE"`
	SlopeConcavity    float64 `yaml:"slope_concavity" env:"SLOPE_CONCAVITY"`
	BrightnessDecline float64 `yaml:"brightness_decline" env:"BRIGHTNESS_DECLINE"`
	BrightnessNoise   float64 `yaml:"brightness_noise" env:"BRIGHTNESS_NOISE"`
	HueNoise          int     `yaml:"hue_noise" env:"HUE_NOISE"`
	HueNoiseBias      float64 `yaml:"hue_noise_bias" env:"HUE_NOISE_BIAS"`
}

// DebugConfig toggles tuning aids.
type DebugConfig struct {
	PrintSpeed   bool `yaml:"print_speed" env:"PRINT_SPEED"`
	MarkPosition bool `yaml:"mark_position" env:"MARK_POSITION"`
	HUD          bool `yaml:"hud" env:"HUD"`
}

// LoggingConfig sets the log verbosity: "info", "debug" or "trace".
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns the classic mouse-sparkle tuning.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			FPS:   DefaultFPS,
			Title: DefaultTitle,
		},
		Particle: ParticleConfig{
			Variant:              VariantSparkle,
			Size:                 2,
			Lifetime:             60,
			Gravity:              utils.V2(0, 0.025),
			Drag:                 0.85,
			VelocityClamp:        200,
			VelocityScaleDivisor: 1.6,
		},
		Emission: EmissionConfig{
			Mode:          ModeDynamic,
			FixedCount:    1,
			FixedJitter:   5.5,
			Offset:        utils.V2(-12, -28),
			JitterDivisor: 6.0,
			Thresholds:    []float64{15, 30, 60, 120},
			Counts:        []int{2, 5, 8, 14, 20},
		},
		Color: ColorConfig{
			Base:              "#ff0001",
			AgeHue:            true,
			LinearSpeed:       5.5,
			Slope:             true,
			SlopeConcavity:    0.42,
			BrightnessDecline: 5.3,
			BrightnessNoise:   12,
			HueNoise:          12,
			HueNoiseBias:      0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Emission.Thresholds = append([]float64(nil), c.Emission.Thresholds...)
	out.Emission.Counts = append([]int(nil), c.Emission.Counts...)
	return &out
}

// Load layers a YAML file (when path is non-empty) and SPARKLES_* environment
// variables on top of base, then validates the result. base is not modified.
func Load(base *Config, path string) (*Config, error) {
	cfg := base.Clone()
	if path != "" {
		fileCfg, err := LoadFromFile(cfg, path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile decodes a YAML file over a copy of base.
func LoadFromFile(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// BaseColor parses Color.Base.
func (c *Config) BaseColor() (render.HSV, error) {
	return render.ParseHex(c.Color.Base)
}

// HueNoiseShift maps HueNoiseBias onto the integer range
// [-HueNoise, +HueNoise]: bias 0 gives -HueNoise, 0.5 gives 0, 1 gives +HueNoise.
func (c ColorConfig) HueNoiseShift() float64 {
	bias := utils.Clamp(c.HueNoiseBias, 0, 1)
	idx := utils.RoundIndex(float64(2*c.HueNoise) * bias)
	return float64(idx - c.HueNoise)
}

// Validate checks every parameter the simulation divides by or indexes with.
func (c *Config) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}

	p := c.Particle
	switch p.Variant {
	case VariantSparkle, VariantKinetic:
	default:
		return invalid("particle.variant must be %q or %q, got %q", VariantSparkle, VariantKinetic, p.Variant)
	}
	if p.Lifetime <= 0 {
		return invalid("particle.lifetime must be positive, got %d", p.Lifetime)
	}
	if p.Size <= 0 {
		return invalid("particle.size must be positive, got %g", p.Size)
	}
	if p.Drag <= 0 || p.Drag >= 1 {
		return invalid("particle.drag must be in (0, 1), got %g", p.Drag)
	}
	if p.VelocityClamp <= 0 {
		return invalid("particle.velocity_clamp must be positive, got %g", p.VelocityClamp)
	}
	if p.VelocityScaleDivisor <= 0 {
		return invalid("particle.velocity_scale_divisor must be positive, got %g", p.VelocityScaleDivisor)
	}
	// Kinetic particles have no age; without gravity drag parks them on
	// screen and they are never removed.
	if p.Variant == VariantKinetic && p.Gravity == (utils.Vec2{}) {
		return invalid("particle.gravity must be non-zero for the %q variant", VariantKinetic)
	}

	e := c.Emission
	switch e.Mode {
	case ModeFixed:
		if e.FixedCount < 0 {
			return invalid("emission.fixed_count must be non-negative, got %d", e.FixedCount)
		}
		if e.FixedJitter < 0 {
			return invalid("emission.fixed_jitter must be non-negative, got %g", e.FixedJitter)
		}
	case ModeDynamic:
		if e.JitterDivisor <= 0 {
			return invalid("emission.jitter_divisor must be positive, got %g", e.JitterDivisor)
		}
		if len(e.Counts) != len(e.Thresholds)+1 {
			return invalid("emission.counts needs %d entries for %d thresholds, got %d",
				len(e.Thresholds)+1, len(e.Thresholds), len(e.Counts))
		}
		for i, th := range e.Thresholds {
			if th <= 0 {
				return invalid("emission.thresholds[%d] must be positive, got %g", i, th)
			}
			if i > 0 && th <= e.Thresholds[i-1] {
				return invalid("emission.thresholds must be strictly increasing, got %g after %g", th, e.Thresholds[i-1])
			}
		}
		for i, n := range e.Counts {
			if n < 0 {
				return invalid("emission.counts[%d] must be non-negative, got %d", i, n)
			}
		}
	default:
		return invalid("emission.mode must be %q or %q, got %q", ModeDynamic, ModeFixed, e.Mode)
	}

	col := c.Color
	if _, err := render.ParseHex(col.Base); err != nil {
		return fmt.Errorf("%w: color.base: %v", ErrInvalid, err)
	}
	if col.AgeHue && col.Slope && col.SlopeConcavity <= 0 {
		return invalid("color.slope_concavity must be positive, got %g", col.SlopeConcavity)
	}
	if col.BrightnessDecline <= 0 {
		return invalid("color.brightness_decline must be positive, got %g", col.BrightnessDecline)
	}
	if col.BrightnessNoise < 0 {
		return invalid("color.brightness_noise must be non-negative, got %g", col.BrightnessNoise)
	}
	if col.HueNoise < 0 {
		return invalid("color.hue_noise must be non-negative, got %d", col.HueNoise)
	}
	if col.HueNoiseBias < 0 || col.HueNoiseBias > 1 {
		return invalid("color.hue_noise_bias must be between 0 and 1, got %g", col.HueNoiseBias)
	}

	s := c.Screen
	if s.FPS <= 0 {
		return invalid("screen.fps must be positive, got %d", s.FPS)
	}
	if s.Width < 0 || s.Height < 0 {
		return invalid("screen size must be non-negative, got %dx%d", s.Width, s.Height)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return invalid("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// validateFinite rejects NaN and infinities, which slip through every
// ordered comparison below.
func (c *Config) validateFinite() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"particle.size", c.Particle.Size},
		{"particle.gravity.x", c.Particle.Gravity.X},
		{"particle.gravity.y", c.Particle.Gravity.Y},
		{"particle.drag", c.Particle.Drag},
		{"particle.velocity_clamp", c.Particle.VelocityClamp},
		{"particle.velocity_scale_divisor", c.Particle.VelocityScaleDivisor},
		{"emission.fixed_jitter", c.Emission.FixedJitter},
		{"emission.offset.x", c.Emission.Offset.X},
		{"emission.offset.y", c.Emission.Offset.Y},
		{"emission.jitter_divisor", c.Emission.JitterDivisor},
		{"color.linear_speed", c.Color.LinearSpeed},
		{"color.slope_concavity", c.Color.SlopeConcavity},
		{"color.brightness_decline", c.Color.BrightnessDecline},
		{"color.brightness_noise", c.Color.BrightnessNoise},
		{"color.hue_noise_bias", c.Color.HueNoiseBias},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be a finite number, got %g", f.name, f.v)
		}
	}
	for i, th := range c.Emission.Thresholds {
		if math.IsNaN(th) || math.IsInf(th, 0) {
			return invalid("emission.thresholds[%d] must be a finite number, got %g", i, th)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
