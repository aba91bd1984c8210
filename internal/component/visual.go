// internal/component/visual.go
package component

import (
	"go-sparkles/internal/config"
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"
)

// AgingParams describes how a sparkle's colour decays. Shared by all
// sparkles of one simulation.
type AgingParams struct {
	AgeHue            bool    // сдвигать ли оттенок с возрастом
	Slope             bool    // вогнутая кривая вместо линейной
	SlopeConcavity    float64 // hue -= ageStep / SlopeConcavity
	LinearSpeed       float64 // hue -= ageStep * LinearSpeed
	BrightnessDecline float64 // brightness -= ageStep / BrightnessDecline
	BrightnessNoise   float64
	HueNoise          float64
	HueShift          float64 // смещение шума оттенка, см. ColorConfig.HueNoiseShift
}

// NewAgingParams derives ageing parameters from the colour config.
func NewAgingParams(c config.ColorConfig) *AgingParams {
	return &AgingParams{
		AgeHue:            c.AgeHue,
		Slope:             c.Slope,
		SlopeConcavity:    c.SlopeConcavity,
		LinearSpeed:       c.LinearSpeed,
		BrightnessDecline: c.BrightnessDecline,
		BrightnessNoise:   c.BrightnessNoise,
		HueNoise:          float64(c.HueNoise),
		HueShift:          c.HueNoiseShift(),
	}
}

// Sparkle is a kinetic particle whose hue and brightness decay with age.
type Sparkle struct {
	Kinetic
	Age     int // кадров до смерти
	ageStep float64
	aging   *AgingParams
	noise   Noise
}

// NewSparkle creates a sparkle with a full lifetime.
func NewSparkle(k *Kinetic, lifetime int, aging *AgingParams, noise Noise) *Sparkle {
	return &Sparkle{
		Kinetic: *k,
		Age:     lifetime,
		ageStep: 100.0 / float64(lifetime),
		aging:   aging,
		noise:   noise,
	}
}

// Update runs the physics step, then ages the colour.
func (s *Sparkle) Update() {
	s.Kinetic.Update()
	if !s.IsAlive() {
		return
	}

	a := s.aging
	hue := s.Look.Color.H
	if a.AgeHue {
		if a.Slope {
			hue -= s.ageStep / a.SlopeConcavity
		} else {
			hue -= s.ageStep * a.LinearSpeed
		}
	}
	brightness := s.Look.Color.V - s.ageStep/a.BrightnessDecline
	s.Age--

	brightness += s.noise.Uniform(-a.BrightnessNoise, a.BrightnessNoise)
	hue += s.noise.Uniform(-a.HueNoise+a.HueShift, a.HueNoise+a.HueShift)

	hue = utils.Clamp(hue, config.HueMin, config.HueMax)
	brightness = utils.Clamp(brightness, config.BrightnessMin, config.BrightnessMax)

	if brightness < config.DeathBrightness || s.Age == 0 {
		s.Kill()
		return
	}
	s.Look.Color.H = hue
	s.Look.Color.V = brightness
}

// Color returns the current colour.
func (s *Sparkle) Color() render.HSV {
	return s.Look.Color
}
