// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"

	"go-sparkles/pkg/utils"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a colour addressed by hue, saturation, value and alpha.
// H is in degrees [0, 360); S, V and A are percentages [0, 100].
type HSV struct {
	H, S, V, A float64
}

var _ color.Color = HSV{}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque HSV colour.
func ParseHex(s string) (HSV, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return HSV{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// FromRGB255 converts an 8-bit RGB triple into an opaque HSV colour.
func FromRGB255(r, g, b uint8) HSV {
	return fromColorful(colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	})
}

func fromColorful(c colorful.Color) HSV {
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100, V: v * 100, A: 100}
}

// RGBA implements color.Color.
func (c HSV) RGBA() (r, g, b, a uint32) {
	rr, gg, bb := colorful.Hsv(c.H, c.S/100, c.V/100).Clamped().RGB255()
	alpha := uint8(utils.Clamp(c.A, 0, 100)*2.55 + 0.5)
	return color.NRGBA{R: rr, G: gg, B: bb, A: alpha}.RGBA()
}

// String renders the colour as "hsv(h, s%, v%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.V)
}
