// internal/ui/indicator.go
package ui

import (
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"
)

// PositionMarker draws a small filled square (not a round dot) at the
// emission origin; used to tune the cursor offset.
type PositionMarker struct {
	Size  float64
	Color render.HSV
}

// NewPositionMarker returns a red 4px marker.
func NewPositionMarker() *PositionMarker {
	return &PositionMarker{
		Size:  4,
		Color: render.HSV{H: 0, S: 100, V: 100, A: 100},
	}
}

// Draw centres the marker on pos.
func (m *PositionMarker) Draw(surface render.Surface, pos utils.Vec2) {
	half := m.Size / 2
	surface.FillRect(pos.Sub(utils.V2(half, half)), utils.V2(m.Size, m.Size), m.Color)
}
