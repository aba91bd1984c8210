// component/render.go
package component

import (
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"
)

// Renderable - цвет и размер квадрата частицы
type Renderable struct {
	Color render.HSV
	Size  float64
}

// Draw fills a Size x Size square at pos.
func (r Renderable) Draw(surface render.Surface, pos utils.Vec2) {
	surface.FillRect(pos, utils.V2(r.Size, r.Size), r.Color)
}
