// internal/system/render.go
package system

import (
	"go-sparkles/internal/entity"
	"go-sparkles/pkg/render"
)

// RenderSystem рисует живые частицы
type RenderSystem struct {
	arena *entity.Arena
}

func NewRenderSystem(arena *entity.Arena) *RenderSystem {
	return &RenderSystem{arena: arena}
}

// Draw hands every surviving particle to the surface.
func (s *RenderSystem) Draw(surface render.Surface) {
	for _, p := range s.arena.Particles() {
		if p.IsAlive() {
			p.Draw(surface)
		}
	}
}
