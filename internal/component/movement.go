// internal/component/movement.go
package component

import (
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"
)

// Bounds is the visible area, [0, Width) x [0, Height).
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p utils.Vec2) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Kinetic is a physics-only particle: gravity, drag and a bounds check.
type Kinetic struct {
	Position utils.Vec2
	Velocity utils.Vec2 // смещение за кадр
	Gravity  utils.Vec2 // общая для всех частиц
	Drag     float64    // множитель скорости за кадр, (0, 1)
	Bounds   Bounds
	Look     Renderable
	dead     bool
}

// NewKinetic creates a live physics particle.
func NewKinetic(bounds Bounds, pos, vel, gravity utils.Vec2, drag float64, look Renderable) *Kinetic {
	return &Kinetic{
		Position: pos,
		Velocity: vel,
		Gravity:  gravity,
		Drag:     drag,
		Bounds:   bounds,
		Look:     look,
	}
}

// Update integrates one frame and kills the particle once it leaves the bounds.
func (k *Kinetic) Update() {
	if k.dead {
		return
	}
	k.Velocity = k.Velocity.Add(k.Gravity).Scale(k.Drag)
	k.Position = k.Position.Add(k.Velocity)
	if !k.Bounds.Contains(k.Position) {
		k.Kill()
	}
}

// Kill marks the particle for removal. Killing a dead particle is a no-op.
func (k *Kinetic) Kill() {
	k.dead = true
}

// IsAlive reports whether the particle is still part of the live set.
func (k *Kinetic) IsAlive() bool {
	return !k.dead
}

// Draw paints the particle as a filled square.
func (k *Kinetic) Draw(surface render.Surface) {
	k.Look.Draw(surface, k.Position)
}
