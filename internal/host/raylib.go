// internal/host/raylib.go
package host

import (
	"context"
	"image/color"

	"go-sparkles/internal/input"
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudFontSize = 14

// raylibSurface draws straight to the current raylib frame.
type raylibSurface struct {
	width, height int
}

func (s raylibSurface) FillRect(pos, size utils.Vec2, c color.Color) {
	rl.DrawRectangleV(
		rl.NewVector2(float32(pos.X), float32(pos.Y)),
		rl.NewVector2(float32(size.X), float32(size.Y)),
		colorToRL(c),
	)
}

func (s raylibSurface) Size() (int, int) {
	return s.width, s.height
}

var _ render.Surface = raylibSurface{}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(nc.R, nc.G, nc.B, nc.A)
}

func raylibPointer() input.Source {
	return input.SourceFunc(func() (int, int) {
		p := rl.GetMousePosition()
		return int(p.X), int(p.Y)
	})
}

// RunRaylib runs the overlay in a transparent, undecorated, topmost raylib
// window. A zero screen size lets raylib pick the monitor size.
func RunRaylib(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	cfg := opts.Config

	rl.SetConfigFlags(rl.FlagWindowTransparent | rl.FlagWindowUndecorated |
		rl.FlagWindowTopmost | rl.FlagWindowMousePassthrough)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.FPS))

	width, height := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	ov, err := newOverlay(opts, width, height, raylibPointer())
	if err != nil {
		return err
	}
	surface := raylibSurface{width: width, height: height}

	for !rl.WindowShouldClose() && !ov.done(ctx) {
		if rl.IsKeyPressed(rl.KeyF9) {
			ov.togglePause()
		}
		ov.step()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Blank)
		ov.stateMachine.Draw(surface)
		for i, line := range ov.hudLines() {
			x, y := ov.hud.LinePos(i)
			rl.DrawText(line, int32(x), int32(y-hudFontSize), hudFontSize, rl.RayWhite)
		}
		rl.EndDrawing()
	}
	return nil
}
