// internal/host/ebiten.go
package host

import (
	"context"
	"fmt"
	"image/color"

	"go-sparkles/internal/input"
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}

// ebitenSurface adapts an ebiten image to render.Surface.
type ebitenSurface struct {
	img *ebiten.Image
}

func (s ebitenSurface) FillRect(pos, size utils.Vec2, c color.Color) {
	vector.DrawFilledRect(s.img, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), c, false)
}

func (s ebitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

var _ render.Surface = ebitenSurface{}

// AppGame implements ebiten.Game on top of the overlay.
type AppGame struct {
	ctx           context.Context
	overlay       *overlay
	width, height int
}

func (a *AppGame) Update() error {
	if a.overlay.done(a.ctx) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.overlay.togglePause()
	}
	a.overlay.step()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.overlay.stateMachine.Draw(ebitenSurface{img: screen})
	for i, line := range a.overlay.hudLines() {
		x, y := a.overlay.hud.LinePos(i)
		text.Draw(screen, line, basicfont.Face7x13, x, y, hudColor)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// RunEbiten opens a borderless, transparent, click-through window over the
// whole monitor and runs the overlay at Screen.FPS ticks per second.
func RunEbiten(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	cfg := opts.Config

	width, height := cfg.Screen.Width, cfg.Screen.Height
	if width == 0 || height == 0 {
		width, height = ebiten.ScreenSizeInFullscreen()
	}

	ov, err := newOverlay(opts, width, height, input.SourceFunc(ebiten.CursorPosition))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetTPS(cfg.Screen.FPS)

	game := &AppGame{ctx: ctx, overlay: ov, width: width, height: height}
	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
