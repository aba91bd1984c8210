package render

import (
	"image/color"

	"go-sparkles/pkg/utils"
)

// Surface is the only drawing primitive particles need: a filled rectangle
// on a canvas of known pixel size.
type Surface interface {
	FillRect(pos, size utils.Vec2, c color.Color)
	Size() (width, height int)
}

// Rect is one FillRect call captured by a Recorder.
type Rect struct {
	Pos, Size utils.Vec2
	Color     color.Color
}

// Recorder is an off-screen Surface that keeps the rectangles of the
// current frame. Used by headless runs.
type Recorder struct {
	Width, Height int
	Rects         []Rect
}

// NewRecorder returns a Recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// FillRect implements Surface.
func (r *Recorder) FillRect(pos, size utils.Vec2, c color.Color) {
	r.Rects = append(r.Rects, Rect{Pos: pos, Size: size, Color: c})
}

// Size implements Surface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Reset drops the recorded rectangles, keeping capacity.
func (r *Recorder) Reset() {
	r.Rects = r.Rects[:0]
}
