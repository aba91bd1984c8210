// Package input provides pointer sources for the simulation loop.
package input

import (
	"image"
	"math"
)

// Source supplies one pointer sample per frame in surface pixels.
type Source interface {
	Position() (x, y int)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (int, int)

// Position calls f.
func (f SourceFunc) Position() (int, int) { return f() }

// Script replays a fixed list of samples and then holds the last one.
type Script struct {
	points []image.Point
	next   int
}

// NewScript creates a Script over points.
func NewScript(points ...image.Point) *Script {
	return &Script{points: points}
}

// Position returns the next sample.
func (s *Script) Position() (int, int) {
	if len(s.points) == 0 {
		return 0, 0
	}
	i := s.next
	if i >= len(s.points) {
		i = len(s.points) - 1
	} else {
		s.next++
	}
	p := s.points[i]
	return p.X, p.Y
}

// Len returns the number of scripted samples.
func (s *Script) Len() int {
	return len(s.points)
}

// Sweep moves in a straight line from a to b over frames samples.
func Sweep(a, b image.Point, frames int) []image.Point {
	if frames < 2 {
		return []image.Point{b}
	}
	out := make([]image.Point, frames)
	for i := range out {
		t := float64(i) / float64(frames-1)
		out[i] = image.Pt(
			int(math.Round(float64(a.X)+float64(b.X-a.X)*t)),
			int(math.Round(float64(a.Y)+float64(b.Y-a.Y)*t)),
		)
	}
	return out
}

// Orbit circles center with the given radius, one full turn per period
// samples, for frames samples.
func Orbit(center image.Point, radius float64, period, frames int) []image.Point {
	out := make([]image.Point, frames)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(period)
		out[i] = image.Pt(
			center.X+int(math.Round(radius*math.Cos(a))),
			center.Y+int(math.Round(radius*math.Sin(a))),
		)
	}
	return out
}

// Hold repeats p for frames samples.
func Hold(p image.Point, frames int) []image.Point {
	out := make([]image.Point, frames)
	for i := range out {
		out[i] = p
	}
	return out
}

// Demo is a mixed path for headless runs: a slow sweep, a pause, a fast
// flick and a wide orbit, all inside a width x height surface.
func Demo(width, height int) []image.Point {
	c := image.Pt(width/2, height/2)
	var pts []image.Point
	pts = append(pts, Sweep(image.Pt(width/8, height/2), c, 90)...)
	pts = append(pts, Hold(c, 30)...)
	pts = append(pts, Sweep(c, image.Pt(width*7/8, height/4), 6)...)
	pts = append(pts, Orbit(c, float64(min(width, height))/3, 120, 240)...)
	return pts
}
