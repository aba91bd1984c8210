package input

import (
	"image"
	"testing"
)

func TestScriptHoldsLastSample(t *testing.T) {
	s := NewScript(image.Pt(1, 2), image.Pt(3, 4))
	want := [][2]int{{1, 2}, {3, 4}, {3, 4}, {3, 4}}
	for i, w := range want {
		x, y := s.Position()
		if x != w[0] || y != w[1] {
			t.Errorf("sample %d = (%d, %d), want %v", i, x, y, w)
		}
	}
}

func TestEmptyScript(t *testing.T) {
	x, y := NewScript().Position()
	if x != 0 || y != 0 {
		t.Errorf("empty script = (%d, %d)", x, y)
	}
}

func TestSweep(t *testing.T) {
	pts := Sweep(image.Pt(0, 0), image.Pt(100, 50), 11)
	if len(pts) != 11 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0] != image.Pt(0, 0) || pts[10] != image.Pt(100, 50) || pts[5] != image.Pt(50, 25) {
		t.Errorf("sweep endpoints/midpoint wrong: %v", pts)
	}
	if one := Sweep(image.Pt(0, 0), image.Pt(9, 9), 1); len(one) != 1 || one[0] != image.Pt(9, 9) {
		t.Errorf("single-frame sweep = %v", one)
	}
}

func TestOrbitStaysOnCircle(t *testing.T) {
	c := image.Pt(500, 500)
	for _, p := range Orbit(c, 100, 60, 60) {
		dx, dy := p.X-c.X, p.Y-c.Y
		d2 := dx*dx + dy*dy
		if d2 < 99*99 || d2 > 101*101 {
			t.Fatalf("point %v is off the orbit", p)
		}
	}
}

func TestDemoInsideSurface(t *testing.T) {
	for _, p := range Demo(800, 600) {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Fatalf("demo point %v outside 800x600", p)
		}
	}
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func() (int, int) { return 7, 8 })
	if x, y := src.Position(); x != 7 || y != 8 {
		t.Errorf("SourceFunc = (%d, %d)", x, y)
	}
}
