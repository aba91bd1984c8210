package ui

import (
	"strings"
	"testing"
	"time"

	"go-sparkles/internal/app"
	"go-sparkles/internal/config"
	"go-sparkles/pkg/render"
	"go-sparkles/pkg/utils"
)

func TestPositionMarkerCentred(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	NewPositionMarker().Draw(rec, utils.V2(50, 50))
	if len(rec.Rects) != 1 {
		t.Fatalf("marker drew %d rects", len(rec.Rects))
	}
	if r := rec.Rects[0]; r.Pos != utils.V2(48, 48) || r.Size != utils.V2(4, 4) {
		t.Errorf("marker rect = %+v", r)
	}
}

func TestHUDLines(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	sim, err := app.NewSimulation(cfg, 640, 480, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Tick(100, 100)
	sim.Tick(127, 136)

	h := NewHUD()
	h.FrameTime = 16600 * time.Microsecond
	lines := h.Lines(sim)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "45.0") || !strings.Contains(lines[0], "spawn  8") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "frame 2") || !strings.Contains(lines[2], "16.6 ms") {
		t.Errorf("third line = %q", lines[2])
	}

	h.Paused = true
	if got := h.Lines(sim); got[len(got)-1] != "PAUSED (F9)" {
		t.Errorf("paused HUD missing marker: %v", got)
	}
	if x, y := h.LinePos(2); x != 8 || y != 44 {
		t.Errorf("LinePos(2) = %d,%d", x, y)
	}
}
