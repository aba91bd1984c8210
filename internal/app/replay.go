// internal/app/replay.go
package app

import (
	"encoding/binary"
	"hash/fnv"
	"image/color"
	"math"

	"go-sparkles/internal/input"
	"go-sparkles/pkg/render"
)

// FrameRecord summarises one headless frame.
type FrameRecord struct {
	Frame    uint64
	Speed    float64
	Spawned  int
	Live     int
	Drawn    int
	Checksum uint64 // FNV-1a over every drawn rectangle
}

// Replay drives sim for frames ticks from src, drawing into rec after each
// tick the same way a host loop would.
func Replay(sim *Simulation, src input.Source, frames int, rec *render.Recorder) []FrameRecord {
	out := make([]FrameRecord, 0, frames)
	for i := 0; i < frames; i++ {
		x, y := src.Position()
		d := sim.Tick(x, y)

		rec.Reset()
		sim.Draw(rec)

		out = append(out, FrameRecord{
			Frame:    sim.Frame,
			Speed:    d.Speed,
			Spawned:  d.Count,
			Live:     sim.Arena.Len(),
			Drawn:    len(rec.Rects),
			Checksum: checksum(rec.Rects),
		})
	}
	return out
}

func checksum(rects []render.Rect) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	for _, r := range rects {
		put(r.Pos.X)
		put(r.Pos.Y)
		c := color.NRGBAModel.Convert(r.Color).(color.NRGBA)
		h.Write([]byte{c.R, c.G, c.B, c.A})
	}
	return h.Sum64()
}
