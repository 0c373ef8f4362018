package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

// fixedSource returns the same draw every time. With f >= windChangeProb
// the wind never moves.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return 0 }

var calm = fixedSource{f: 0.5}

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recorder struct{ got []Sound }

func (r *recorder) Notify(s Sound) { r.got = append(r.got, s) }

func (r *recorder) count(s Sound) int {
	n := 0
	for _, g := range r.got {
		if g == s {
			n++
		}
	}
	return n
}

func centrePad() world.Pad {
	return world.Pad{X: 400, Y: world.PadY, Width: world.PadWidth, Height: world.PadHeight}
}

func tier(id int) world.Tier { return world.DefaultTiers().Get(id) }

func testDeps(n Notifier, store RecordStore) Deps {
	return Deps{
		Source:   calm,
		Clock:    newFakeClock(),
		Notifier: n,
		Records:  store,
		Logger:   zerolog.Nop(),
	}
}

// aboutToTouch puts v one tick above the pad line over x with the given
// velocity after gravity is applied.
func aboutToTouch(v *Vessel, x, vx, vy float64) {
	v.VX = vx
	v.VY = vy - Gravity
	v.X = x - vx
	v.Y = world.PadY - VesselHeight - LegHeight - vy + 0.5
}

var _ RecordStore = (*records.Memory)(nil)
