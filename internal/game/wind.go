package game

import "github.com/spacehole-rogue/lunarlander/internal/rng"

const (
	windIncrement  = 0.001
	windChangeProb = 0.02
)

// Wind is a bounded random walk of lateral force.
type Wind struct {
	Force     float64
	Direction float64 // +1 or -1
	Max       float64
}

// NewWind starts calm, blowing right, bounded by limit.
func NewWind(limit float64) Wind {
	return Wind{Direction: 1, Max: limit}
}

// Step advances the walk one tick. With probability windChangeProb it may
// flip direction (only once saturated) and then nudges the force. The
// clamp runs on every tick.
func (w *Wind) Step(src rng.Source) {
	if src.Float64() < windChangeProb {
		if abs(w.Force) >= w.Max {
			w.Direction = -w.Direction
		}
		w.Force += windIncrement * w.Direction
	}
	w.Force = max(-w.Max, min(w.Max, w.Force))
}

// Intensity is |Force| as a fraction of Max, in [0, 1].
func (w Wind) Intensity() float64 {
	if w.Max <= 0 {
		return 0
	}
	return abs(w.Force) / w.Max
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
