package world

import "github.com/spacehole-rogue/lunarlander/internal/rng"

// StarCount is the number of background stars.
const StarCount = 100

// Star is a single background point.
type Star struct {
	X, Y float64
	Size float64
}

// NewStarfield scatters n stars above the ground.
func NewStarfield(src rng.Source, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:    float64(rng.IntRange(src, 0, ScreenWidth)),
			Y:    float64(rng.IntRange(src, 0, ScreenHeight-GroundHeight)),
			Size: src.Float64()*2 + 1,
		}
	}
	return stars
}
