package world

import "github.com/spacehole-rogue/lunarlander/internal/rng"

// Pad is the landing target. It does not change during a flight.
type Pad struct {
	X      float64 // centre
	Y      float64 // top surface
	Width  float64
	Height float64
}

// NewPad places a pad at a random offset from screen centre. The offset
// range scales with the tier's spread; the result is clamped so the pad
// stays EdgeMargin away from both sides.
func NewPad(tier Tier, src rng.Source) Pad {
	usable := float64(ScreenWidth - 2*EdgeMargin)
	maxOffset := usable * tier.PadSpread

	x := ScreenWidth/2 + rng.Uniform(src, -maxOffset, maxOffset)
	x = max(EdgeMargin+PadWidth/2, min(ScreenWidth-EdgeMargin-PadWidth/2, x))

	return Pad{
		X:      x,
		Y:      PadY,
		Width:  PadWidth,
		Height: PadHeight,
	}
}

// Left returns the x coordinate of the pad's left edge.
func (p Pad) Left() float64 { return p.X - p.Width/2 }

// Right returns the x coordinate of the pad's right edge.
func (p Pad) Right() float64 { return p.X + p.Width/2 }

// Overlaps reports whether the horizontal span [left, right] touches the pad.
func (p Pad) Overlaps(left, right float64) bool {
	return right > p.Left() && left < p.Right()
}

// SockX and SockY locate the windsock mast next to the pad.
func (p Pad) SockX() float64 { return p.Left() - 40 }
func (p Pad) SockY() float64 { return p.Y - 80 }
