package ui

import (
	"github.com/spacehole-rogue/lunarlander/internal/fx"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

// flashTint is the flash alpha above which the whole sky lights up.
const flashTint = 50

// cellAt converts world pixels to a grid cell.
func cellAt(x, y float64) (int, int) {
	return int(x) / CellW, int(y) / CellH
}

// RasterizeScene draws a coarse version of the flight into the grid for
// terminals. Later layers overwrite earlier ones: sky, ground, pad,
// trajectory, vessel, exhaust, effects.
func RasterizeScene(buf *CellBuffer, f *game.Flight) {
	buf.Clear()

	sky := uint8(ColorBlack)
	if f.Effects.Flash.Alpha() > flashTint {
		sky = ColorDarkGray
	}
	if sky != ColorBlack {
		for y := range Rows {
			for x := range Cols {
				buf.Set(x, y, ' ', ColorWhite, sky)
			}
		}
	}

	for _, s := range f.Stars {
		cx, cy := cellAt(s.X, s.Y)
		glyph := byte(250) // ·
		if s.Size > 2 {
			glyph = '*'
		}
		buf.Set(cx, cy, glyph, ColorLightGray, sky)
	}

	drawGround(buf)
	drawPad(buf, f.Pad, f.Vessel.Wind)
	drawTrajectory(buf, f.Vessel.History, sky)
	drawVessel(buf, f.Vessel, sky)
	drawParticles(buf, f.Vessel.Exhaust, sky)
	drawEffects(buf, f.Effects, sky)
}

func drawGround(buf *CellBuffer) {
	_, top := cellAt(0, world.GroundY)
	for x := range Cols {
		buf.Set(x, top, 220, ColorDarkGray, ColorBlack) // ▄
		for y := top + 1; y < Rows; y++ {
			buf.Set(x, y, 177, ColorDarkGray, ColorBlack) // ▒
		}
	}
}

func drawPad(buf *CellBuffer, p world.Pad, w game.Wind) {
	left, row := cellAt(p.Left(), p.Y)
	right, _ := cellAt(p.Right()-1, p.Y)
	for x := left; x <= right; x++ {
		buf.Set(x, row, '=', ColorLightGray, ColorBlack)
	}
	buf.Set(left, row, '[', ColorYellow, ColorBlack)
	buf.Set(right, row, ']', ColorYellow, ColorBlack)

	// Windsock: pole and a flag that leans downwind.
	sx, sy := cellAt(p.SockX(), p.SockY())
	for y := sy; y < row+1; y++ {
		buf.Set(sx, y, 179, ColorLightGray, ColorBlack) // │
	}
	switch {
	case w.Force >= 0.005:
		buf.Set(sx+1, sy, '>', ColorLightRed, ColorBlack)
	case w.Force <= -0.005:
		buf.Set(sx-1, sy, '<', ColorLightRed, ColorBlack)
	default:
		buf.Set(sx, sy, 'v', ColorLightRed, ColorBlack)
	}
}

func drawTrajectory(buf *CellBuffer, history []game.Point, bg uint8) {
	for _, p := range history {
		cx, cy := cellAt(p.X, p.Y+game.VesselHeight/2)
		buf.Set(cx, cy, 250, ColorLightBlue, bg)
	}
}

func drawVessel(buf *CellBuffer, v *game.Vessel, bg uint8) {
	if v.State == game.Crashed {
		return
	}
	left, top := cellAt(v.X-game.VesselWidth/2, v.Y)
	right, _ := cellAt(v.X+game.VesselWidth/2-1, v.Y)
	mid, _ := cellAt(v.X, v.Y)
	_, bottom := cellAt(v.X, v.Y+game.VesselHeight-1)

	for x := left; x <= right; x++ {
		buf.Set(x, top, 223, ColorLightGray, bg) // ▀ nose
		for y := top + 1; y <= bottom; y++ {
			buf.Set(x, y, 219, ColorLightGray, bg)
		}
	}
	buf.Set(mid, top+1, 'o', ColorLightCyan, ColorLightGray)

	_, legs := cellAt(v.X, v.Bottom()-1)
	if legs == bottom {
		legs++
	}
	buf.Set(left, legs, '/', ColorLightGray, bg)
	buf.Set(right, legs, '\\', ColorLightGray, bg)

	if v.Firing.Main {
		buf.Set(mid, legs, 'V', ColorYellow, bg)
	}
	if v.Firing.Left {
		buf.Set(right+1, top+1, '>', ColorYellow, bg)
	}
	if v.Firing.Right {
		buf.Set(left-1, top+1, '<', ColorYellow, bg)
	}
}

func drawParticles(buf *CellBuffer, p *fx.Pool, bg uint8) {
	for _, pt := range p.Particles {
		if pt.Alpha() == 0 {
			continue
		}
		cx, cy := cellAt(pt.X, pt.Y)
		glyph := byte(250)
		switch {
		case pt.Size >= 6:
			glyph = 254 // ■
		case pt.Size >= 3:
			glyph = '*'
		}
		buf.Set(cx, cy, glyph, Nearest(pt.Color), bg)
	}
}

func drawEffects(buf *CellBuffer, c *fx.Controller, bg uint8) {
	if !c.Active() {
		return
	}
	drawParticles(buf, c.Secondary, bg)
	drawParticles(buf, c.Primary, bg)

	if r := c.Ring; r != nil {
		fg := Nearest(r.Color)
		for _, d := range ringOffsets {
			cx, cy := cellAt(r.X+d[0]*r.Radius, r.Y+d[1]*r.Radius)
			buf.Set(cx, cy, 'o', fg, bg)
		}
	}
}

// ringOffsets are unit-circle points at 30 degree steps.
var ringOffsets = [12][2]float64{
	{1, 0}, {0.866, 0.5}, {0.5, 0.866}, {0, 1}, {-0.5, 0.866}, {-0.866, 0.5},
	{-1, 0}, {-0.866, -0.5}, {-0.5, -0.866}, {0, -1}, {0.5, -0.866}, {0.866, -0.5},
}
