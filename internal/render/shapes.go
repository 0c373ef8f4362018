package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type point struct{ x, y float64 }

// fillConvex fills a convex polygon one pixel row at a time.
func fillConvex(dst *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	top, bottom := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		top = math.Min(top, p.y)
		bottom = math.Max(bottom, p.y)
	}

	for y := math.Floor(top); y <= bottom; y++ {
		row := y + 0.5
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			if (a.y <= row) == (b.y <= row) {
				continue
			}
			x := a.x + (row-a.y)*(b.x-a.x)/(b.y-a.y)
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		if lo <= hi {
			vector.StrokeLine(dst, float32(lo), float32(row), float32(hi), float32(row), 1, clr, false)
		}
	}
}

// strokePolygon outlines a closed polygon.
func strokePolygon(dst *ebiten.Image, pts []point, width float32, clr color.Color) {
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), width, clr, true)
	}
}

// faded returns c with its alpha replaced.
func faded(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
