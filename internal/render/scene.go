package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/lunarlander/internal/fx"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

var (
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorGray    = color.RGBA{128, 128, 128, 255}
	colorDark    = color.RGBA{100, 100, 100, 255}
	colorYellow  = color.RGBA{255, 255, 0, 255}
	colorRed     = color.RGBA{255, 0, 0, 255}
	colorSock    = color.RGBA{200, 0, 0, 255}
	colorGreen   = color.RGBA{0, 255, 0, 255}
	colorWindow  = color.RGBA{0, 191, 255, 255}
	colorTrail   = color.RGBA{100, 100, 255, 255}
	colorFlash   = color.RGBA{255, 255, 200, 255}
	colorOverlay = color.NRGBA{0, 0, 0, 170}
)

// Windsock and pad structure dimensions, in pixels.
const (
	mastWidth  = 6
	mastHeight = 90
	sockLength = 50
	pillarW    = 8
	strutW     = 15
	strutH     = 35
)

// DrawScene paints the flight: sky, ground, pad, windsock, trajectory,
// vessel, exhaust and the active effect.
func DrawScene(dst *ebiten.Image, f *game.Flight) {
	dst.Fill(color.Black)

	for _, s := range f.Stars {
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(int(s.Size)), colorWhite, true)
	}
	vector.DrawFilledRect(dst, 0, world.GroundY, world.ScreenWidth, world.GroundHeight, colorWhite, false)

	drawPad(dst, f.Pad)
	drawWindsock(dst, f.Pad, f.Vessel.Wind)
	drawTrajectory(dst, f.Vessel.History)

	v := f.Vessel
	if v.State == game.Flying {
		vector.StrokeRect(dst, float32(v.X-world.PadWidth/2), world.PadY-5, world.PadWidth, 5, 1, colorGreen, false)
	}
	if v.State != game.Crashed {
		drawVessel(dst, v)
	}

	drawPool(dst, v.Exhaust)
	drawEffect(dst, f.Effects)
}

// DrawOverlay darkens the screen under the result text.
func DrawOverlay(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, world.ScreenWidth, world.ScreenHeight, colorOverlay, false)
}

func drawPad(dst *ebiten.Image, p world.Pad) {
	third := p.Width / 3
	top := p.Y + p.Height

	// Pillars shade from light at the deck to dark at the ground.
	for _, px := range []float64{p.X - third, p.X + third} {
		for i := 0.0; top+i < world.GroundY; i++ {
			shade := uint8(max(100, 150-int(i)/2))
			vector.DrawFilledRect(dst, float32(px-pillarW/2), float32(top+i), pillarW, 1,
				color.RGBA{shade, shade, shade, 255}, false)
		}
	}

	for _, off := range []float64{-third, third} {
		strut := []point{
			{p.X + off, top},
			{p.X + off*1.5, world.GroundY},
			{p.X + off*1.3, world.GroundY},
			{p.X + off*0.8, top + 5},
		}
		fillConvex(dst, strut, colorGray)
		strokePolygon(dst, strut, 1, colorDark)
	}

	vector.DrawFilledRect(dst, float32(p.X-strutW), float32(top), strutW*2, strutH, colorGray, false)
	for dy := 5.0; dy < strutH-5; dy += 10 {
		y := float32(top + dy)
		vector.StrokeLine(dst, float32(p.X-strutW+3), y, float32(p.X+strutW-3), y, 1, colorWhite, false)
	}

	// Deck with warning stripes.
	for i := range 4 {
		x := float32(p.Left() + float64(i)*third)
		vector.DrawFilledRect(dst, x, float32(p.Y), float32(p.Width/6), float32(p.Height), colorYellow, false)
		vector.StrokeRect(dst, x, float32(p.Y), float32(p.Width/6), float32(p.Height), 1, color.Black, false)
	}
	vector.StrokeRect(dst, float32(p.Left()), float32(p.Y), float32(p.Width), float32(p.Height), 2, colorGray, false)

	for _, lx := range []float64{p.X - third, p.X, p.X + third} {
		vector.DrawFilledCircle(dst, float32(lx), float32(p.Y+p.Height/2), 3, colorRed, true)
	}
}

func drawWindsock(dst *ebiten.Image, p world.Pad, w game.Wind) {
	x, y := p.SockX(), p.SockY()

	fillConvex(dst, []point{
		{x - 8, y + mastHeight},
		{x + mastWidth + 8, y + mastHeight},
		{x + mastWidth + 12, y + mastHeight + 15},
		{x - 12, y + mastHeight + 15},
	}, colorGray)
	vector.DrawFilledRect(dst, float32(x), float32(y), mastWidth, mastHeight, colorGray, false)
	for my := y + 10; my < y+mastHeight; my += 20 {
		vector.DrawFilledRect(dst, float32(x-1), float32(my), mastWidth+2, 2, colorWhite, false)
	}

	deflect := 0.0
	if w.Max > 0 {
		deflect = float64(int(sockLength * w.Force / w.Max))
	}
	base := x + mastWidth
	sock := []point{
		{base, y + 10},
		{base + deflect, y + 15},
		{base + deflect*1.2, y + 25},
		{base + deflect, y + 35},
		{base, y + 40},
	}
	fillConvex(dst, sock, colorSock)
	strokePolygon(dst, sock, 2, colorWhite)
	for i := 1; i < 3; i++ {
		ly := float32(y + 10 + float64(i*10))
		vector.StrokeLine(dst, float32(base), ly, float32(base+deflect*0.8), ly, 1, colorWhite, false)
	}
}

func drawTrajectory(dst *ebiten.Image, history []game.Point) {
	n := len(history)
	for i := 1; i < n; i++ {
		a, b := history[i-1], history[i]
		alpha := uint8(255 * i / n)
		vector.StrokeLine(dst,
			float32(a.X), float32(a.Y+game.VesselHeight/2),
			float32(b.X), float32(b.Y+game.VesselHeight/2),
			1, faded(colorTrail, alpha), true)
	}
}

func drawVessel(dst *ebiten.Image, v *game.Vessel) {
	const (
		half  = game.VesselWidth / 2
		third = game.VesselWidth / 3
	)
	base := v.Y + game.VesselHeight
	shoulder := v.Y + game.VesselHeight/3

	hull := []point{
		{v.X - half, base},
		{v.X + half, base},
		{v.X + third, shoulder},
		{v.X, v.Y},
		{v.X - third, shoulder},
	}
	fillConvex(dst, hull, colorWhite)
	strokePolygon(dst, hull, 2, colorGray)

	vector.DrawFilledCircle(dst, float32(v.X), float32(shoulder), game.VesselWidth/4, colorWindow, true)
	vector.StrokeCircle(dst, float32(v.X), float32(shoulder), game.VesselWidth/4, 1, colorWhite, true)

	vector.StrokeLine(dst, float32(v.X-half), float32(base), float32(v.X-half-5), float32(base+game.LegHeight), 2, colorWhite, true)
	vector.StrokeLine(dst, float32(v.X+half), float32(base), float32(v.X+half+5), float32(base+game.LegHeight), 2, colorWhite, true)

	if v.Fuel <= 0 {
		return
	}
	for i, c := range fx.FirePalette {
		fi := float64(i)
		if v.Firing.Main {
			size, off := 10-fi*2, fi*3
			fillConvex(dst, []point{
				{v.X - size/2, base + off},
				{v.X + size/2, base + off},
				{v.X, base + size + off},
			}, c)
		}
		size, off := 8-fi*2, fi*2
		if v.Firing.Left {
			x := v.X + half + off
			fillConvex(dst, []point{{x, shoulder}, {x, shoulder + size}, {x + size, shoulder + size/2}}, c)
		}
		if v.Firing.Right {
			x := v.X - half - off
			fillConvex(dst, []point{{x, shoulder}, {x, shoulder + size}, {x - size, shoulder + size/2}}, c)
		}
	}
}

func drawPool(dst *ebiten.Image, p *fx.Pool) {
	for i := range p.Particles {
		pt := &p.Particles[i]
		a := pt.Alpha()
		if a == 0 {
			continue
		}
		vector.DrawFilledCircle(dst, float32(pt.X), float32(pt.Y), float32(pt.Size), faded(pt.Color, a), true)
	}
}

func drawEffect(dst *ebiten.Image, c *fx.Controller) {
	if !c.Active() {
		return
	}
	drawPool(dst, c.Secondary)
	drawPool(dst, c.Primary)

	if r := c.Ring; r != nil {
		vector.StrokeCircle(dst, float32(r.X), float32(r.Y), float32(r.Radius), 2, faded(r.Color, r.Alpha()), true)
	}
	if a := c.Flash.Alpha(); a > 0 {
		vector.DrawFilledRect(dst, 0, 0, world.ScreenWidth, world.ScreenHeight, faded(colorFlash, a), false)
	}
}
