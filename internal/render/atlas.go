// Package render draws the lander with Ebitengine: vector shapes for the
// scene and a CP437 glyph atlas for the text layer.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spacehole-rogue/lunarlander/internal/ui"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
)

// shapes covers the non-ASCII codes the HUD and menus emit. A pixel is lit
// where the predicate holds; x and y are relative to the 16x16 cell.
var shapes = map[byte]func(x, y int) bool{
	176: func(x, y int) bool { return (x+y)%4 == 0 },     // ░ fuel bar, spent
	196: func(_, y int) bool { return y == 7 || y == 8 }, // ─ title rule
	219: func(_, _ int) bool { return true },             // █ fuel bar, remaining
}

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	glyphs [256]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 and the
// codes in shapes by hand. Every other code stays blank.
func NewFontAtlas() *FontAtlas {
	sheet := ebiten.NewImageFromImage(buildSheet())
	a := &FontAtlas{}
	for code := range a.glyphs {
		x, y := cellOrigin(code)
		a.glyphs[code] = sheet.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

func buildSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, 256/AtlasCols*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(code)
		if r := ui.CP437ToUnicode[code]; r >= 32 && r <= 126 {
			drawFontGlyph(img, face, cx, cy, r)
		} else if lit, ok := shapes[byte(code)]; ok {
			drawShape(img, cx, cy, lit)
		}
	}
	return img
}

func cellOrigin(code int) (int, int) {
	return code % AtlasCols * GlyphWidth, code / AtlasCols * GlyphHeight
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph centers a 7x13 basicfont glyph in the cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

func drawShape(img *image.NRGBA, cellX, cellY int, lit func(x, y int) bool) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if lit(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}
}
