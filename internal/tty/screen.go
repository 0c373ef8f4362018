// Package tty is a terminal front-end for the lander built on tcell.
package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/ui"
)

var palette [16]tcell.Color

func init() {
	for i, c := range ui.Palette {
		palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// Style maps a cell's palette colors to a tcell style.
func Style(c ui.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[c.FG&15]).Background(palette[c.BG&15])
}

// Blit copies buf to the top-left of screen. Cells beyond the screen are
// dropped.
func Blit(screen tcell.Screen, buf *ui.CellBuffer) {
	w, h := screen.Size()
	for y := 0; y < buf.Rows && y < h; y++ {
		for x := 0; x < buf.Cols && x < w; x++ {
			c := buf.Cells[y*buf.Cols+x]
			screen.SetContent(x, y, c.Rune(), nil, Style(c))
		}
	}
}

// Compose lays out the current session screen into buf.
func Compose(buf *ui.CellBuffer, s *game.Session) {
	switch s.Phase {
	case game.PhaseTitle:
		ui.DrawTitle(buf)
	case game.PhaseSelect:
		ui.DrawSelect(buf, s.Tiers())
	case game.PhaseFlying:
		ui.RasterizeScene(buf, s.Flight)
		ui.DrawHUD(buf, s.Flight)
	case game.PhaseResult:
		ui.DrawResult(buf, s.Flight)
	}
}
