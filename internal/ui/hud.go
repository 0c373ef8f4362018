package ui

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/lunarlander/internal/game"
)

// HUD layout.
const (
	fuelBarWidth = 20
	commsCol     = 44
	commsRow     = 3
	commsRows    = 4
	calmWind     = 0.005
)

// DrawHUD writes the flight instruments: speeds, fuel, wind, mode, tier
// and the last few comms messages.
func DrawHUD(buf *CellBuffer, f *game.Flight) {
	v := f.Vessel

	vfg := uint8(ColorWhite)
	if math.Abs(v.VY) > game.MaxLandingVertical {
		vfg = ColorLightRed
	}
	hfg := uint8(ColorWhite)
	if math.Abs(v.VX) > game.MaxLandingHorizontal {
		hfg = ColorLightRed
	}
	buf.WriteString(1, 0, fmt.Sprintf("V-SPEED %5.1f", math.Abs(v.VY)), vfg, ColorBlack)
	buf.WriteString(1, 1, fmt.Sprintf("H-SPEED %5.1f", math.Abs(v.VX)), hfg, ColorBlack)

	drawFuel(buf, 1, 2, v.Fuel, f.Tier.Fuel)

	text, fg := WindLabel(v.Wind)
	buf.WriteString(1, 3, text, fg, ColorBlack)

	if v.Precision {
		buf.WriteString(Cols-16, 0, "PRECISION MODE", ColorLightGreen, ColorBlack)
	}
	buf.WriteString(Cols-16, 1, fmt.Sprintf("TIER %d %s", f.Tier.ID, f.Tier.Name), ColorYellow, ColorBlack)

	for i, m := range f.Log.Recent(commsRows) {
		buf.WriteString(commsCol, commsRow+i, m.Text, MessageColor(m.Priority), ColorBlack)
	}
}

func drawFuel(buf *CellBuffer, x, y int, fuel, initial float64) {
	ratio := 0.0
	if initial > 0 {
		ratio = fuel / initial
	}
	fg := uint8(ColorLightRed)
	switch {
	case ratio > 0.5:
		fg = ColorLightGreen
	case ratio > 0.25:
		fg = ColorYellow
	}

	buf.WriteString(x, y, "FUEL", fg, ColorBlack)
	filled := int(math.Ceil(ratio * fuelBarWidth))
	for i := range fuelBarWidth {
		glyph := byte(176)
		if i < filled {
			glyph = 219
		}
		buf.Set(x+8+i, y, glyph, fg, ColorBlack)
	}
	buf.WriteString(x+9+fuelBarWidth, y, fmt.Sprintf("%.0f", fuel), fg, ColorBlack)
}

// WindLabel describes the wind the way the HUD shows it.
func WindLabel(w game.Wind) (string, uint8) {
	if math.Abs(w.Force) < calmWind {
		return fmt.Sprintf("WIND    %.3f calm", w.Force), ColorWhite
	}
	arrow := "->"
	if w.Force < 0 {
		arrow = "<-"
	}
	label, fg := "light", uint8(ColorWhite)
	switch i := w.Intensity(); {
	case i > 0.7:
		label, fg = "strong", ColorLightRed
	case i > 0.3:
		label, fg = "moderate", ColorYellow
	}
	return fmt.Sprintf("WIND    %.3f %s %s", math.Abs(w.Force), label, arrow), fg
}

// MessageColor maps a comms priority to its palette color.
func MessageColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return ColorYellow
	case game.MsgCritical:
		return ColorLightRed
	case game.MsgSuccess:
		return ColorLightGreen
	default:
		return ColorLightCyan
	}
}
