package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

const (
	resultBoardRows = 8
	causeWrap       = 30
)

// DrawTitle writes the title screen.
func DrawTitle(buf *CellBuffer) {
	buf.Clear()
	buf.WriteCentered(8, "L U N A R   L A N D E R", ColorWhite, ColorBlack)
	buf.WriteCentered(9, strings.Repeat(string(rune(196)), 23), ColorDarkGray, ColorBlack)

	buf.WriteCentered(13, "SPACE        main thruster", ColorLightGray, ColorBlack)
	buf.WriteCentered(14, "LEFT/RIGHT   lateral thrusters", ColorLightGray, ColorBlack)
	buf.WriteCentered(15, "SHIFT        precision mode", ColorLightGray, ColorBlack)
	buf.WriteCentered(17, "Mind the wind!", ColorYellow, ColorBlack)

	buf.WriteCentered(21, "Press ENTER to begin", ColorLightGreen, ColorBlack)
}

// DrawSelect writes the tier selection screen.
func DrawSelect(buf *CellBuffer, tiers []world.Tier) {
	buf.Clear()
	buf.WriteCentered(4, "SELECT TIER", ColorYellow, ColorBlack)

	for i, t := range tiers {
		y := 8 + i*4
		buf.WriteCentered(y, fmt.Sprintf("%d: %s", t.ID, t.Name), TierColor(t.ID), ColorBlack)
		buf.WriteCentered(y+1, fmt.Sprintf("Fuel %.0f | Max wind %.2f", t.Fuel, t.WindMax), ColorWhite, ColorBlack)
	}

	buf.WriteCentered(Rows-3, fmt.Sprintf("Choose a tier (1-%d), ESC to go back", len(tiers)), ColorWhite, ColorBlack)
}

// TierColor is green for the easiest tier, yellow for the next, red beyond.
func TierColor(id int) uint8 {
	switch id {
	case 1:
		return ColorLightGreen
	case 2:
		return ColorYellow
	default:
		return ColorLightRed
	}
}

// DrawResult writes the result screen over whatever the buffer holds.
func DrawResult(buf *CellBuffer, f *game.Flight) {
	buf.Clear()
	s := f.Summary

	if s.State == game.Landed {
		buf.WriteCentered(5, "SUCCESSFUL LANDING!", ColorLightGreen, ColorBlack)
		buf.WriteCentered(7, fmt.Sprintf("Total score: %d", f.Breakdown.Total()), ColorYellow, ColorBlack)
	} else {
		buf.WriteCentered(5, "CRASHED!", ColorLightRed, ColorBlack)
		buf.WriteCentered(7, "Score: 0", ColorYellow, ColorBlack)
	}
	if f.Placement > 0 {
		buf.WriteCentered(9, fmt.Sprintf("TOP 10! - Position #%d", f.Placement), ColorLightGreen, ColorBlack)
	}

	if s.State == game.Landed {
		drawBreakdown(buf, 8, 13, f.Breakdown)
		if f.Unlock != "" {
			buf.WriteString(8, 20, "Unlocked: "+f.Unlock, ColorLightCyan, ColorBlack)
		}
		drawBoard(buf, 48, 13, f)
	} else {
		y := 11
		for _, line := range splitCause(s.Cause) {
			buf.WriteCentered(y, line, ColorLightRed, ColorBlack)
			y++
		}
		y++
		v := f.Vessel
		buf.WriteCentered(y, fmt.Sprintf("Final speed: %.1f", s.FinalSpeed), ColorWhite, ColorBlack)
		buf.WriteCentered(y+1, fmt.Sprintf("Vertical speed: %.1f", math.Abs(v.VY)), ColorWhite, ColorBlack)
		buf.WriteCentered(y+2, fmt.Sprintf("Horizontal speed: %.1f", math.Abs(v.VX)), ColorWhite, ColorBlack)
	}

	buf.WriteCentered(Rows-2, "Press SPACE to continue", ColorLightGreen, ColorBlack)
}

func drawBreakdown(buf *CellBuffer, x, y int, b game.ScoreBreakdown) {
	buf.WriteString(x, y, "BREAKDOWN", ColorYellow, ColorBlack)
	rows := []struct {
		label string
		pts   int
	}{
		{"Base", b.Base},
		{"Speed", b.Speed},
		{"Fuel", b.Fuel},
		{"Time", b.Time},
		{"Precision", b.Precision},
	}
	for i, r := range rows {
		buf.WriteString(x, y+1+i, fmt.Sprintf("%-10s %5d", r.label+":", r.pts), ColorWhite, ColorBlack)
	}
}

func drawBoard(buf *CellBuffer, x, y int, f *game.Flight) {
	buf.WriteString(x, y, "BEST SCORES", ColorYellow, ColorBlack)
	for i, r := range f.Leaderboard {
		if i >= resultBoardRows {
			break
		}
		rank := i + 1
		text := fmt.Sprintf("%2d. %5d pts", rank, r.Score)
		fg := uint8(ColorWhite)
		switch {
		case rank == f.Placement:
			text += " <- NEW!"
			fg = ColorLightGreen
		case rank == 1:
			fg = ColorYellow
		}
		buf.WriteString(x, y+1+i, text, fg, ColorBlack)
	}
}

// splitCause breaks long crash causes in two at the first space past the
// middle.
func splitCause(cause string) []string {
	if len(cause) <= causeWrap {
		return []string{cause}
	}
	mid := strings.IndexByte(cause[len(cause)/2:], ' ')
	if mid < 0 {
		mid = len(cause) / 2
	} else {
		mid += len(cause) / 2
	}
	return []string{strings.TrimSpace(cause[:mid]), strings.TrimSpace(cause[mid:])}
}

