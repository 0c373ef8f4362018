package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/lunarlander/internal/game"
)

// Input turns terminal key presses into session actions and per-tick
// controls. Terminals report presses only, so a thruster key keeps the
// thruster lit for hold ticks after its last press (auto-repeat renews it).
type Input struct {
	hold uint64
	tick uint64

	mainUntil  uint64
	leftUntil  uint64
	rightUntil uint64
	toggle     bool
}

// NewInput creates an Input with the given hold in ticks (minimum 1).
func NewInput(hold int) *Input {
	return &Input{hold: uint64(max(1, hold))}
}

// Key applies one key event to s. It reports whether the player asked to quit.
func (in *Input) Key(ev *tcell.EventKey, s *game.Session) (quit bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	switch s.Phase {
	case game.PhaseTitle:
		switch {
		case ev.Key() == tcell.KeyEnter, isRune(ev, ' '):
			s.Continue()
		case ev.Key() == tcell.KeyEscape, isRune(ev, 'q'):
			return true
		}

	case game.PhaseSelect:
		switch {
		case ev.Key() == tcell.KeyEscape:
			s.Back()
		case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9':
			id := int(ev.Rune() - '0')
			if id <= len(s.Tiers()) {
				in.reset()
				s.Start(id)
			}
		}

	case game.PhaseFlying:
		until := in.tick + in.hold
		switch {
		case ev.Key() == tcell.KeyUp, isRune(ev, ' '):
			in.mainUntil = until
		case ev.Key() == tcell.KeyLeft:
			in.leftUntil = until
		case ev.Key() == tcell.KeyRight:
			in.rightUntil = until
		case ev.Key() == tcell.KeyTab, isRune(ev, 'p'):
			in.toggle = true
		case ev.Key() == tcell.KeyEscape:
			return true
		}

	case game.PhaseResult:
		switch {
		case ev.Key() == tcell.KeyEnter, isRune(ev, ' '):
			in.reset()
			s.Continue()
		case ev.Key() == tcell.KeyEscape:
			return true
		}
	}
	return false
}

// Controls returns the controls for the coming tick and advances the clock.
func (in *Input) Controls() game.Controls {
	ctl := game.Controls{
		Main:            in.tick < in.mainUntil,
		Left:            in.tick < in.leftUntil,
		Right:           in.tick < in.rightUntil,
		TogglePrecision: in.toggle,
	}
	in.toggle = false
	in.tick++
	return ctl
}

func (in *Input) reset() {
	in.mainUntil, in.leftUntil, in.rightUntil = 0, 0, 0
	in.toggle = false
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}
