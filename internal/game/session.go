package game

import (
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/world"
)

// Phase is the screen a session is on.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhaseSelect
	PhaseFlying
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseSelect:
		return "select"
	case PhaseFlying:
		return "flying"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Session sequences title, tier selection, flight and result screens.
// Front-ends translate keys into these calls and draw by Phase.
type Session struct {
	Phase  Phase
	Flight *Flight
	Count  int // flights started

	deps   Deps
	logger zerolog.Logger
}

// NewSession starts on the title screen.
func NewSession(deps Deps) *Session {
	deps = deps.withDefaults()
	return &Session{
		deps:   deps,
		logger: deps.Logger.With().Str("component", "session").Logger(),
	}
}

// Tiers exposes the difficulty table for the selection screen.
func (s *Session) Tiers() []world.Tier { return s.deps.Tiers.Tiers }

// Continue leaves the title or result screen. Title goes to tier
// selection, result goes back to the title.
func (s *Session) Continue() {
	switch s.Phase {
	case PhaseTitle:
		s.setPhase(PhaseSelect)
	case PhaseResult:
		s.Flight = nil
		s.setPhase(PhaseTitle)
	}
}

// Back returns from tier selection to the title.
func (s *Session) Back() {
	if s.Phase == PhaseSelect {
		s.setPhase(PhaseTitle)
	}
}

// Start launches a flight at tier. It only acts on the selection screen.
func (s *Session) Start(tier int) {
	if s.Phase != PhaseSelect {
		return
	}
	s.Flight = NewFlight(tier, s.deps)
	s.Count++
	s.setPhase(PhaseFlying)
}

// Tick advances the running flight. The flight keeps ticking behind the
// result screen so effects finish playing.
func (s *Session) Tick(ctl Controls) {
	if s.Flight == nil {
		return
	}
	switch s.Phase {
	case PhaseFlying:
		s.Flight.Tick(ctl)
		if s.Flight.ResultReady() {
			s.setPhase(PhaseResult)
		}
	case PhaseResult:
		s.Flight.Tick(Controls{})
	}
}

func (s *Session) setPhase(p Phase) {
	s.logger.Debug().Stringer("from", s.Phase).Stringer("to", p).Msg("phase")
	s.Phase = p
}
