package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/lunarlander/internal/fx"
	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

// Tick intervals (at 60 TPS)
const (
	TicksPerSecond  = 60
	warningInterval = 300 // check warnings every 5 sec
	resultDelay     = 90  // landing celebration before the result screen
	leaderboardSize = records.Capacity
	commsLines      = 30
	commsWidth      = 36
)

// Warning thresholds.
const (
	lowFuelRatio    = 0.25
	strongWindRatio = 0.7
)

// RecordStore is the part of a leaderboard backend a flight needs.
type RecordStore interface {
	Add(r records.Record) error
	Top(n int) ([]records.Record, error)
}

// Deps are the collaborators of a flight. Zero values are replaced with
// silent or in-memory defaults.
type Deps struct {
	Source   rng.Source
	Clock    Clock
	Notifier Notifier
	Records  RecordStore
	Logger   zerolog.Logger
	Tiers    *world.TierTable
}

func (d Deps) withDefaults() Deps {
	if d.Source == nil {
		d.Source = rng.New(0)
	}
	if d.Clock == nil {
		d.Clock = SystemClock
	}
	if d.Notifier == nil {
		d.Notifier = NopNotifier{}
	}
	if d.Records == nil {
		d.Records = records.NewMemory()
	}
	if d.Tiers == nil {
		d.Tiers = world.DefaultTiers()
	}
	return d
}

// Flight owns everything for one descent: the pad, the vessel, the
// effects and the comms log. It is driven by Tick once per frame.
type Flight struct {
	Tier    world.Tier
	Pad     world.Pad
	Stars   []world.Star
	Vessel  *Vessel
	Effects *fx.Controller
	Log     *MessageLog
	Ticks   uint64

	// Set once the vessel leaves Flying.
	Summary     Summary
	Breakdown   ScoreBreakdown
	Leaderboard []records.Record
	Placement   int // 1-based rank of this landing, 0 if none
	Unlock      string

	sinceEnd int
	deps     Deps
	logger   zerolog.Logger
}

// NewFlight starts a descent at tierID. Unknown tiers fall back to tier 1.
func NewFlight(tierID int, deps Deps) *Flight {
	deps = deps.withDefaults()
	tier := deps.Tiers.Get(tierID)
	pad := world.NewPad(tier, deps.Source)

	f := &Flight{
		Tier:    tier,
		Pad:     pad,
		Stars:   world.NewStarfield(deps.Source, world.StarCount),
		Vessel:  NewVessel(tier, pad, deps.Source, deps.Clock),
		Effects: fx.NewController(deps.Source),
		Log:     NewMessageLog(commsLines, commsWidth),
		deps:    deps,
		logger:  deps.Logger.With().Str("component", "flight").Int("tier", tier.ID).Logger(),
	}

	f.Log.Add(0, fmt.Sprintf("%s descent. Fuel %.0f.", tier.Name, tier.Fuel), MsgInfo)
	f.Log.Add(0, "Pad beacon acquired. Watch the wind.", MsgInfo)
	f.logger.Info().Float64("padX", pad.X).Msg("flight started")
	deps.Notifier.Notify(SoundStart)
	return f
}

// Done reports whether the vessel has landed or crashed.
func (f *Flight) Done() bool { return f.Vessel.State.Terminal() }

// ResultReady reports whether the result screen may be shown: right away
// after a crash, resultDelay ticks after a landing.
func (f *Flight) ResultReady() bool {
	switch f.Vessel.State {
	case Crashed:
		return true
	case Landed:
		return f.sinceEnd >= resultDelay
	default:
		return false
	}
}

// Tick advances the flight by one frame.
func (f *Flight) Tick(ctl Controls) {
	f.Ticks++
	v := f.Vessel
	wasFlying := !v.State.Terminal()
	wasPrecision := v.Precision

	v.Update(ctl)

	if wasFlying {
		f.notifyControls(wasPrecision)
	}

	v.Exhaust.Step()
	f.Effects.Tick()

	if wasFlying && v.State.Terminal() {
		f.finish()
	}

	switch {
	case !wasFlying:
		f.sinceEnd++
	case !v.State.Terminal() && f.Ticks%warningInterval == 0:
		f.checkWarnings()
	}
}

func (f *Flight) notifyControls(wasPrecision bool) {
	v := f.Vessel
	if v.Precision != wasPrecision {
		f.deps.Notifier.Notify(SoundPrecision)
		if v.Precision {
			f.Log.Add(f.Ticks, "Precision mode engaged.", MsgInfo)
		} else {
			f.Log.Add(f.Ticks, "Precision mode off.", MsgInfo)
		}
	}
	if v.Firing.Main {
		f.deps.Notifier.Notify(SoundThrustMain)
	}
	if v.Firing.Left || v.Firing.Right {
		f.deps.Notifier.Notify(SoundThrustLateral)
	}
}

// finish runs exactly once, on the tick the vessel leaves Flying.
func (f *Flight) finish() {
	v := f.Vessel
	f.Summary = v.Summary()
	f.Breakdown = Score(f.Summary)
	x, y := v.Base()

	if v.State == Crashed {
		f.Effects.Trigger(fx.Explosion, x, y)
		f.deps.Notifier.Notify(SoundExplosion)
		f.Log.Add(f.Ticks, "Vessel lost: "+v.Cause+".", MsgCritical)
		f.logger.Info().
			Str("cause", v.Cause).
			Float64("speed", f.Summary.FinalSpeed).
			Msg("flight crashed")
		f.loadLeaderboard()
		return
	}

	f.Effects.Trigger(fx.Success, x, y)
	f.deps.Notifier.Notify(SoundSuccess)
	total := f.Breakdown.Total()
	f.Log.Add(f.Ticks, fmt.Sprintf("Touchdown. Score %d.", total), MsgSuccess)

	f.loadLeaderboard()
	f.Placement = records.Placement(f.Leaderboard, total)
	rec := records.Record{Score: total, At: f.deps.Clock.Now()}
	if err := f.deps.Records.Add(rec); err != nil {
		f.logger.Warn().Err(err).Msg("record not saved")
	}
	f.loadLeaderboard()

	f.Unlock = Unlocked(total)
	if f.Unlock != "" {
		f.Log.Add(f.Ticks, "Upgrade unlocked: "+f.Unlock+".", MsgSuccess)
	}

	f.logger.Info().
		Int("score", total).
		Int("placement", f.Placement).
		Dur("elapsed", f.Summary.Elapsed).
		Msg("flight landed")
}

func (f *Flight) loadLeaderboard() {
	top, err := f.deps.Records.Top(leaderboardSize)
	if err != nil {
		f.logger.Warn().Err(err).Msg("leaderboard unavailable")
		return
	}
	f.Leaderboard = top
}

func (f *Flight) checkWarnings() {
	v := f.Vessel

	if v.Fuel == 0 {
		f.Log.Add(f.Ticks, "FUEL EXHAUSTED. Thrusters offline.", MsgCritical)
	} else if v.Fuel < v.Tier.Fuel*lowFuelRatio {
		f.Log.Add(f.Ticks, fmt.Sprintf("Fuel low: %.0f.", v.Fuel), MsgWarning)
	}

	if v.Wind.Intensity() > strongWindRatio {
		from := "west"
		if v.Wind.Force < 0 {
			from = "east"
		}
		f.Log.Add(f.Ticks, "Strong wind from the "+from+".", MsgWarning)
	}

	if v.VY > MaxLandingVertical {
		f.Log.Add(f.Ticks, fmt.Sprintf("Descent too fast: %.1f.", v.VY), MsgCritical)
	}
}
