package game

import (
	"fmt"
	"math"
	"time"

	"github.com/spacehole-rogue/lunarlander/internal/fx"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

// Flight dynamics, per tick.
const (
	Gravity         = 0.03
	ThrustMain      = 0.1
	ThrustLateral   = 0.08
	PrecisionFactor = 0.5

	MaxLandingVertical   = 3.0
	MaxLandingHorizontal = MaxLandingVertical / 2
)

// Vessel geometry. X is the hull centre, Y the top of the hull.
const (
	VesselWidth  = 40
	VesselHeight = 60
	LegHeight    = 10
	SpawnX       = world.ScreenWidth / 2
	SpawnY       = 100
)

const (
	historyInterval = 100 * time.Millisecond
	historyCap      = 20
)

// Crash causes.
const (
	CauseOutsideZone = "outside landing zone"
	CauseMissedPad   = "missed the pad"
)

// Clock supplies wall time for the trajectory gate and the flight timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// State is the vessel's place in the flight state machine.
type State uint8

const (
	Flying State = iota
	Landed
	Crashed
)

func (s State) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is absorbing.
func (s State) Terminal() bool { return s != Flying }

// Controls are the player intents for one tick. TogglePrecision is an edge:
// set it on the tick the key goes down.
type Controls struct {
	Main            bool
	Left            bool
	Right           bool
	TogglePrecision bool
}

// Thrusters records which thrusters actually fired on the last tick.
type Thrusters struct {
	Main  bool
	Left  bool
	Right bool
}

// Point is a sampled trajectory position.
type Point struct {
	X, Y float64
}

// Summary is the frozen outcome of a flight, the input to Score.
type Summary struct {
	State             State
	Cause             string
	Tier              int
	Fuel              float64
	InitialFuel       float64
	FinalSpeed        float64
	PrecisionDistance *float64 // nil when the vessel never measured one
	Elapsed           time.Duration
}

// Vessel is the lander and its flight state machine.
type Vessel struct {
	X, Y   float64
	VX, VY float64
	Fuel   float64

	Tier      world.Tier
	Wind      Wind
	Precision bool
	Firing    Thrusters

	State             State
	Cause             string
	FinalSpeed        float64
	PrecisionDistance *float64

	History []Point
	Exhaust *fx.Pool

	pad        world.Pad
	src        rng.Source
	clock      Clock
	startedAt  time.Time
	endedAt    time.Time
	lastSample time.Time
}

// NewVessel places a fresh vessel at the spawn point for tier, aiming at pad.
func NewVessel(tier world.Tier, pad world.Pad, src rng.Source, clock Clock) *Vessel {
	if clock == nil {
		clock = SystemClock
	}
	return &Vessel{
		X:         SpawnX,
		Y:         SpawnY,
		Fuel:      tier.Fuel,
		Tier:      tier,
		Wind:      NewWind(tier.WindMax),
		History:   make([]Point, 0, historyCap),
		Exhaust:   fx.NewPool(fx.Ballistic),
		pad:       pad,
		src:       src,
		clock:     clock,
		startedAt: clock.Now(),
	}
}

// Pad returns the target pad.
func (v *Vessel) Pad() world.Pad { return v.pad }

// Bottom is the y of the leg tips.
func (v *Vessel) Bottom() float64 { return v.Y + VesselHeight + LegHeight }

// Base is the point effects burst from: the bottom centre of the hull.
func (v *Vessel) Base() (float64, float64) { return v.X, v.Y + VesselHeight }

// Speed is |v|.
func (v *Vessel) Speed() float64 { return math.Hypot(v.VX, v.VY) }

// Elapsed is the flight time so far, or the total once terminal.
func (v *Vessel) Elapsed() time.Duration {
	if v.State.Terminal() {
		return v.endedAt.Sub(v.startedAt)
	}
	return v.clock.Now().Sub(v.startedAt)
}

// Update advances one tick. It is a no-op once the vessel is terminal.
func (v *Vessel) Update(ctl Controls) {
	if v.State.Terminal() {
		return
	}

	if ctl.TogglePrecision {
		v.Precision = !v.Precision
	}

	v.sampleHistory()

	v.Wind.Step(v.src)
	v.VX += v.Wind.Force
	v.VY += Gravity

	v.applyThrust(ctl)

	v.X += v.VX
	v.Y += v.VY

	if half := VesselWidth / 2.0; v.X < half {
		v.X = half
		v.VX = 0
	} else if v.X > world.ScreenWidth-half {
		v.X = world.ScreenWidth - half
		v.VX = 0
	}

	v.checkContact()
}

func (v *Vessel) sampleHistory() {
	now := v.clock.Now()
	if !v.lastSample.IsZero() && now.Sub(v.lastSample) < historyInterval {
		return
	}
	if len(v.History) >= historyCap {
		copy(v.History, v.History[1:])
		v.History = v.History[:len(v.History)-1]
	}
	v.History = append(v.History, Point{v.X, v.Y})
	v.lastSample = now
}

func (v *Vessel) applyThrust(ctl Controls) {
	v.Firing = Thrusters{}

	factor := 1.0
	if v.Precision {
		factor = PrecisionFactor
	}

	if ctl.Main && v.Fuel > 0 {
		v.VY -= ThrustMain * factor
		v.Fuel = max(0, v.Fuel-factor)
		v.Firing.Main = true
		v.Exhaust.Spray(v.src, v.X, v.Y+VesselHeight, fx.Exhaust)
	}

	switch {
	case ctl.Left && v.Fuel > 0:
		v.VX -= ThrustLateral * factor
		v.Fuel = max(0, v.Fuel-0.5*factor)
		v.Firing.Left = true
	case ctl.Right && v.Fuel > 0:
		v.VX += ThrustLateral * factor
		v.Fuel = max(0, v.Fuel-0.5*factor)
		v.Firing.Right = true
	}
}

// checkContact classifies touchdown. The pad line is tested before the
// ground line, using the footprint at the tick the pad line is crossed.
func (v *Vessel) checkContact() {
	bottom := v.Bottom()

	switch {
	case bottom >= v.pad.Y:
		if !v.pad.Overlaps(v.X-VesselWidth/2.0, v.X+VesselWidth/2.0) {
			v.FinalSpeed = v.Speed()
			v.terminate(Crashed, CauseOutsideZone)
			return
		}

		v.Y = v.pad.Y - VesselHeight - LegHeight
		vert, horiz := abs(v.VY), abs(v.VX)
		v.FinalSpeed = v.Speed()
		if vert <= MaxLandingVertical && horiz <= MaxLandingHorizontal {
			d := abs(v.X - v.pad.X)
			v.PrecisionDistance = &d
			v.VX, v.VY = 0, 0
			v.terminate(Landed, "")
			return
		}
		v.terminate(Crashed, fmt.Sprintf("excessive speed: V=%.1f H=%.1f", vert, horiz))

	case bottom >= world.GroundY:
		v.FinalSpeed = v.Speed()
		v.VX, v.VY = 0, 0
		v.terminate(Crashed, CauseMissedPad)
	}
}

func (v *Vessel) terminate(s State, cause string) {
	v.State = s
	v.Cause = cause
	v.endedAt = v.clock.Now()
}

// Summary snapshots the outcome for scoring and display.
func (v *Vessel) Summary() Summary {
	s := Summary{
		State:       v.State,
		Cause:       v.Cause,
		Tier:        v.Tier.ID,
		Fuel:        v.Fuel,
		InitialFuel: v.Tier.Fuel,
		FinalSpeed:  v.FinalSpeed,
		Elapsed:     v.Elapsed(),
	}
	if v.PrecisionDistance != nil {
		d := *v.PrecisionDistance
		s.PrecisionDistance = &d
	}
	return s
}
