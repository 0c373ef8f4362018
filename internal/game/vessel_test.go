package game

import (
	"math"
	"testing"
	"time"

	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVessel_FreeFall(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Update(Controls{})
	assert.Equal(t, Flying, v.State)
	assert.InDelta(t, Gravity, v.VY, 1e-12)
	assert.InDelta(t, SpawnY+Gravity, v.Y, 1e-12)
	assert.Equal(t, 500.0, v.Fuel)
}

func TestVessel_MainThrust(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Update(Controls{Main: true})
	assert.InDelta(t, Gravity-ThrustMain, v.VY, 1e-12)
	assert.Equal(t, 499.0, v.Fuel)
	assert.True(t, v.Firing.Main)
	assert.Equal(t, 2, v.Exhaust.Len())
}

func TestVessel_PrecisionHalvesThrustAndDraw(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Update(Controls{Main: true, Left: true, TogglePrecision: true})
	assert.True(t, v.Precision)
	assert.InDelta(t, Gravity-ThrustMain*PrecisionFactor, v.VY, 1e-12)
	assert.InDelta(t, -ThrustLateral*PrecisionFactor, v.VX, 1e-12)
	assert.InDelta(t, 500-0.5-0.25, v.Fuel, 1e-12)

	v.Update(Controls{TogglePrecision: true})
	assert.False(t, v.Precision)
}

func TestVessel_LeftWinsOverRight(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Update(Controls{Left: true, Right: true})
	assert.InDelta(t, -ThrustLateral, v.VX, 1e-12)
	assert.Equal(t, 499.5, v.Fuel)
	assert.True(t, v.Firing.Left)
	assert.False(t, v.Firing.Right)
}

func TestVessel_NoThrustWithoutFuel(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Fuel = 0
	v.Update(Controls{Main: true, Right: true})
	assert.InDelta(t, Gravity, v.VY, 1e-12)
	assert.Zero(t, v.VX)
	assert.Zero(t, v.Fuel)
	assert.Zero(t, v.Exhaust.Len())
	assert.Equal(t, Thrusters{}, v.Firing)
}

func TestVessel_FuelFloorsAtZero(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.Fuel = 0.3
	v.Update(Controls{Main: true})
	assert.Zero(t, v.Fuel)
}

func TestVessel_FuelMonotoneAndNonNegative(t *testing.T) {
	for id := 1; id <= 3; id++ {
		v := NewVessel(tier(id), centrePad(), rng.New(uint64(id)), newFakeClock())
		prev := v.Fuel
		for i := 0; i < 1000 && v.State == Flying; i++ {
			v.Update(Controls{Main: i%3 != 0, Left: i%5 == 0, Right: i%7 == 0, TogglePrecision: i%50 == 0})
			require.LessOrEqual(t, v.Fuel, prev)
			require.GreaterOrEqual(t, v.Fuel, 0.0)
			prev = v.Fuel
		}
	}
}

func TestVessel_ClampsToRightBound(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.X = world.ScreenWidth - VesselWidth/2 - 1
	v.VX = 5
	v.Update(Controls{})
	assert.Equal(t, float64(world.ScreenWidth-VesselWidth/2), v.X)
	assert.Zero(t, v.VX)
}

func TestVessel_ClampsToLeftBound(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	v.X = 25
	v.VX = -9
	v.Update(Controls{})
	assert.Equal(t, float64(VesselWidth/2), v.X)
	assert.Zero(t, v.VX)
}

func TestVessel_SoftTouchdownLands(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	aboutToTouch(v, 400, 1.4, 2.9)
	v.Update(Controls{})

	require.Equal(t, Landed, v.State)
	assert.Empty(t, v.Cause)
	assert.Zero(t, v.VX)
	assert.Zero(t, v.VY)
	assert.InDelta(t, world.PadY, v.Bottom(), 1e-9)
	assert.InDelta(t, math.Hypot(1.4, 2.9), v.FinalSpeed, 1e-9)
	require.NotNil(t, v.PrecisionDistance)
	assert.InDelta(t, 0, *v.PrecisionDistance, 1e-9)
}

func TestVessel_FastTouchdownCrashes(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	aboutToTouch(v, 400, 1.4, 3.1)
	v.Update(Controls{})

	require.Equal(t, Crashed, v.State)
	assert.Equal(t, "excessive speed: V=3.1 H=1.4", v.Cause)
	assert.Nil(t, v.PrecisionDistance)
}

func TestVessel_SidewaysTouchdownCrashes(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	aboutToTouch(v, 400, 1.6, 1)
	v.Update(Controls{})

	require.Equal(t, Crashed, v.State)
	assert.Contains(t, v.Cause, "excessive speed")
}

func TestVessel_OffPadCrashes(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	aboutToTouch(v, 200, 0, 1)
	v.Update(Controls{})

	require.Equal(t, Crashed, v.State)
	assert.Equal(t, CauseOutsideZone, v.Cause)
}

func TestVessel_FootprintEdgeStillCountsAsPad(t *testing.T) {
	v := NewVessel(tier(1), centrePad(), calm, newFakeClock())
	// hull spans [411, 451], pad spans [370, 430]
	aboutToTouch(v, 431, 0, 1)
	v.Update(Controls{})

	require.Equal(t, Landed, v.State)
	assert.InDelta(t, 31, *v.PrecisionDistance, 1e-9)
}

func TestVessel_GroundBranchWhenPadLineIsLower(t *testing.T) {
	pad := centrePad()
	pad.Y = world.ScreenHeight + 100
	v := NewVessel(tier(1), pad, calm, newFakeClock())
	v.VX, v.VY = 3, 4-Gravity
	v.Y = world.GroundY - VesselHeight - LegHeight - 2
	v.Update(Controls{})

	require.Equal(t, Crashed, v.State)
	assert.Equal(t, CauseMissedPad, v.Cause)
	assert.InDelta(t, 5, v.FinalSpeed, 1e-9)
	assert.Zero(t, v.VX)
	assert.Zero(t, v.VY)
}

func TestVessel_TerminalStateAbsorbs(t *testing.T) {
	clock := newFakeClock()
	v := NewVessel(tier(2), centrePad(), calm, clock)
	aboutToTouch(v, 200, 0.5, 4)
	v.Update(Controls{})
	require.Equal(t, Crashed, v.State)

	x, y, vx, vy, fuel := v.X, v.Y, v.VX, v.VY, v.Fuel
	cause, hist, elapsed := v.Cause, len(v.History), v.Elapsed()
	for i := 0; i < 30; i++ {
		clock.Advance(time.Second)
		v.Update(Controls{Main: true, Left: true, TogglePrecision: true})
	}
	assert.Equal(t, Crashed, v.State)
	assert.Equal(t, cause, v.Cause)
	assert.Equal(t, []float64{x, y, vx, vy, fuel}, []float64{v.X, v.Y, v.VX, v.VY, v.Fuel})
	assert.Len(t, v.History, hist)
	assert.False(t, v.Precision)
	assert.Equal(t, elapsed, v.Elapsed())
}

func TestVessel_HistorySampledAndCapped(t *testing.T) {
	clock := newFakeClock()
	v := NewVessel(tier(1), centrePad(), calm, clock)

	v.Update(Controls{Main: true})
	require.Len(t, v.History, 1)
	clock.Advance(50 * time.Millisecond)
	v.Update(Controls{Main: true})
	assert.Len(t, v.History, 1)
	clock.Advance(50 * time.Millisecond)
	v.Update(Controls{Main: true})
	assert.Len(t, v.History, 2)

	for i := 0; i < 40; i++ {
		clock.Advance(100 * time.Millisecond)
		v.Update(Controls{Main: true})
	}
	require.Equal(t, Flying, v.State)
	assert.Len(t, v.History, historyCap)
	assert.Less(t, v.History[historyCap-1].Y, v.History[0].Y)
}

func TestVessel_SummaryElapsed(t *testing.T) {
	clock := newFakeClock()
	v := NewVessel(tier(1), centrePad(), calm, clock)
	clock.Advance(12 * time.Second)
	aboutToTouch(v, 400, 0, 1)
	v.Update(Controls{})

	s := v.Summary()
	assert.Equal(t, Landed, s.State)
	assert.Equal(t, 12*time.Second, s.Elapsed)
	assert.Equal(t, 1, s.Tier)
	assert.Equal(t, 500.0, s.InitialFuel)
	require.NotNil(t, s.PrecisionDistance)

	*s.PrecisionDistance = 99
	assert.NotEqual(t, 99.0, *v.PrecisionDistance)
}

func TestWind_StaysWithinTierMax(t *testing.T) {
	for id := 1; id <= 3; id++ {
		w := NewWind(tier(id).WindMax)
		src := rng.New(uint64(100 + id))
		for i := 0; i < 50000; i++ {
			w.Step(src)
			require.LessOrEqual(t, abs(w.Force), w.Max, "tier %d tick %d", id, i)
		}
	}
}

func TestWind_FlipsOnlyWhenSaturated(t *testing.T) {
	always := fixedSource{f: 0}

	w := NewWind(0.01)
	for i := 0; i < 5; i++ {
		w.Step(always)
	}
	assert.Equal(t, 1.0, w.Direction)
	assert.InDelta(t, 0.005, w.Force, 1e-12)

	w = Wind{Force: 0.01, Direction: 1, Max: 0.01}
	w.Step(always)
	assert.Equal(t, -1.0, w.Direction)
	assert.InDelta(t, 0.009, w.Force, 1e-12)
}

func TestWind_CalmSourceNeverMoves(t *testing.T) {
	w := NewWind(0.05)
	for i := 0; i < 100; i++ {
		w.Step(calm)
	}
	assert.Zero(t, w.Force)
}

func TestWind_ClampsEveryTick(t *testing.T) {
	w := Wind{Force: 0.2, Direction: 1, Max: 0.03}
	w.Step(calm)
	assert.Equal(t, 0.03, w.Force)
	assert.Equal(t, 1.0, w.Intensity())
}
