package game

import (
	"math"

	"github.com/spacehole-rogue/lunarlander/internal/world"
)

const (
	scoreBase             = 500
	precisionFallback     = 500
	precisionHalfPadWidth = world.PadWidth / 2.0
)

// ScoreBreakdown itemizes the points of one flight.
type ScoreBreakdown struct {
	Base      int
	Speed     int
	Fuel      int
	Time      int
	Precision int
}

// Total sums every component.
func (b ScoreBreakdown) Total() int {
	return b.Base + b.Speed + b.Fuel + b.Time + b.Precision
}

// Score rates a finished flight. Anything but a landing scores zero.
func Score(s Summary) ScoreBreakdown {
	if s.State != Landed {
		return ScoreBreakdown{}
	}
	return ScoreBreakdown{
		Base:      scoreBase,
		Speed:     speedBonus(s.FinalSpeed),
		Fuel:      fuelBonus(s.Fuel, s.InitialFuel),
		Time:      timeBonus(s.Elapsed.Seconds()),
		Precision: precisionBonus(s.PrecisionDistance),
	}
}

func speedBonus(speed float64) int {
	switch {
	case speed < 0.5:
		return 1000
	case speed < 1.0:
		return 800
	case speed < 1.5:
		return 500
	default:
		return 200
	}
}

func fuelBonus(fuel, initial float64) int {
	if initial <= 0 {
		return 0
	}
	ratio := max(0, min(1, fuel/initial))
	return int(1000 * ratio * ratio)
}

// timeBonus keeps the discontinuity at 40s: the tail formula restarts
// from 300 there.
func timeBonus(seconds float64) int {
	switch {
	case seconds < 20:
		return 500
	case seconds < 30:
		return 300
	case seconds < 40:
		return 100
	default:
		return max(0, int(500-(seconds-20)*10))
	}
}

func precisionBonus(distance *float64) int {
	if distance == nil {
		return precisionFallback
	}
	p := 1 - math.Min(1, math.Max(0, *distance/precisionHalfPadWidth))
	return int(1000 * p * p)
}

type unlock struct {
	threshold int
	name      string
}

var unlocks = []unlock{
	{1000, "lateral control"},
	{2000, "shield"},
	{3000, "boosted thruster"},
}

// Unlocked names the best upgrade a score earns, or "" below the first
// threshold.
func Unlocked(total int) string {
	name := ""
	for _, u := range unlocks {
		if total >= u.threshold {
			name = u.name
		}
	}
	return name
}
