package fx

import (
	"image/color"
	"math"

	"github.com/spacehole-rogue/lunarlander/internal/rng"
)

// Kind selects which composite effect a burst produces.
type Kind uint8

const (
	Explosion Kind = iota
	Success
)

func (k Kind) String() string {
	switch k {
	case Explosion:
		return "explosion"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Layer is one particle batch of an effect. Secondary layers go to the
// Drift pool, the rest to the Ballistic pool.
type Layer struct {
	Secondary bool
	Burst     BurstSpec
}

// RingSpec is the expanding ring of an effect. The ring grows linearly
// from StartRadius to MaxRadius over Life ticks while its alpha fades.
type RingSpec struct {
	StartRadius float64
	MaxRadius   float64
	Life        int
	Color       color.RGBA
}

// EffectSpec is the full recipe of one Kind.
type EffectSpec struct {
	Layers    []Layer
	FlashLife int
	FlashPeak uint8
	Ring      RingSpec
}

// Specs holds the recipes for every Kind.
var Specs = map[Kind]EffectSpec{
	Explosion: {
		Layers: []Layer{
			{Burst: BurstSpec{
				Count: 15, AngleMin: 0, AngleMax: 2 * math.Pi, SpeedMin: 1, SpeedMax: 4,
				LifeMin: 10, LifeMax: 20, SizeMin: 10, SizeMax: 20, Palette: FlashPalette,
			}},
			{Burst: BurstSpec{
				Count: 80, AngleMin: 0, AngleMax: 2 * math.Pi, SpeedMin: 2, SpeedMax: 10,
				LifeMin: 20, LifeMax: 50, SizeMin: 3, SizeMax: 8, Palette: ExplosionFirePalette,
			}},
			{Secondary: true, Burst: BurstSpec{
				Count: 40, AngleMin: 0, AngleMax: 2 * math.Pi, SpeedMin: 1, SpeedMax: 3, Lift: 0.5,
				LifeMin: 60, LifeMax: 120, SizeMin: 4, SizeMax: 10, Palette: SmokePalette,
			}},
		},
		FlashLife: 30,
		FlashPeak: 100,
		Ring:      RingSpec{StartRadius: 5, MaxRadius: 50, Life: 20, Color: color.RGBA{255, 200, 50, 255}},
	},
	Success: {
		Layers: []Layer{
			{Burst: BurstSpec{
				Count: 30, AngleMin: -math.Pi, AngleMax: 0, SpeedMin: 3, SpeedMax: 8,
				LifeMin: 40, LifeMax: 80, SizeMin: 2, SizeMax: 6, Palette: SuccessPalette,
			}},
			{Secondary: true, Burst: BurstSpec{
				Count: 15, AngleMin: -math.Pi, AngleMax: math.Pi, SpeedMin: 1, SpeedMax: 3,
				LifeMin: 30, LifeMax: 60, SizeMin: 1, SizeMax: 3, Palette: SparklePalette,
			}},
		},
		FlashLife: 20,
		FlashPeak: 100,
		Ring:      RingSpec{StartRadius: 5, MaxRadius: 40, Life: 30, Color: color.RGBA{255, 215, 0, 255}},
	},
}

// Ring is the live state of an expanding ring.
type Ring struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Growth    float64
	Life      int
	MaxLife   int
	Color     color.RGBA
}

// Step grows the ring and reports whether it is still visible.
func (r *Ring) Step() bool {
	r.Radius = min(r.Radius+r.Growth, r.MaxRadius)
	r.Life--
	return r.Life > 0
}

// Alpha fades linearly with the ring's remaining life.
func (r *Ring) Alpha() uint8 {
	if r.MaxLife <= 0 || r.Life <= 0 {
		return 0
	}
	return uint8(255 * r.Life / r.MaxLife)
}

// Flash is the full-screen overlay.
type Flash struct {
	Remaining int
	Duration  int
	Peak      uint8
}

// Alpha decays linearly from Peak to 0 over Duration ticks.
func (f Flash) Alpha() uint8 {
	if f.Duration <= 0 || f.Remaining <= 0 {
		return 0
	}
	return uint8(int(f.Peak) * f.Remaining / f.Duration)
}

// Controller runs at most one composite effect at a time. Triggering while
// an effect is running replaces it.
type Controller struct {
	src rng.Source

	Kind      Kind
	OriginX   float64
	OriginY   float64
	Primary   *Pool
	Secondary *Pool
	Ring      *Ring
	Flash     Flash
	active    bool
}

// NewController creates an idle controller drawing randomness from src.
func NewController(src rng.Source) *Controller {
	return &Controller{
		src:       src,
		Primary:   NewPool(Ballistic),
		Secondary: NewPool(Drift),
	}
}

// Trigger discards whatever is running and starts a fresh burst of kind at (x, y).
func (c *Controller) Trigger(kind Kind, x, y float64) {
	spec := Specs[kind]

	c.Kind = kind
	c.OriginX, c.OriginY = x, y
	c.Primary.Reset()
	c.Secondary.Reset()

	for _, layer := range spec.Layers {
		pool := c.Primary
		if layer.Secondary {
			pool = c.Secondary
		}
		pool.Burst(c.src, x, y, layer.Burst)
	}

	c.Flash = Flash{Remaining: spec.FlashLife, Duration: spec.FlashLife, Peak: spec.FlashPeak}

	rs := spec.Ring
	growth := 0.0
	if rs.Life > 0 {
		growth = (rs.MaxRadius - rs.StartRadius) / float64(rs.Life)
	}
	c.Ring = &Ring{
		X:         x,
		Y:         y,
		Radius:    rs.StartRadius,
		MaxRadius: rs.MaxRadius,
		Growth:    growth,
		Life:      rs.Life,
		MaxLife:   rs.Life,
		Color:     rs.Color,
	}

	c.active = true
}

// Tick advances ring, flash and both pools by one tick.
func (c *Controller) Tick() {
	if !c.active {
		return
	}

	if c.Ring != nil && !c.Ring.Step() {
		c.Ring = nil
	}
	if c.Flash.Remaining > 0 {
		c.Flash.Remaining--
	}
	c.Primary.Step()
	c.Secondary.Step()

	c.active = c.Primary.Len() > 0 ||
		c.Secondary.Len() > 0 ||
		c.Flash.Remaining > 0 ||
		c.Ring != nil
}

// Active reports whether anything of the current effect is still visible.
func (c *Controller) Active() bool { return c.active }

// ParticleCount returns the live particles across both pools.
func (c *Controller) ParticleCount() int {
	return c.Primary.Len() + c.Secondary.Len()
}

// Exhaust is the main thruster plume: two particles per tick pushed
// downward from the nozzle.
var Exhaust = SpraySpec{
	Count:   2,
	VXMin:   -0.5,
	VXMax:   0.5,
	VYMin:   2,
	VYMax:   4,
	LifeMin: 20,
	LifeMax: 30,
	SizeMin: 2,
	SizeMax: 4,
	Palette: FirePalette,
}
