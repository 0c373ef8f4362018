// Package fx is the particle engine behind the explosion, success and
// thruster exhaust effects.
package fx

import (
	"image/color"
	"math"

	"github.com/spacehole-rogue/lunarlander/internal/rng"
)

// Physics is the per-tick integration applied to every particle of a pool.
type Physics struct {
	Gravity float64 // added to VY each tick
	Drag    float64 // velocity multiplier each tick; 1 means none
}

var (
	// Ballistic is used by flash, fire, firework and exhaust particles.
	Ballistic = Physics{Gravity: 0.1, Drag: 1}
	// Drift is used by smoke and sparkles: light gravity, air damping.
	Drift = Physics{Gravity: 0.03, Drag: 0.98}
)

// Particle is a single decaying point sprite.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Size    float64
	Life    int // ticks left
	MaxLife int // ticks at spawn, for the alpha fade
}

// Step advances the particle one tick and reports whether it is still alive.
func (p *Particle) Step(ph Physics) bool {
	if ph.Drag != 1 {
		p.VX *= ph.Drag
		p.VY *= ph.Drag
	}
	p.X += p.VX
	p.Y += p.VY
	p.VY += ph.Gravity
	p.Life--
	return p.Life > 0
}

// Alpha fades linearly from 255 at spawn to 0 at death.
func (p *Particle) Alpha() uint8 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return uint8(255 * p.Life / p.MaxLife)
}

// Pool owns a set of particles sharing one Physics. It has no capacity cap;
// dead particles are filtered out on every Step.
type Pool struct {
	Physics   Physics
	Particles []Particle
}

// NewPool creates an empty pool.
func NewPool(ph Physics) *Pool {
	return &Pool{Physics: ph}
}

// Add appends a particle.
func (p *Pool) Add(pt Particle) {
	p.Particles = append(p.Particles, pt)
}

// Len returns the number of live particles.
func (p *Pool) Len() int { return len(p.Particles) }

// Reset drops every particle.
func (p *Pool) Reset() {
	p.Particles = p.Particles[:0]
}

// Step advances every particle and prunes the dead ones.
func (p *Pool) Step() {
	alive := p.Particles[:0]
	for i := range p.Particles {
		pt := p.Particles[i]
		if pt.Step(p.Physics) {
			alive = append(alive, pt)
		}
	}
	clear(p.Particles[len(alive):])
	p.Particles = alive
}

// BurstSpec describes a radial burst: each particle leaves the origin at a
// random angle and speed.
type BurstSpec struct {
	Count              int
	AngleMin, AngleMax float64 // radians; y grows downward so -Pi..0 is up
	SpeedMin, SpeedMax float64
	Lift               float64 // subtracted from VY
	LifeMin, LifeMax   int
	SizeMin, SizeMax   int
	Palette            []color.RGBA
}

// Burst spawns spec.Count particles at (x, y).
func (p *Pool) Burst(src rng.Source, x, y float64, spec BurstSpec) {
	for i := 0; i < spec.Count; i++ {
		angle := rng.Uniform(src, spec.AngleMin, spec.AngleMax)
		speed := rng.Uniform(src, spec.SpeedMin, spec.SpeedMax)
		life := rng.IntRange(src, spec.LifeMin, spec.LifeMax)
		p.Add(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - spec.Lift,
			Color:   rng.Pick(src, spec.Palette),
			Size:    float64(rng.IntRange(src, spec.SizeMin, spec.SizeMax)),
			Life:    life,
			MaxLife: life,
		})
	}
}

// SpraySpec describes particles with independent per-axis velocity ranges.
type SpraySpec struct {
	Count            int
	VXMin, VXMax     float64
	VYMin, VYMax     float64
	LifeMin, LifeMax int
	SizeMin, SizeMax int
	Palette          []color.RGBA
}

// Spray spawns spec.Count particles at (x, y).
func (p *Pool) Spray(src rng.Source, x, y float64, spec SpraySpec) {
	for i := 0; i < spec.Count; i++ {
		life := rng.IntRange(src, spec.LifeMin, spec.LifeMax)
		p.Add(Particle{
			X:       x,
			Y:       y,
			VX:      rng.Uniform(src, spec.VXMin, spec.VXMax),
			VY:      rng.Uniform(src, spec.VYMin, spec.VYMax),
			Color:   rng.Pick(src, spec.Palette),
			Size:    float64(rng.IntRange(src, spec.SizeMin, spec.SizeMax)),
			Life:    life,
			MaxLife: life,
		})
	}
}
