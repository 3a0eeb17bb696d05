package game

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Particle represents a single particle in a particle system
type Particle struct {
	X, Y     float64
	VX, VY   float64 // pixels per tick
	Age      int     // ticks lived
	Lifetime int     // ticks to live
	Color    color.NRGBA
	Size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.Age < p.Lifetime
}

// BurstStyle describes the particles of one kind of burst
type BurstStyle struct {
	Count          int
	SpeedMin       float64
	SpeedMax       float64
	LifetimeMin    int
	LifetimeMax    int
	SizeMin        float64
	SizeMax        float64
	ColorBase      color.NRGBA
	ColorVariation color.NRGBA
}

// Burst styles
var (
	ExplosionBurst = BurstStyle{
		Count:          40,
		SpeedMin:       1,
		SpeedMax:       5,
		LifetimeMin:    15,
		LifetimeMax:    40,
		SizeMin:        1.5,
		SizeMax:        4,
		ColorBase:      color.NRGBA{R: 255, G: 160, B: 0, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 90, B: 40, A: 0},
	}
	HealBurst = BurstStyle{
		Count:          25,
		SpeedMin:       0.5,
		SpeedMax:       2.5,
		LifetimeMin:    20,
		LifetimeMax:    45,
		SizeMin:        2,
		SizeMax:        3.5,
		ColorBase:      color.NRGBA{R: 255, G: 80, B: 120, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 60, B: 60, A: 0},
	}
	HitBurst = BurstStyle{
		Count:          12,
		SpeedMin:       1,
		SpeedMax:       3,
		LifetimeMin:    8,
		LifetimeMax:    18,
		SizeMin:        1,
		SizeMax:        2.5,
		ColorBase:      color.NRGBA{R: 255, G: 40, B: 40, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 40, B: 40, A: 0},
	}
)

// ParticleSystem holds short-lived cosmetic particles. It never affects
// gameplay.
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates an empty system capped at limit particles
func NewParticleSystem(limit int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, limit),
		maxParticles: limit,
		rng:          rng,
	}
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Burst emits particles in every direction from (x, y)
func (ps *ParticleSystem) Burst(x, y float64, style BurstStyle) {
	for i := 0; i < style.Count && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.between(style.SpeedMin, style.SpeedMax)
		ps.particles = append(ps.particles, Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Lifetime: style.LifetimeMin + ps.rng.IntN(style.LifetimeMax-style.LifetimeMin+1),
			Color:    ps.vary(style.ColorBase, style.ColorVariation),
			Size:     ps.between(style.SizeMin, style.SizeMax),
		})
	}
}

func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// vary shifts each channel of base by up to ±variation
func (ps *ParticleSystem) vary(base, variation color.NRGBA) color.NRGBA {
	ch := func(b, v uint8) uint8 {
		return uint8(clamp(float64(b)+ps.rng.Float64()*float64(v)*2-float64(v), 0, 255))
	}
	return color.NRGBA{
		R: ch(base.R, variation.R),
		G: ch(base.G, variation.G),
		B: ch(base.B, variation.B),
		A: base.A,
	}
}

// Update ages and moves every particle, dropping dead ones
func (ps *ParticleSystem) Update() {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.Age++
		p.X += p.VX
		p.Y += p.VY
		if p.IsAlive() {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Draw renders every particle fading out with age
func (ps *ParticleSystem) Draw(r *Renderer) {
	for _, p := range ps.particles {
		fade := clamp(1-float64(p.Age)/float64(p.Lifetime), 0, 1)
		c := p.Color
		c.A = uint8(float64(c.A) * fade)
		r.FillCircle(p.X, p.Y, p.Size, c)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
