package ember

import (
	ebimath "github.com/edwinsyarief/ebi-math"
)

// Particle is the simulation state of one live entity. Particles are
// exclusively owned by the Emitter that spawned them; custom draw
// callbacks receive them by value.
type Particle struct {
	Position ebimath.Vector
	Velocity ebimath.Vector
	// Age is the time in seconds since the particle was emitted.
	Age float64
	// MaxAge is the age at which the particle expires, including Delay.
	MaxAge float64
	// Delay is the time after emission during which the particle
	// simulates but is not drawn.
	Delay float64
	// InitialSpeed is the speed sampled at spawn, kept so lifetime speed
	// scaling has a fixed reference magnitude.
	InitialSpeed float64
}

// Alive reports whether the particle has not yet expired.
func (p Particle) Alive() bool {
	return p.Age < p.MaxAge
}

// Visible reports whether the particle's spawn delay has elapsed.
func (p Particle) Visible() bool {
	return p.Age >= p.Delay
}

// LifeProgress returns the particle's normalized position within its
// visible lifetime, in [0, 1]. The spawn delay is excluded: progress is 0
// when the particle first becomes visible and 1 at expiry. Recomputed from
// Age every frame, never stored.
func (p Particle) LifeProgress() float64 {
	if p.MaxAge <= p.Delay {
		return 1
	}
	aged := p.Age - p.Delay
	if aged < 0 {
		aged = 0
	}
	return aged / (p.MaxAge - p.Delay)
}
