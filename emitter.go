package ember

import (
	"math"
	"math/rand/v2"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// A random range narrower than this collapses to its start value,
	// avoiding floating-point jitter on "constant" ranges.
	rangeEpsilon = 1e-9
	// speedEpsilon guards the divide-by-zero in lifetime speed scaling
	// and skips rescales that would be no-ops.
	speedEpsilon = 1e-6
)

// DrawParticleFunc draws one particle. The color is already clamped and
// the size is non-negative. Implementations must not mutate emitter state.
type DrawParticleFunc func(target *ebiten.Image, p Particle, c Color, size float64)

// Emitter owns a bounded pool of particles sharing one configuration and
// simulates them on the CPU. Configuration fields may be tuned live
// between frames.
//
// An Emitter is not safe for concurrent use; the intended model is one
// Emit/Update/Draw sequence per frame from the game loop. Independent
// Emitters share nothing and may live on separate goroutines.
type Emitter struct {
	// Position is where new particles spawn, in screen coordinates.
	Position ebimath.Vector
	// Lifetime is the range of particle lifetimes in seconds, sampled
	// uniformly at spawn.
	Lifetime Tween
	// Speed is sampled uniformly at spawn for the initial magnitude;
	// over a particle's lifetime its velocity is rescaled toward
	// InitialSpeed * (End / Start) along the tween's curve.
	Speed Tween
	// Size is the drawn square's edge length in pixels over lifetime.
	Size Tween
	// Color is the particle tint over lifetime.
	Color ColorTween
	// Gravity is the vertical acceleration in pixels/s² over lifetime.
	Gravity Tween
	// SpawnDelay is the range of visibility delays in seconds: time a
	// particle simulates before it is drawn.
	SpawnDelay Tween
	// AngleMin and AngleMax bound the emission direction in degrees.
	// An inverted range is tolerated and swapped.
	AngleMin float64
	AngleMax float64
	// MaxParticles caps the live pool. Emit requests beyond the cap are
	// silently dropped.
	MaxParticles int
	// Blend is the compositing operation for the default render path.
	Blend BlendMode
	// OnDraw, when set, replaces the default square render path.
	OnDraw DrawParticleFunc

	particles []Particle
	rng       *rand.Rand
}

// NewEmitter creates an Emitter with sane defaults: 128-particle cap,
// 1s lifetime, speed 100, size 4, white, no gravity, no spawn delay,
// full-circle emission, and a randomly seeded generator.
func NewEmitter() *Emitter {
	return &Emitter{
		Lifetime:     Fixed(1),
		Speed:        Fixed(100),
		Size:         Fixed(4),
		Color:        FixedColor(ColorWhite),
		Gravity:      Fixed(0),
		SpawnDelay:   Fixed(0),
		AngleMax:     360,
		MaxParticles: 128,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewEmitterAt creates an Emitter positioned at (x, y).
func NewEmitterAt(x, y float64) *Emitter {
	e := NewEmitter()
	e.Position = ebimath.V(x, y)
	return e
}

// SetSeed reseeds the emitter's random generator. Two emitters with the
// same seed and configuration, driven by an identical Emit/Update script,
// produce bit-identical particles.
func (e *Emitter) SetSeed(seed uint64) {
	e.rng = rand.New(rand.NewPCG(seed, seed))
}

// ParticleCount returns the number of live particles.
func (e *Emitter) ParticleCount() int {
	return len(e.particles)
}

// Clear kills all live particles immediately.
func (e *Emitter) Clear() {
	e.particles = e.particles[:0]
}

// Emit attempts to spawn count particles at the emitter's position.
// Spawning stops silently once MaxParticles is reached.
func (e *Emitter) Emit(count int) {
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for n := 0; n < count; n++ {
		if len(e.particles) >= e.MaxParticles {
			break
		}
		angle := e.randomIn(e.AngleMin, e.AngleMax) * math.Pi / 180
		speed := e.randomIn(e.Speed.Start, e.Speed.End)
		lifetime := e.randomIn(e.Lifetime.Start, e.Lifetime.End)
		delay := e.randomIn(e.SpawnDelay.Start, e.SpawnDelay.End)

		e.particles = append(e.particles, Particle{
			Position:     e.Position,
			Velocity:     ebimath.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			MaxAge:       lifetime + delay,
			Delay:        delay,
			InitialSpeed: speed,
		})
	}
}

// randomIn samples uniformly from [min, max], swapping an inverted range.
// Exactly one generator draw is consumed per call, degenerate range or
// not, so same-seeded emitters never desynchronize.
func (e *Emitter) randomIn(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	r := e.rng.Float64()
	if max-min < rangeEpsilon {
		return min
	}
	return min + r*(max-min)
}

// Update advances the simulation by dt seconds: ages every particle,
// swap-removes the expired, applies gravity and lifetime speed scaling,
// and integrates positions.
func (e *Emitter) Update(dt float64) {
	i := 0
	for i < len(e.particles) {
		p := &e.particles[i]
		p.Age += dt
		if !p.Alive() {
			// Swap with the last particle and shrink. The swapped-in
			// particle is revisited at the same index.
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles = e.particles[:last]
			continue
		}

		progress := p.LifeProgress()

		p.Velocity.Y += e.Gravity.At(progress) * dt

		// Lifetime speed scaling: rescale the velocity magnitude toward
		// InitialSpeed * (End / Start), preserving direction. Skipped for
		// constant-speed emitters and guarded against a zero Speed.Start.
		if math.Abs(e.Speed.Start) > speedEpsilon {
			ratio := e.Speed.End / e.Speed.Start
			if !math.IsInf(ratio, 0) && !math.IsNaN(ratio) && math.Abs(ratio-1) > speedEpsilon {
				target := lerp(p.InitialSpeed, p.InitialSpeed*ratio, e.Speed.Curve.Ease(progress))
				current := math.Hypot(p.Velocity.X, p.Velocity.Y)
				if current > speedEpsilon {
					s := target / current
					p.Velocity.X *= s
					p.Velocity.Y *= s
				}
			}
		}

		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt

		i++
	}
}

// Draw renders every visible particle to target: a filled square centered
// on the particle by default, or whatever OnDraw does when set. Drawing
// never mutates simulation state.
func (e *Emitter) Draw(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range e.particles {
		p := &e.particles[i]
		if !p.Visible() {
			continue
		}

		progress := p.LifeProgress()
		size := e.Size.At(progress)
		if size < 0 {
			size = 0
		}
		col := e.Color.At(progress).Clamped()

		if e.OnDraw != nil {
			e.OnDraw(target, *p, col, size)
			continue
		}

		op.GeoM.Reset()
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(p.Position.X-size/2, p.Position.Y-size/2)

		a := float32(col.A)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
		op.Blend = e.Blend.EbitenBlend()

		target.DrawImage(WhitePixel, &op)
	}
}
