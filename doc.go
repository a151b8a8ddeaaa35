// Package ember is a CPU particle system for [Ebitengine].
//
// Ember simulates pools of short-lived particles spawned from
// configurable emitters: spawning, aging, Euler integration, eased
// property interpolation, and amortized O(1) removal under churn.
//
// # Quick start
//
// Create an [Emitter], tune its tween-valued properties, and call
// [Emitter.Emit], [Emitter.Update], and [Emitter.Draw] from your game
// loop:
//
//	e := ember.NewEmitterAt(320, 240)
//	e.MaxParticles = 500
//	e.Lifetime = ember.FromTo(0.8, 1.6)
//	e.Size = ember.FromToEase(8, 0, ember.InQuad)
//	e.Color = ember.ColorFromTo(
//		ember.Color{R: 1, G: 0.8, B: 0.2, A: 1},
//		ember.Color{R: 1, G: 0.1, B: 0, A: 0},
//	)
//
//	// each frame:
//	e.Emit(3)
//	e.Update(dt)
//	e.Draw(screen)
//
// Every animated or randomized property is a [Tween]: a start value, an
// end value, and a [Curve]. At spawn time, tween endpoints bound the
// uniform random sample; over a particle's lifetime, the curve shapes
// how the property interpolates. The Back curves intentionally
// overshoot past their endpoints; sizes and colors are clamped at draw
// time so overshoot stays a visual effect, never an invalid value.
//
// By default each particle is drawn as a filled colored square. Set
// [Emitter.OnDraw] to render particles however you like.
//
// Emitters can be described declaratively in YAML via [Preset] and
// persisted with [PresetStore]. The [Run] helper provides a minimal
// window and fixed-timestep loop for demos; runnable examples live
// under examples/.
//
// [Ebitengine]: https://ebitengine.org
package ember
