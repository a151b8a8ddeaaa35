package ember

import "testing"

func benchEmitter(max int) *Emitter {
	e := NewEmitter()
	e.MaxParticles = max
	e.Lifetime = FromTo(0.5, 2)
	e.Speed = FromToEase(40, 160, OutQuad)
	e.Size = FromToEase(8, 0, InQuad)
	e.Gravity = FromTo(0, 120)
	e.AngleMax = 360
	e.SetSeed(1)
	return e
}

func BenchmarkUpdate_1000(b *testing.B) {
	e := benchEmitter(1000)
	// Warmup: steady-state churn with the pool full.
	for i := 0; i < 200; i++ {
		e.Emit(20)
		e.Update(1.0 / 60.0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		e.Emit(20)
		e.Update(1.0 / 60.0)
	}
}

func BenchmarkUpdate_10000(b *testing.B) {
	e := benchEmitter(10000)
	for i := 0; i < 200; i++ {
		e.Emit(200)
		e.Update(1.0 / 60.0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		e.Emit(200)
		e.Update(1.0 / 60.0)
	}
}

func BenchmarkEmit_100(b *testing.B) {
	e := benchEmitter(100000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		e.Clear()
		e.Emit(100)
	}
}

func BenchmarkEase(b *testing.B) {
	t := 0.0
	var sink float64
	b.ResetTimer()
	for b.Loop() {
		for _, c := range allCurves {
			sink += c.Ease(t)
		}
		t += 1.0 / 1024
		if t > 1 {
			t = 0
		}
	}
	_ = sink
}
