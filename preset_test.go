package ember

import (
	"strings"
	"testing"
)

const fountainYAML = `
name: fountain
max_particles: 300
angle_min: 240
angle_max: 300
lifetime: {from: 1.4, to: 2.2}
speed: {from: 80, to: 180, ease: out-quad}
size: {from: 6, to: 1, ease: in-quad}
gravity: 240
spawn_delay: {from: 0, to: 0.2}
color:
  from: "#4da6ff"
  to: "#d9f2ff00"
blend: add
seed: 1234
`

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset([]byte(fountainYAML))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}

	if p.Name != "fountain" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.MaxParticles != 300 {
		t.Errorf("MaxParticles = %d", p.MaxParticles)
	}
	if p.Lifetime.Tween != FromTo(1.4, 2.2) {
		t.Errorf("Lifetime = %+v", p.Lifetime.Tween)
	}
	if p.Speed.Tween != FromToEase(80, 180, OutQuad) {
		t.Errorf("Speed = %+v", p.Speed.Tween)
	}
	if p.Gravity.Tween != Fixed(240) {
		t.Errorf("Gravity = %+v (scalar form should parse as a constant)", p.Gravity.Tween)
	}
	if p.Seed == nil || *p.Seed != 1234 {
		t.Errorf("Seed = %v", p.Seed)
	}

	assertNear(t, "color from R", p.Color.Tween.Start.R, float64(0x4d)/255)
	assertNear(t, "color from A", p.Color.Tween.Start.A, 1)
	assertNear(t, "color to A", p.Color.Tween.End.A, 0)
}

func TestParsePresetDefaults(t *testing.T) {
	// An empty document is a valid preset: everything defaults to the
	// NewEmitter configuration.
	p, err := ParsePreset([]byte("name: bare\n"))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	def := DefaultPreset()
	if p.MaxParticles != def.MaxParticles || p.Lifetime.Tween != def.Lifetime.Tween {
		t.Errorf("missing fields should keep defaults: %+v", p)
	}
	if p.AngleMax != 360 {
		t.Errorf("AngleMax = %v, want 360", p.AngleMax)
	}
}

func TestParsePresetUnknownEaseFallsBack(t *testing.T) {
	p, err := ParsePreset([]byte("size: {from: 1, to: 2, ease: wobble}\n"))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	if p.Size.Tween.Curve != Linear {
		t.Errorf("Curve = %v, want Linear fallback for unknown ease name", p.Size.Tween.Curve)
	}
}

func TestParsePresetErrors(t *testing.T) {
	if _, err := ParsePreset([]byte("lifetime: {from: [oops]}\n")); err == nil {
		t.Error("structurally bad tween should error")
	}
	if _, err := ParsePreset([]byte("color: \"notahex\"\n")); err == nil {
		t.Error("malformed color should error")
	}
	if _, err := ParsePreset([]byte("color: \"#12345\"\n")); err == nil {
		t.Error("wrong hex digit count should error")
	}
}

func TestPresetApply(t *testing.T) {
	p, err := ParsePreset([]byte(fountainYAML))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}

	e := p.NewEmitter()
	if e.MaxParticles != 300 || e.Blend != BlendAdd {
		t.Errorf("applied emitter = max %d blend %v", e.MaxParticles, e.Blend)
	}
	if e.Speed != FromToEase(80, 180, OutQuad) {
		t.Errorf("Speed = %+v", e.Speed)
	}

	// The preset carries a seed, so two emitters built from it behave
	// identically.
	a, b := p.NewEmitter(), p.NewEmitter()
	a.Emit(5)
	b.Emit(5)
	pa, pb := snapshot(a), snapshot(b)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("seeded preset emitters diverged at particle %d", i)
		}
	}
}

func TestPresetRoundTrip(t *testing.T) {
	p, err := ParsePreset([]byte(fountainYAML))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	q, err := ParsePreset(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if q.Lifetime.Tween != p.Lifetime.Tween ||
		q.Speed.Tween != p.Speed.Tween ||
		q.Size.Tween != p.Size.Tween ||
		q.Gravity.Tween != p.Gravity.Tween ||
		q.SpawnDelay.Tween != p.SpawnDelay.Tween {
		t.Error("tween round-trip mismatch")
	}
	if q.Color.Tween.Curve != p.Color.Tween.Curve {
		t.Error("color curve round-trip mismatch")
	}
	assertWithin(t, "color R", q.Color.Tween.Start.R, p.Color.Tween.Start.R, 1.0/255)
	if q.Blend != p.Blend || q.AngleMin != p.AngleMin || q.AngleMax != p.AngleMax {
		t.Error("scalar field round-trip mismatch")
	}
	if q.Seed == nil || *q.Seed != *p.Seed {
		t.Error("seed round-trip mismatch")
	}

	// Constant tweens marshal back to the terse scalar form.
	if !strings.Contains(string(data), "gravity: 240") {
		t.Errorf("constant tween should marshal as a scalar:\n%s", data)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, float64(0x80)/255)
	assertNear(t, "B", c.B, 0)
	assertNear(t, "A", c.A, 1)

	c, err = ParseHexColor("#00000080")
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "A", c.A, float64(0x80)/255)

	for _, bad := range []string{"", "ff8000", "#ff", "#gggggg"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should error", bad)
		}
	}
}

func TestBlendByName(t *testing.T) {
	cases := map[string]BlendMode{
		"normal":   BlendNormal,
		"add":      BlendAdd,
		"multiply": BlendMultiply,
		"screen":   BlendScreen,
		"":         BlendNormal,
		"bogus":    BlendNormal,
	}
	for name, want := range cases {
		if got := blendByName(name); got != want {
			t.Errorf("blendByName(%q) = %v, want %v", name, got, want)
		}
	}
}
