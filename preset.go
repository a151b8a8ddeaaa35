package ember

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Preset is a declarative emitter configuration, typically loaded from a
// YAML document. A preset fully describes an emitter; fields absent from
// the document keep the DefaultPreset values, which match NewEmitter.
//
// Tween-valued properties accept either a bare number (a constant) or a
// mapping:
//
//	speed: 120
//	size: {from: 8, to: 0, ease: in-quad}
//
// Colors are "#rrggbb" or "#rrggbbaa" hex strings. Unknown ease names
// degrade to linear rather than erroring, matching the curve evaluator.
type Preset struct {
	Name         string    `yaml:"name,omitempty"`
	MaxParticles int       `yaml:"max_particles"`
	Lifetime     TweenSpec `yaml:"lifetime"`
	Speed        TweenSpec `yaml:"speed"`
	Size         TweenSpec `yaml:"size"`
	Gravity      TweenSpec `yaml:"gravity"`
	SpawnDelay   TweenSpec `yaml:"spawn_delay"`
	Color        ColorSpec `yaml:"color"`
	AngleMin     float64   `yaml:"angle_min"`
	AngleMax     float64   `yaml:"angle_max"`
	Blend        string    `yaml:"blend,omitempty"`
	Seed         *uint64   `yaml:"seed,omitempty"`
}

// DefaultPreset returns the preset equivalent of NewEmitter's defaults.
func DefaultPreset() Preset {
	return Preset{
		MaxParticles: 128,
		Lifetime:     TweenSpec{Fixed(1)},
		Speed:        TweenSpec{Fixed(100)},
		Size:         TweenSpec{Fixed(4)},
		Gravity:      TweenSpec{Fixed(0)},
		SpawnDelay:   TweenSpec{Fixed(0)},
		Color:        ColorSpec{FixedColor(ColorWhite)},
		AngleMax:     360,
		Blend:        "normal",
	}
}

// ParsePreset parses a YAML preset document over DefaultPreset.
func ParsePreset(data []byte) (*Preset, error) {
	p := DefaultPreset()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// Marshal serializes the preset back to YAML.
func (p *Preset) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal preset: %w", err)
	}
	return data, nil
}

// Apply overwrites e's configuration with the preset's. The emitter's
// position, live particles, and OnDraw callback are untouched. When the
// preset carries a seed, the emitter's generator is reseeded.
func (p *Preset) Apply(e *Emitter) {
	e.MaxParticles = p.MaxParticles
	e.Lifetime = p.Lifetime.Tween
	e.Speed = p.Speed.Tween
	e.Size = p.Size.Tween
	e.Gravity = p.Gravity.Tween
	e.SpawnDelay = p.SpawnDelay.Tween
	e.Color = p.Color.Tween
	e.AngleMin = p.AngleMin
	e.AngleMax = p.AngleMax
	e.Blend = blendByName(p.Blend)
	if p.Seed != nil {
		e.SetSeed(*p.Seed)
	}
}

// NewEmitter creates an emitter configured from the preset.
func (p *Preset) NewEmitter() *Emitter {
	e := NewEmitter()
	p.Apply(e)
	return e
}

// TweenSpec is the YAML form of a Tween.
type TweenSpec struct {
	Tween Tween
}

// tweenDoc is the mapping form of a TweenSpec.
type tweenDoc struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Ease string  `yaml:"ease,omitempty"`
}

// UnmarshalYAML accepts a bare number or a {from, to, ease} mapping.
func (s *TweenSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		v, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return fmt.Errorf("tween value %q: %w", value.Value, err)
		}
		s.Tween = Fixed(v)
		return nil
	}
	var doc tweenDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	s.Tween = FromToEase(doc.From, doc.To, CurveByName(doc.Ease))
	return nil
}

// MarshalYAML emits the tersest equivalent form.
func (s TweenSpec) MarshalYAML() (any, error) {
	if s.Tween.Start == s.Tween.End && s.Tween.Curve == Linear {
		return s.Tween.Start, nil
	}
	doc := tweenDoc{From: s.Tween.Start, To: s.Tween.End}
	if s.Tween.Curve != Linear {
		doc.Ease = s.Tween.Curve.String()
	}
	return doc, nil
}

// ColorSpec is the YAML form of a ColorTween.
type ColorSpec struct {
	Tween ColorTween
}

type colorDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Ease string `yaml:"ease,omitempty"`
}

// UnmarshalYAML accepts a bare hex string or a {from, to, ease} mapping
// of hex strings.
func (s *ColorSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c, err := ParseHexColor(value.Value)
		if err != nil {
			return err
		}
		s.Tween = FixedColor(c)
		return nil
	}
	var doc colorDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	from, err := ParseHexColor(doc.From)
	if err != nil {
		return err
	}
	to, err := ParseHexColor(doc.To)
	if err != nil {
		return err
	}
	s.Tween = ColorFromToEase(from, to, CurveByName(doc.Ease))
	return nil
}

// MarshalYAML emits the tersest equivalent form.
func (s ColorSpec) MarshalYAML() (any, error) {
	if s.Tween.Start == s.Tween.End && s.Tween.Curve == Linear {
		return formatHexColor(s.Tween.Start), nil
	}
	doc := colorDoc{
		From: formatHexColor(s.Tween.Start),
		To:   formatHexColor(s.Tween.End),
	}
	if s.Tween.Curve != Linear {
		doc.Ease = s.Tween.Curve.String()
	}
	return doc, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: expected leading '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	a := uint64(0xff)
	if len(hex) == 8 {
		a = v & 0xff
		v >>= 8
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(a) / 255,
	}, nil
}

func formatHexColor(c Color) string {
	c = c.Clamped()
	r := uint8(c.R*255 + 0.5)
	g := uint8(c.G*255 + 0.5)
	b := uint8(c.B*255 + 0.5)
	a := uint8(c.A*255 + 0.5)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func blendByName(name string) BlendMode {
	switch name {
	case "add":
		return BlendAdd
	case "multiply":
		return BlendMultiply
	case "screen":
		return BlendScreen
	default:
		return BlendNormal
	}
}
