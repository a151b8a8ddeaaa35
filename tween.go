package ember

// Tween describes how a scalar property evolves: a start value, an end
// value, and the easing curve shaping the transition between them.
// Every animated or randomized emitter property is expressed as one.
//
// A Tween is a plain value; the emitter that holds it owns it and reads
// it each frame.
type Tween struct {
	Start float64
	End   float64
	Curve Curve
}

// Fixed returns a Tween pinned to a single value.
func Fixed(v float64) Tween {
	return Tween{Start: v, End: v}
}

// FromTo returns a Tween from start to end with a Linear curve.
func FromTo(start, end float64) Tween {
	return Tween{Start: start, End: end}
}

// FromToEase returns a Tween from start to end shaped by the given curve.
func FromToEase(start, end float64, curve Curve) Tween {
	return Tween{Start: start, End: end, Curve: curve}
}

// At evaluates the tween at progress in [0, 1]: the curve remaps progress,
// then the result interpolates Start toward End. A degenerate range
// (Start == End) always yields exactly Start regardless of curve.
//
// The eased factor is deliberately not clamped: for Back curves the result
// extrapolates past the endpoints, which is the intended overshoot.
func (tw Tween) At(progress float64) float64 {
	if tw.Start == tw.End {
		return tw.Start
	}
	return lerp(tw.Start, tw.End, tw.Curve.Ease(progress))
}

// ColorTween is the Tween counterpart for colors. Each channel
// interpolates independently under the same curve.
type ColorTween struct {
	Start Color
	End   Color
	Curve Curve
}

// FixedColor returns a ColorTween pinned to a single color.
func FixedColor(c Color) ColorTween {
	return ColorTween{Start: c, End: c}
}

// ColorFromTo returns a ColorTween from start to end with a Linear curve.
func ColorFromTo(start, end Color) ColorTween {
	return ColorTween{Start: start, End: end}
}

// ColorFromToEase returns a ColorTween from start to end shaped by the
// given curve.
func ColorFromToEase(start, end Color, curve Curve) ColorTween {
	return ColorTween{Start: start, End: end, Curve: curve}
}

// At evaluates the color tween at progress in [0, 1], interpolating each
// channel independently. Channels are not clamped here; callers clamp at
// the point where a drawable color is needed.
func (tw ColorTween) At(progress float64) Color {
	if tw.Start == tw.End {
		return tw.Start
	}
	t := tw.Curve.Ease(progress)
	return Color{
		R: lerp(tw.Start.R, tw.End.R, t),
		G: lerp(tw.Start.G, tw.End.G, t),
		B: lerp(tw.Start.B, tw.End.B, t),
		A: lerp(tw.Start.A, tw.End.A, t),
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
