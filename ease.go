package ember

import "math"

// Curve selects an easing formula. The zero value is Linear.
//
// All curves map a normalized time t in [0, 1] to an eased factor that is
// usually in [0, 1]. The Back variants intentionally overshoot past the
// endpoints; that is what makes a "settle past the target, then return"
// effect readable. Behavior outside [0, 1] is unspecified.
type Curve uint8

const (
	Linear Curve = iota
	InSine
	OutSine
	InOutSine
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InExpo
	OutExpo
	InOutExpo
	InBack
	OutBack
	InOutBack
)

// Back-curve overshoot constants.
const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

// Ease returns the eased factor for t in [0, 1].
// Unrecognized Curve values fall back to Linear rather than erroring;
// a bad curve in a live effect should degrade, not crash a frame.
func (c Curve) Ease(t float64) float64 {
	switch c {
	case Linear:
		return t
	case InSine:
		return 1 - math.Cos(t*math.Pi/2)
	case OutSine:
		return math.Sin(t * math.Pi / 2)
	case InOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case InQuad:
		return t * t
	case OutQuad:
		return 1 - (1-t)*(1-t)
	case InOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case InCubic:
		return t * t * t
	case OutCubic:
		return 1 - math.Pow(1-t, 3)
	case InOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case InExpo:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	case OutExpo:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case InOutExpo:
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	case InBack:
		return backC3*t*t*t - backC1*t*t
	case OutBack:
		return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
	case InOutBack:
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((backC2+1)*(2*t-2)+backC2) + 2) / 2
	default:
		return t
	}
}

var curveNames = map[Curve]string{
	Linear:     "linear",
	InSine:     "in-sine",
	OutSine:    "out-sine",
	InOutSine:  "in-out-sine",
	InQuad:     "in-quad",
	OutQuad:    "out-quad",
	InOutQuad:  "in-out-quad",
	InCubic:    "in-cubic",
	OutCubic:   "out-cubic",
	InOutCubic: "in-out-cubic",
	InExpo:     "in-expo",
	OutExpo:    "out-expo",
	InOutExpo:  "in-out-expo",
	InBack:     "in-back",
	OutBack:    "out-back",
	InOutBack:  "in-out-back",
}

var curvesByName = func() map[string]Curve {
	m := make(map[string]Curve, len(curveNames))
	for c, name := range curveNames {
		m[name] = c
	}
	return m
}()

// String returns the curve's preset-file name, e.g. "in-out-quad".
func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return "linear"
}

// CurveByName maps a preset-file name to a Curve. Unknown names
// fall back to Linear.
func CurveByName(name string) Curve {
	if c, ok := curvesByName[name]; ok {
		return c
	}
	return Linear
}
