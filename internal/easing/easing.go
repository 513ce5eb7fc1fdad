// Package easing implements the parametric timing curves used for camera
// interpolation: the classic polynomial/trigonometric/exponential families
// plus parameterized back, bounce, elastic and cubic-Bezier curves.
//
// Every curve maps a progress value t in [0, 1] to an eased value. The eased
// value is not confined to [0, 1] (back and elastic overshoot on purpose),
// but all curves return exactly 0 at t=0 and exactly 1 at t=1.
package easing

import "math"

// Kind names an easing curve. It is a plain string so that an easing name
// from a newer level-format version survives a load/save round trip; Eval
// treats any name it does not recognize as Linear.
type Kind string

const (
	Linear Kind = "Linear"

	InQuad    Kind = "InQuad"
	OutQuad   Kind = "OutQuad"
	InOutQuad Kind = "InOutQuad"

	InCubic    Kind = "InCubic"
	OutCubic   Kind = "OutCubic"
	InOutCubic Kind = "InOutCubic"

	InQuart    Kind = "InQuart"
	OutQuart   Kind = "OutQuart"
	InOutQuart Kind = "InOutQuart"

	InQuint    Kind = "InQuint"
	OutQuint   Kind = "OutQuint"
	InOutQuint Kind = "InOutQuint"

	InSine    Kind = "InSine"
	OutSine   Kind = "OutSine"
	InOutSine Kind = "InOutSine"

	InExpo    Kind = "InExpo"
	OutExpo   Kind = "OutExpo"
	InOutExpo Kind = "InOutExpo"

	InCirc    Kind = "InCirc"
	OutCirc   Kind = "OutCirc"
	InOutCirc Kind = "InOutCirc"

	InBack    Kind = "InBack"
	OutBack   Kind = "OutBack"
	InOutBack Kind = "InOutBack"

	InBounce    Kind = "InBounce"
	OutBounce   Kind = "OutBounce"
	InOutBounce Kind = "InOutBounce"

	Elastic Kind = "Elastic"
	Bezier  Kind = "Bezier"
)

// Kinds lists every known curve in cycling order.
var Kinds = []Kind{
	Linear,
	InQuad, OutQuad, InOutQuad,
	InCubic, OutCubic, InOutCubic,
	InQuart, OutQuart, InOutQuart,
	InQuint, OutQuint, InOutQuint,
	InSine, OutSine, InOutSine,
	InExpo, OutExpo, InOutExpo,
	InCirc, OutCirc, InOutCirc,
	InBack, OutBack, InOutBack,
	InBounce, OutBounce, InOutBounce,
	Elastic, Bezier,
}

// Known reports whether k is one of the curves this library implements.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Cycle returns the kind dir steps away in cycling order, wrapping at both
// ends. An unrecognized kind cycles as if it were Linear.
func (k Kind) Cycle(dir int) Kind {
	idx := 0
	for i, known := range Kinds {
		if k == known {
			idx = i
			break
		}
	}
	n := len(Kinds)
	idx = ((idx+dir)%n + n) % n
	return Kinds[idx]
}

// ElasticParams configures the Elastic curve: the number of full sine cycles
// and the exponential damping rate.
type ElasticParams struct {
	Oscillations int
	Decay        float64
}

// BackParams configures the Back curves. Overshoot controls how far the
// curve dips below 0 (In) or above 1 (Out) before settling.
type BackParams struct {
	Overshoot float64
}

// BounceParams configures the Bounce curves: N1 scales the piecewise
// parabolas, D1 divides the segment thresholds.
type BounceParams struct {
	N1 float64
	D1 float64
}

// Point is a Bezier control point inside the unit square.
type Point struct {
	X float64
	Y float64
}

// BezierParams holds the two free control points of a cubic Bezier whose
// endpoints are fixed at (0,0) and (1,1).
type BezierParams struct {
	P1 Point
	P2 Point
}

// Params carries the parameter payloads for the parameterized curve
// families. Only the record matching the evaluated Kind is consulted.
type Params struct {
	Elastic ElasticParams
	Back    BackParams
	Bounce  BounceParams
	Bezier  BezierParams
}

// DefaultParams returns the documented defaults for every parameterized
// family: 3 oscillations decaying at 3.0, the classic 1.70158 overshoot,
// the classic 7.5625/2.75 bounce, and the CSS "ease" Bezier.
func DefaultParams() Params {
	return Params{
		Elastic: ElasticParams{Oscillations: 3, Decay: 3.0},
		Back:    BackParams{Overshoot: 1.70158},
		Bounce:  BounceParams{N1: 7.5625, D1: 2.75},
		Bezier:  BezierParams{P1: Point{X: 0.25, Y: 0.1}, P2: Point{X: 0.25, Y: 1.0}},
	}
}

// Eval maps progress t in [0,1] through the curve named by k. Unknown kinds
// evaluate as Linear. The exact-bound rule applies to every kind, including
// Elastic, whose general formula would otherwise land slightly off 0 and 1.
func Eval(k Kind, t float64, p Params) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}

	switch k {
	case InQuad:
		return easeInPoly(t, 2)
	case OutQuad:
		return easeOutPoly(t, 2)
	case InOutQuad:
		return easeInOutPoly(t, 2)

	case InCubic:
		return easeInPoly(t, 3)
	case OutCubic:
		return easeOutPoly(t, 3)
	case InOutCubic:
		return easeInOutPoly(t, 3)

	case InQuart:
		return easeInPoly(t, 4)
	case OutQuart:
		return easeOutPoly(t, 4)
	case InOutQuart:
		return easeInOutPoly(t, 4)

	case InQuint:
		return easeInPoly(t, 5)
	case OutQuint:
		return easeOutPoly(t, 5)
	case InOutQuint:
		return easeInOutPoly(t, 5)

	case InSine:
		return 1 - math.Cos(t*math.Pi/2)
	case OutSine:
		return math.Sin(t * math.Pi / 2)
	case InOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2

	case InExpo:
		return math.Pow(2, 10*(t-1))
	case OutExpo:
		return 1 - math.Pow(2, -10*t)
	case InOutExpo:
		if t < 0.5 {
			return math.Pow(2, 20*t-10) / 2
		}
		return (2 - math.Pow(2, -20*t+10)) / 2

	case InCirc:
		return 1 - math.Sqrt(1-t*t)
	case OutCirc:
		return math.Sqrt(1 - (t-1)*(t-1))
	case InOutCirc:
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		return (math.Sqrt(1-(-2*t+2)*(-2*t+2)) + 1) / 2

	case InBack:
		return easeInBack(t, p.Back.Overshoot)
	case OutBack:
		// Point reflection of InBack around (0.5, 0.5).
		return 1 - easeInBack(1-t, p.Back.Overshoot)
	case InOutBack:
		return easeInOutBack(t, p.Back.Overshoot)

	case InBounce:
		return 1 - bounceOut(1-t, p.Bounce)
	case OutBounce:
		return bounceOut(t, p.Bounce)
	case InOutBounce:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t, p.Bounce)) / 2
		}
		return (1 + bounceOut(2*t-1, p.Bounce)) / 2

	case Elastic:
		sin := math.Sin(float64(p.Elastic.Oscillations) * 2 * math.Pi * t)
		return 1 - sin*math.Exp(-p.Elastic.Decay*t)

	case Bezier:
		return bezierY(t, p.Bezier)
	}

	return t
}

func easeInPoly(t float64, n float64) float64 {
	return math.Pow(t, n)
}

func easeOutPoly(t float64, n float64) float64 {
	return 1 - math.Pow(1-t, n)
}

func easeInOutPoly(t float64, n float64) float64 {
	if t < 0.5 {
		return math.Pow(2, n-1) * math.Pow(t, n)
	}
	return 1 - math.Pow(-2*t+2, n)/2
}

func easeInBack(t, s float64) float64 {
	return (s+1)*t*t*t - s*t*t
}

func easeInOutBack(t, s float64) float64 {
	// The in-out variant works with a widened overshoot constant.
	c := s * 1.525
	if t < 0.5 {
		u := 2 * t
		return (u * u * ((c+1)*u - c)) / 2
	}
	u := 2*t - 2
	return (u*u*((c+1)*u+c) + 2) / 2
}

// bounceOut is the canonical 4-segment piecewise parabola. The thresholds
// are 1/d1, 2/d1 and 2.5/d1; each segment lands on its additive offset.
func bounceOut(t float64, p BounceParams) float64 {
	n1, d1 := p.N1, p.D1
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
