package easing

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestBoundaries(t *testing.T) {
	p := DefaultParams()

	kinds := append([]Kind{}, Kinds...)
	kinds = append(kinds, Kind("SomeFutureEase"))

	for _, k := range kinds {
		if got := Eval(k, 0, p); math.Abs(got) > 1e-9 {
			t.Errorf("%s: Eval(0) = %g, want 0", k, got)
		}
		if got := Eval(k, 1, p); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s: Eval(1) = %g, want 1", k, got)
		}
	}
}

func TestUnknownKindIsLinear(t *testing.T) {
	p := DefaultParams()
	for _, tt := range []float64{0.1, 0.37, 0.5, 0.92} {
		if got := Eval(Kind("EaseFromTheFuture"), tt, p); got != tt {
			t.Errorf("unknown kind at %g: got %g, want identity", tt, got)
		}
	}
	if Kind("EaseFromTheFuture").Known() {
		t.Error("unknown kind reported as known")
	}
}

func TestPolynomialValues(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		kind Kind
		t    float64
		want float64
	}{
		{Linear, 0.25, 0.25},
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InOutQuad, 0.25, 0.125},
		{InOutQuad, 0.75, 0.875},
		{InCubic, 0.5, 0.125},
		{OutCubic, 0.5, 0.875},
		{InOutCubic, 0.5, 0.5},
		{InQuart, 0.5, 0.0625},
		{InQuint, 0.5, 0.03125},
		{InOutQuint, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := Eval(tt.kind, tt.t, p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", tt.kind, tt.t, got, tt.want)
		}
	}
}

func TestTrigExpoCircValues(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		kind Kind
		t    float64
		want float64
	}{
		{InSine, 0.5, 1 - math.Cos(math.Pi/4)},
		{OutSine, 0.5, math.Sin(math.Pi / 4)},
		{InOutSine, 0.5, 0.5},
		{InExpo, 0.5, math.Pow(2, -5)},
		{OutExpo, 0.5, 1 - math.Pow(2, -5)},
		{InOutExpo, 0.5, 0.5},
		{InCirc, 0.5, 1 - math.Sqrt(0.75)},
		{OutCirc, 0.5, math.Sqrt(0.75)},
		{InOutCirc, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := Eval(tt.kind, tt.t, p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", tt.kind, tt.t, got, tt.want)
		}
	}
}

func TestBounceSymmetry(t *testing.T) {
	p := DefaultParams()
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		in := Eval(InBounce, x, p)
		out := Eval(OutBounce, 1-x, p)
		if math.Abs(in-(1-out)) > 1e-9 {
			t.Fatalf("InBounce(%g) = %g, 1-OutBounce(%g) = %g", x, in, 1-x, 1-out)
		}
	}
}

func TestBackOvershoots(t *testing.T) {
	p := DefaultParams()
	dipped := false
	for i := 1; i < 50; i++ {
		if Eval(InBack, float64(i)/100, p) < 0 {
			dipped = true
			break
		}
	}
	if !dipped {
		t.Error("InBack never dipped below 0 with the default overshoot")
	}
	// Zero overshoot degenerates to plain cubic.
	p.Back.Overshoot = 0
	if got, want := Eval(InBack, 0.5, p), 0.125; math.Abs(got-want) > 1e-12 {
		t.Errorf("InBack with zero overshoot at 0.5 = %g, want %g", got, want)
	}
}

func TestElasticFormula(t *testing.T) {
	p := DefaultParams()
	for _, x := range []float64{0.1, 0.25, 0.5, 0.8} {
		want := 1 - math.Sin(3*2*math.Pi*x)*math.Exp(-3.0*x)
		if got := Eval(Elastic, x, p); math.Abs(got-want) > 1e-12 {
			t.Errorf("Elastic(%g) = %g, want %g", x, got, want)
		}
	}

	// The boundary exception must hold even for parameters whose general
	// formula is nonzero at t=0.
	p.Elastic = ElasticParams{Oscillations: 7, Decay: 0.5}
	if got := Eval(Elastic, 0, p); got != 0 {
		t.Errorf("Elastic(0) = %g, want exact 0", got)
	}
	if got := Eval(Elastic, 1, p); got != 1 {
		t.Errorf("Elastic(1) = %g, want exact 1", got)
	}
}

func TestBezierDiagonalIsIdentity(t *testing.T) {
	p := DefaultParams()
	p.Bezier = BezierParams{P1: Point{X: 0.25, Y: 0.25}, P2: Point{X: 0.75, Y: 0.75}}
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if got := Eval(Bezier, x, p); math.Abs(got-x) > 1e-5 {
			t.Errorf("diagonal Bezier at %g = %g, want ~%g", x, got, x)
		}
	}
}

func TestBezierMonotoneIncreasing(t *testing.T) {
	p := DefaultParams()
	prev := -1.0
	for i := 0; i <= 100; i++ {
		got := Eval(Bezier, float64(i)/100, p)
		if got < prev-1e-6 {
			t.Fatalf("default Bezier decreased at step %d: %g < %g", i, got, prev)
		}
		prev = got
	}
}

func TestSample(t *testing.T) {
	p := DefaultParams()
	s := Sample(OutCubic, p, PersistSamples)
	if len(s) != PersistSamples {
		t.Fatalf("len = %d, want %d", len(s), PersistSamples)
	}
	if s[0] != 0 || s[len(s)-1] != 1 {
		t.Errorf("sample endpoints = %g, %g; want 0, 1", s[0], s[len(s)-1])
	}
	mid := Eval(OutCubic, float64(30)/float64(PersistSamples-1), p)
	if math.Abs(s[30]-mid) > 1e-12 {
		t.Errorf("sample 30 = %g, want %g", s[30], mid)
	}
}

func TestCycleWrapsBothWays(t *testing.T) {
	k := OutBounce
	for i := 0; i < len(Kinds); i++ {
		k = k.Cycle(1)
	}
	if k != OutBounce {
		t.Errorf("cycling %d steps forward returned %s, want OutBounce", len(Kinds), k)
	}
	if got := Linear.Cycle(-1); got != Bezier {
		t.Errorf("Linear.Cycle(-1) = %s, want Bezier", got)
	}
	if got := Bezier.Cycle(1); got != Linear {
		t.Errorf("Bezier.Cycle(1) = %s, want Linear", got)
	}
}

// The classic families should agree with an independent implementation of
// the Penner curves. gween works in float32, so the tolerance is loose.
func TestAgainstGween(t *testing.T) {
	p := DefaultParams()
	refs := map[Kind]func(t, b, c, d float32) float32{
		Linear:      ease.Linear,
		InQuad:      ease.InQuad,
		OutQuad:     ease.OutQuad,
		InOutQuad:   ease.InOutQuad,
		InCubic:     ease.InCubic,
		OutCubic:    ease.OutCubic,
		InOutCubic:  ease.InOutCubic,
		InQuart:     ease.InQuart,
		OutQuart:    ease.OutQuart,
		InOutQuart:  ease.InOutQuart,
		InQuint:     ease.InQuint,
		OutQuint:    ease.OutQuint,
		InOutQuint:  ease.InOutQuint,
		InSine:      ease.InSine,
		OutSine:     ease.OutSine,
		InOutSine:   ease.InOutSine,
		InExpo:      ease.InExpo,
		OutExpo:     ease.OutExpo,
		InCirc:      ease.InCirc,
		OutCirc:     ease.OutCirc,
		InOutCirc:   ease.InOutCirc,
		InBack:      ease.InBack,
		OutBack:     ease.OutBack,
		InOutBack:   ease.InOutBack,
		InBounce:    ease.InBounce,
		OutBounce:   ease.OutBounce,
		InOutBounce: ease.InOutBounce,
	}

	for kind, ref := range refs {
		for i := 1; i < 10; i++ {
			x := float64(i) / 10
			want := float64(ref(float32(x), 0, 1, 1))
			got := Eval(kind, x, p)
			if math.Abs(got-want) > 1e-4 {
				t.Errorf("%s(%g) = %g, gween says %g", kind, x, got, want)
			}
		}
	}
}
