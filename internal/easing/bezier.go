package easing

// Evaluating a timing Bezier means solving for the curve parameter u whose
// x-coordinate equals the query progress t, then reading off the
// y-coordinate at that u. The solve is Newton-Raphson with a fixed iteration
// count: persisted sample curves depend on the count staying put, so it is
// deliberately not adaptive.

const bezierIterations = 5

// bezierAxis evaluates one coordinate of a cubic Bezier with endpoints 0
// and 1 and free control values c1, c2.
func bezierAxis(u, c1, c2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*c1 + 3*v*u*u*c2 + u*u*u
}

func bezierAxisDeriv(u, c1, c2 float64) float64 {
	v := 1 - u
	return 3*v*v*c1 + 6*v*u*(c2-c1) + 3*u*u*(1-c2)
}

// solveBezierX finds u such that x(u) == t. Each iterate is clamped back
// into [0,1]; a zero derivative leaves u where it is for that step.
func solveBezierX(t float64, p BezierParams) float64 {
	u := t
	for i := 0; i < bezierIterations; i++ {
		d := bezierAxisDeriv(u, p.P1.X, p.P2.X)
		if d == 0 {
			continue
		}
		u -= (bezierAxis(u, p.P1.X, p.P2.X) - t) / d
		if u < 0 {
			u = 0
		} else if u > 1 {
			u = 1
		}
	}
	return u
}

func bezierY(t float64, p BezierParams) float64 {
	u := solveBezierX(t, p)
	return bezierAxis(u, p.P1.Y, p.P2.Y)
}
