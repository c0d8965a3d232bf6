package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress
type Curve func(t float64) float64

// Linear returns linear progress (no easing)
func Linear(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates, CSS ease-out
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseIn starts slowly and accelerates, CSS ease-in
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier()
// The curve runs from (0,0) to (1,1) with control points (x1,y1) and (x2,y2)
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson on x(u) = t, falling back to bisection
		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, u)
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = t
		for range 32 {
			x := bezier(x1, x2, u)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one axis of the cubic with endpoints 0 and 1
func bezier(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierDerivative(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}
