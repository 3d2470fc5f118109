package analysis

import (
	"math"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Lyapunov estimates the largest Lyapunov exponent of a discrete
// system by propagating a tangent vector through the orbit's
// Jacobians and averaging the log growth. A positive value indicates
// chaos.
//
// Algorithm:
// 1. Discard transient steps to land on the attractor
// 2. Multiply a unit tangent vector by the Jacobian at each step
// 3. Accumulate log of the growth, renormalizing to prevent overflow
func Lyapunov(sys dmap.Dynamics, steps, transient int) float64 {
	if steps <= 0 || sys.Dimension() == 0 {
		return 0
	}
	if transient > 0 {
		sys = sys.Advance(transient)
	}

	v := make(dmap.State, sys.Dimension())
	v[0] = 1.0

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		v = sys.Jacobian().MulVec(v)
		n := v.Norm()
		if n > 0 {
			sumLog += math.Log(n)
			count++
			v = v.Scale(1 / n)
		}
		sys = sys.Advance(1)
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}

// LyapunovScalar estimates the exponent of a 1-D system as the orbit
// average of ln|f'(x_i)|. Steps where the derivative vanishes are
// skipped.
func LyapunovScalar(sys dmap.ScalarSystem, steps, transient int) float64 {
	if steps <= 0 {
		return 0
	}
	if transient > 0 {
		sys = sys.Evolve(transient)
	}

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		d := math.Abs(sys.Derivative())
		if d > 0 {
			sumLog += math.Log(d)
			count++
		}
		sys = sys.Evolve(1)
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
