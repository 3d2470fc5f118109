// Package diff synthesizes derivatives and Jacobians for opaque map
// closures using central differences. The [Differentiator] interface
// keeps the facility pluggable so an exact automatic-differentiation
// engine can stand in without touching callers.
package diff

import "math"

// defaultStep is near cbrt(machine epsilon), balancing truncation
// against rounding error for central differences.
const defaultStep = 1e-6

// Differentiator produces derivative functions from map functions.
type Differentiator interface {
	Derivative(f func(float64) float64) func(float64) float64
	Jacobian(f func([]float64) []float64, dim int) func([]float64) [][]float64
}

// Central is the default finite-difference engine. A zero value uses
// defaultStep scaled by the magnitude of the abscissa.
type Central struct {
	Step float64
}

func (c Central) step(x float64) float64 {
	h := c.Step
	if h <= 0 {
		h = defaultStep
	}
	if ax := math.Abs(x); ax > 1 {
		h *= ax
	}
	return h
}

// Derivative returns f' computed by the central quotient
// (f(x+h) - f(x-h)) / ((x+h) - (x-h)). The denominator is re-derived
// from the rounded abscissae, which makes the quotient exact for
// linear f and second-order accurate otherwise.
func (c Central) Derivative(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		h := c.step(x)
		xp, xm := x+h, x-h
		return (f(xp) - f(xm)) / (xp - xm)
	}
}

// Jacobian returns a function evaluating the dim x dim Jacobian of f,
// one column per perturbed coordinate.
func (c Central) Jacobian(f func([]float64) []float64, dim int) func([]float64) [][]float64 {
	return func(x []float64) [][]float64 {
		j := make([][]float64, dim)
		for r := range j {
			j[r] = make([]float64, dim)
		}

		xp := make([]float64, len(x))
		xm := make([]float64, len(x))

		for col := 0; col < dim && col < len(x); col++ {
			copy(xp, x)
			copy(xm, x)

			h := c.step(x[col])
			xp[col] = x[col] + h
			xm[col] = x[col] - h
			d := xp[col] - xm[col]

			fp := f(xp)
			fm := f(xm)

			for row := 0; row < dim && row < len(fp) && row < len(fm); row++ {
				j[row][col] = (fp[row] - fm[row]) / d
			}
		}
		return j
	}
}

// Derivative synthesizes f' using the default engine.
func Derivative(f func(float64) float64) func(float64) float64 {
	return Central{}.Derivative(f)
}

// JacobianOf synthesizes the Jacobian of f using the default engine.
func JacobianOf(f func([]float64) []float64, dim int) func([]float64) [][]float64 {
	return Central{}.Jacobian(f, dim)
}
