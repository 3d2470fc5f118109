package dmap

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/diff"
)

// ScalarSystem is the 1-D specialization of [System]: state, map and
// derivative are plain scalars rather than containers. It is likewise
// an immutable value.
type ScalarSystem struct {
	x     float64
	f     ScalarMap
	deriv DerivativeFunc
	auto  bool
}

// NewScalar builds a 1-D system, synthesizing the derivative by
// numeric differentiation of f.
func NewScalar(x0 float64, f ScalarMap) ScalarSystem {
	return ScalarSystem{x: x0, f: f, deriv: diff.Derivative(f), auto: true}
}

// NewScalarWithDerivative builds a 1-D system using the supplied
// derivative function directly.
func NewScalarWithDerivative(x0 float64, f ScalarMap, deriv DerivativeFunc) ScalarSystem {
	return ScalarSystem{x: x0, f: f, deriv: deriv}
}

// State returns the current scalar state.
func (s ScalarSystem) State() float64 { return s.x }

func (s ScalarSystem) Dimension() int { return 1 }

// Derivative evaluates the map's derivative at the current state.
func (s ScalarSystem) Derivative() float64 { return s.deriv(s.x) }

// DerivativeAt evaluates the derivative at an arbitrary point.
func (s ScalarSystem) DerivativeAt(x float64) float64 { return s.deriv(x) }

// Reseed returns a new system holding x, sharing map and derivative.
func (s ScalarSystem) Reseed(x float64) ScalarSystem {
	return ScalarSystem{x: x, f: s.f, deriv: s.deriv, auto: s.auto}
}

// Evolve applies the map steps times and returns the re-seeded system.
// steps <= 0 yields an unchanged copy.
func (s ScalarSystem) Evolve(steps int) ScalarSystem {
	return s.Reseed(EvolveScalar(s.x, s.f, steps))
}

// Timeseries records the orbit of length n: element 0 is the current
// state, element i the state after i map applications. n == 0 yields
// an empty sequence; n < 0 reports ErrInvalidArgument.
func (s ScalarSystem) Timeseries(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("timeseries length %d: %w", n, ErrInvalidArgument)
	}
	out := make([]float64, n)
	x := s.x
	for i := 0; i < n; i++ {
		out[i] = x
		if i < n-1 {
			x = s.f(x)
		}
	}
	return out, nil
}

// Jacobian, Advance and Orbit adapt the scalar system to the
// [Dynamics] interface, boxing scalars into length-1 containers.
func (s ScalarSystem) Jacobian() Matrix { return Matrix{{s.deriv(s.x)}} }

func (s ScalarSystem) Advance(steps int) Dynamics { return s.Evolve(steps) }

func (s ScalarSystem) Orbit(n int) ([]State, error) {
	xs, err := s.Timeseries(n)
	if err != nil {
		return nil, err
	}
	out := make([]State, len(xs))
	for i, v := range xs {
		out[i] = State{v}
	}
	return out, nil
}

func (s ScalarSystem) String() string {
	jk := "explicit"
	if s.auto {
		jk = "auto"
	}
	return fmt.Sprintf("ScalarSystem(state=%v, derivative=%s)", s.x, jk)
}
