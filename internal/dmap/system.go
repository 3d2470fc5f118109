package dmap

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/diff"
)

// System is an immutable discrete-time dynamical system: a state, the
// map advancing it one step, and a function evaluating the map's
// Jacobian at a point. The zero value is not usable; construct with
// [New] or [NewWithJacobian]. Operations never modify the receiver.
type System struct {
	state State
	f     Map
	jac   JacobianFunc
	auto  bool
}

// New builds a system from an initial state and a map, synthesizing
// the Jacobian function by numeric differentiation of f. No contract
// validation is performed; see [Validate].
func New(x0 []float64, f Map) System {
	return System{
		state: State(x0).Clone(),
		f:     f,
		jac:   synthesizeJacobian(f, len(x0)),
		auto:  true,
	}
}

// NewWithJacobian builds a system using the supplied Jacobian function
// directly. No contract validation is performed; see [Validate].
func NewWithJacobian(x0 []float64, f Map, jac JacobianFunc) System {
	return System{
		state: State(x0).Clone(),
		f:     f,
		jac:   jac,
	}
}

func synthesizeJacobian(f Map, dim int) JacobianFunc {
	j := diff.JacobianOf(func(x []float64) []float64 {
		return f(State(x))
	}, dim)
	return func(x State) Matrix {
		return Matrix(j(x))
	}
}

// State returns a copy of the current state.
func (s System) State() State { return s.state.Clone() }

// Dimension returns the static dimension D of the state space,
// fixed at construction and independent of the state's values.
func (s System) Dimension() int { return len(s.state) }

// Jacobian evaluates the system's Jacobian function at the current
// state. The result is recomputed on every call, never cached.
func (s System) Jacobian() Matrix { return s.jac(s.state) }

// JacobianAt evaluates the system's Jacobian function at an arbitrary
// state without re-seeding.
func (s System) JacobianAt(x State) Matrix { return s.jac(x) }

// Reseed returns a new system holding x, sharing this system's map and
// Jacobian function unchanged. Neither function is invoked.
func (s System) Reseed(x []float64) System {
	return System{state: State(x).Clone(), f: s.f, jac: s.jac, auto: s.auto}
}

// Advance and Orbit adapt the system to the [Dynamics] interface.
func (s System) Advance(steps int) Dynamics { return s.Evolve(steps) }

func (s System) Orbit(n int) ([]State, error) { return s.Timeseries(n) }

func (s System) String() string {
	jk := "explicit"
	if s.auto {
		jk = "auto"
	}
	return fmt.Sprintf("System(dim=%d, state=%v, jacobian=%s)", len(s.state), []float64(s.state), jk)
}
