package dmap

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/diff"
)

// Validate checks the shape contract of a map and optional Jacobian
// pair before a system built from them is trusted: the initial
// condition must be a finite vector, the map must preserve length, and
// map/Jacobian outputs must be a finite vector and a finite square
// D x D matrix. A nil jac is first synthesized by numeric
// differentiation, then held to the same checks.
//
// This is an opt-in diagnostic: constructors never call it. A caller
// who skips it can build a system whose map silently changes
// dimensionality; that only surfaces when a later evolution or
// Jacobian evaluation misbehaves.
func Validate(x0 []float64, f Map, jac JacobianFunc) error {
	if len(x0) == 0 {
		return &ContractError{
			Part:    "initial condition",
			Detail:  "must be a vector",
			Wrapped: ErrInvalidArgument,
		}
	}
	state := State(x0).Clone()
	if !state.IsValid() {
		return &ContractError{
			Part:    "initial condition",
			Detail:  "contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}

	out := f(state)
	if len(out) != len(state) {
		return &ContractError{
			Part:    "map",
			Detail:  fmt.Sprintf("output length %d does not match input length %d", len(out), len(state)),
			Wrapped: ErrDimensionMismatch,
		}
	}
	if !out.IsValid() {
		return &ContractError{
			Part:    "map",
			Detail:  "output contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}

	if jac == nil {
		jac = synthesizeJacobian(f, len(state))
	}
	m := jac(state)
	if m.Dim() != len(state) || !m.IsSquare() {
		return &ContractError{
			Part:    "jacobian",
			Detail:  fmt.Sprintf("output is not a %dx%d matrix", len(state), len(state)),
			Wrapped: ErrInvalidArgument,
		}
	}
	if !m.IsValid() {
		return &ContractError{
			Part:    "jacobian",
			Detail:  "output contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}
	return nil
}

// ValidateScalar mirrors [Validate] for the 1-D specialization.
func ValidateScalar(x0 float64, f ScalarMap, deriv DerivativeFunc) error {
	if !(State{x0}).IsValid() {
		return &ContractError{
			Part:    "initial condition",
			Detail:  "contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}
	if !(State{f(x0)}).IsValid() {
		return &ContractError{
			Part:    "map",
			Detail:  "output contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}
	if deriv == nil {
		deriv = diff.Derivative(f)
	}
	if !(State{deriv(x0)}).IsValid() {
		return &ContractError{
			Part:    "jacobian",
			Detail:  "derivative output contains NaN or Inf",
			Wrapped: ErrInvalidArgument,
		}
	}
	return nil
}
