package dmap

import (
	"errors"
	"fmt"
)

// Contract errors reported by [Validate] and [ValidateScalar].
var (
	// ErrInvalidArgument indicates an initial condition that is not a
	// numeric vector, or a map/Jacobian output failing the container
	// shape contract.
	ErrInvalidArgument = errors.New("dmap: invalid argument")

	// ErrDimensionMismatch indicates a map whose output length differs
	// from its input length.
	ErrDimensionMismatch = errors.New("dmap: dimension mismatch")
)

// ContractError names which part of the map/Jacobian shape contract
// failed. It wraps one of the sentinel errors above.
type ContractError struct {
	Part    string // "initial condition", "map" or "jacobian"
	Detail  string
	Wrapped error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("dmap: %s: %s", e.Part, e.Detail)
}

func (e *ContractError) Unwrap() error {
	return e.Wrapped
}
