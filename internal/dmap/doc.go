// Package dmap provides core primitives for discrete-time dynamical
// systems: maps of the form x_{n+1} = f(x_n) on a fixed-dimension
// real state space.
//
// The package defines the fundamental types for modeling and evolving
// such systems:
//
//   - [State]: vector representing system state
//   - [System]: immutable D-dimensional system (state, map, Jacobian)
//   - [ScalarSystem]: 1-D specialization with scalar state and derivative
//   - [Validate]: opt-in shape-contract check for a map/Jacobian pair
//
// # Example
//
//	logistic := func(x dmap.State) dmap.State {
//	    return dmap.State{4 * x[0] * (1 - x[0])}
//	}
//	sys := dmap.New([]float64{0.4}, logistic)
//	orbit, _ := sys.Timeseries(100)
//
// # Thread Safety
//
// System values are immutable: every operation returns a new value and
// no instance is ever modified in place. Concurrent use from multiple
// goroutines is safe as long as the supplied map and Jacobian functions
// are free of side effects, which is a caller contract this package
// does not enforce.
package dmap
