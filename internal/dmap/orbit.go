package dmap

import "fmt"

// Timeseries records the full orbit of length n into a preallocated
// table: element 0 is the current state and element i the state after
// i map applications. n == 0 yields an empty sequence; n < 0 reports
// ErrInvalidArgument.
func (s System) Timeseries(n int) ([]State, error) {
	if n < 0 {
		return nil, fmt.Errorf("timeseries length %d: %w", n, ErrInvalidArgument)
	}
	out := make([]State, n)
	x := s.state.Clone()
	for i := 0; i < n; i++ {
		out[i] = x.Clone()
		if i < n-1 {
			x = s.f(x)
		}
	}
	return out, nil
}
