package dmap

import "math"

// State is a fixed-length vector of reals holding a system's state.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Matrix is a square D x D matrix stored as nested row slices.
type Matrix [][]float64

func NewMatrix(d int) Matrix {
	m := make(Matrix, d)
	for i := range m {
		m[i] = make([]float64, d)
	}
	return m
}

func (m Matrix) Dim() int { return len(m) }

func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

func (m Matrix) IsValid() bool {
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// MulVec computes m * v for a vector of matching dimension.
func (m Matrix) MulVec(v State) State {
	result := make(State, len(m))
	for i, row := range m {
		sum := 0.0
		for j := range row {
			if j < len(v) {
				sum += row[j] * v[j]
			}
		}
		result[i] = sum
	}
	return result
}

// Map advances a state by one discrete step. It must be pure and
// preserve the state's length.
type Map func(State) State

// JacobianFunc evaluates the map's Jacobian at a state, yielding a
// D x D matrix for a D-dimensional state.
type JacobianFunc func(State) Matrix

// ScalarMap and DerivativeFunc are the 1-D specializations.
type ScalarMap func(float64) float64
type DerivativeFunc func(float64) float64

// Dynamics is the capability surface shared by [System] and
// [ScalarSystem]. Downstream consumers (analysis, plotting) depend on
// these operations and nothing deeper.
type Dynamics interface {
	Dimension() int
	Jacobian() Matrix
	Advance(steps int) Dynamics
	Orbit(n int) ([]State, error)
}
