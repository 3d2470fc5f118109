package maps

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Tent is the tent map x' = mu*min(x, 1-x).
type Tent struct{ Mu float64 }

func NewTent() *Tent         { return &Tent{2.0} }
func (t *Tent) Name() string { return "tent" }
func (t *Tent) Dim() int     { return 1 }

func (t *Tent) Map() dmap.Map {
	mu := t.Mu
	return func(x dmap.State) dmap.State {
		if x[0] < 0.5 {
			return dmap.State{mu * x[0]}
		}
		return dmap.State{mu * (1 - x[0])}
	}
}

func (t *Tent) Jacobian() dmap.JacobianFunc {
	mu := t.Mu
	return func(x dmap.State) dmap.Matrix {
		if x[0] < 0.5 {
			return dmap.Matrix{{mu}}
		}
		return dmap.Matrix{{-mu}}
	}
}

func (t *Tent) Scalar() dmap.ScalarMap {
	mu := t.Mu
	return func(x float64) float64 {
		if x < 0.5 {
			return mu * x
		}
		return mu * (1 - x)
	}
}

func (t *Tent) ScalarDerivative() dmap.DerivativeFunc {
	mu := t.Mu
	return func(x float64) float64 {
		if x < 0.5 {
			return mu
		}
		return -mu
	}
}

func (t *Tent) DefaultState() dmap.State { return dmap.State{0.3} }

func (t *Tent) GetParams() map[string]float64 {
	return map[string]float64{"mu": t.Mu}
}

func (t *Tent) SetParam(n string, v float64) error {
	switch n {
	case "mu":
		t.Mu = v
	default:
		return fmt.Errorf("tent: unknown parameter %q", n)
	}
	return nil
}
