package maps

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Logistic is the logistic map x' = r*x*(1-x).
type Logistic struct{ R float64 }

func NewLogistic() *Logistic     { return &Logistic{4.0} }
func (l *Logistic) Name() string { return "logistic" }
func (l *Logistic) Dim() int     { return 1 }

func (l *Logistic) Map() dmap.Map {
	r := l.R
	return func(x dmap.State) dmap.State {
		return dmap.State{r * x[0] * (1 - x[0])}
	}
}

func (l *Logistic) Jacobian() dmap.JacobianFunc {
	r := l.R
	return func(x dmap.State) dmap.Matrix {
		return dmap.Matrix{{r - 2*r*x[0]}}
	}
}

func (l *Logistic) Scalar() dmap.ScalarMap {
	r := l.R
	return func(x float64) float64 { return r * x * (1 - x) }
}

func (l *Logistic) ScalarDerivative() dmap.DerivativeFunc {
	r := l.R
	return func(x float64) float64 { return r - 2*r*x }
}

func (l *Logistic) DefaultState() dmap.State { return dmap.State{0.4} }

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.R}
}

func (l *Logistic) SetParam(n string, v float64) error {
	switch n {
	case "r":
		l.R = v
	default:
		return fmt.Errorf("logistic: unknown parameter %q", n)
	}
	return nil
}
