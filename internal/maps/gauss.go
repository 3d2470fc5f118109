package maps

import (
	"fmt"
	"math"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Gauss is the Gaussian map x' = exp(-alpha*x^2) + beta.
type Gauss struct{ Alpha, Beta float64 }

func NewGauss() *Gauss        { return &Gauss{4.9, -0.58} }
func (g *Gauss) Name() string { return "gauss" }
func (g *Gauss) Dim() int     { return 1 }

func (g *Gauss) Map() dmap.Map {
	a, b := g.Alpha, g.Beta
	return func(x dmap.State) dmap.State {
		return dmap.State{math.Exp(-a*x[0]*x[0]) + b}
	}
}

func (g *Gauss) Jacobian() dmap.JacobianFunc {
	a := g.Alpha
	return func(x dmap.State) dmap.Matrix {
		return dmap.Matrix{{-2 * a * x[0] * math.Exp(-a*x[0]*x[0])}}
	}
}

func (g *Gauss) Scalar() dmap.ScalarMap {
	a, b := g.Alpha, g.Beta
	return func(x float64) float64 { return math.Exp(-a*x*x) + b }
}

func (g *Gauss) ScalarDerivative() dmap.DerivativeFunc {
	a := g.Alpha
	return func(x float64) float64 { return -2 * a * x * math.Exp(-a*x*x) }
}

func (g *Gauss) DefaultState() dmap.State { return dmap.State{0.1} }

func (g *Gauss) GetParams() map[string]float64 {
	return map[string]float64{"alpha": g.Alpha, "beta": g.Beta}
}

func (g *Gauss) SetParam(n string, v float64) error {
	switch n {
	case "alpha":
		g.Alpha = v
	case "beta":
		g.Beta = v
	default:
		return fmt.Errorf("gauss: unknown parameter %q", n)
	}
	return nil
}
