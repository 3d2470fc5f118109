package maps

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Linear is the diagonal linear map f([x, y]) = [a*x, b*y]. Its
// Jacobian is the constant matrix diag(a, b).
type Linear struct{ A, B float64 }

func NewLinear() *Linear       { return &Linear{2.0, 0.5} }
func (l *Linear) Name() string { return "linear" }
func (l *Linear) Dim() int     { return 2 }

func (l *Linear) Map() dmap.Map {
	a, b := l.A, l.B
	return func(x dmap.State) dmap.State {
		return dmap.State{a * x[0], b * x[1]}
	}
}

func (l *Linear) Jacobian() dmap.JacobianFunc {
	a, b := l.A, l.B
	return func(_ dmap.State) dmap.Matrix {
		return dmap.Matrix{{a, 0}, {0, b}}
	}
}

func (l *Linear) DefaultState() dmap.State { return dmap.State{1.0, 1.0} }

func (l *Linear) GetParams() map[string]float64 {
	return map[string]float64{"a": l.A, "b": l.B}
}

func (l *Linear) SetParam(n string, v float64) error {
	switch n {
	case "a":
		l.A = v
	case "b":
		l.B = v
	default:
		return fmt.Errorf("linear: unknown parameter %q", n)
	}
	return nil
}
