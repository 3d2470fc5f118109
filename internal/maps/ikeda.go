package maps

import (
	"fmt"
	"math"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Ikeda is the Ikeda map
//
//	t  = 0.4 - 6/(1 + x^2 + y^2)
//	x' = 1 + u*(x*cos(t) - y*sin(t))
//	y' = u*(x*sin(t) + y*cos(t))
//
// No closed-form Jacobian is supplied; building this model exercises
// the numeric differentiation fallback.
type Ikeda struct{ U float64 }

func NewIkeda() *Ikeda        { return &Ikeda{0.9} }
func (i *Ikeda) Name() string { return "ikeda" }
func (i *Ikeda) Dim() int     { return 2 }

func (i *Ikeda) Map() dmap.Map {
	u := i.U
	return func(s dmap.State) dmap.State {
		x, y := s[0], s[1]
		t := 0.4 - 6/(1+x*x+y*y)
		st, ct := math.Sincos(t)
		return dmap.State{1 + u*(x*ct-y*st), u * (x*st + y*ct)}
	}
}

func (i *Ikeda) Jacobian() dmap.JacobianFunc { return nil }

func (i *Ikeda) DefaultState() dmap.State { return dmap.State{0.1, 0.1} }

func (i *Ikeda) GetParams() map[string]float64 {
	return map[string]float64{"u": i.U}
}

func (i *Ikeda) SetParam(n string, v float64) error {
	switch n {
	case "u":
		i.U = v
	default:
		return fmt.Errorf("ikeda: unknown parameter %q", n)
	}
	return nil
}
