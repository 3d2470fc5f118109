package maps

import (
	"fmt"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Henon is the Henon map x' = 1 - a*x^2 + y, y' = b*x.
type Henon struct{ A, B float64 }

func NewHenon() *Henon        { return &Henon{1.4, 0.3} }
func (h *Henon) Name() string { return "henon" }
func (h *Henon) Dim() int     { return 2 }

func (h *Henon) Map() dmap.Map {
	a, b := h.A, h.B
	return func(s dmap.State) dmap.State {
		return dmap.State{1 - a*s[0]*s[0] + s[1], b * s[0]}
	}
}

func (h *Henon) Jacobian() dmap.JacobianFunc {
	a, b := h.A, h.B
	return func(s dmap.State) dmap.Matrix {
		return dmap.Matrix{{-2 * a * s[0], 1}, {b, 0}}
	}
}

func (h *Henon) DefaultState() dmap.State { return dmap.State{0.1, 0.1} }

func (h *Henon) GetParams() map[string]float64 {
	return map[string]float64{"a": h.A, "b": h.B}
}

func (h *Henon) SetParam(n string, v float64) error {
	switch n {
	case "a":
		h.A = v
	case "b":
		h.B = v
	default:
		return fmt.Errorf("henon: unknown parameter %q", n)
	}
	return nil
}
