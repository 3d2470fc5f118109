package maps

import (
	"fmt"
	"math"

	"github.com/san-kum/mapsim/internal/dmap"
)

// Standard is the Chirikov standard map on state [theta, p]:
//
//	p'     = p + k*sin(theta)
//	theta' = theta + p'
type Standard struct{ K float64 }

func NewStandard() *Standard     { return &Standard{0.97} }
func (m *Standard) Name() string { return "standard" }
func (m *Standard) Dim() int     { return 2 }

func (m *Standard) Map() dmap.Map {
	k := m.K
	return func(s dmap.State) dmap.State {
		p := s[1] + k*math.Sin(s[0])
		return dmap.State{s[0] + p, p}
	}
}

func (m *Standard) Jacobian() dmap.JacobianFunc {
	k := m.K
	return func(s dmap.State) dmap.Matrix {
		c := k * math.Cos(s[0])
		return dmap.Matrix{{1 + c, 1}, {c, 1}}
	}
}

func (m *Standard) DefaultState() dmap.State { return dmap.State{0.5, 0.2} }

func (m *Standard) GetParams() map[string]float64 {
	return map[string]float64{"k": m.K}
}

func (m *Standard) SetParam(n string, v float64) error {
	switch n {
	case "k":
		m.K = v
	default:
		return fmt.Errorf("standard: unknown parameter %q", n)
	}
	return nil
}
