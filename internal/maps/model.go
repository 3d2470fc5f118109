package maps

import "github.com/san-kum/mapsim/internal/dmap"

// Model describes a named discrete map with optional closed-form
// Jacobian and tunable parameters.
type Model interface {
	Name() string
	Dim() int
	Map() dmap.Map
	// Jacobian returns nil when the model supplies no closed form;
	// Build then falls back to numeric differentiation.
	Jacobian() dmap.JacobianFunc
	DefaultState() dmap.State
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// ScalarModel is implemented by 1-D models that also expose scalar
// forms of their map and derivative.
type ScalarModel interface {
	Model
	Scalar() dmap.ScalarMap
	ScalarDerivative() dmap.DerivativeFunc
}

// Build constructs a system from a model at the given state. A nil x0
// uses the model's default state.
func Build(m Model, x0 []float64) dmap.System {
	if x0 == nil {
		x0 = m.DefaultState()
	}
	if j := m.Jacobian(); j != nil {
		return dmap.NewWithJacobian(x0, m.Map(), j)
	}
	return dmap.New(x0, m.Map())
}

// BuildScalar constructs the 1-D specialization from a scalar model.
func BuildScalar(m ScalarModel, x0 float64) dmap.ScalarSystem {
	if d := m.ScalarDerivative(); d != nil {
		return dmap.NewScalarWithDerivative(x0, m.Scalar(), d)
	}
	return dmap.NewScalar(x0, m.Scalar())
}
