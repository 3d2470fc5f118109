package dmap

import (
	"errors"
	"math"
	"testing"
)

func TestTimeseries_Logistic(t *testing.T) {
	sys := NewWithJacobian([]float64{0.4}, logisticMap, logisticJacobian)

	orbit, err := sys.Timeseries(3)
	if err != nil {
		t.Fatalf("timeseries failed: %v", err)
	}

	want := []float64{0.4, 0.96, 0.1536}
	if len(orbit) != len(want) {
		t.Fatalf("expected %d states, got %d", len(want), len(orbit))
	}
	for i, w := range want {
		if math.Abs(orbit[i][0]-w) > 1e-12 {
			t.Errorf("orbit[%d] = %v, want %v", i, orbit[i][0], w)
		}
	}
}

func TestTimeseries_MatchesEvolve(t *testing.T) {
	sys := NewWithJacobian([]float64{0.4}, logisticMap, logisticJacobian)

	n := 20
	orbit, err := sys.Timeseries(n)
	if err != nil {
		t.Fatalf("timeseries failed: %v", err)
	}

	if orbit[0][0] != sys.State()[0] {
		t.Errorf("orbit[0] = %v, want current state %v", orbit[0][0], sys.State()[0])
	}
	for i := 0; i < n; i++ {
		want := Evolve(sys.State(), logisticMap, i)
		if orbit[i][0] != want[0] {
			t.Errorf("orbit[%d] = %v, want evolve result %v", i, orbit[i][0], want[0])
		}
	}
}

func TestTimeseries_Boundaries(t *testing.T) {
	sys := NewWithJacobian([]float64{0.4}, logisticMap, logisticJacobian)

	empty, err := sys.Timeseries(0)
	if err != nil {
		t.Fatalf("timeseries(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("timeseries(0) returned %d states, want 0", len(empty))
	}

	_, err = sys.Timeseries(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("timeseries(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestTimeseries_RowsAreIndependent(t *testing.T) {
	sys := NewWithJacobian([]float64{1, 1}, func(x State) State { return x }, nil)

	orbit, err := sys.Timeseries(3)
	if err != nil {
		t.Fatalf("timeseries failed: %v", err)
	}

	orbit[0][0] = 99
	if orbit[1][0] == 99 || orbit[2][0] == 99 {
		t.Error("orbit rows share backing storage")
	}
}

func TestScalarTimeseries(t *testing.T) {
	f := func(x float64) float64 { return 4 * x * (1 - x) }
	sys := NewScalar(0.4, f)

	orbit, err := sys.Timeseries(3)
	if err != nil {
		t.Fatalf("timeseries failed: %v", err)
	}

	want := []float64{0.4, 0.96, 0.1536}
	for i, w := range want {
		if math.Abs(orbit[i]-w) > 1e-12 {
			t.Errorf("orbit[%d] = %v, want %v", i, orbit[i], w)
		}
	}

	empty, err := sys.Timeseries(0)
	if err != nil || len(empty) != 0 {
		t.Errorf("timeseries(0) = (%v, %v), want empty", empty, err)
	}
	if _, err := sys.Timeseries(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("timeseries(-2) error = %v, want ErrInvalidArgument", err)
	}
}

func TestScalarSystem_EvolveAndDerivative(t *testing.T) {
	f := func(x float64) float64 { return 4 * x * (1 - x) }
	deriv := func(x float64) float64 { return 4 - 8*x }

	sys := NewScalarWithDerivative(0.4, f, deriv)

	evolved := sys.Evolve(1)
	if math.Abs(evolved.State()-0.96) > 1e-12 {
		t.Errorf("evolved state = %v, want 0.96", evolved.State())
	}
	if sys.State() != 0.4 {
		t.Errorf("original state changed to %v", sys.State())
	}

	if got := evolved.Derivative(); math.Abs(got-(4-8*0.96)) > 1e-12 {
		t.Errorf("derivative = %v, want %v", got, 4-8*0.96)
	}
}

func TestScalarSystem_DynamicsAdapter(t *testing.T) {
	sys := NewScalarWithDerivative(0.4,
		func(x float64) float64 { return 4 * x * (1 - x) },
		func(x float64) float64 { return 4 - 8*x })

	var dyn Dynamics = sys
	if dyn.Dimension() != 1 {
		t.Errorf("Dimension() = %d, want 1", dyn.Dimension())
	}

	j := dyn.Jacobian()
	if j.Dim() != 1 || math.Abs(j[0][0]-(4-8*0.4)) > 1e-12 {
		t.Errorf("Jacobian() = %v, want 1x1 derivative matrix", j)
	}

	orbit, err := dyn.Orbit(2)
	if err != nil || len(orbit) != 2 || len(orbit[0]) != 1 {
		t.Fatalf("Orbit(2) = (%v, %v), want two 1-vectors", orbit, err)
	}
}
