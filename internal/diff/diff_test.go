package diff

import (
	"math"
	"testing"
)

func TestDerivative_Quadratic(t *testing.T) {
	logistic := func(x float64) float64 { return 4 * x * (1 - x) }
	deriv := Derivative(logistic)

	tests := []struct {
		x    float64
		want float64
	}{
		{0.4, 0.8},
		{0.0, 4.0},
		{0.5, 0.0},
		{0.96, 4 - 8*0.96},
	}

	for _, tt := range tests {
		if got := deriv(tt.x); math.Abs(got-tt.want) > 1e-8 {
			t.Errorf("deriv(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestDerivative_Sin(t *testing.T) {
	deriv := Derivative(math.Sin)

	for _, x := range []float64{0, 0.5, 1.0, 2.0, -1.3} {
		if got := deriv(x); math.Abs(got-math.Cos(x)) > 1e-8 {
			t.Errorf("deriv(sin)(%v) = %v, want %v", x, got, math.Cos(x))
		}
	}
}

// The central quotient divides by the re-derived spacing, so for
// linear maps with power-of-two coefficients the result is exact.
func TestJacobian_LinearExact(t *testing.T) {
	linear := func(x []float64) []float64 {
		return []float64{2 * x[0], 0.5 * x[1]}
	}

	jac := JacobianOf(linear, 2)
	j := jac([]float64{1, 1})

	want := [][]float64{{2, 0}, {0, 0.5}}
	for r := range want {
		for c := range want[r] {
			if j[r][c] != want[r][c] {
				t.Errorf("j[%d][%d] = %v, want exactly %v", r, c, j[r][c], want[r][c])
			}
		}
	}
}

func TestJacobian_Coupled(t *testing.T) {
	henon := func(x []float64) []float64 {
		return []float64{1 - 1.4*x[0]*x[0] + x[1], 0.3 * x[0]}
	}
	jac := JacobianOf(henon, 2)

	x := []float64{0.2, -0.1}
	j := jac(x)

	want := [][]float64{{-2 * 1.4 * x[0], 1}, {0.3, 0}}
	for r := range want {
		for c := range want[r] {
			if math.Abs(j[r][c]-want[r][c]) > 1e-8 {
				t.Errorf("j[%d][%d] = %v, want %v", r, c, j[r][c], want[r][c])
			}
		}
	}
}

func TestCentral_CustomStep(t *testing.T) {
	deriv := Central{Step: 1e-4}.Derivative(func(x float64) float64 { return x * x })
	if got := deriv(3); math.Abs(got-6) > 1e-6 {
		t.Errorf("deriv(3) = %v, want 6", got)
	}
}

func TestCentral_StepScalesWithMagnitude(t *testing.T) {
	deriv := Derivative(func(x float64) float64 { return x * x })

	// At large abscissae an unscaled step would be swallowed by
	// rounding; the scaled step keeps the quotient accurate.
	x := 1e8
	if got := deriv(x); math.Abs(got-2*x)/(2*x) > 1e-6 {
		t.Errorf("deriv(%v) = %v, want %v", x, got, 2*x)
	}
}

func TestJacobian_ImplementsDifferentiator(t *testing.T) {
	var _ Differentiator = Central{}
}
