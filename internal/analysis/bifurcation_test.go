package analysis

import (
	"strings"
	"testing"

	"github.com/san-kum/mapsim/internal/maps"
)

func TestBifurcation_LogisticPeriods(t *testing.T) {
	tests := []struct {
		name       string
		r          float64
		wantValues int
	}{
		{"fixed point", 2.8, 1},
		{"period 2", 3.2, 2},
		{"period 4", 3.5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Bifurcation(maps.NewLogistic(), "r", tt.r, tt.r, 2, 0, 2000, 64)
			if err != nil {
				t.Fatalf("bifurcation failed: %v", err)
			}
			if len(points) != 2 {
				t.Fatalf("expected 2 sweep points, got %d", len(points))
			}
			if got := len(points[0].Values); got != tt.wantValues {
				t.Errorf("r=%v: found %d attractor values, want %d", tt.r, got, tt.wantValues)
			}
		})
	}
}

func TestBifurcation_SweepCoversRange(t *testing.T) {
	points, err := Bifurcation(maps.NewLogistic(), "r", 2.5, 3.5, 11, 0, 500, 32)
	if err != nil {
		t.Fatalf("bifurcation failed: %v", err)
	}

	if len(points) != 11 {
		t.Fatalf("expected 11 points, got %d", len(points))
	}
	if points[0].Param != 2.5 || points[10].Param != 3.5 {
		t.Errorf("sweep endpoints = %v, %v, want 2.5, 3.5", points[0].Param, points[10].Param)
	}
}

func TestBifurcation_UnknownParam(t *testing.T) {
	if _, err := Bifurcation(maps.NewLogistic(), "bogus", 0, 1, 5, 0, 10, 10); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestBifurcationASCII(t *testing.T) {
	points := []BifurcationPoint{
		{Param: 1, Values: []float64{0.2}},
		{Param: 2, Values: []float64{0.4, 0.8}},
	}

	art := BifurcationASCII(points, 20, 10)
	if art == "" {
		t.Fatal("expected non-empty diagram")
	}
	if strings.Count(art, "*") < 3 {
		t.Errorf("expected at least 3 plotted points, got %d", strings.Count(art, "*"))
	}
	if len(strings.Split(strings.TrimRight(art, "\n"), "\n")) != 10 {
		t.Error("diagram height mismatch")
	}

	if BifurcationASCII(nil, 20, 10) != "" {
		t.Error("empty data should render empty diagram")
	}
}
