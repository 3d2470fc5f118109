package store

import (
	"strings"
	"testing"

	"github.com/san-kum/mapsim/internal/dmap"
)

func testOrbit() []dmap.State {
	return []dmap.State{{0.4, 1.0}, {0.96, 0.5}, {0.1536, 0.25}}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := s.Save(RunMetadata{
		Model:    "henon",
		Steps:    3,
		Dim:      2,
		Params:   map[string]float64{"a": 1.4},
		Lyapunov: 0.42,
	}, testOrbit())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "henon_") {
		t.Errorf("run id %q should carry the model name", runID)
	}

	meta, err := s.LoadMetadata(runID)
	if err != nil {
		t.Fatalf("load metadata failed: %v", err)
	}
	if meta.Model != "henon" || meta.Steps != 3 || meta.Lyapunov != 0.42 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Params["a"] != 1.4 {
		t.Errorf("params mismatch: %v", meta.Params)
	}

	orbit, err := s.LoadOrbit(runID)
	if err != nil {
		t.Fatalf("load orbit failed: %v", err)
	}
	if len(orbit) != 3 {
		t.Fatalf("expected 3 states, got %d", len(orbit))
	}
	for i, want := range testOrbit() {
		for j := range want {
			if orbit[i][j] != want[j] {
				t.Errorf("orbit[%d][%d] = %v, want %v", i, j, orbit[i][j], want[j])
			}
		}
	}
}

func TestSave_EmptyOrbit(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := s.Save(RunMetadata{Model: "logistic"}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	orbit, err := s.LoadOrbit(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orbit) != 0 {
		t.Errorf("expected empty orbit, got %d states", len(orbit))
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Save(RunMetadata{Model: "logistic", Steps: 1}, testOrbit()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(RunMetadata{Model: "henon", Steps: 2}, testOrbit()); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestList_NoDataDir(t *testing.T) {
	s := New(t.TempDir() + "/missing")

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
