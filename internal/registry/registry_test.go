package registry

import (
	"sort"
	"testing"
)

func TestGet(t *testing.T) {
	r := New()

	for _, name := range []string{"logistic", "tent", "gauss", "linear", "henon", "standard", "ikeda"} {
		m, err := r.Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if m.Name() != name {
			t.Errorf("Get(%q) returned model named %q", name, m.Name())
		}
		if m.Dim() < 1 {
			t.Errorf("model %q has dimension %d", name, m.Dim())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := New().Get("nonexistent"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestGet_FreshInstances(t *testing.T) {
	r := New()

	a, _ := r.Get("logistic")
	b, _ := r.Get("logistic")

	if err := a.SetParam("r", 3.0); err != nil {
		t.Fatal(err)
	}
	if b.GetParams()["r"] == 3.0 {
		t.Error("registry returned shared model instances")
	}
}

func TestList(t *testing.T) {
	names := New().List()
	if len(names) == 0 {
		t.Fatal("expected models")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("list not sorted: %v", names)
	}
}
