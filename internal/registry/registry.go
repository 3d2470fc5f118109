// Package registry maps model names to factories.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/mapsim/internal/maps"
)

type Registry struct {
	models map[string]func() maps.Model
}

func New() *Registry {
	r := &Registry{models: make(map[string]func() maps.Model)}

	r.models["logistic"] = func() maps.Model { return maps.NewLogistic() }
	r.models["tent"] = func() maps.Model { return maps.NewTent() }
	r.models["gauss"] = func() maps.Model { return maps.NewGauss() }
	r.models["linear"] = func() maps.Model { return maps.NewLinear() }
	r.models["henon"] = func() maps.Model { return maps.NewHenon() }
	r.models["standard"] = func() maps.Model { return maps.NewStandard() }
	r.models["ikeda"] = func() maps.Model { return maps.NewIkeda() }

	return r
}

func (r *Registry) Get(name string) (maps.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
