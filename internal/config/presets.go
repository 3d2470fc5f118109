package config

var Presets = map[string]map[string]*Config{
	"logistic": {
		"chaos": {
			Model: "logistic", Steps: 2000, Transient: 200,
			InitState: []float64{0.4},
			Params:    map[string]float64{"r": 4.0},
		},
		"period2": {
			Model: "logistic", Steps: 500, Transient: 500,
			InitState: []float64{0.4},
			Params:    map[string]float64{"r": 3.2},
		},
		"edge": {
			Model: "logistic", Steps: 4000, Transient: 1000,
			InitState: []float64{0.4},
			Params:    map[string]float64{"r": 3.5699},
		},
	},
	"henon": {
		"classic": {
			Model: "henon", Steps: 5000, Transient: 100,
			InitState: []float64{0.1, 0.1},
			Params:    map[string]float64{"a": 1.4, "b": 0.3},
		},
		"periodic": {
			Model: "henon", Steps: 1000, Transient: 500,
			InitState: []float64{0.1, 0.1},
			Params:    map[string]float64{"a": 1.0, "b": 0.3},
		},
	},
	"standard": {
		"regular": {
			Model: "standard", Steps: 2000, Transient: 0,
			InitState: []float64{0.5, 0.2},
			Params:    map[string]float64{"k": 0.5},
		},
		"chaos": {
			Model: "standard", Steps: 5000, Transient: 0,
			InitState: []float64{0.5, 0.2},
			Params:    map[string]float64{"k": 5.0},
		},
	},
	"ikeda": {
		"attractor": {
			Model: "ikeda", Steps: 5000, Transient: 100,
			InitState: []float64{0.1, 0.1},
			Params:    map[string]float64{"u": 0.9},
		},
	},
	"tent": {
		"chaos": {
			Model: "tent", Steps: 2000, Transient: 100,
			InitState: []float64{0.3},
			Params:    map[string]float64{"mu": 2.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
