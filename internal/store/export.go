package store

import (
	"encoding/json"
	"os"
)

type ExportData struct {
	Model    string             `json:"model"`
	Steps    int                `json:"steps"`
	Params   map[string]float64 `json:"params"`
	Lyapunov float64            `json:"lyapunov"`
	States   [][]float64        `json:"states"`
}

// ExportJSON writes a saved run as a single self-contained JSON
// document to path, or to stdout when path is empty.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.LoadMetadata(runID)
	if err != nil {
		return err
	}
	orbit, err := s.LoadOrbit(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Model:    meta.Model,
		Steps:    meta.Steps,
		Params:   meta.Params,
		Lyapunov: meta.Lyapunov,
		States:   make([][]float64, len(orbit)),
	}
	for i, x := range orbit {
		data.States[i] = x
	}

	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
