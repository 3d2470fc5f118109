package analysis

import (
	"math"

	"github.com/san-kum/mapsim/internal/maps"
)

// BifurcationPoint records the attractor values seen for one value of
// the swept parameter.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Bifurcation sweeps a model parameter and records the distinct
// post-transient values of one state component. Useful for
// visualizing period-doubling routes to chaos.
//
// For each of paramSteps values in [paramMin, paramMax] the model is
// rebuilt from its default state, evolved for transient steps, and
// then record further steps are quantized and collected.
func Bifurcation(
	m maps.Model,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	stateIndex int,
	transient, record int,
) ([]BifurcationPoint, error) {
	if paramSteps <= 1 {
		paramSteps = 2
	}
	step := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*step
		if err := m.SetParam(paramName, param); err != nil {
			return nil, err
		}

		sys := maps.Build(m, nil).Evolve(transient)

		orbit, err := sys.Timeseries(record)
		if err != nil {
			return nil, err
		}

		values := make([]float64, 0, record)
		seen := make(map[int]bool)
		for _, x := range orbit {
			if stateIndex >= len(x) {
				continue
			}
			val := x[stateIndex]
			// Quantize to find distinct values
			key := int(math.Round(val * 1000))
			if !seen[key] {
				seen[key] = true
				values = append(values, val)
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	return results, nil
}

// BifurcationASCII renders bifurcation data onto a rune canvas.
func BifurcationASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !foundFirst {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '*'
			}
		}
	}

	result := ""
	for _, row := range canvas {
		result += string(row) + "\n"
	}
	return result
}
