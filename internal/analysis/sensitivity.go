package analysis

import (
	"fmt"
	"sort"

	"github.com/user/csf_analyzer_go/internal/parser"
)

// UniqueWaves returns the distinct values of the wave column in ascending
// order.
func UniqueWaves(matrix parser.TrialMatrix) []float64 {
	seen := make(map[float64]bool)
	waves := make([]float64, 0)
	for _, row := range matrix {
		wave := row[parser.ColWave]
		if !seen[wave] {
			seen[wave] = true
			waves = append(waves, wave)
		}
	}
	sort.Float64s(waves)
	return waves
}

// ExtractSensitivity reduces a trial matrix to one sensitivity value per
// unique wave, in ascending-wave order. For each wave it takes the last
// matching row in file order and emits the inverse of its contrast.
//
// This relies entirely on the input ordering contract (see
// parser.TrialMatrix): the last row per wave must be the lowest-contrast
// passed trial. Violating that contract yields a silently wrong curve.
func ExtractSensitivity(matrix parser.TrialMatrix) ([]float64, error) {
	waves := UniqueWaves(matrix)
	if len(waves) == 0 {
		return nil, fmt.Errorf("trial matrix has no rows, cannot extract sensitivities")
	}

	sensitivities := make([]float64, 0, len(waves))
	for _, wave := range waves {
		var lowest []float64
		for _, row := range matrix {
			if row[parser.ColWave] == wave {
				lowest = row
			}
		}
		sensitivities = append(sensitivities, 1/lowest[parser.ColContrast])
	}
	return sensitivities, nil
}
