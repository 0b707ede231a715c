package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AreaName derives the area label from a result filename by testing it
// against the fixed "area0".."area4" vocabulary in ascending index order.
// It returns the first match, or "" when the filename carries no tag.
func AreaName(fileName string) string {
	for _, label := range areaLabels {
		if strings.Contains(fileName, label) {
			return label
		}
	}
	return ""
}

// ParseTrialMatrix reads one comma-delimited trial file. Every row must
// contain exactly NumTrialColumns numeric fields; the first malformed row
// aborts the parse.
func ParseTrialMatrix(filePath string) (TrialMatrix, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = NumTrialColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	matrix := make(TrialMatrix, 0, len(records))
	for rowIdx, record := range records {
		row := make([]float64, NumTrialColumns)
		for colIdx, field := range record {
			val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: non-numeric value %q: %v",
					rowIdx+1, colIdx+1, field, err)
			}
			row[colIdx] = val
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}
