package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/csf_analyzer_go/internal/parser"
)

func writeTrialFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trials.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTrialMatrix_Valid(t *testing.T) {
	path := writeTrialFile(t, "0.5,4.0,90,0,1\n0.1,8.0,45,180,0\n")

	matrix, err := parser.ParseTrialMatrix(path)
	require.NoError(t, err)

	require.Len(t, matrix, 2)
	assert.Equal(t, []float64{0.5, 4.0, 90, 0, 1}, matrix[0])
	assert.Equal(t, []float64{0.1, 8.0, 45, 180, 0}, matrix[1])
	assert.Equal(t, 4.0, matrix[0][parser.ColWave])
	assert.Equal(t, 0.5, matrix[0][parser.ColContrast])
}

func TestParseTrialMatrix_NonNumeric(t *testing.T) {
	path := writeTrialFile(t, "0.5,4.0,90,0,1\n0.1,wave,45,180,0\n")

	matrix, err := parser.ParseTrialMatrix(path)
	assert.Nil(t, matrix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestParseTrialMatrix_WrongColumnCount(t *testing.T) {
	path := writeTrialFile(t, "0.5,4.0,90\n")

	matrix, err := parser.ParseTrialMatrix(path)
	assert.Nil(t, matrix)
	assert.Error(t, err)
}

func TestParseTrialMatrix_MissingFile(t *testing.T) {
	_, err := parser.ParseTrialMatrix(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestAreaName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"test_area2.csv", "area2"},
		{"noarea.csv", ""},
		{"area4_contrast.csv", "area4"},
		{"area3_then_area1.csv", "area1"}, // lowest index wins
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parser.AreaName(tc.fileName), "file %q", tc.fileName)
	}
}
