package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/csf_analyzer_go/internal/analysis"
	"github.com/user/csf_analyzer_go/internal/parser"
)

func sampleMatrix() parser.TrialMatrix {
	return parser.TrialMatrix{
		{0.5, 2.0, 0, 0, 0},
		{0.1, 2.0, 0, 0, 0},
		{0.4, 4.0, 0, 0, 0},
		{0.05, 4.0, 0, 0, 0},
	}
}

func TestSummarizeTrial(t *testing.T) {
	const targetSize = 32 // grid divisors 1, 1.5, ..., 16 -> 31 points

	rec, err := analysis.SummarizeTrial(sampleMatrix(), targetSize)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4}, rec.Waves)

	// Per-degree frequency: targetSize/2/pi / wave, halved for the
	// one-degree field-of-view approximation.
	base := float64(targetSize) / 2 / math.Pi
	require.Len(t, rec.SF, 2)
	assert.InDelta(t, base/2/analysis.FieldOfViewDegrees, rec.SF[0], 1e-12)
	assert.InDelta(t, base/4/analysis.FieldOfViewDegrees, rec.SF[1], 1e-12)

	require.Len(t, rec.Sensitivity, 2)
	assert.InDelta(t, 10.0, rec.Sensitivity[0], 1e-9)
	assert.InDelta(t, 20.0, rec.Sensitivity[1], 1e-9)

	require.Len(t, rec.InterpWaves, 31)
	assert.Len(t, rec.InterpSF, 31)
	assert.Len(t, rec.InterpSensitivity, 31)
	for i, w := range rec.InterpWaves {
		assert.InDelta(t, base/w/analysis.FieldOfViewDegrees, rec.InterpSF[i], 1e-12)
	}

	assert.Equal(t, "", rec.Area)
}

func TestSummarizeChannel_CarriesAreaAndOrder(t *testing.T) {
	results := []parser.ChannelResult{
		{Matrix: sampleMatrix(), Area: "area1"},
		{Matrix: sampleMatrix(), Area: ""},
		{Matrix: sampleMatrix(), Area: "area3"},
	}

	summary, err := analysis.SummarizeChannel(results, 32)
	require.NoError(t, err)

	require.Len(t, summary, 3)
	assert.Equal(t, "area1", summary[0].Area)
	assert.Equal(t, "", summary[1].Area)
	assert.Equal(t, "area3", summary[2].Area)
}

func TestSummarizeChannel_FailFast(t *testing.T) {
	results := []parser.ChannelResult{
		{Matrix: sampleMatrix()},
		{Matrix: parser.TrialMatrix{}}, // no rows, no unique waves
	}

	summary, err := analysis.SummarizeChannel(results, 32)
	assert.Nil(t, summary)
	assert.Error(t, err)
}

func TestSummarizeNetwork(t *testing.T) {
	results := parser.NewChannelResultSet()
	results.Channels["lum"] = []parser.ChannelResult{{Matrix: sampleMatrix(), Area: "area0"}}
	results.Channels["rg"] = []parser.ChannelResult{{Matrix: sampleMatrix()}}
	results.Names = []string{"lum", "rg"}

	summary, err := analysis.SummarizeNetwork(results, 32)
	require.NoError(t, err)

	assert.Equal(t, []string{"lum", "rg"}, summary.Names)
	require.Len(t, summary.Channels["lum"], 1)
	assert.Equal(t, "area0", summary.Channels["lum"][0].Area)
	require.Len(t, summary.Channels["rg"], 1)
}
