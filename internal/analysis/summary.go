package analysis

import (
	"fmt"

	"github.com/user/csf_analyzer_go/internal/parser"
)

// SummarizeTrial reduces one trial matrix to a SummaryRecord: unique waves,
// their per-degree spatial frequencies, the raw sensitivity curve, and the
// curve resampled onto the uniform frequency grid. targetSize is the
// stimulus image size in pixels. Any extraction or resampling failure
// propagates unchanged.
func SummarizeTrial(matrix parser.TrialMatrix, targetSize int) (SummaryRecord, error) {
	waves := UniqueWaves(matrix)
	sensitivities, err := ExtractSensitivity(matrix)
	if err != nil {
		return SummaryRecord{}, err
	}

	interpWaves, interpSens, err := UniformSFS(waves, sensitivities, targetSize)
	if err != nil {
		return SummaryRecord{}, err
	}

	return SummaryRecord{
		Waves:             waves,
		SF:                PerDegree(WaveToSF(waves, targetSize)),
		Sensitivity:       sensitivities,
		InterpWaves:       interpWaves,
		InterpSF:          PerDegree(WaveToSF(interpWaves, targetSize)),
		InterpSensitivity: interpSens,
	}, nil
}

// SummarizeChannel summarizes every test condition of one channel,
// preserving file order and carrying the area labels through.
func SummarizeChannel(results []parser.ChannelResult, targetSize int) (ChannelSummary, error) {
	summary := make(ChannelSummary, 0, len(results))
	for i, res := range results {
		rec, err := SummarizeTrial(res.Matrix, targetSize)
		if err != nil {
			return nil, fmt.Errorf("test %d: %w", i, err)
		}
		rec.Area = res.Area
		summary = append(summary, rec)
	}
	return summary, nil
}

// SummarizeNetwork builds the per-channel summaries for a whole result set.
func SummarizeNetwork(results *parser.ChannelResultSet, targetSize int) (*NetworkSummary, error) {
	summary := &NetworkSummary{
		Channels: make(map[string]ChannelSummary, len(results.Names)),
		Names:    append([]string(nil), results.Names...),
	}
	for _, chnName := range results.Names {
		chnSummary, err := SummarizeChannel(results.Channels[chnName], targetSize)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", chnName, err)
		}
		summary.Channels[chnName] = chnSummary
	}
	return summary, nil
}
