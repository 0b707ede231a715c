package report

import (
	"fmt"

	"github.com/user/csf_analyzer_go/internal/analysis"
	"github.com/user/csf_analyzer_go/internal/parser"
)

// PlotCSFAreas runs the whole pipeline: load the per-channel results under
// path, reduce them to sensitivity summaries for the given stimulus size,
// compare each channel against the reference oracle when one is supplied,
// and draw everything onto a single figure.
//
// The reference overlay and the similarity scores appear on the first
// channel's curves only; later channels stack on the same subplots without
// them. The returned comparison map covers every channel regardless, keyed
// by channel name, for report tables.
func PlotCSFAreas(path string, targetSize int, opts Options) (*Figure, *analysis.NetworkSummary, map[string][]*analysis.Comparison, error) {
	results, err := parser.LoadNetworkResults(path, opts.Channels)
	if err != nil {
		return nil, nil, nil, err
	}
	summary, err := analysis.SummarizeNetwork(results, targetSize)
	if err != nil {
		return nil, nil, nil, err
	}

	compare := opts.Reference != nil && opts.ModelName != ""
	comparisons := make(map[string][]*analysis.Comparison)
	fig := NewFigure(opts.Width, opts.Height)

	for chnIdx, chnName := range summary.Names {
		chnSummary := summary.Channels[chnName]

		var chnComparisons []*analysis.Comparison
		if compare {
			chnComparisons = make([]*analysis.Comparison, len(chnSummary))
			for i, rec := range chnSummary {
				modelCurve := rec.Sensitivity
				if opts.Normalize {
					modelCurve = analysis.PeakNormalize(modelCurve)
				}
				cmp, err := analysis.CompareWithReference(rec, modelCurve, opts.Reference, opts.ModelName)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("channel %q, test %d: %w", chnName, i, err)
				}
				chnComparisons[i] = cmp
			}
			comparisons[chnName] = chnComparisons
		}

		overlay := chnComparisons
		if chnIdx > 0 {
			overlay = nil
		}
		if err := fig.AppendChannel(chnSummary, chnName, overlay, opts); err != nil {
			return nil, nil, nil, err
		}
	}
	return fig, summary, comparisons, nil
}
