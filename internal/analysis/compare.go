package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PeakNormalize returns a copy of the curve divided by its own maximum, so
// the result peaks at exactly 1. The caller must supply a curve whose
// maximum is a positive finite value; zero or NaN maxima are a caller error
// and propagate through the division unguarded.
func PeakNormalize(curve []float64) []float64 {
	max := floats.Max(curve)
	normalized := make([]float64, len(curve))
	for i, v := range curve {
		normalized[i] = v / max
	}
	return normalized
}

// CompareWithReference evaluates the reference CSF oracle against one
// summary record. The oracle is queried at every original and every
// interpolated frequency; both interpolated curves are peak-normalized
// before scoring. modelCurve is the model curve as it will be drawn (raw or
// normalized, per the caller's rendering options); the overlay reference
// curve is scaled to its peak so the two can be plotted together.
//
// The Pearson correlation and Euclidean distance between the normalized
// interpolated curves are descriptive outputs; no thresholding is applied.
func CompareWithReference(rec SummaryRecord, modelCurve []float64, csf ReferenceCSF, modelName string) (*Comparison, error) {
	if csf == nil {
		return nil, fmt.Errorf("no reference CSF oracle supplied")
	}

	refOverlay := PeakNormalize(sampleCSF(csf, rec.SF, modelName))
	floats.Scale(floats.Max(modelCurve), refOverlay)

	refInterp := PeakNormalize(sampleCSF(csf, rec.InterpSF, modelName))
	modelInterp := PeakNormalize(rec.InterpSensitivity)

	return &Comparison{
		RefOverlay:  refOverlay,
		RefInterp:   refInterp,
		ModelInterp: modelInterp,
		Pearson:     stat.Correlation(modelInterp, refInterp, nil),
		Euclidean:   floats.Distance(modelInterp, refInterp, 2),
	}, nil
}

func sampleCSF(csf ReferenceCSF, frequencies []float64, modelName string) []float64 {
	curve := make([]float64, len(frequencies))
	for i, f := range frequencies {
		curve[i] = csf(f, modelName)
	}
	return curve
}
