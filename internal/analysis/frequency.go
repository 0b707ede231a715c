package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// FieldOfViewDegrees is the assumed visual field covered by the whole
// stimulus image. Networks see the entire image, taken to be similar to a
// fovea of 2 degrees; mapped frequencies are divided by this value to
// approximate a one-degree unit. This is an assumption of the evaluation
// protocol, not a derived quantity.
const FieldOfViewDegrees = 2.0

// WaveToSF converts wave counts to image-relative spatial frequencies:
// targetSize/2/pi divided by each wave. A zero wave yields +Inf per
// floating-point semantics; it is not special-cased.
func WaveToSF(waves []float64, targetSize int) []float64 {
	baseSF := float64(targetSize) / 2 / math.Pi
	sfs := make([]float64, len(waves))
	for i, wave := range waves {
		sfs[i] = baseSF / wave
	}
	return sfs
}

// PerDegree rescales mapped spatial frequencies from the whole-image field
// of view to an approximate one-degree unit.
func PerDegree(sfs []float64) []float64 {
	scaled := make([]float64, len(sfs))
	for i, sf := range sfs {
		scaled[i] = sf / FieldOfViewDegrees
	}
	return scaled
}

// LinearResample evaluates the piecewise-linear curve through (xs, ys) at
// each query point. xs must be strictly increasing; queries outside the
// domain clamp to the nearest boundary value. A single-point curve is
// treated as a constant.
func LinearResample(xs, ys, queries []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("cannot resample an empty curve")
	}
	out := make([]float64, len(queries))
	if len(xs) == 1 {
		for i := range queries {
			out[i] = ys[0]
		}
		return out, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("failed to fit interpolant: %v", err)
	}
	for i, q := range queries {
		out[i] = pl.Predict(q)
	}
	return out, nil
}

// UniformSFS resamples a sensitivity curve onto the fixed size-dependent
// frequency grid base/e for e in 1, 1.5, 2, ..., targetSize/2 inclusive,
// with base = targetSize/2/pi. The grid depends only on targetSize, so
// curves from different tests share a common axis after resampling.
//
// xs are the curve's original x-values (waves, ascending); ys the
// sensitivities. Returns the grid and the resampled curve.
func UniformSFS(xs, ys []float64, targetSize int) ([]float64, []float64, error) {
	if targetSize <= 0 {
		return nil, nil, fmt.Errorf("target size must be positive, got %d", targetSize)
	}
	maxX := float64(targetSize) / 2
	baseSF := maxX / math.Pi

	newXs := make([]float64, 0, int(2*maxX))
	for e := 1.0; e <= maxX; e += 0.5 {
		newXs = append(newXs, baseSF/e)
	}
	newYs, err := LinearResample(xs, ys, newXs)
	if err != nil {
		return nil, nil, err
	}
	return newXs, newYs, nil
}
