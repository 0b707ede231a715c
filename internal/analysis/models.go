package analysis

// SummaryRecord is the reduced form of one test condition: the unique
// stimulus waves, their image-relative spatial frequencies, the raw
// sensitivity curve, and the same curve resampled onto the uniform
// frequency grid. Records are built once and not mutated afterwards.
type SummaryRecord struct {
	// Waves holds the unique wave values of the trial matrix, ascending.
	Waves []float64
	// SF holds the per-degree spatial frequency of each wave.
	SF []float64
	// Sensitivity is the raw curve (1/contrast), aligned with Waves.
	Sensitivity []float64

	// InterpWaves are the uniform grid query points in wave-domain units.
	InterpWaves []float64
	// InterpSF holds the per-degree spatial frequency of each grid point.
	InterpSF []float64
	// InterpSensitivity is the curve resampled at InterpWaves.
	InterpSensitivity []float64

	// Area is the test-condition label ("area0".."area4"), or "".
	Area string
}

// ChannelSummary holds the summaries of one channel's test conditions in
// source-file order.
type ChannelSummary []SummaryRecord

// NetworkSummary maps channel names to their summaries. Names preserves the
// channel order of the loaded result set.
type NetworkSummary struct {
	Channels map[string]ChannelSummary
	Names    []string
}

// ReferenceCSF is the external contrast-sensitivity oracle: it maps a
// spatial frequency and a reference model name to a sensitivity value. It
// is supplied by the caller and never reimplemented here.
type ReferenceCSF func(spatialFrequency float64, modelName string) float64

// Comparison holds the outcome of comparing one summary record against a
// reference CSF curve. The scores are descriptive only; no pass/fail
// judgement is attached to them.
type Comparison struct {
	// RefOverlay is the reference curve at the record's original
	// frequencies, peak-normalized and scaled to the model curve's peak
	// for visual overlay.
	RefOverlay []float64
	// RefInterp is the peak-normalized reference curve at the
	// interpolated frequencies.
	RefInterp []float64
	// ModelInterp is the peak-normalized interpolated model curve.
	ModelInterp []float64

	// Pearson is the correlation coefficient between ModelInterp and
	// RefInterp.
	Pearson float64
	// Euclidean is the L2 distance between ModelInterp and RefInterp.
	Euclidean float64
}
