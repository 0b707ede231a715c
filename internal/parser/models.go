package parser

// Column layout of a trial matrix row, fixed by the evaluation protocol.
const (
	ColContrast = 0
	ColWave     = 1
	ColAngle    = 2
	ColPhase    = 3
	ColSide     = 4

	NumTrialColumns = 5
)

// TrialMatrix holds one CSV of raw psychophysics trials, one row per trial
// with columns [contrast, wave, angle, phase, side].
//
// Input ordering contract: within each wave the rows are expected to be
// ordered so that the last row is the lowest-contrast trial the model still
// passed. The pipeline relies on this ordering and does not verify it.
type TrialMatrix [][]float64

// ChannelResult is one parsed trial matrix tagged with its area label.
// Area is the empty string when the source filename carries no area tag.
type ChannelResult struct {
	Matrix TrialMatrix
	Area   string
}

// ChannelResultSet maps channel names (e.g. "lum", "rg", "yb") to their
// parsed trial matrices. Names preserves the lexicographic discovery order.
type ChannelResultSet struct {
	Channels map[string][]ChannelResult
	Names    []string
}

// NewChannelResultSet returns an empty result set.
func NewChannelResultSet() *ChannelResultSet {
	return &ChannelResultSet{
		Channels: make(map[string][]ChannelResult),
		Names:    make([]string, 0),
	}
}

// areaLabels is the fixed vocabulary of area tags recognised in filenames,
// tested in ascending index order.
var areaLabels = []string{"area0", "area1", "area2", "area3", "area4"}
