package report

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/user/csf_analyzer_go/internal/analysis"
)

// Default figure dimensions, one row of subplots.
const (
	DefaultFigureWidth  = 22 * vg.Inch
	DefaultFigureHeight = 4 * vg.Inch
)

// Options control rendering of the CSF curves.
type Options struct {
	// Channels restricts loading to the named channels; nil loads all.
	Channels []string
	// ModelName identifies the reference model passed to the oracle.
	// Comparison is skipped when it is empty or Reference is nil.
	ModelName string
	// Reference is the external CSF oracle.
	Reference analysis.ReferenceCSF
	// LogAxis draws the frequency axis on a log scale.
	LogAxis bool
	// Normalize divides each plotted curve by its own peak.
	Normalize bool
	// Width and Height size the whole figure; zero means the defaults.
	Width, Height vg.Length
}

// DefaultOptions returns the standard rendering options: all channels,
// linear axis, peak-normalized curves, no reference comparison.
func DefaultOptions() Options {
	return Options{Normalize: true}
}

// Figure accumulates one subplot per test condition. The first appended
// channel allocates the subplots; later channels overlay their curves onto
// the existing ones. Each draw step returns through the same accumulator,
// so the channel order of successive AppendChannel calls is the order the
// lines stack up in.
type Figure struct {
	plots         []*plot.Plot
	width, height vg.Length
}

// NewFigure returns an empty figure. Zero dimensions fall back to the
// package defaults.
func NewFigure(width, height vg.Length) *Figure {
	if width == 0 {
		width = DefaultFigureWidth
	}
	if height == 0 {
		height = DefaultFigureHeight
	}
	return &Figure{width: width, height: height}
}

// NumSubplots reports how many test conditions the figure holds.
func (f *Figure) NumSubplots() int {
	return len(f.plots)
}

// AppendChannel draws one channel's summary onto the figure. comparisons,
// when non-nil, must hold one entry per test condition; non-nil entries add
// the dashed reference overlay and append the similarity scores to the
// channel's legend label.
func (f *Figure) AppendChannel(summary analysis.ChannelSummary, chnName string, comparisons []*analysis.Comparison, opts Options) error {
	if len(f.plots) > 0 && len(f.plots) != len(summary) {
		return fmt.Errorf("figure has %d subplots but channel %q has %d tests",
			len(f.plots), chnName, len(summary))
	}
	if comparisons != nil && len(comparisons) != len(summary) {
		return fmt.Errorf("channel %q: %d comparisons for %d tests",
			chnName, len(comparisons), len(summary))
	}

	allocate := len(f.plots) == 0
	for i, rec := range summary {
		var p *plot.Plot
		if allocate {
			p = newSubplot(rec.Area, opts)
			f.plots = append(f.plots, p)
		} else {
			p = f.plots[i]
		}

		yvals := rec.Sensitivity
		if opts.Normalize {
			yvals = analysis.PeakNormalize(yvals)
		}

		style := channelPlotParams(chnName)
		label := style.label
		if comparisons != nil && comparisons[i] != nil {
			cmp := comparisons[i]
			if err := addReferenceLine(p, rec.SF, cmp.RefOverlay); err != nil {
				return fmt.Errorf("channel %q, test %d: %w", chnName, i, err)
			}
			label = fmt.Sprintf("%s [r=%.2f | d=%.2f]", label, cmp.Pearson, cmp.Euclidean)
		}

		line, points, err := plotter.NewLinePoints(curveXYs(rec.SF, yvals))
		if err != nil {
			return fmt.Errorf("channel %q, test %d: %v", chnName, i, err)
		}
		line.Color = style.lineColor
		points.GlyphStyle.Color = style.glyphColor
		points.GlyphStyle.Shape = style.glyph
		p.Add(line, points)
		p.Legend.Add(label, line, points)
	}
	return nil
}

func newSubplot(title string, opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Spatial Frequency (Cycle/Image)"
	p.Y.Label.Text = "Sensitivity (1/Contrast)"
	if opts.LogAxis {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true
	return p
}

func addReferenceLine(p *plot.Plot, freqs, refCurve []float64) error {
	refLine, err := plotter.NewLine(curveXYs(freqs, refCurve))
	if err != nil {
		return fmt.Errorf("failed to create reference line: %v", err)
	}
	refLine.Color = color.Black
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(refLine)
	p.Legend.Add("human", refLine)
	return nil
}

func curveXYs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

// WritePNG renders the subplots in a single row and encodes the figure as
// PNG.
func (f *Figure) WritePNG(w io.Writer) error {
	if len(f.plots) == 0 {
		return fmt.Errorf("figure has no subplots to render")
	}

	img := vgimg.New(f.width, f.height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(f.plots),
		PadX: vg.Points(10),
	}
	canvases := plot.Align([][]*plot.Plot{f.plots}, tiles, dc)
	for j, p := range f.plots {
		p.Draw(canvases[0][j])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode figure PNG: %v", err)
	}
	return nil
}

// SavePNG writes the rendered figure to a file.
func (f *Figure) SavePNG(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create figure file: %w", err)
	}
	defer file.Close()
	return f.WritePNG(file)
}
