package report

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// channelStyle fixes the drawing convention for one stimulus channel.
type channelStyle struct {
	label      string
	lineColor  color.Color
	glyphColor color.Color
	glyph      draw.GlyphDrawer
}

// channelPlotParams returns the display styling for the three recognised
// channel names. Unrecognised names fall back to an unstyled default. The
// padded labels keep the legend columns of overlaid channels aligned.
func channelPlotParams(chnName string) channelStyle {
	switch chnName {
	case "lum":
		gray := color.Gray{Y: 128}
		return channelStyle{label: "lum", lineColor: gray, glyphColor: gray, glyph: draw.CrossGlyph{}}
	case "rg":
		return channelStyle{
			label:      "rg   ",
			lineColor:  color.RGBA{G: 128, A: 255},
			glyphColor: color.RGBA{R: 255, A: 255},
			glyph:      draw.PyramidGlyph{},
		}
	case "yb":
		return channelStyle{
			label:      "yb   ",
			lineColor:  color.RGBA{B: 255, A: 255},
			glyphColor: color.RGBA{R: 255, G: 215, A: 255},
			glyph:      draw.TriangleGlyph{},
		}
	default:
		return channelStyle{
			label:      chnName,
			lineColor:  plotter.DefaultLineStyle.Color,
			glyphColor: plotter.DefaultGlyphStyle.Color,
			glyph:      plotter.DefaultGlyphStyle.Shape,
		}
	}
}
