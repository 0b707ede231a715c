package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/csf_analyzer_go/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flowing-content state for the report.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

func (s *pdfStyler) writeTableRow(cells []string, widths []float64, styleName string, fill bool) {
	s.checkAddPage(s.lineHeight)
	s.applyStyle(styleName)
	x := pdfMargin
	for i, cell := range cells {
		s.pdf.SetXY(x, s.currentY)
		s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, "C", fill, 0, "")
		x += widths[i]
	}
	s.currentY += s.lineHeight
}

// BuildPDFReport writes the CSF comparison report: run parameters, the
// per-channel similarity table (when comparisons were computed) and the
// rendered curve figure.
func BuildPDFReport(filePath string, summary *analysis.NetworkSummary,
	comparisons map[string][]*analysis.Comparison, figPNG []byte,
	targetSize int, modelName string) error {

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph("Contrast Sensitivity Function Report", "h1", "C")
	styler.addSpacer(3)
	styler.writeParagraph(fmt.Sprintf("Target image size: %d px", targetSize), "normal", "L")
	if modelName != "" {
		styler.writeParagraph(fmt.Sprintf("Reference model: %s", modelName), "normal", "L")
	}
	styler.addSpacer(5)

	if summary == nil || len(summary.Names) == 0 {
		styler.writeParagraph("No channel summaries to display.", "normal", "L")
		return pdf.OutputFileAndClose(filePath)
	}

	if len(comparisons) > 0 {
		styler.writeParagraph("Similarity to Reference CSF", "h2", "L")

		headers := []string{"Channel", "Area", "Tested Waves", "Pearson r", "Euclidean d"}
		colWidthsRel := []float64{0.2, 0.2, 0.2, 0.2, 0.2}
		colWidths := make([]float64, len(colWidthsRel))
		for i, rel := range colWidthsRel {
			colWidths[i] = rel * pdfContentWidth
		}

		styler.writeTableRow(headers, colWidths, "tableHeader", true)
		for _, chnName := range summary.Names {
			chnComparisons, ok := comparisons[chnName]
			if !ok {
				continue
			}
			for i, cmp := range chnComparisons {
				rec := summary.Channels[chnName][i]
				area := rec.Area
				if area == "" {
					area = "-"
				}
				styler.writeTableRow([]string{
					chnName,
					area,
					fmt.Sprintf("%d", len(rec.Waves)),
					fmt.Sprintf("%.3f", cmp.Pearson),
					fmt.Sprintf("%.3f", cmp.Euclidean),
				}, colWidths, "tableCell", false)
			}
		}
		styler.addSpacer(5)
	}

	styler.writeParagraph("Sensitivity Curves", "h2", "L")
	if len(figPNG) > 0 {
		imgWidth := pdfContentWidth * 0.95
		imgHeight := imgWidth * (4.0 / 22.0)
		styler.addImage(figPNG, "csf_curves", imgWidth, imgHeight,
			"Per-area sensitivity curves with channels overlaid")
	} else {
		styler.writeParagraph("Curve figure not available.", "normal", "L")
	}

	return pdf.OutputFileAndClose(filePath)
}
