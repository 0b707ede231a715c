package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/user/csf_analyzer_go/internal/analysis"
	"github.com/user/csf_analyzer_go/internal/report"
)

// App struct
type App struct {
	ctx context.Context

	// reference is the external CSF oracle used for comparison. It is an
	// external collaborator of this tool; builds that ship a reference
	// model wire it in here. When nil the report skips the comparison.
	reference analysis.ReferenceCSF
	modelName string
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// Startup is called when the app starts. The context is saved so we can
// call the runtime methods.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "CSF Analyzer GO")
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	log.Println(message)
}

func (a *App) clearLog() {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "clearLog")
	}
}

// HandleGenerateReport is called from the frontend to run the CSF pipeline
// on a results directory and write the PDF report. channelsCSV optionally
// restricts the run to a comma-separated list of channel names.
func (a *App) HandleGenerateReport(resultsDir string, pdfFilePath string, targetSize int, channelsCSV string) (string, error) {
	a.clearLog()
	a.sendStatus(fmt.Sprintf("Request: results=[%s], PDF=[%s], size=%d", resultsDir, pdfFilePath, targetSize))

	go func() { // Run the main logic in a goroutine to avoid blocking the UI
		defer func() {
			if r := recover(); r != nil {
				errMsg := fmt.Sprintf("PANIC recovered: %v", r)
				a.sendStatus(errMsg)
				runtime.EventsEmit(a.ctx, "generationComplete", false, errMsg)
			}
		}()

		runtime.EventsEmit(a.ctx, "generationStart")

		opts := report.DefaultOptions()
		opts.Channels = splitChannels(channelsCSV)
		opts.Reference = a.reference
		opts.ModelName = a.modelName

		a.sendStatus(fmt.Sprintf("Loading and summarizing: %s", resultsDir))
		fig, summary, comparisons, err := report.PlotCSFAreas(resultsDir, targetSize, opts)
		if err != nil {
			errMsg := fmt.Sprintf("Error running CSF pipeline: %v", err)
			a.sendStatus(errMsg)
			runtime.EventsEmit(a.ctx, "generationComplete", false, errMsg)
			return
		}
		a.sendStatus(fmt.Sprintf("Summarized %d channels, %d test conditions.",
			len(summary.Names), fig.NumSubplots()))

		a.sendStatus("Rendering curve figure...")
		var figBuf bytes.Buffer
		if err := fig.WritePNG(&figBuf); err != nil {
			errMsg := fmt.Sprintf("Error rendering figure: %v", err)
			a.sendStatus(errMsg)
			runtime.EventsEmit(a.ctx, "generationComplete", false, errMsg)
			return
		}

		a.sendStatus(fmt.Sprintf("Generating PDF: %s...", pdfFilePath))
		err = report.BuildPDFReport(pdfFilePath, summary, comparisons, figBuf.Bytes(), targetSize, a.modelName)
		if err != nil {
			errMsg := fmt.Sprintf("Error generating PDF report: %v", err)
			a.sendStatus(errMsg)
			runtime.EventsEmit(a.ctx, "generationComplete", false, errMsg)
			return
		}
		successMsg := fmt.Sprintf("PDF report successfully generated: %s", pdfFilePath)
		a.sendStatus(successMsg)
		runtime.EventsEmit(a.ctx, "generationComplete", true, successMsg)
	}()

	return "Report generation started in background.", nil
}

func splitChannels(channelsCSV string) []string {
	if strings.TrimSpace(channelsCSV) == "" {
		return nil
	}
	var channels []string
	for _, name := range strings.Split(channelsCSV, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			channels = append(channels, trimmed)
		}
	}
	return channels
}
