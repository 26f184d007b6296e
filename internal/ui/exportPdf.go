package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"PolyBoard/internal/export"
	"PolyBoard/internal/state"
)

// showExport asks for a destination and writes the current trace as PDF.
func showExport(win fyne.Window, s *state.Session, status func(string)) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		if err := savePDF(wc, s.Tracker.Vertices()); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, win)
			return
		}
		status("Exported to " + wc.URI().Name())
	}, win)
	d.SetFileName("trace.pdf")
	d.Show()
}

func savePDF(wc fyne.URIWriteCloser, vertices []float32) error {
	defer func() {
		if err := wc.Close(); err != nil {
			log.Printf("[EXPORT] error closing writer: %v", err)
		}
	}()
	if err := export.WritePDF(wc, vertices); err != nil {
		return fmt.Errorf("export %s: %w", wc.URI().Name(), err)
	}
	return nil
}
