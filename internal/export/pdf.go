package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"PolyBoard/internal/state"
)

var ErrNothingToExport = errors.New("no vertices to export")

const (
	pageW, pageH = 210.0, 297.0 // A4, mm
	margin       = 15.0
)

// WritePDF draws the traced polygon onto a single A4 page, scaled to fit
// inside the margins with its aspect ratio kept.
func WritePDF(w io.Writer, vertices []float32) error {
	if len(vertices) < 2 {
		return ErrNothingToExport
	}
	box := state.Bounds(vertices)
	scale := fitScale(box)

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("PolyBoard trace", true)
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetFillColor(70, 137, 102)
	p.SetLineWidth(0.5)

	pts := make([]gofpdf.PointType, 0, len(vertices)/2)
	for i := 0; i+1 < len(vertices); i += 2 {
		pts = append(pts, gofpdf.PointType{
			X: margin + float64(vertices[i]-box.X)*scale,
			Y: margin + float64(vertices[i+1]-box.Y)*scale,
		})
	}
	p.Polygon(pts, "DF")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func fitScale(box state.Rect) float64 {
	sx, sy := 1.0, 1.0
	if box.Width > 0 {
		sx = (pageW - 2*margin) / float64(box.Width)
	}
	if box.Height > 0 {
		sy = (pageH - 2*margin) / float64(box.Height)
	}
	if sx < sy {
		return sx
	}
	return sy
}
