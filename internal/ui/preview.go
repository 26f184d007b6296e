package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"PolyBoard/internal/state"
)

// rasterizePreview fills the outline through pts into a w×h image. Points are
// in widget units and scale converts them to pixels. Fewer than three points
// enclose nothing, so the image stays transparent.
func rasterizePreview(pts []state.Point, w, h int, scale float32, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(pts) < 3 || w <= 0 || h <= 0 {
		return img
	}
	ras := vector.NewRasterizer(w, h)
	ras.DrawOp = draw.Src
	ras.MoveTo(pts[0].X*scale, pts[0].Y*scale)
	for _, p := range pts[1:] {
		ras.LineTo(p.X*scale, p.Y*scale)
	}
	ras.ClosePath()
	ras.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img
}
