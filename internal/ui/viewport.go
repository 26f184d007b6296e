package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Viewport shows the frames produced by the 3D backend.
type Viewport struct {
	widget.BaseWidget
	img *canvas.Image
}

func NewViewport() *Viewport {
	v := &Viewport{img: canvas.NewImageFromImage(nil)}
	v.img.FillMode = canvas.ImageFillContain
	v.img.ScaleMode = canvas.ImageScaleSmooth
	v.ExtendBaseWidget(v)
	return v
}

// ShowImage swaps in img. It is safe to call from any goroutine.
func (v *Viewport) ShowImage(img image.Image) {
	fyne.Do(func() { v.setImage(img) })
}

func (v *Viewport) setImage(img image.Image) {
	v.img.Image = img
	v.img.Refresh()
}

func (v *Viewport) Image() image.Image { return v.img.Image }

func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

func (v *Viewport) MinSize() fyne.Size { return fyne.NewSize(300, 300) }
