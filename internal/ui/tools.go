package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var palette = []color.Color{
	color.NRGBA{R: 70, G: 137, B: 102, A: 160},
	color.NRGBA{R: 255, A: 160},
	color.NRGBA{B: 255, A: 160},
	color.NRGBA{R: 255, G: 200, A: 160},
	color.NRGBA{A: 160},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// ToolbarActions are the host operations the toolbar triggers.
type ToolbarActions struct {
	Reset     func()
	Export    func()
	Fill      func(color.Color)
	Tolerance func(float64)
}

// NewToolbar lays out the reset/export actions, the fill palette and the
// closing tolerance slider.
func NewToolbar(actions ToolbarActions, tolerance float64) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			if actions.Reset != nil {
				actions.Reset()
			}
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if actions.Export != nil {
				actions.Export()
			}
		}),
	)

	swatches := make([]fyne.CanvasObject, 0, len(palette))
	for _, c := range palette {
		swatches = append(swatches, newColorSwatch(c, func(c color.Color) {
			if actions.Fill != nil {
				actions.Fill(c)
			}
		}))
	}

	tolLabel := widget.NewLabel(fmt.Sprintf("%.0fpx", tolerance))
	slider := widget.NewSlider(5, 60)
	slider.SetValue(tolerance)
	slider.OnChanged = func(v float64) {
		tolLabel.SetText(fmt.Sprintf("%.0fpx", v))
		if actions.Tolerance != nil {
			actions.Tolerance(v)
		}
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), slider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		container.NewHBox(swatches...),
		widget.NewSeparator(),
		widget.NewLabel("Snap:"),
		sliderBox,
		tolLabel,
		layout.NewSpacer(),
	)
}
