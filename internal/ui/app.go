package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PolyBoard/internal/display"
	"PolyBoard/internal/state"
)

// Host is the drawing window: trace surface on the left, 3D viewport on the
// right.
type Host struct {
	Trace    *TraceWidget
	Viewport *Viewport
	Status   *widget.Label
	Content  fyne.CanvasObject
}

// NewHost wires the widgets to the session and the software backend. win is
// used for dialogs and may be nil in tests.
func NewHost(win fyne.Window, s *state.Session, sw *display.SoftwareBackend, shareLink string) *Host {
	h := &Host{
		Trace:    NewTraceWidget(s),
		Viewport: NewViewport(),
		Status:   widget.NewLabel("Click to place vertices; click near the first one to close."),
	}
	sw.OnFrame = h.Viewport.ShowImage
	sw.SetFill(h.Trace.Fill())

	h.Trace.OnClick = func(n int) {
		h.Status.SetText(fmt.Sprintf("%d vertices", n))
	}
	h.Trace.OnClosed = func() {
		h.Status.SetText(fmt.Sprintf("Closed with %d vertices", s.Tracker.Len()))
	}

	toolbar := NewToolbar(ToolbarActions{
		Reset: func() {
			h.Trace.Reset()
			h.Status.SetText("Cleared")
		},
		Export: func() {
			if win != nil {
				showExport(win, s, h.Status.SetText)
			}
		},
		Fill: func(c color.Color) {
			h.Trace.SetFill(c)
			sw.SetFill(c)
		},
		Tolerance: func(v float64) {
			s.Tracker.SetTolerance(float32(v))
		},
	}, float64(s.Tracker.Tolerance()))

	var footer fyne.CanvasObject = h.Status
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		footer = container.NewBorder(nil, nil, widget.NewLabel("Viewer link:"), h.Status, link)
	}

	split := container.NewHSplit(h.Trace, h.Viewport)
	split.Offset = 0.5
	h.Content = container.NewBorder(toolbar, footer, nil, nil, split)
	return h
}

// RunApp opens the host window and blocks until it is closed.
func RunApp(s *state.Session, sw *display.SoftwareBackend, shareLink string, size fyne.Size) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PolyBoard")
	myWindow.Resize(size)

	h := NewHost(myWindow, s, sw, shareLink)
	myWindow.SetContent(h.Content)
	myWindow.ShowAndRun()
}

// Viewer is a window that only shows frames received from a host.
type Viewer struct {
	Viewport *Viewport
	status   *widget.Label
	Content  fyne.CanvasObject
}

func NewViewer(sw *display.SoftwareBackend) *Viewer {
	v := &Viewer{
		Viewport: NewViewport(),
		status:   widget.NewLabel("Connecting..."),
	}
	sw.OnFrame = v.Viewport.ShowImage
	v.Content = container.NewBorder(nil, v.status, nil, nil, v.Viewport)
	return v
}

// SetStatus is safe to call from any goroutine.
func (v *Viewer) SetStatus(text string) {
	fyne.Do(func() { v.status.SetText(text) })
}

// RunViewer opens the viewer window, runs connect in the background and
// blocks until the window is closed.
func RunViewer(sw *display.SoftwareBackend, size fyne.Size, connect func(*Viewer)) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PolyBoard viewer")
	myWindow.Resize(size)

	v := NewViewer(sw)
	myWindow.SetContent(v.Content)
	go connect(v)
	myWindow.ShowAndRun()
}
