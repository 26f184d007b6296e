package ui

import (
	"image"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PolyBoard/internal/state"
)

var (
	outlineColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	zoneColor    = color.NRGBA{R: 200, G: 60, B: 60, A: 200}
	defaultFill  = color.NRGBA{R: 70, G: 137, B: 102, A: 160}
)

// TraceWidget is the 2D surface the user clicks a polygon onto.
type TraceWidget struct {
	widget.BaseWidget
	session *state.Session

	mu   sync.RWMutex
	fill color.Color

	// OnClosed runs after a click closes the shape.
	OnClosed func()
	// OnClick runs after every click with the vertex count so far.
	OnClick func(vertices int)
}

var _ fyne.Widget = (*TraceWidget)(nil)
var _ fyne.Tappable = (*TraceWidget)(nil)
var _ desktop.Hoverable = (*TraceWidget)(nil)

func NewTraceWidget(s *state.Session) *TraceWidget {
	w := &TraceWidget{session: s, fill: defaultFill}
	w.ExtendBaseWidget(w)
	return w
}

func (w *TraceWidget) SetFill(c color.Color) {
	w.mu.Lock()
	w.fill = c
	w.mu.Unlock()
	w.Refresh()
}

func (w *TraceWidget) Fill() color.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fill
}

// Resize keeps the session's surface size in step with the widget so
// normalization divides by what the user actually sees.
func (w *TraceWidget) Resize(size fyne.Size) {
	w.session.Resize(size.Width, size.Height)
	w.BaseWidget.Resize(size)
}

func (w *TraceWidget) local(e *fyne.PointEvent) state.Point {
	if app := fyne.CurrentApp(); app != nil {
		origin := app.Driver().AbsolutePositionForObject(w)
		w.session.Place(state.Point{X: origin.X, Y: origin.Y}, state.Point{})
	}
	return w.session.Surface().Local(state.PointerEvent{
		Offset:    state.Point{X: e.Position.X, Y: e.Position.Y},
		HasOffset: true,
		Client:    state.Point{X: e.AbsolutePosition.X, Y: e.AbsolutePosition.Y},
	})
}

func (w *TraceWidget) Tapped(e *fyne.PointEvent) {
	p := w.local(e)
	closed := w.session.Tracker.Click(p)
	n := w.session.Tracker.Len()
	if closed {
		log.Printf("[TRACE] shape closed with %d vertices", n)
	}
	w.Refresh()

	if w.OnClick != nil {
		w.OnClick(n)
	}
	if closed && w.OnClosed != nil {
		w.OnClosed()
	}
}

func (w *TraceWidget) MouseMoved(e *desktop.MouseEvent) {
	w.session.Tracker.PointerMove(w.local(&e.PointEvent))
	if !w.session.Tracker.Finished() {
		w.Refresh()
	}
}

func (w *TraceWidget) MouseIn(*desktop.MouseEvent) {}
func (w *TraceWidget) MouseOut()                   {}

// Reset discards the current shape.
func (w *TraceWidget) Reset() {
	w.session.Reset()
	w.Refresh()
}

func (w *TraceWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &traceRenderer{trace: w}
	r.background = canvas.NewRectangle(color.White)
	r.fill = canvas.NewRaster(r.rasterize)
	r.zone = canvas.NewRectangle(color.Transparent)
	r.zone.StrokeColor = zoneColor
	r.zone.StrokeWidth = 1
	r.rebuild()
	return r
}

type traceRenderer struct {
	trace      *TraceWidget
	background *canvas.Rectangle
	fill       *canvas.Raster
	zone       *canvas.Rectangle
	lines      []fyne.CanvasObject
	objects    []fyne.CanvasObject
}

func (r *traceRenderer) rasterize(w, h int) image.Image {
	size := r.trace.Size()
	scale := float32(1)
	if size.Width > 0 {
		scale = float32(w) / size.Width
	}
	return rasterizePreview(r.trace.session.Tracker.Preview(), w, h, scale, r.trace.Fill())
}

// rebuild regenerates the outline segments and the closing-zone marker.
func (r *traceRenderer) rebuild() {
	pts := r.trace.session.Tracker.Preview()

	r.lines = r.lines[:0]
	for i := 1; i < len(pts); i++ {
		seg := canvas.NewLine(outlineColor)
		seg.StrokeWidth = 2
		seg.Position1 = fyne.NewPos(pts[i-1].X, pts[i-1].Y)
		seg.Position2 = fyne.NewPos(pts[i].X, pts[i].Y)
		r.lines = append(r.lines, seg)
	}

	zone, ok := r.trace.session.Tracker.CloseZone()
	if ok && !r.trace.session.Tracker.Finished() && r.trace.session.Tracker.Len() > 1 {
		r.zone.Move(fyne.NewPos(zone.X, zone.Y))
		r.zone.Resize(fyne.NewSize(zone.Width, zone.Height))
		r.zone.Show()
	} else {
		r.zone.Hide()
	}

	r.objects = append([]fyne.CanvasObject{r.background, r.fill, r.zone}, r.lines...)
}

func (r *traceRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *traceRenderer) Refresh() {
	r.rebuild()
	r.fill.Refresh()
	canvas.Refresh(r.trace)
}

func (r *traceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.fill.Resize(size)
}

func (r *traceRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }
func (r *traceRenderer) Destroy()           {}
