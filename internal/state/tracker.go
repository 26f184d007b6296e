package state

import "sync"

// DefaultTolerance is the per-axis pixel distance that closes a shape.
const DefaultTolerance float32 = 20

// Tracker accumulates clicked vertices and decides when the shape is closed.
type Tracker struct {
	mu         sync.Mutex
	vertices   []float32
	pointer    Point
	hasPointer bool
	finished   bool
	tolerance  float32
}

func NewTracker(tolerance float32) *Tracker {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Tracker{
		vertices:  make([]float32, 0, 16),
		tolerance: tolerance,
	}
}

// PointerMove records the live pointer used for the preview segment.
func (t *Tracker) PointerMove(p Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pointer = p
	t.hasPointer = true
}

// Click appends p and reports whether it closed the shape. A point within
// tolerance of the first vertex on both axes is snapped onto it.
func (t *Tracker) Click(p Point) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.finished = false
	t.vertices = append(t.vertices, p.X, p.Y)

	n := len(t.vertices)
	if n < 4 {
		return false
	}
	if abs(p.X-t.vertices[0]) < t.tolerance && abs(p.Y-t.vertices[1]) < t.tolerance {
		t.vertices[n-2] = t.vertices[0]
		t.vertices[n-1] = t.vertices[1]
		t.finished = true
	}
	return t.finished
}

func (t *Tracker) Finished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

// Vertices returns a copy of the flat x,y list.
func (t *Tracker) Vertices() []float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]float32, len(t.vertices))
	copy(out, t.vertices)
	return out
}

// Closed returns a copy of the vertices together with the completion flag,
// read under one lock so the pair is consistent.
func (t *Tracker) Closed() ([]float32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]float32, len(t.vertices))
	copy(out, t.vertices)
	return out, t.finished
}

// CloseZone is the square around the first vertex in which a click closes
// the shape. ok is false before the first click.
func (t *Tracker) CloseZone() (zone Rect, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.vertices) < 2 {
		return Rect{}, false
	}
	first := Point{X: t.vertices[0], Y: t.vertices[1]}
	return Rect{X: first.X, Y: first.Y}.Pad(t.tolerance), true
}

// Len is the number of recorded vertices, not coordinates.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.vertices) / 2
}

func (t *Tracker) Pointer() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pointer, t.hasPointer
}

func (t *Tracker) Tolerance() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tolerance
}

func (t *Tracker) SetTolerance(tol float32) {
	if tol <= 0 {
		return
	}
	t.mu.Lock()
	t.tolerance = tol
	t.mu.Unlock()
}

// Preview returns the points the in-progress outline passes through: every
// vertex, then the pointer while the shape is still open. It is empty until
// the first click.
func (t *Tracker) Preview() []Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.vertices) < 2 {
		return nil
	}
	pts := make([]Point, 0, len(t.vertices)/2+1)
	for i := 0; i+1 < len(t.vertices); i += 2 {
		pts = append(pts, Point{X: t.vertices[i], Y: t.vertices[i+1]})
	}
	if !t.finished && t.hasPointer {
		pts = append(pts, t.pointer)
	}
	return pts
}

// Reset drops every vertex and clears the completion flag.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vertices = t.vertices[:0]
	t.finished = false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
