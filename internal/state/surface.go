package state

// Surface describes the drawing canvas: its size, where its top-left corner
// sits in page space, and how far the page is scrolled.
type Surface struct {
	Width  float32
	Height float32
	Origin Point
	Scroll Point
}

// Local converts a pointer event into surface-local coordinates.
func (s Surface) Local(ev PointerEvent) Point {
	if ev.HasOffset {
		return ev.Offset
	}
	page := ev.Page
	if !ev.HasPage {
		page = Point{X: ev.Client.X + s.Scroll.X, Y: ev.Client.Y + s.Scroll.Y}
	}
	return Point{X: page.X - s.Origin.X, Y: page.Y - s.Origin.Y}
}

// Normalize scales x by width and y by height into a fresh buffer.
func Normalize(vertices []float32, width, height float32) ([]float32, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySurface
	}
	out := make([]float32, len(vertices))
	for i, v := range vertices {
		d := width
		if i%2 == 1 {
			d = height
		}
		out[i] = v / d
	}
	return out, nil
}
