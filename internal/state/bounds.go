package state

// Rect is an axis-aligned area on the surface.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Bounds returns the smallest Rect holding every pair in vertices.
func Bounds(vertices []float32) Rect {
	if len(vertices) < 2 {
		return Rect{}
	}
	minX, minY := vertices[0], vertices[1]
	maxX, maxY := minX, minY
	for i := 2; i+1 < len(vertices); i += 2 {
		x, y := vertices[i], vertices[i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Pad grows r by d on every side.
func (r Rect) Pad(d float32) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.X+r.Width &&
		p.Y > r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Empty() bool {
	return r.Width <= 0 && r.Height <= 0
}
