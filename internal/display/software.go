package display

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"PolyBoard/internal/state"
)

const (
	fovy   = 45
	near   = 0.1
	far    = 100.0
	eyeGap = 2.0
)

var (
	background = fauxgl.HexColor("#20232A")
	shapeColor = fauxgl.HexColor("#468966")
)

// SoftwareBackend rasterises each frame as a triangle strip on the CPU.
type SoftwareBackend struct {
	width, height int
	supersample   int

	// OnFrame, if set, receives every image produced by Render or Clear.
	OnFrame func(image.Image)

	mu   sync.Mutex
	fill color.Color
	last image.Image
}

func NewSoftwareBackend(width, height, supersample int) *SoftwareBackend {
	if supersample < 1 {
		supersample = 1
	}
	return &SoftwareBackend{width: width, height: height, supersample: supersample}
}

// Render draws f.Vertices the way a GL triangle strip would: triangle i uses
// vertices i, i+1 and i+2. Fewer than three vertices draw nothing.
func (b *SoftwareBackend) Render(f state.Frame) error {
	pts := stripPoints(f.Vertices)
	ctx := b.newContext()
	aspect := float64(b.width) / float64(b.height)
	matrix := fauxgl.Translate(fauxgl.V(-0.5, -0.5, -eyeGap)).Perspective(fovy, aspect, near, far)

	col := shapeColor
	b.mu.Lock()
	if b.fill != nil {
		col = fauxgl.MakeColor(b.fill)
	}
	b.mu.Unlock()
	ctx.Shader = fauxgl.NewSolidColorShader(matrix, col)

	triangles := make([]*fauxgl.Triangle, 0, max(len(pts)-2, 0))
	for i := 0; i+2 < len(pts); i++ {
		triangles = append(triangles, fauxgl.NewTriangleForPoints(pts[i], pts[i+1], pts[i+2]))
	}
	ctx.DrawTriangles(triangles)

	b.publish(ctx.Image())
	return nil
}

// SetFill changes the colour of later frames. nil restores the default.
func (b *SoftwareBackend) SetFill(c color.Color) {
	b.mu.Lock()
	b.fill = c
	b.mu.Unlock()
}

// Clear paints an empty viewport.
func (b *SoftwareBackend) Clear() error {
	b.publish(b.newContext().Image())
	return nil
}

// Image returns the last published frame, or nil before the first one.
func (b *SoftwareBackend) Image() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

func (b *SoftwareBackend) newContext() *fauxgl.Context {
	ctx := fauxgl.NewContext(b.width*b.supersample, b.height*b.supersample)
	ctx.ClearColorBufferWith(background)
	ctx.ClearDepthBuffer()
	// Strip winding alternates, so neither face can be culled.
	ctx.Cull = fauxgl.CullNone
	return ctx
}

func (b *SoftwareBackend) publish(img image.Image) {
	if b.supersample > 1 {
		img = resize.Resize(uint(b.width), uint(b.height), img, resize.Bilinear)
	}
	b.mu.Lock()
	b.last = img
	cb := b.OnFrame
	b.mu.Unlock()
	if cb != nil {
		cb(img)
	}
}

// stripPoints lifts normalized surface pairs into GL space. Surface y grows
// downward, GL y grows upward.
func stripPoints(vertices []float32) []fauxgl.Vector {
	pts := make([]fauxgl.Vector, 0, len(vertices)/2)
	for i := 0; i+1 < len(vertices); i += 2 {
		pts = append(pts, fauxgl.V(float64(vertices[i]), 1-float64(vertices[i+1]), 0))
	}
	return pts
}
