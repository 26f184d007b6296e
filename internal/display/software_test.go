package display

import (
	"image"
	"testing"

	"PolyBoard/internal/state"
)

func TestSoftwareBackendFillsStrip(t *testing.T) {
	b := NewSoftwareBackend(64, 64, 1)
	var got image.Image
	b.OnFrame = func(img image.Image) { got = img }

	square := state.Frame{Vertices: []float32{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}}
	if err := b.Render(square); err != nil {
		t.Fatalf("Render() err = %v", err)
	}
	if got == nil || b.Image() != got {
		t.Fatalf("OnFrame and Image() disagree")
	}

	bg := got.At(0, 0)
	center := got.At(32, 32)
	if center == bg {
		t.Fatalf("center pixel %v matches background, want filled", center)
	}
}

func TestSoftwareBackendSupersample(t *testing.T) {
	b := NewSoftwareBackend(40, 30, 3)
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() err = %v", err)
	}
	if got := b.Image().Bounds(); got.Dx() != 40 || got.Dy() != 30 {
		t.Fatalf("Image().Bounds() = %v, want 40x30", got)
	}
}

func TestSoftwareBackendDegenerateStrip(t *testing.T) {
	b := NewSoftwareBackend(16, 16, 1)
	if err := b.Render(state.Frame{Vertices: []float32{0.5, 0.5, 0.5, 0.5}}); err != nil {
		t.Fatalf("Render() err = %v", err)
	}
	img := b.Image()
	if img.At(8, 8) != img.At(0, 0) {
		t.Fatalf("degenerate strip drew pixels")
	}
}
