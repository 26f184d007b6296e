package state

import "errors"

// Point is a position in surface-local pixels.
type Point struct{ X, Y float32 }

// PointerEvent carries the coordinates a drawing surface reports for a pointer.
// Offset is relative to the surface and is preferred when HasOffset is set.
type PointerEvent struct {
	Offset    Point
	HasOffset bool
	Page      Point
	HasPage   bool
	Client    Point
}

type FrameType string

const (
	FrameRender FrameType = "frame"
	FrameClear  FrameType = "clear"
)

// Frame is a normalized vertex buffer stamped by the session that produced it.
type Frame struct {
	Type     FrameType `json:"type"`
	Site     string    `json:"site"`
	Seq      uint64    `json:"seq"`
	Width    float32   `json:"width,omitempty"`
	Height   float32   `json:"height,omitempty"`
	Vertices []float32 `json:"vertices,omitempty"`
}

var ErrEmptySurface = errors.New("surface has no area")
