package state

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float32{0, 0, 200, 0, 200, 100, 0, 100}, 200, 100)
	if err != nil {
		t.Fatalf("Normalize() err = %v", err)
	}
	want := []float32{0, 0, 1, 0, 1, 1, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeEmptySurface(t *testing.T) {
	if _, err := Normalize([]float32{1, 1}, 0, 100); !errors.Is(err, ErrEmptySurface) {
		t.Fatalf("Normalize() err = %v, want %v", err, ErrEmptySurface)
	}
}

func TestSurfaceLocal(t *testing.T) {
	s := Surface{Origin: Point{X: 30, Y: 40}, Scroll: Point{X: 0, Y: 100}}
	tests := []struct {
		name string
		ev   PointerEvent
		want Point
	}{
		{"offset wins", PointerEvent{Offset: Point{X: 7, Y: 8}, HasOffset: true, Page: Point{X: 999, Y: 999}, HasPage: true}, Point{X: 7, Y: 8}},
		{"page minus origin", PointerEvent{Page: Point{X: 130, Y: 140}, HasPage: true}, Point{X: 100, Y: 100}},
		{"client plus scroll", PointerEvent{Client: Point{X: 130, Y: 40}}, Point{X: 100, Y: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Local(tc.ev); got != tc.want {
				t.Fatalf("Local() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	got := Bounds([]float32{10, 20, 50, 5, 30, 60})
	want := Rect{X: 10, Y: 5, Width: 40, Height: 55}
	if got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	if !Bounds(nil).Empty() {
		t.Fatalf("Bounds(nil) not empty")
	}
}
