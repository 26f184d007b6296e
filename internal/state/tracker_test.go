package state

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestTrackerClosesNearStart(t *testing.T) {
	tr := NewTracker(DefaultTolerance)

	if tr.Click(Point{X: 100, Y: 100}) {
		t.Fatalf("Click() closed on the first point")
	}
	if got, want := tr.Vertices(), []float32{100, 100}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v, want %v", got, want)
	}

	if !tr.Click(Point{X: 105, Y: 95}) {
		t.Fatalf("Click() = false, want true")
	}
	if got, want := tr.Vertices(), []float32{100, 100, 100, 100}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v, want %v", got, want)
	}
	if !tr.Finished() {
		t.Fatalf("Finished() = false, want true")
	}
}

func TestTrackerOpenSquare(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	for _, p := range []Point{{0, 0}, {50, 0}, {50, 50}, {0, 50}} {
		if tr.Click(p) {
			t.Fatalf("Click(%v) closed the shape", p)
		}
	}
	if tr.Finished() {
		t.Fatalf("Finished() = true, want false")
	}
	want := []float32{0, 0, 50, 0, 50, 50, 0, 50}
	if got := tr.Vertices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v, want %v", got, want)
	}
}

func TestTrackerToleranceIsPerAxisAndStrict(t *testing.T) {
	tests := []struct {
		name  string
		click Point
		want  bool
	}{
		{"inside both axes", Point{X: 19, Y: -19}, true},
		{"on the x boundary", Point{X: 20, Y: 0}, false},
		{"outside y", Point{X: 0, Y: 25}, false},
		// Per axis, not radial: (19,19) is ~26.9 away but still closes.
		{"diagonal corner", Point{X: 19, Y: 19}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker(20)
			tr.Click(Point{})
			if got := tr.Click(tc.click); got != tc.want {
				t.Fatalf("Click(%v) = %v, want %v", tc.click, got, tc.want)
			}
		})
	}
}

func TestTrackerClickAfterCloseReopens(t *testing.T) {
	tr := NewTracker(20)
	tr.Click(Point{X: 10, Y: 10})
	tr.Click(Point{X: 100, Y: 10})
	tr.Click(Point{X: 12, Y: 8})
	if !tr.Finished() {
		t.Fatalf("Finished() = false after closing click")
	}
	tr.Click(Point{X: 300, Y: 300})
	if tr.Finished() {
		t.Fatalf("Finished() = true after a further click, want false")
	}
	if got := tr.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
}

func TestTrackerEvenLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tr := NewTracker(20)
	for i := 0; i < 500; i++ {
		before := len(tr.Vertices())
		closed := tr.Click(Point{X: float32(r.Intn(200)), Y: float32(r.Intn(200))})
		v := tr.Vertices()
		if len(v)%2 != 0 {
			t.Fatalf("len(Vertices()) = %d, want even", len(v))
		}
		if len(v) != before+2 {
			t.Fatalf("len(Vertices()) = %d, want %d", len(v), before+2)
		}
		if closed && (v[len(v)-2] != v[0] || v[len(v)-1] != v[1]) {
			t.Fatalf("closed shape ends at (%v,%v), want (%v,%v)", v[len(v)-2], v[len(v)-1], v[0], v[1])
		}
	}
}

func TestTrackerPreview(t *testing.T) {
	tr := NewTracker(20)
	if got := tr.Preview(); got != nil {
		t.Fatalf("Preview() = %v before any click, want nil", got)
	}
	tr.PointerMove(Point{X: 5, Y: 5})
	tr.Click(Point{X: 0, Y: 0})
	tr.Click(Point{X: 100, Y: 0})
	tr.PointerMove(Point{X: 100, Y: 100})

	want := []Point{{0, 0}, {100, 0}, {100, 100}}
	if got := tr.Preview(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Preview() = %v, want %v", got, want)
	}

	tr.Click(Point{X: 3, Y: 3})
	want = []Point{{0, 0}, {100, 0}, {0, 0}}
	if got := tr.Preview(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Preview() after close = %v, want %v", got, want)
	}
}

func TestTrackerCloseZone(t *testing.T) {
	tr := NewTracker(20)
	if _, ok := tr.CloseZone(); ok {
		t.Fatalf("CloseZone() ok = true before first click")
	}
	tr.Click(Point{X: 50, Y: 50})
	zone, ok := tr.CloseZone()
	if !ok {
		t.Fatalf("CloseZone() ok = false")
	}
	if !zone.Contains(Point{X: 65, Y: 40}) {
		t.Fatalf("zone %v does not contain (65,40)", zone)
	}
	if zone.Contains(Point{X: 71, Y: 50}) {
		t.Fatalf("zone %v contains (71,50)", zone)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(20)
	tr.Click(Point{X: 1, Y: 1})
	tr.Click(Point{X: 2, Y: 2})
	tr.Reset()
	if tr.Len() != 0 || tr.Finished() {
		t.Fatalf("after Reset() Len() = %d Finished() = %v", tr.Len(), tr.Finished())
	}
	if tr.Click(Point{X: 1, Y: 1}) {
		t.Fatalf("first click after Reset() closed the shape")
	}
}
