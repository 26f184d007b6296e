package state

import (
	"log"
	"sync"
)

// Session owns everything one drawing pass needs. The input surface and the
// display loop share a single *Session.
type Session struct {
	Tracker *Tracker
	Clock   *Clock

	mu      sync.RWMutex
	surface Surface
}

func NewSession(tolerance float32) *Session {
	s := &Session{
		Tracker: NewTracker(tolerance),
		Clock:   NewClock(),
	}
	log.Printf("[SESSION] started %s", s.Clock.Site())
	return s
}

func (s *Session) ID() string { return s.Clock.Site() }

func (s *Session) Surface() Surface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surface
}

func (s *Session) Resize(width, height float32) {
	s.mu.Lock()
	s.surface.Width = width
	s.surface.Height = height
	s.mu.Unlock()
}

// Place records where the surface sits on screen and its scroll offset.
func (s *Session) Place(origin, scroll Point) {
	s.mu.Lock()
	s.surface.Origin = origin
	s.surface.Scroll = scroll
	s.mu.Unlock()
}

// Snapshot returns the finished polygon normalized to the current surface,
// stamped as a render frame. ok is false while the shape is still open.
func (s *Session) Snapshot() (f Frame, ok bool, err error) {
	vertices, finished := s.Tracker.Closed()
	if !finished {
		return Frame{}, false, nil
	}
	surf := s.Surface()
	norm, err := Normalize(vertices, surf.Width, surf.Height)
	if err != nil {
		return Frame{}, false, err
	}
	f = s.Clock.Stamp(Frame{
		Type:     FrameRender,
		Width:    surf.Width,
		Height:   surf.Height,
		Vertices: norm,
	})
	return f, true, nil
}

// Reset starts a new shape within the same session.
func (s *Session) Reset() {
	s.Tracker.Reset()
}
