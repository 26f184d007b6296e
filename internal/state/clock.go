package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock stamps outgoing frames with a site id and a monotonic sequence.
type Clock struct {
	site    string
	lamport uint64
}

func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

func (c *Clock) Site() string { return c.site }

func (c *Clock) next() uint64 {
	return atomic.AddUint64(&c.lamport, 1)
}

// Stamp fills in the site and the next sequence number.
func (c *Clock) Stamp(f Frame) Frame {
	f.Seq = c.next()
	f.Site = c.site
	return f
}
