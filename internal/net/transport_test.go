package net

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PolyBoard/internal/state"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within 2s")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublisherBroadcastAndReplay(t *testing.T) {
	pub := NewPublisher()
	srv := httptest.NewServer(pub.Handler())
	defer srv.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan state.Frame, 4)
	go Subscribe(ctx, addr, func(f state.Frame) { frames <- f })
	waitFor(t, func() bool { return pub.Peers() == 1 })

	sent := state.Frame{Site: "abc", Seq: 7, Vertices: []float32{0, 0, 1, 0, 0, 1}}
	require.NoError(t, pub.Render(sent))

	select {
	case got := <-frames:
		assert.Equal(t, state.FrameRender, got.Type)
		assert.Equal(t, sent.Vertices, got.Vertices)
		assert.Equal(t, uint64(7), got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame received")
	}

	late := make(chan state.Frame, 1)
	go Subscribe(ctx, addr, func(f state.Frame) { late <- f })
	select {
	case got := <-late:
		assert.Equal(t, "abc", got.Site)
	case <-time.After(2 * time.Second):
		t.Fatalf("late viewer got no replay")
	}

	require.NoError(t, pub.Clear())
	select {
	case got := <-frames:
		assert.Equal(t, state.FrameClear, got.Type)
	case <-time.After(2 * time.Second):
		t.Fatalf("no clear received")
	}
}

func TestSubscribeStopsOnCancel(t *testing.T) {
	pub := NewPublisher()
	srv := httptest.NewServer(pub.Handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Subscribe(ctx, strings.TrimPrefix(srv.URL, "http://"), func(state.Frame) {})
	}()
	waitFor(t, func() bool { return pub.Peers() == 1 })
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatalf("Subscribe() did not return after cancel")
	}
	waitFor(t, func() bool { return pub.Peers() == 0 })
}

func TestSubscribeDialError(t *testing.T) {
	err := Subscribe(context.Background(), "127.0.0.1:1", func(state.Frame) {})
	assert.Error(t, err)
}

func TestEntryAddr(t *testing.T) {
	_, ok := entryAddr(nil)
	assert.False(t, ok)
}
