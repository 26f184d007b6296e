package net

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"PolyBoard/internal/state"
)

// FramesPath is where the publisher accepts viewer connections.
const FramesPath = "/frames"

const writeWait = 2 * time.Second

// Peer is one connected viewer. Writes are serialized per peer.
type Peer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (p *Peer) send(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

// Publisher broadcasts frames to every connected viewer. It is both an
// http.Handler for the viewers and a display backend for the loop.
type Publisher struct {
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[string]*Peer
	last  []byte
}

func NewPublisher() *Publisher {
	return &Publisher{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[string]*Peer),
	}
}

// Handler routes FramesPath to the publisher.
func (pub *Publisher) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(FramesPath, pub)
	return mux
}

func (pub *Publisher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := pub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[PUB] upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	addr := conn.RemoteAddr().String()
	peer := &Peer{conn: conn}

	pub.mu.Lock()
	pub.peers[addr] = peer
	last := pub.last
	pub.mu.Unlock()
	log.Printf("[PUB] viewer connected from %s", addr)

	// A viewer joining after the shape closed still gets it.
	if last != nil {
		if err := peer.send(last); err != nil {
			log.Printf("[PUB] replay to %s failed: %v", addr, err)
		}
	}

	defer pub.remove(addr)
	for {
		// Viewers never talk back; reading only notices the close.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (pub *Publisher) remove(addr string) {
	pub.mu.Lock()
	peer, ok := pub.peers[addr]
	delete(pub.peers, addr)
	pub.mu.Unlock()
	if ok {
		peer.conn.Close()
		log.Printf("[PUB] viewer %s disconnected", addr)
	}
}

// Peers is the number of connected viewers.
func (pub *Publisher) Peers() int {
	pub.mu.RLock()
	defer pub.mu.RUnlock()
	return len(pub.peers)
}

func (pub *Publisher) Render(f state.Frame) error {
	f.Type = state.FrameRender
	return pub.broadcast(f, true)
}

func (pub *Publisher) Clear() error {
	return pub.broadcast(state.Frame{Type: state.FrameClear}, false)
}

func (pub *Publisher) broadcast(f state.Frame, keep bool) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	pub.mu.Lock()
	if keep {
		pub.last = data
	} else {
		pub.last = nil
	}
	peers := make(map[string]*Peer, len(pub.peers))
	for addr, p := range pub.peers {
		peers[addr] = p
	}
	pub.mu.Unlock()

	for addr, p := range peers {
		if err := p.send(data); err != nil {
			log.Printf("[PUB] error sending to %s: %v", addr, err)
			pub.remove(addr)
		}
	}
	return nil
}

// Subscribe connects to a publisher at addr (host:port) and calls fn for
// every frame until ctx is done or the connection drops.
func Subscribe(ctx context.Context, addr string, fn func(state.Frame)) error {
	url := "ws://" + addr + FramesPath
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var f state.Frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read frame: %w", err)
		}
		fn(f)
	}
}
