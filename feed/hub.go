package feed

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/status"
)

const (
	writeWait      = 2 * time.Second
	pongWait       = 30 * time.Second
	pingPeriod     = pongWait * 9 / 10
	clientQueueLen = 4
)

var ErrHubClosed = errors.New("feed hub closed")

// subscriber is one spectator connection
// Frames are queued by the tick goroutine and written by the subscriber's own writer
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
	send chan []byte
	done chan struct{}
	once sync.Once
}

// WriteMessage sends a websocket message guarded by the subscriber's mutex and write deadline
func (s *subscriber) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(messageType, data)
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// Hub streams msgpack-encoded snapshots to websocket spectators
// It is read-only: client messages are discarded
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	latest      []byte
	closed      bool

	upgrader websocket.Upgrader

	statClients *atomic.Int64
	dropped     atomic.Uint64
}

// NewHub creates a hub; reg may be nil
func NewHub(reg *status.Registry) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		statClients: reg.Ints.Get(status.KeyFeedClients),
	}
}

// EncodeSnapshot serializes a snapshot to the wire format
func EncodeSnapshot(snap engine.Snapshot) ([]byte, error) {
	return msgpack.Marshal(&snap)
}

// DecodeSnapshot parses a wire frame
func DecodeSnapshot(data []byte) (engine.Snapshot, error) {
	var snap engine.Snapshot
	err := msgpack.Unmarshal(data, &snap)
	return snap, err
}

// OnTick implements engine.TickListener
// Slow subscribers lose frames instead of stalling the tick goroutine
func (h *Hub) OnTick(_, curr engine.Snapshot) {
	data, err := EncodeSnapshot(curr)
	if err != nil {
		log.Printf("[feed] encode tick %d: %v", curr.Tick, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for s := range h.subscribers {
		select {
		case s.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// ServeHTTP upgrades the request and registers a subscriber
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[feed] upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	s := &subscriber{
		conn: conn,
		send: make(chan []byte, clientQueueLen),
		done: make(chan struct{}),
	}
	if err := h.register(s); err != nil {
		conn.Close()
		return
	}

	core.Go(func() { h.writeLoop(s) })
	core.Go(func() { h.readLoop(s) })
}

func (h *Hub) register(s *subscriber) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.subscribers[s] = struct{}{}
	h.statClients.Store(int64(len(h.subscribers)))

	// Late joiners start from the latest world
	if h.latest != nil {
		s.send <- h.latest
	}
	log.Printf("[feed] subscriber %s joined (%d total)", s.conn.RemoteAddr(), len(h.subscribers))
	return nil
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		h.statClients.Store(int64(len(h.subscribers)))
	}
	h.mu.Unlock()
	s.close()
}

func (h *Hub) writeLoop(s *subscriber) {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	defer h.unregister(s)

	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			if err := s.WriteMessage(websocket.BinaryMessage, data); err != nil {
				log.Printf("[feed] write to %s: %v", s.conn.RemoteAddr(), err)
				return
			}
		case <-ping.C:
			if err := s.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop drains control frames and notices disconnects
func (h *Hub) readLoop(s *subscriber) {
	defer h.unregister(s)

	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Dropped returns the number of frames skipped for slow subscribers
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every subscriber and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		h.unregister(s)
	}
}
