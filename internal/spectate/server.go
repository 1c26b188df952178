// Package spectate exposes the core's framebuffer and serial output to
// networked observers over a websocket, the concrete realization of
// spec.md's "serial-output observation points" and frame-completion
// boundary. Grounded on the teacher's pkg/display/web hub/client pair,
// stripped of the multiplayer input-forwarding and per-client latency
// tracking that package carries (this core has no player-upgrade
// concept; a spectator only ever receives).
package spectate

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Message kinds, sent as the first byte of every broadcast frame.
const (
	KindFrame  byte = 1
	KindSerial byte = 2
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 64,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server fans frame and serial updates out to connected spectators.
// One Server serves one System; the host constructs it alongside
// gbcore.New and feeds it completed frames and serial bytes as they
// occur.
type Server struct {
	mu      sync.Mutex
	clients map[*client]bool

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

// NewServer returns a Server with no connected clients. Call Run in
// its own goroutine before serving HTTP requests through Handler.
func NewServer() *Server {
	return &Server{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run drains the registration and broadcast channels until stop is
// closed. It must run in its own goroutine.
func (s *Server) Run(stop <-chan struct{}) {
	for {
		select {
		case c := <-s.register:
			s.mu.Lock()
			s.clients[c] = true
			s.mu.Unlock()
		case c := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
			s.mu.Unlock()
		case msg := <-s.broadcast:
			s.mu.Lock()
			for c := range s.clients {
				select {
				case c.send <- msg:
				default:
					delete(s.clients, c)
					close(c.send)
				}
			}
			s.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// Handler upgrades an incoming request to a websocket connection and
// registers it as a spectator. Mount it at whatever path the host
// chooses, e.g. http.Handle("/spectate", server.Handler()).
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &client{conn: conn, send: make(chan []byte, 8)}
		s.register <- c
		go c.writePump(s)
		go c.readPump(s)
	}
}

// BroadcastFrame pushes an encoded frame (see
// internal/diagnostics.SnapshotPNG) to every connected spectator.
func (s *Server) BroadcastFrame(png []byte) {
	s.broadcast <- encode(KindFrame, png)
}

// BroadcastSerial pushes one SC=0x81 serial byte to every connected
// spectator, matching spec.md §6's "serial output" observation point.
func (s *Server) BroadcastSerial(b byte) {
	s.broadcast <- encode(KindSerial, []byte{b})
}

// encode prefixes payload with its message kind, the same
// single-byte-tag framing the teacher's hub uses for its client
// protocol (pkg/display/web, ClientInfo/ClientStatus/... constants).
func encode(kind byte, payload []byte) []byte {
	msg := make([]byte, 1+len(payload))
	msg[0] = kind
	copy(msg[1:], payload)
	return msg
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump(s *Server) {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			s.unregister <- c
			return
		}
	}
}

// readPump discards spectator input; a spectator is read-only, but
// the read loop still has to run so gorilla/websocket processes
// control frames (ping/pong/close) and detects a dropped connection.
func (c *client) readPump(s *Server) {
	defer func() {
		s.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
