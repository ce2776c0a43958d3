// Package network serves remote REPL sessions over WebSocket connections,
// adapted from sentra/internal/network/websocket_server.go's connection
// bookkeeping: one REPL session per accepted connection, newline-framed,
// backing the "tinypy serve" subcommand.
package network

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nchodur/tinypy/internal/repl"
)

// Server accepts WebSocket connections on a single HTTP endpoint and runs
// one independent, persistent REPL per connection.
type Server struct {
	addr     string
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*websocket.Conn
	nextID  int
}

// NewServer builds a server that will listen on addr once Serve is called.
func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		clients: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve blocks, accepting WebSocket connections at "/repl" until the
// listener fails or the process is killed.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/repl", s.handleConn)
	log.Printf("tinypy serve: listening on %s/repl", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("tinypy serve: upgrade failed: %v", err)
		return
	}

	id := s.register(conn)
	defer s.unregister(id)
	defer conn.Close()

	stream := &wsStream{conn: conn}
	session := repl.New(stream, stream, false)
	session.Run()
}

func (s *Server) register(conn *websocket.Conn) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("client-%d", s.nextID)
	s.clients[id] = conn
	return id
}

func (s *Server) unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

// ClientCount reports how many REPL sessions are currently connected.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// wsStream adapts a *websocket.Conn's text-message framing to io.Reader and
// io.Writer so a repl.REPL can drive it exactly as it drives stdin/stdout,
// without knowing it is talking to a socket.
type wsStream struct {
	conn *websocket.Conn

	mu      sync.Mutex
	pending []byte
}

func (w *wsStream) Read(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.pending) == 0 {
		_, data, err := w.conn.ReadMessage()
		if err != nil {
			return 0, io.EOF
		}
		w.pending = append(data, '\n')
	}
	n := copy(p, w.pending)
	w.pending = w.pending[n:]
	return n, nil
}

func (w *wsStream) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
