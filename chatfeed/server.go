// Package chatfeed accepts external events over a websocket and
// forwards them to the simulation's reaction queue. A line of chat, a
// notification, anything a companion process wants the pet to react to.
package chatfeed

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// event is the optional JSON envelope for incoming frames. Frames that
// are not JSON are treated as raw text.
type event struct {
	Text string `json:"text"`
}

// Server listens for websocket connections and forwards each received
// event to the sink. The sink must be safe to call from any goroutine.
type Server struct {
	addr     string
	sink     func(string)
	upgrader websocket.Upgrader
	srv      *http.Server
}

// New creates a chatfeed server. Events arrive on ws://addr/feed.
func New(addr string, sink func(string)) *Server {
	s := &Server{
		addr: addr,
		sink: sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.handleFeed)
	s.srv = &http.Server{Addr: addr, Handler: mux}

	return s
}

// Handler returns the HTTP handler, for serving through an existing
// listener in tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start begins listening in a background goroutine.
func (s *Server) Start() {
	go func() {
		slog.Info("chatfeed listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("chatfeed server failed", "error", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight connections.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("chatfeed upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	slog.Info("chatfeed client connected", "remote", r.RemoteAddr)

	for {
		mt, payload, err := conn.ReadMessage()
		if err != nil {
			slog.Info("chatfeed client disconnected", "remote", r.RemoteAddr)
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		text := decodeEvent(payload)
		if text == "" {
			continue
		}
		s.sink(text)
	}
}

// decodeEvent extracts the event text from a frame: the JSON envelope's
// text field when present, the raw frame otherwise.
func decodeEvent(payload []byte) string {
	var ev event
	if err := json.Unmarshal(payload, &ev); err == nil && ev.Text != "" {
		return strings.TrimSpace(ev.Text)
	}
	return strings.TrimSpace(string(payload))
}
