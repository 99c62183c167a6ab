package chatfeed

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/feed"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing feed: %v", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn
}

func TestFeedForwardsTextFrames(t *testing.T) {
	received := make(chan string, 4)
	s := New("", func(text string) { received <- text })
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialFeed(t, srv)
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("nice jump!")); err != nil {
		t.Fatalf("writing frame: %v", err)
	}

	select {
	case got := <-received:
		if got != "nice jump!" {
			t.Errorf("forwarded %q, want %q", got, "nice jump!")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not forwarded")
	}
}

func TestFeedDecodesJSONEnvelope(t *testing.T) {
	received := make(chan string, 4)
	s := New("", func(text string) { received <- text })
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialFeed(t, srv)
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"text":"  hello  "}`)); err != nil {
		t.Fatalf("writing frame: %v", err)
	}

	select {
	case got := <-received:
		if got != "hello" {
			t.Errorf("forwarded %q, want trimmed %q", got, "hello")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not forwarded")
	}
}

func TestFeedDropsEmptyFrames(t *testing.T) {
	received := make(chan string, 4)
	s := New("", func(text string) { received <- text })
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialFeed(t, srv)
	defer conn.Close()

	conn.WriteMessage(websocket.TextMessage, []byte("   "))
	conn.WriteMessage(websocket.TextMessage, []byte("after"))

	select {
	case got := <-received:
		if got != "after" {
			t.Errorf("forwarded %q, want the blank frame dropped", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not forwarded")
	}
}

func TestDecodeEventRawFallback(t *testing.T) {
	if got := decodeEvent([]byte("plain text")); got != "plain text" {
		t.Errorf("decodeEvent = %q, want raw passthrough", got)
	}
	if got := decodeEvent([]byte(`{"text":""}`)); got != `{"text":""}` {
		t.Errorf("decodeEvent = %q, want raw fallback for empty envelope", got)
	}
}
