package network

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/jumper/status"
)

type snapshot struct {
	Frame  int64  `json:"frame"`
	Height string `json:"height_text"`
}

func startTestServer(t *testing.T, cfg *Config) (*Spectator, *httptest.Server) {
	t.Helper()
	s := New(cfg)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		srv.Close()
	})
	return s, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSpectatorStream(t *testing.T) {
	s, srv := startTestServer(t, nil)
	conn := dial(t, srv)

	hello := readMessage(t, conn)
	if hello.Type != MsgHello {
		t.Fatalf("first message %q, want hello", hello.Type)
	}
	if s.Clients() != 1 {
		t.Errorf("clients = %d, want 1", s.Clients())
	}

	if err := s.Publish(snapshot{Frame: 3, Height: "42"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != MsgState || msg.Seq != 1 {
		t.Fatalf("got %s seq %d, want state seq 1", msg.Type, msg.Seq)
	}
	var got snapshot
	if err := json.Unmarshal(msg.Payload, &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.Frame != 3 || got.Height != "42" {
		t.Errorf("payload = %+v", got)
	}
}

func TestLateJoinerGetsLatest(t *testing.T) {
	s, srv := startTestServer(t, nil)
	s.Publish(snapshot{Frame: 1})
	s.Publish(snapshot{Frame: 2})

	conn := dial(t, srv)
	readMessage(t, conn)
	msg := readMessage(t, conn)

	var got snapshot
	json.Unmarshal(msg.Payload, &got)
	if msg.Seq != 2 || got.Frame != 2 {
		t.Errorf("replayed seq %d frame %d, want 2/2", msg.Seq, got.Frame)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	s, srv := startTestServer(t, nil)
	conn := dial(t, srv)
	readMessage(t, conn)

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	waitFor(t, func() bool { return s.Clients() == 0 })
}

func TestMaxPeers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	_, srv := startTestServer(t, cfg)

	first := dial(t, srv)
	readMessage(t, first)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("second spectator accepted over the limit")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("response = %v, want 503", resp)
	}
}

func TestStateEndpoint(t *testing.T) {
	s, srv := startTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/state")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status before publish = %d, want 204", resp.StatusCode)
	}

	s.Publish(snapshot{Frame: 9, Height: "7"})
	resp, err = http.Get(srv.URL + "/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var got snapshot
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body %q: %v", body, err)
	}
	if got.Frame != 9 || got.Height != "7" {
		t.Errorf("state = %+v", got)
	}
}

func TestStatusEndpoint(t *testing.T) {
	s, srv := startTestServer(t, nil)
	reg := status.NewRegistry()
	reg.Inc(status.Respawns)
	s.SetStatus(reg)
	s.Publish(snapshot{})

	httpResp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer httpResp.Body.Close()

	var resp statusResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Seq != 1 || resp.Clients != 0 {
		t.Errorf("status = %+v", resp)
	}
	if resp.Game == nil || resp.Game.Ints[status.Respawns] != 1 {
		t.Errorf("game counters = %+v", resp.Game)
	}
}

func TestPublishRejectsUnencodable(t *testing.T) {
	s := New(nil)
	if err := s.Publish(func() {}); err == nil {
		t.Error("expected marshal error")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	s := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, addr) }()

	waitFor(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
