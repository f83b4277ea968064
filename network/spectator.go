// Package network streams game snapshots to browser spectators over
// WebSocket. The game loop publishes; slow spectators drop frames rather
// than stall the loop.
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/jumper/status"
)

// Spectator is a read-only view server for the running game
type Spectator struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader
	router   chi.Router
	status   *status.Registry

	seq atomic.Uint64

	mu     sync.RWMutex
	latest []byte // Last encoded state message
	state  []byte // Last raw snapshot payload
}

// New creates a spectator server, nil cfg uses DefaultConfig
func New(cfg *Config) *Spectator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Spectator{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.peers.SetHandlers(s.onConnect, s.onDisconnect)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleStatus)
	r.Get("/state", s.handleState)
	r.Get("/ws", s.handleWebSocket)
	s.router = r

	return s
}

// Handler returns the HTTP routes
func (s *Spectator) Handler() http.Handler {
	return s.router
}

// SetStatus exposes game counters on the status route
// Call before serving
func (s *Spectator) SetStatus(r *status.Registry) {
	s.status = r
}

// Clients returns the connected spectator count
func (s *Spectator) Clients() int {
	return s.peers.PeerCount()
}

// Publish marshals v once and queues it for every spectator
// Never blocks on network I/O
func (s *Spectator) Publish(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	data, err := NewStateMessage(s.seq.Add(1), payload).Encode()
	if err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}

	s.mu.Lock()
	s.latest = data
	s.state = payload
	s.mu.Unlock()

	s.peers.Broadcast(data)
	return nil
}

// Serve listens on addr until ctx is cancelled, empty addr uses the config address
func (s *Spectator) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.config.Address
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Spectator server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.peers.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectator serve %s: %w", addr, err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		// Hijacked websocket connections are not tracked by Shutdown
		s.peers.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("spectator shutdown: %w", err)
		}
		<-errCh
		return nil
	}
}

// Close disconnects every spectator
func (s *Spectator) Close() {
	s.peers.Close()
}

type statusResponse struct {
	Clients int              `json:"clients"`
	Seq     uint64           `json:"seq"`
	Game    *status.Snapshot `json:"game,omitempty"`
}

func (s *Spectator) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Clients: s.Clients(),
		Seq:     s.seq.Load(),
	}
	if s.status != nil {
		snap := s.status.Snapshot()
		resp.Game = &snap
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Spectator) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	if state == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(state)
}

func (s *Spectator) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.peers.Full() {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Spectator upgrade: %v", err)
		return
	}
	if _, err := s.peers.AddConnection(conn); err != nil {
		log.Printf("Spectator rejected %s: %v", r.RemoteAddr, err)
	}
}

// onConnect greets the peer and replays the latest frame
func (s *Spectator) onConnect(p *Peer) {
	log.Printf("Spectator %s connected from %s", p.ID, p.Addr)

	hello, err := NewHelloMessage(p.ID)
	if err == nil {
		var data []byte
		if data, err = hello.Encode(); err == nil {
			p.Send(data)
		}
	}
	if err != nil {
		log.Printf("Spectator %s hello: %v", p.ID, err)
	}

	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()
	if latest != nil {
		p.Send(latest)
	}
}

func (s *Spectator) onDisconnect(p *Peer) {
	log.Printf("Spectator %s disconnected", p.ID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Write response: %v", err)
	}
}
