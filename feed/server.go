package feed

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/snek/core"
)

// Server exposes a Hub at /ws
type Server struct {
	hub      *Hub
	http     *http.Server
	listener net.Listener
}

// NewServer creates a server for hub on addr, e.g. ":8080"
func NewServer(addr string, hub *Hub) *Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	return &Server{
		hub: hub,
		http: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start binds the address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	log.Printf("[feed] serving snapshots on ws://%s/ws", ln.Addr())

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[feed] serve: %v", err)
		}
	})
	return nil
}

// Addr returns the bound address, valid after Start
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes subscribers and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	s.hub.Close()
	return s.http.Shutdown(ctx)
}
