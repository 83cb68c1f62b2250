// Package server exposes hand ranking over a websocket JSON protocol.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Config holds the limits the server enforces
type Config struct {
	// MaxHands caps the hands accepted in a single request
	MaxHands int
	// Workers caps goroutines used for a showdown, 0 means one per hand
	Workers int
	// PingInterval is the keepalive period for idle connections
	PingInterval time.Duration
}

// DefaultConfig returns the limits used when none are configured
func DefaultConfig() Config {
	return Config{
		MaxHands:     64,
		PingInterval: 54 * time.Second,
	}
}

// Server represents the WebSocket server
type Server struct {
	cfg         Config
	upgrader    websocket.Upgrader
	connections map[*Connection]struct{}
	logger      *log.Logger
	clock       quartz.Clock
	mu          sync.RWMutex
	httpServer  *http.Server
	closed      bool
}

// NewServer creates a new WebSocket server. Zero fields in cfg take their
// DefaultConfig values.
func NewServer(logger *log.Logger, clock quartz.Clock, cfg Config) *Server {
	defaults := DefaultConfig()
	if cfg.MaxHands <= 0 {
		cfg.MaxHands = defaults.MaxHands
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaults.PingInterval
	}

	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]struct{}),
		logger:      logger.WithPrefix("server"),
		clock:       clock,
	}
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Serve accepts connections on l until Shutdown is called, returning
// http.ErrServerClosed after a clean shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = l.Close()
		return http.ErrServerClosed
	}
	if s.httpServer != nil {
		s.mu.Unlock()
		return errors.New("server already started")
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", l.Addr().String(), "maxHands", s.cfg.MaxHands)
	return httpServer.Serve(l)
}

// Shutdown closes every open connection and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return nil
	}
	s.logger.Info("Shutting down")
	return httpServer.Shutdown(ctx)
}

// ConnectionCount returns the number of open websocket connections
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "conn", conn.id, "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "conn", conn.id, "total", total)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s)
	s.register(client)
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.unregister(client)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
