package server

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
	timeouts   Timeouts
}

// Timeouts tunes the underlying *http.Server. Zero fields fall back to the defaults below.
type Timeouts struct {
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// New returns a Server that applies t to every listener it starts.
func New(t Timeouts) *Server {
	return &Server{timeouts: t.withDefaults()}
}

func (t Timeouts) withDefaults() Timeouts {
	if t.ReadHeader <= 0 {
		t.ReadHeader = readHeaderTimeout
	}
	if t.Write <= 0 {
		t.Write = writeTimeout
	}
	if t.Idle <= 0 {
		t.Idle = idleTimeout
	}
	return t
}

// newHTTPServer builds a configured *http.Server for the given address and handler.
func newHTTPServer(addr string, handler http.Handler, t Timeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: t.ReadHeader,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}
}

// normalizeAddr ensures the provided port is a valid address (accepts "8000" or ":8000").
func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Run starts the HTTP server on the given port and blocks until it stops.
// After Shutdown it returns http.ErrServerClosed.
func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = newHTTPServer(normalizeAddr(port), handler, s.timeouts.withDefaults())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
