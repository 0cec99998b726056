// Package profiler serves net/http/pprof endpoints on the loopback
// interface while the board runs.
package profiler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/logging"
)

const shutdownGrace = 2 * time.Second

// Server exposes the pprof handlers. The zero port asks the kernel for a free
// one; Addr reports the bound address once Start returns.
type Server struct {
	http *http.Server
	port int
	addr string
	log  zerolog.Logger

	stopOnce sync.Once
	stopErr  error
}

// New creates a server for the given port.
func New(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	for name, h := range map[string]http.HandlerFunc{
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
	} {
		mux.HandleFunc("/debug/pprof/"+name, h)
	}

	return &Server{
		http: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		port: port,
		log:  logging.Component("profiler"),
	}
}

// Start binds 127.0.0.1 and serves in the background until Shutdown is
// called or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("profiler listen: %w", err)
	}
	s.addr = ln.Addr().String()
	s.log.Info().Str("addr", s.addr).Msg("profiler listening")

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("profiler stopped serving")
		}
	}()

	context.AfterFunc(ctx, func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = s.Shutdown(stopCtx)
	})
	return nil
}

// Addr returns the listening address, or "" before Start.
func (s *Server) Addr() string {
	return s.addr
}

// Shutdown stops the server. Only the first call does any work; later calls
// return its result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.log.Info().Msg("profiler shutting down")
		s.stopErr = s.http.Shutdown(ctx)
	})
	return s.stopErr
}
