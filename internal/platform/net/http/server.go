package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"scriptdrill/internal/platform/config"
	"scriptdrill/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// NewServer creates an http server from CORE_API_* style config
// API_ADDR (host:port) wins over API_PORT; opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_ADDR", "")
	if addr == "" {
		addr = cfg.MayPort("API_PORT", ":4000")
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the configured listening address
func (s *Server) Addr() string { return s.addr }

// Run listens until ctx is cancelled, then drains in-flight requests for up to the grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
