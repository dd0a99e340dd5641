package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Server routes analysis requests to the engine. Construct with New; the
// zero value is not usable.
type Server struct {
	cfg     Config
	limiter *ipLimiter
	router  *mux.Router
}

// New builds a routed server from cfg. Analysis routes sit behind the
// per-client limiter; the health probe does not spend budget.
func New(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		limiter: newIPLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst),
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.limiter.middleware)
	api.HandleFunc("/pattern", s.handlePattern).Methods(http.MethodPost)
	api.HandleFunc("/loads", s.handleLoads).Methods(http.MethodPost)

	s.router = r
	return s
}

// Handler returns the routed handler for tests and embedding callers.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on the configured address until ctx is canceled, then drains
// open connections within the shutdown timeout. A listener failure is
// returned immediately.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
