// Package server is the HTTP presentation layer: an input form that renders
// the comparison and a JSON API over the same projection engine.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/rpgo/pension-fund-comparator/internal/logger"
)

// Projector runs one comparison. *calculation.ProjectionEngine satisfies it.
type Projector interface {
	Project(ctx context.Context, params domain.InputParameters) (*domain.ComparisonResult, error)
}

// Options tunes the HTTP layer.
type Options struct {
	// MaxHorizonYears caps both horizons; zero disables the cap.
	MaxHorizonYears int
	// RateLimitRPS and RateLimitBurst configure the global token bucket.
	// A non-positive RPS disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
	// Defaults pre-fill the input form.
	Defaults domain.InputParameters
}

// Server serves the form and API.
type Server struct {
	projector Projector
	opts      Options
	limiter   *rate.Limiter
}

// New creates a Server around p.
func New(p Projector, opts Options) *Server {
	s := &Server{projector: p, opts: opts}
	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)
	}
	return s
}

// Routes builds the chi router with all middleware attached.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimitMiddleware)
		r.Get("/", s.handleForm)
		r.Post("/", s.handleFormSubmit)
		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/projections", s.handleProjection)
		})
	})

	return r
}

// NewHTTPServer wraps the router in an http.Server with the usual timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ListenAndServe runs srv until ctx is cancelled, then shuts it down
// gracefully within timeout.
func ListenAndServe(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("server starting", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
