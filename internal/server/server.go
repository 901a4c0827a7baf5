// Package server serves the resource catalog over HTTP: the HTML page and a
// small JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
	"go.uber.org/zap"
)

// Handler serves pages and API endpoints from a Loader.
type Handler struct {
	Log      *zap.Logger
	Loader   *loader.Loader
	Defaults view.Options

	// ctx bounds background refetches started by POST /api/refetch; request
	// contexts end with the response.
	ctx context.Context
}

// NewHandler returns a handler reading from ld. A nil logger discards logs.
func NewHandler(ld *loader.Loader, defaults view.Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Log:      logger,
		Loader:   ld,
		Defaults: defaults,
		ctx:      context.Background(),
	}
}

// Routes returns the router for every endpoint.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.Log))

	r.Get("/", h.ServePage)
	r.Get("/resources/{id}", h.ServeDetail)
	r.Get("/healthz", h.ServeHealth)

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/resources", h.ServeResources)
		ar.Get("/resources/{id}", h.ServeResource)
		ar.Get("/categories", h.ServeCategories)
		ar.Get("/state", h.ServeState)
		ar.Post("/refetch", h.ServeRefetch)
	})

	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Serve(ctx context.Context, addr string) error {
	h.ctx = ctx
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.Log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		h.Log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
