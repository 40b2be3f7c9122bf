// Package transport exposes the local HTTP status surface of the client.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SnapshotSource provides the state served on /status.
type SnapshotSource interface {
	Snapshot() app.Snapshot
}

// StatusHandler serves the controller snapshot as JSON.
type StatusHandler struct {
	source SnapshotSource
	logger *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(source SnapshotSource, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{source: source, logger: logger}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.source.Snapshot(), h.logger)
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports server health.
func Health(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, healthResponse{Status: "HEALTHY"}, logger)
	}
}

func writeJSON(w http.ResponseWriter, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write response failed", zap.Error(err))
	}
}

// NewMux routes /status, /health and /metrics behind a permissive CORS policy.
func NewMux(source SnapshotSource, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/status", NewStatusHandler(source, logger))
	mux.Handle("/health", Health(logger))
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}

// NewServer builds the status HTTP server.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

// Serve runs s until ctx is canceled, then shuts it down.
func Serve(ctx context.Context, s *http.Server, logger *zap.Logger) error {
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the status server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown status server", zap.Error(err))
		}
	}()

	logger.Info("starting status server", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
