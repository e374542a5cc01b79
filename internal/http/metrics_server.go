package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/signup/internal/metrics"
)

// MetricsServer exposes /metrics on a port separate from the public API.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer. Without a provider every path answers 404.
func NewMetricsServer(host string, port int, logger *slog.Logger, metricsProvider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &MetricsServer{server: server, logger: logger}
}

// GetHandler returns the router serving the scrape endpoint.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks serving scrapes until Shutdown is called.
func (s *MetricsServer) Start(_ context.Context) error {
	return listenAndServe(s.server, s.logger, "metrics server")
}

// Shutdown stops accepting scrapes and waits for in-flight ones.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}

// listenAndServe runs server until it is shut down. A graceful shutdown is not an error.
func listenAndServe(server *http.Server, logger *slog.Logger, name string) error {
	logger.Info("starting "+name, slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s stopped: %w", name, err)
	}
	return nil
}
