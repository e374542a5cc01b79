// Package http provides the HTTP servers and route wiring of the signup API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/signup/internal/auth/http"
	authService "github.com/allisson/signup/internal/auth/service"
	"github.com/allisson/signup/internal/config"
	"github.com/allisson/signup/internal/metrics"
	participantHTTP "github.com/allisson/signup/internal/participant/http"
	paymentHTTP "github.com/allisson/signup/internal/payment/http"
	tokenHTTP "github.com/allisson/signup/internal/token/http"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Participant *participantHTTP.ParticipantHandler
	Payment     *paymentHTTP.PaymentHandler
	Token       *tokenHTTP.TokenHandler
}

// NewServer creates a new API server. db is only used by the readiness probe.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with the global middleware chain and all routes.
// ctx bounds background goroutines owned by middleware, such as the rate limiter sweeper.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	guard authService.Guard,
	metricsProvider *metrics.Provider,
) error {
	router := gin.New()

	// nil trusts no proxy, so ClientIP falls back to the TCP peer.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	accessGuard := authHTTP.AccessGuardMiddleware(guard, s.logger)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", handlers.Participant.RegisterHandler)

		participants := v1.Group("/participants", accessGuard)
		{
			participants.GET("", handlers.Participant.ListHandler)
			participants.GET("/:id", handlers.Participant.GetHandler)
		}

		v1.GET("/payment-details", accessGuard, handlers.Payment.DetailsHandler)
		v1.GET("/payment-qr", handlers.Payment.QRHandler)
		v1.GET("/payment-qr-data", handlers.Payment.QRDataHandler)
		v1.POST("/payment-qr-custom", handlers.Payment.CustomQRHandler)
		v1.GET("/payment-health", handlers.Payment.HealthHandler)

		tokens := v1.Group("")
		if cfg.RateLimitEnabled {
			tokens.Use(authHTTP.IPRateLimitMiddleware(
				ctx,
				cfg.RateLimitRequestsPerSec,
				cfg.RateLimitBurst,
				s.logger,
			))
		}
		tokens.POST("/generate-token", handlers.Token.GenerateHandler)
		tokens.POST("/validate-token", handlers.Token.ValidateHandler)
	}

	s.router = router
	return nil
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	databaseStatus := "ok"
	if s.db == nil {
		databaseStatus = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			databaseStatus = "error"
		}
	}

	status, code := "ready", http.StatusOK
	if databaseStatus != "ok" {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": gin.H{"database": databaseStatus},
	})
}
