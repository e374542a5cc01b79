// Package app provides the dependency injection container assembling the signup service.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/allisson/signup/internal/auth/service"
	"github.com/allisson/signup/internal/config"
	"github.com/allisson/signup/internal/database"
	"github.com/allisson/signup/internal/http"
	"github.com/allisson/signup/internal/metrics"
	"github.com/allisson/signup/internal/notification"
	outboxUsecase "github.com/allisson/signup/internal/outbox/usecase"
	participantUsecase "github.com/allisson/signup/internal/participant/usecase"
	paymentUsecase "github.com/allisson/signup/internal/payment/usecase"
	tokenUsecase "github.com/allisson/signup/internal/token/usecase"
)

// Container holds all application dependencies. Components are created on first access.
type Container struct {
	config *config.Config

	// ctx bounds background goroutines started by components; Shutdown cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Token and access guard
	tokenUseCase tokenUsecase.TokenUseCase
	guard        authService.Guard

	// Participants
	participantRepo    participantUsecase.ParticipantRepository
	participantUseCase participantUsecase.ParticipantUseCase

	// Payment
	paymentUseCase paymentUsecase.PaymentUseCase

	// Outbox and notifications
	outboxRepo     outboxUsecase.OutboxEventRepository
	sender         notification.Sender
	eventProcessor outboxUsecase.EventProcessor
	outboxUseCase  outboxUsecase.OutboxUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                     sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	tokenUseCaseInit       sync.Once
	guardInit              sync.Once
	participantRepoInit    sync.Once
	participantUseCaseInit sync.Once
	paymentUseCaseInit     sync.Once
	outboxRepoInit         sync.Once
	senderInit             sync.Once
	eventProcessorInit     sync.Once
	outboxUseCaseInit      sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured for the log level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		var err error
		c.db, err = c.initDB()
		c.storeInitError("db", err)
	})
	if err := c.initError("db"); err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.storeInitError("txManager", fmt.Errorf("failed to get database for tx manager: %w", err))
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if err := c.initError("txManager"); err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus-backed provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		var err error
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.storeInitError("metricsProvider", fmt.Errorf("failed to create metrics provider: %w", err))
		}
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.storeInitError("businessMetrics", err)
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.storeInitError("businessMetrics", fmt.Errorf("failed to create business metrics: %w", err))
		}
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with every route wired.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		var err error
		c.httpServer, err = c.initHTTPServer()
		c.storeInitError("httpServer", err)
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the server exposing /metrics on the metrics port.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.storeInitError("metricsServer", err)
			return
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource. It is safe to call on an unused container.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) storeInitError(name string, err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates a JSON logger writing to stdout.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	handlers, err := c.httpHandlers()
	if err != nil {
		return nil, err
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	if err := server.SetupRouter(c.ctx, c.config, handlers, c.Guard(), provider); err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	return server, nil
}
