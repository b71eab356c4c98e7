// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/config"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/database"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/handler"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/protocol"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/repository"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/routes"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/service"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/transport"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/utils"
)

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.Connection

	printService *service.PrintService
	jobRepo      repository.JobRepository
	wsHandler    *handler.WebSocketHandler

	pollerCancel context.CancelFunc
}

func main() {
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	serviceLogger := utils.NewServiceLogger(logger, cfg.App.Name)
	serviceLogger.LogServiceStart(cfg.App.Version)

	app := &Application{
		config: cfg,
		logger: logger,
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return app, nil
}

// initializeDatabase sets up the database connection and migrations
func (app *Application) initializeDatabase() error {
	db, err := database.NewConnection(app.config, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}
	app.database = db

	if err := database.RunMigrations(db, "migrations", app.logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.logger.Info("Database initialized successfully")
	return nil
}

// initializeServices creates the delivery channel and print service
func (app *Application) initializeServices() error {
	app.jobRepo = repository.NewJobRepository(app.database, app.logger)

	var client *transport.Client
	var channel protocol.Channel

	if app.config.Printer.Channel == "lan" {
		client = transport.NewClient(
			app.config.Printer.Endpoint,
			app.config.Printer.SubmitTimeout,
			app.logger,
		)
	} else {
		var err error
		channel, err = protocol.NewChannel(
			protocol.ChannelType(app.config.Printer.Channel),
			app.config.Printer.ChannelOptions,
			app.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create delivery channel: %w", err)
		}
	}

	app.printService = service.NewPrintService(
		app.jobRepo,
		client,
		channel,
		&app.config.Printer,
		app.logger,
	)

	app.logger.Info("Services initialized successfully",
		zap.String("channel", app.config.Printer.Channel),
		zap.Int("device_width", app.config.Printer.DeviceWidth),
	)
	return nil
}

// initializeServer sets up the HTTP server and routes
func (app *Application) initializeServer() error {
	app.wsHandler = handler.NewWebSocketHandler(app.logger)
	app.printService.SetEventSink(app.wsHandler)

	handlers := &routes.Handlers{
		Print:     handler.NewPrintHandler(app.printService, app.config.Printer.DeviceWidth, app.logger),
		Job:       handler.NewJobHandler(app.printService, app.logger),
		Health:    handler.NewHealthHandler(app.database, app.printService, app.wsHandler, app.config.App.Version, app.logger),
		WebSocket: app.wsHandler,
	}

	router := routes.Setup(app.config, app.logger, handlers)

	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
	)
	return nil
}

// Start runs the server and background services until shutdown
func (app *Application) Start() error {
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	pollerCtx, cancel := context.WithCancel(context.Background())
	app.pollerCancel = cancel
	go app.printService.StartStatusPoller(pollerCtx)

	app.waitForShutdown()
	return nil
}

// waitForShutdown blocks until a shutdown signal arrives
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, app.config.App.Name)
	serviceLogger.LogServiceStop("shutdown signal received")

	if app.pollerCancel != nil {
		app.pollerCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		}
	}

	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}
}
