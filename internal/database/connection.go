// internal/database/connection.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/config"
)

// Connection wraps the database connection with helper methods
type Connection struct {
	DB     *sql.DB
	config *config.DatabaseConfig
	logger *zap.Logger
}

// NewConnection creates a new database connection
func NewConnection(cfg *config.Config, logger *zap.Logger) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.GetDatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("dbname", cfg.Database.DBName),
	)

	return &Connection{
		DB:     db,
		config: &cfg.Database,
		logger: logger,
	}, nil
}

// HealthCheck verifies the database connection is alive
func (c *Connection) HealthCheck(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics
func (c *Connection) GetStats() sql.DBStats {
	return c.DB.Stats()
}

// Close closes the database connection
func (c *Connection) Close() error {
	c.logger.Info("closing database connection")
	return c.DB.Close()
}
