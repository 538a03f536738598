// Package db holds the PostgreSQL connection shared by the repositories.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-budget/backend/config"
)

const (
	connectTimeout = 5 * time.Second
	healthTimeout  = 2 * time.Second
)

// Postgres owns the GORM connection handed to the repositories.
type Postgres struct {
	conn *gorm.DB
}

// Connect opens the configured database, tunes the pool and verifies the
// server answers before returning.
func Connect(cfg *config.DatabaseConfig) (*Postgres, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	cfg.ApplyPool(pool)

	if err := ping(pool, connectTimeout); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Postgres{conn: conn}, nil
}

func ping(pool *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return pool.PingContext(ctx)
}

// DB returns the GORM handle the repositories are built on.
func (p *Postgres) DB() *gorm.DB {
	return p.conn
}

// HealthCheck reports whether the database still answers pings.
func (p *Postgres) HealthCheck() bool {
	pool, err := p.conn.DB()
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	if err := ping(pool, healthTimeout); err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	pool, err := p.conn.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}

// Migrate keeps the schema in step with the given models.
func (p *Postgres) Migrate(models ...any) error {
	if err := p.conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
