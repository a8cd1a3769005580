package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// PoolConfig tunes the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPool is the pool used by the API server.
var DefaultPool = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    25,
	ConnMaxLifetime: 5 * time.Minute,
}

// OpenDB creates the MySQL connection pool for the directory store and
// verifies it with a ping.
func OpenDB(ctx context.Context, dsn string, pool PoolConfig, logger *zap.Logger) (*sql.DB, error) {
	// 1. Normalize the DSN so the store's scanning and affected-row checks hold.
	dsn, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	// 2. Open a new connection pool.
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// 3. Configure the connection pool settings.
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	// 4. Ping the database to verify the connection.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("Database connection pool established",
		zap.Int("maxOpenConns", pool.MaxOpenConns),
		zap.Duration("connMaxLifetime", pool.ConnMaxLifetime))
	return db, nil
}

// NormalizeDSN forces parseTime so DATETIME columns scan into time.Time, and
// clientFoundRows so UPDATE reports matched rows rather than changed rows.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}
