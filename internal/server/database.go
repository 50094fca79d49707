package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docuflow/invoice-pipeline/gen/ent"
	repo "github.com/docuflow/invoice-pipeline/internal/repository"
)

// ConnectDB establishes the database connection with the pool defaults the
// daemon runs with and returns the Ent client and connection pool.
func ConnectDB(ctx context.Context, dbURL string, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        20,
		MinConns:        5,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, pool, nil
}

// PingDB pings the database to ensure it's responsive
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	return repo.HealthCheck(ctx, pool, timeout, logger)
}

// CloseDB closes the database connections gracefully
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
