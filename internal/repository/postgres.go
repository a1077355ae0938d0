package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"market-insight-api/internal/models"
)

// Repository implements store and population persistence on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return classify(fmt.Errorf("repository: ping failed: %w", err))
	}
	return nil
}

// syncLockKey identifies the store sync lease among advisory locks.
const syncLockKey int64 = 0x53544f5245 // "STORE"

// AcquireSyncLock takes the cluster-wide store sync lease. The returned
// function releases it. models.ErrSyncInProgress is returned when another
// process holds the lease.
func (r *Repository) AcquireSyncLock(ctx context.Context) (func(), error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to acquire connection: %w", err))
	}

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", syncLockKey).Scan(&locked); err != nil {
		conn.Release()
		return nil, classify(fmt.Errorf("repository: failed to take sync lock: %w", err))
	}
	if !locked {
		conn.Release()
		return nil, models.ErrSyncInProgress
	}

	return func() {
		// the lock is session scoped, so it must be released on the same connection
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", syncLockKey); err != nil {
			conn.Conn().Close(context.Background())
		}
		conn.Release()
	}, nil
}

// classify marks connection-level failures with models.ErrStorageUnavailable.
func classify(err error) error {
	if err == nil || !isConnectionError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
}

func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08: connection exception, 53: insufficient resources, 57P0x: operator intervention
		switch {
		case len(pgErr.Code) >= 2 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "53"):
			return true
		case pgErr.Code == "57P01" || pgErr.Code == "57P02" || pgErr.Code == "57P03":
			return true
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
