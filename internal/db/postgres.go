package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"helping-hands/volunteerhub/internal/logging"
)

const connectAttempts = 10

// ConnectPostgres opens the sqlx pool, retrying while the database comes up.
// maxConns bounds concurrent outstanding queries.
func ConnectPostgres(ctx context.Context, dsn string, maxConns int) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	for i := 0; i < connectAttempts; i++ {
		conn, err = sqlx.ConnectContext(ctx, "postgres", dsn)
		if err == nil {
			conn.SetMaxOpenConns(maxConns)
			conn.SetMaxIdleConns(maxConns)
			conn.SetConnMaxIdleTime(5 * time.Minute)
			return conn, nil
		}
		logging.Warn("Postgres not ready, retrying", "attempt", i+1, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, err)
}
