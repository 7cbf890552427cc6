package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"helping-hands/volunteerhub/internal/logging"
)

// Database bundles the sqlx pool used for read models with a GORM handle over
// the same connections, used for writes and transactions.
type Database struct {
	SQL *sqlx.DB
	ORM *gorm.DB
}

// Open connects to Postgres and layers GORM on the sqlx pool.
func Open(ctx context.Context, dsn string, maxConns int) (*Database, error) {
	conn, err := ConnectPostgres(ctx, dsn, maxConns)
	if err != nil {
		return nil, err
	}

	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: conn.DB}), ormConfig(logger.Warn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	logging.Info("Connected to Postgres", "max_conns", maxConns)
	return &Database{SQL: conn, ORM: orm}, nil
}

// OpenSQLite opens a SQLite database, used by tests with ":memory:".
// A single connection keeps every query on the same in-memory database.
func OpenSQLite(dsn string) (*Database, error) {
	orm, err := gorm.Open(sqlite.Open(dsn), ormConfig(logger.Silent))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return &Database{SQL: sqlx.NewDb(sqlDB, "sqlite3"), ORM: orm}, nil
}

func ormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}

// Ping checks the underlying connection.
func (d *Database) Ping(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.SQL.Close()
}
