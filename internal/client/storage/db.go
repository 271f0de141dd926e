package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/migrations"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/filex"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const (
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Options selects and addresses a backend. Only the fields of the chosen
// driver are read.
type Options struct {
	Driver string

	// sqlite
	Path string

	// redis
	RedisAddr string
	RedisHash string

	// postgres
	PostgresDSN string
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded SQLite migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}

// RunPostgresMigrations applies the embedded Postgres migrations to db.
func RunPostgresMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "pgx", migrations.PostgresDir)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}

// InitDatabase opens the SQLite file at dsn, creating its directory when
// needed, and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitPostgres migrates the database at dsn through database/sql, which is
// what goose drives.
func InitPostgres(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return RunPostgresMigrations(ctx, db)
}

// Open returns the backend named by opts.Driver. An empty driver means
// sqlite.
func Open(ctx context.Context, opts Options) (kv.Backend, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		db, err := InitDatabase(ctx, opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store %s: %w", opts.Path, err)
		}
		return kv.NewSQLiteStore(db), nil

	case DriverMemory:
		return kv.NewMemoryStore(), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", opts.RedisAddr, err)
		}
		return kv.NewRedisStore(client, opts.RedisHash), nil

	case DriverPostgres:
		if err := InitPostgres(ctx, opts.PostgresDSN); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres store: %w", err)
		}
		pool, err := pgxpool.New(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return kv.NewPostgresStore(pool), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
}
