package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type dialect struct {
	driver      string
	schema      string
	selectQuery string
	upsertQuery string
	deleteQuery string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: `CREATE TABLE IF NOT EXISTS cache_entries (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	selectQuery: "SELECT value FROM cache_entries WHERE key = ?",
	upsertQuery: "INSERT INTO cache_entries (key, value, updated_at) VALUES (?, ?, ?) " +
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
	deleteQuery: "DELETE FROM cache_entries WHERE key = ?",
}

var postgresDialect = dialect{
	driver: "postgres",
	schema: `CREATE TABLE IF NOT EXISTS cache_entries (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	selectQuery: "SELECT value FROM cache_entries WHERE key = $1",
	upsertQuery: "INSERT INTO cache_entries (key, value, updated_at) VALUES ($1, $2, $3) " +
		"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
	deleteQuery: "DELETE FROM cache_entries WHERE key = $1",
}

// Storage is a SQL based cache storage. SQLite and PostgreSQL share the same table layout.
type Storage struct {
	db      *sql.DB
	dialect dialect
}

var _ interfaces.CacheStorage = (*Storage)(nil)

// NewSQLite opens (or creates) a SQLite database file and prepares cache table
func NewSQLite(ctx context.Context, path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, goerr.Wrap(err, "failed to create cache directory", goerr.V("path", path))
		}
	}

	return open(ctx, sqliteDialect, path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
}

// NewPostgres connects to PostgreSQL with the DSN and prepares cache table
func NewPostgres(ctx context.Context, dsn string) (*Storage, error) {
	return open(ctx, postgresDialect, dsn)
}

func open(ctx context.Context, d dialect, dsn string) (*Storage, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("driver", d.driver))
	}

	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to initialize cache table", goerr.V("driver", d.driver))
	}

	logging.From(ctx).Debug("cache database opened", "driver", d.driver)
	return &Storage{db: db, dialect: d}, nil
}

func (x *Storage) Close() error {
	return x.db.Close()
}

func (x *Storage) Get(ctx context.Context, key types.CacheKey) ([]byte, error) {
	var value []byte
	err := x.db.QueryRowContext(ctx, x.dialect.selectQuery, key.String()).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "cache entry not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get cache entry", goerr.V("key", key))
	}
	return value, nil
}

func (x *Storage) Put(ctx context.Context, key types.CacheKey, value []byte) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}
	if value == nil {
		value = []byte{}
	}

	now := logging.CtxTime(ctx).UnixMilli()
	if _, err := x.db.ExecContext(ctx, x.dialect.upsertQuery, key.String(), value, now); err != nil {
		return goerr.Wrap(err, "failed to put cache entry", goerr.V("key", key))
	}
	return nil
}

func (x *Storage) Delete(ctx context.Context, key types.CacheKey) error {
	if _, err := x.db.ExecContext(ctx, x.dialect.deleteQuery, key.String()); err != nil {
		return goerr.Wrap(err, "failed to delete cache entry", goerr.V("key", key))
	}
	return nil
}
