package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository/firestore"
	"github.com/m-mizutani/repopeek/pkg/repository/memory"
	"github.com/m-mizutani/repopeek/pkg/repository/sqldb"
	"github.com/m-mizutani/repopeek/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

const (
	StorageMemory    = "memory"
	StorageSQLite    = "sqlite"
	StoragePostgres  = "postgres"
	StorageFirestore = "firestore"
)

type Storage struct {
	driver     string
	path       string
	dsn        string `masq:"secret"`
	projectID  string
	databaseID string
	collection string
	// service account to impersonate for Firestore
	serviceAccount string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cache-driver",
			Usage:       "Cache backend [memory|sqlite|postgres|firestore]",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_CACHE_DRIVER"),
			Value:       StorageSQLite,
			Destination: &x.driver,
		},
		&cli.StringFlag{
			Name:        "cache-path",
			Usage:       "SQLite database file (default: <user cache dir>/repopeek/cache.db)",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_CACHE_PATH"),
			Destination: &x.path,
		},
		&cli.StringFlag{
			Name:        "cache-dsn",
			Usage:       "PostgreSQL DSN",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_CACHE_DSN"),
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection of cache documents",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_FIRESTORE_COLLECTION"),
			Value:       "repopeek_cache",
			Destination: &x.collection,
		},
		&cli.StringFlag{
			Name:        "firestore-impersonate",
			Usage:       "Service account email to impersonate for Firestore",
			Category:    "Cache",
			Sources:     cli.EnvVars("REPOPEEK_FIRESTORE_IMPERSONATE"),
			Destination: &x.serviceAccount,
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", x.driver),
		slog.String("path", x.path),
		slog.Int("dsn.len", len(x.dsn)),
		slog.String("projectID", x.projectID),
		slog.String("databaseID", x.databaseID),
		slog.String("collection", x.collection),
		slog.String("impersonate", x.serviceAccount),
	)
}

func defaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user cache directory")
	}
	return filepath.Join(dir, "repopeek", "cache.db"), nil
}

// New opens cache backend. Returned function closes the backend and must be called by caller.
func (x *Storage) New(ctx context.Context) (interfaces.CacheStorage, func(), error) {
	nop := func() {}

	switch x.driver {
	case StorageMemory:
		return memory.New(), nop, nil

	case StorageSQLite, "":
		path := x.path
		if path == "" {
			p, err := defaultCachePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		db, err := sqldb.NewSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { safe.Close(db) }, nil

	case StoragePostgres:
		if x.dsn == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "cache-dsn is required for postgres")
		}
		db, err := sqldb.NewPostgres(ctx, x.dsn)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { safe.Close(db) }, nil

	case StorageFirestore:
		if x.projectID == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for firestore")
		}
		options := []firestore.Option{firestore.WithCollection(x.collection)}
		if x.serviceAccount != "" {
			ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
				TargetPrincipal: x.serviceAccount,
				Scopes:          []string{datastoreScope},
			})
			if err != nil {
				return nil, nil, goerr.Wrap(err, "failed to impersonate service account", goerr.V("serviceAccount", x.serviceAccount))
			}
			options = append(options, firestore.WithClientOptions(option.WithTokenSource(ts)))
		}

		fs, err := firestore.New(ctx, x.projectID, x.databaseID, options...)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() { safe.Close(fs) }, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "unknown cache driver", goerr.V("driver", x.driver))
	}
}
