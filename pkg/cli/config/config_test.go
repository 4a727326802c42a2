package config_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/cli/config"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
	"github.com/urfave/cli/v3"
)

// parse runs a command with given flags and args so that Destination fields are filled
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestStorage(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		var cfg config.Storage
		parse(t, cfg.Flags(), "--cache-driver", "memory")

		storage, closeFn, err := cfg.New(context.Background())
		gt.NoError(t, err)
		defer closeFn()

		_, err = storage.Get(context.Background(), types.CacheKeyUser)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("sqlite with path", func(t *testing.T) {
		var cfg config.Storage
		path := filepath.Join(t.TempDir(), "cache.db")
		parse(t, cfg.Flags(), "--cache-driver", "sqlite", "--cache-path", path)

		storage, closeFn, err := cfg.New(context.Background())
		gt.NoError(t, err)
		defer closeFn()

		ctx := context.Background()
		gt.NoError(t, storage.Put(ctx, types.CacheKeySettings, []byte(`{}`)))
		got := gt.R1(storage.Get(ctx, types.CacheKeySettings)).NoError(t)
		gt.V(t, string(got)).Equal(`{}`)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		var cfg config.Storage
		parse(t, cfg.Flags(), "--cache-driver", "postgres")

		_, _, err := cfg.New(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("firestore without project", func(t *testing.T) {
		var cfg config.Storage
		parse(t, cfg.Flags(), "--cache-driver", "firestore")

		_, _, err := cfg.New(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("unknown driver", func(t *testing.T) {
		var cfg config.Storage
		parse(t, cfg.Flags(), "--cache-driver", "redis")

		_, _, err := cfg.New(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestEnrich(t *testing.T) {
	t.Run("default policy", func(t *testing.T) {
		var cfg config.Enrich
		parse(t, cfg.Flags())

		policy := gt.R1(cfg.Policy()).NoError(t)
		gt.V(t, policy).Equal(model.DefaultBranchPolicy())
	})

	t.Run("default branch mode", func(t *testing.T) {
		var cfg config.Enrich
		parse(t, cfg.Flags(), "--branch-mode", "default", "--max-branches", "3")

		policy := gt.R1(cfg.Policy()).NoError(t)
		gt.V(t, policy.Mode).Equal(types.BranchModeDefault)
		gt.V(t, policy.MaxBranches).Equal(3)
	})

	t.Run("invalid mode", func(t *testing.T) {
		var cfg config.Enrich
		parse(t, cfg.Flags(), "--branch-mode", "some")

		_, err := cfg.Policy()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid max branches", func(t *testing.T) {
		var cfg config.Enrich
		parse(t, cfg.Flags(), "--max-branches", "0")

		_, err := cfg.Policy()
		gt.Error(t, err)
	})
}

func TestGitHub(t *testing.T) {
	var cfg config.GitHub
	parse(t, cfg.Flags(), "--token", "ghp_flag", "--github-base-url", "http://127.0.0.1:1/")

	gt.V(t, cfg.Token()).Equal(types.GitHubToken("ghp_flag"))
	client, err := cfg.New()
	gt.NoError(t, err)
	gt.True(t, client != nil)
}

func TestToken(t *testing.T) {
	var cfg config.Token
	path := filepath.Join(t.TempDir(), "token")
	parse(t, cfg.Flags(), "--token-file", path)

	store := gt.R1(cfg.New()).NoError(t)
	ctx := context.Background()
	gt.NoError(t, store.Set(ctx, "ghp_saved"))
	gt.V(t, gt.R1(store.Get(ctx)).NoError(t)).Equal(types.GitHubToken("ghp_saved"))
}
