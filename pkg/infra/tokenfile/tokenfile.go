package tokenfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

// Store keeps GitHub token in a file only readable by the owner
type Store struct {
	path string
}

var _ interfaces.TokenStore = (*Store)(nil)

// DefaultPath returns token file path under user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(dir, "repopeek", "token"), nil
}

func New(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (x *Store) Get(ctx context.Context) (types.GitHubToken, error) {
	raw, err := os.ReadFile(x.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read token file", goerr.V("path", x.path))
	}

	return types.GitHubToken(strings.TrimSpace(string(raw))), nil
}

func (x *Store) Set(ctx context.Context, token types.GitHubToken) error {
	if token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	if err := os.MkdirAll(filepath.Dir(x.path), 0700); err != nil {
		return goerr.Wrap(err, "failed to create token directory", goerr.V("path", x.path))
	}

	if err := os.WriteFile(x.path, []byte(token.Reveal()+"\n"), 0600); err != nil {
		return goerr.Wrap(err, "failed to write token file", goerr.V("path", x.path))
	}
	// WriteFile does not change mode of existing file
	if err := os.Chmod(x.path, 0600); err != nil {
		return goerr.Wrap(err, "failed to set token file permission", goerr.V("path", x.path))
	}

	logging.From(ctx).Debug("token saved", "path", x.path)
	return nil
}

func (x *Store) Clear(ctx context.Context) error {
	if err := os.Remove(x.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove token file", goerr.V("path", x.path))
	}
	return nil
}
