package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/cli/config"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra"
)

// newClients builds clients with cache backend and token store. Returned function releases the cache backend.
func (x *globalConfig) newClients(ctx context.Context, options ...infra.Option) (*infra.Clients, func(), error) {
	storage, closeFn, err := x.storage.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tokenStore, err := x.token.New()
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	base := []infra.Option{
		infra.WithCacheStorage(storage),
		infra.WithTokenStore(tokenStore),
	}
	return infra.New(append(base, options...)...), closeFn, nil
}

// resolveToken returns token given by flag or environment variable, then stored one
func resolveToken(ctx context.Context, gh *config.GitHub, store interfaces.TokenStore) (types.GitHubToken, error) {
	if token := gh.Token(); token != "" {
		return token, nil
	}
	if store == nil {
		return "", nil
	}

	token, err := store.Get(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read stored token")
	}
	return token, nil
}
