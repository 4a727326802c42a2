package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra/cache"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

func (x *UseCase) GetSettings(ctx context.Context) model.Settings {
	settings, _, ok := cache.Load[model.Settings](ctx, x.cache, types.CacheKeySettings)
	if !ok {
		return model.DefaultSettings()
	}
	return settings.Normalize()
}

// SaveSettings stores normalized settings and returns them
func (x *UseCase) SaveSettings(ctx context.Context, settings model.Settings) model.Settings {
	normalized := settings.Normalize()
	x.cache.Set(ctx, types.CacheKeySettings, normalized)
	return normalized
}

// SetupCredentials saves settings and token, then reloads repositories from GitHub. Token may be omitted when session already has one.
func (x *UseCase) SetupCredentials(ctx context.Context, input *model.SetupInput) (*model.LoadResult, error) {
	x.SaveSettings(ctx, model.Settings{RepositoryCount: input.RepositoryCount})

	token := input.Token
	if token != "" {
		if store := x.clients.TokenStore(); store != nil {
			if err := store.Set(ctx, token); err != nil {
				return nil, goerr.Wrap(err, "failed to store token")
			}
		}
		if input.Session != nil {
			input.Session.SetToken(token)
		}
		x.ClearCache(ctx)
		logging.From(ctx).Info("GitHub token updated")
	} else if input.Session != nil {
		token = input.Session.Token()
	}

	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is required")
	}

	return x.LoadRepositories(ctx, &model.LoadInput{
		Token:      token,
		ForceFresh: true,
		Session:    input.Session,
		Progress:   input.Progress,
	})
}

// ClearCache removes cached repositories and user profile. Settings are kept.
func (x *UseCase) ClearCache(ctx context.Context) {
	x.cache.Clear(ctx, types.CacheKeyRepositories)
	x.cache.Clear(ctx, types.CacheKeyUser)
}

// Logout removes cached data and stored token
func (x *UseCase) Logout(ctx context.Context) error {
	x.ClearCache(ctx)

	if store := x.clients.TokenStore(); store != nil {
		if err := store.Clear(ctx); err != nil {
			return goerr.Wrap(err, "failed to clear stored token")
		}
	}
	return nil
}
