package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra/cache"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

type progressReporter func(state types.LoadState, title, detail string, current, total int)

func newProgressReporter(ctx context.Context, fn model.ProgressFunc) progressReporter {
	return func(state types.LoadState, title, detail string, current, total int) {
		logging.From(ctx).Debug("load progress",
			slog.String("state", string(state)),
			slog.String("title", title),
			slog.Int("current", current),
			slog.Int("total", total),
		)
		if fn != nil {
			fn(model.Progress{
				State:   state,
				Title:   title,
				Detail:  detail,
				Current: current,
				Total:   total,
			})
		}
	}
}

// LoadRepositories loads user profile and repositories from cache or GitHub, enriches them with branch information and passes them to the renderer
func (x *UseCase) LoadRepositories(ctx context.Context, input *model.LoadInput) (*model.LoadResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	renderer := x.clients.Renderer()
	if renderer == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "renderer is not configured")
	}

	if input.Session != nil {
		input.Session.Reset()
	}

	report := newProgressReporter(ctx, input.Progress)
	result := &model.LoadResult{}

	report(types.LoadStateLoadingUser, "Loading user profile", "Connecting to GitHub API", 0, 2)
	user, err := x.loadUser(ctx, input)
	if err != nil {
		return nil, x.failLoad(ctx, input, report, err)
	}
	if user != nil {
		result.User = user
		renderer.RenderUser(ctx, user)
	}

	report(types.LoadStateLoadingRepoList, "Loading repositories", "Fetching repository list", 1, 2)

	if !input.ForceFresh {
		if repos, writtenAt, ok := cache.Load[[]*model.Repository](ctx, x.cache, types.CacheKeyRepositories); ok {
			report(types.LoadStateDone, "Loading repositories", "Using cached repository data", 2, 2)
			renderer.RenderRepositories(ctx, repos, writtenAt)

			result.Repositories = repos
			result.UpdatedAt = writtenAt
			result.FromCache = true
			return result, nil
		}
	}

	settings := x.GetSettings(ctx)
	repos, err := x.clients.GitHub().ListRepositories(ctx, input.Token, settings.RepositoryCount)
	if err != nil {
		return nil, x.failLoad(ctx, input, report, err)
	}

	if len(repos) == 0 {
		now := logging.CtxTime(ctx)
		report(types.LoadStateDone, "Loading repositories", model.EmptyStateMessage, 0, 0)
		renderer.RenderRepositories(ctx, repos, now)

		result.Repositories = repos
		result.UpdatedAt = now
		return result, nil
	}

	total := len(repos)
	report(types.LoadStateEnrichingBranches, "Loading branch information", "Processing repositories", 0, total)
	for i, repo := range repos {
		branches, err := x.enrichRepository(ctx, input.Token, repo)
		if err != nil {
			return nil, x.failLoad(ctx, input, report, err)
		}
		repo.Branches = branches

		report(types.LoadStateEnrichingBranches,
			fmt.Sprintf("Processing repository %d of %d", i+1, total),
			"Fetched branches for "+repo.Name,
			i+1, total,
		)
	}

	writtenAt := x.cache.Set(ctx, types.CacheKeyRepositories, repos)
	report(types.LoadStateDone, "Loading repositories", "Repositories loaded", total, total)
	renderer.RenderRepositories(ctx, repos, writtenAt)

	logging.From(ctx).Info("repositories loaded", slog.Int("count", total))

	result.Repositories = repos
	result.UpdatedAt = writtenAt
	return result, nil
}

// loadUser returns cached or fetched user. Failure other than invalid token is logged and ignored.
func (x *UseCase) loadUser(ctx context.Context, input *model.LoadInput) (*model.User, error) {
	if !input.ForceFresh {
		if user, _, ok := cache.Load[*model.User](ctx, x.cache, types.CacheKeyUser); ok && user != nil {
			return user, nil
		}
	}

	user, err := x.clients.GitHub().GetUser(ctx, input.Token)
	if err != nil {
		if errors.Is(err, types.ErrInvalidToken) {
			return nil, err
		}
		logging.From(ctx).Warn("failed to load user profile", "error", err)
		return nil, nil
	}

	x.cache.Set(ctx, types.CacheKeyUser, user)
	return user, nil
}

// failLoad reports failure. On invalid token, cached data and stored token are discarded.
func (x *UseCase) failLoad(ctx context.Context, input *model.LoadInput, report progressReporter, err error) error {
	report(types.LoadStateFailed, "Failed to load repositories", model.UserMessage(err), 0, 0)

	if !errors.Is(err, types.ErrInvalidToken) {
		logging.From(ctx).Error("failed to load repositories", "error", err)
		return err
	}

	logging.From(ctx).Warn("GitHub token is rejected, clearing credentials", "error", err)
	x.ClearCache(ctx)

	if store := x.clients.TokenStore(); store != nil {
		if clearErr := store.Clear(ctx); clearErr != nil {
			logging.From(ctx).Warn("failed to clear stored token", "error", clearErr)
		}
	}
	if input.Session != nil {
		input.Session.SetToken("")
	}

	return err
}
