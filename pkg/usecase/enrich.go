package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

// commitLookup is one step of latest commit resolution
type commitLookup func(ctx context.Context) (*model.CommitInfo, error)

// enrichRepository resolves branch summaries of the repository. Only ErrInvalidToken is returned as error; other failures degrade to summaries without commit.
func (x *UseCase) enrichRepository(ctx context.Context, token types.GitHubToken, repo *model.Repository) ([]*model.BranchSummary, error) {
	logger := logging.From(ctx).With(slog.String("repo", repo.FullName))
	defaultBranch := repo.DefaultBranchName()

	names := []types.BranchName{defaultBranch}
	if x.policy.Mode == types.BranchModeAll {
		branches, err := x.clients.GitHub().ListBranches(ctx, token, repo.FullName)
		switch {
		case errors.Is(err, types.ErrInvalidToken):
			return nil, err
		case err != nil:
			logger.Warn("failed to list branches, using default branch only", "error", err)
		default:
			names = selectBranches(branches, defaultBranch, x.policy.MaxBranches)
		}
	}

	if len(names) == 0 {
		return []*model.BranchSummary{
			{
				Name:       defaultBranch,
				LastUpdate: repo.UpdatedAt,
				IsDefault:  true,
			},
		}, nil
	}

	summaries := make([]*model.BranchSummary, 0, len(names))
	for _, name := range names {
		summary := &model.BranchSummary{
			Name:       name,
			LastUpdate: repo.UpdatedAt,
			IsDefault:  name == defaultBranch,
		}

		commit, err := x.resolveCommit(ctx, token, repo.FullName, name)
		if err != nil {
			if errors.Is(err, types.ErrInvalidToken) {
				return nil, err
			}
			logger.Debug("no commit information for branch", "branch", name, "error", err)
		} else {
			summary.Commit = commit
			summary.LastUpdate = commit.Date
		}

		summaries = append(summaries, summary)
	}

	return model.SortBranchesByRecency(summaries), nil
}

// resolveCommit tries commit lookups in order and returns the first valid commit
func (x *UseCase) resolveCommit(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName) (*model.CommitInfo, error) {
	gh := x.clients.GitHub()

	lookups := []commitLookup{
		func(ctx context.Context) (*model.CommitInfo, error) {
			return gh.GetCommit(ctx, token, fullName, branch)
		},
		func(ctx context.Context) (*model.CommitInfo, error) {
			commits, err := gh.ListCommits(ctx, token, fullName, branch, 1)
			if err != nil {
				return nil, err
			}
			if len(commits) == 0 {
				return nil, goerr.Wrap(types.ErrInvalidGitHubData, "no commit in branch", goerr.V("branch", branch))
			}
			return commits[0], nil
		},
	}

	var lastErr error
	for _, lookup := range lookups {
		commit, err := lookup(ctx)
		if err == nil {
			err = commit.Validate()
		}
		if err == nil {
			return commit, nil
		}
		if errors.Is(err, types.ErrInvalidToken) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// selectBranches returns up to max branch names in listed order, making sure default branch is included when it exists
func selectBranches(branches []*model.Branch, defaultBranch types.BranchName, max int) []types.BranchName {
	var names []types.BranchName
	var hasDefault, defaultListed bool

	for _, branch := range branches {
		if branch.Name == defaultBranch {
			defaultListed = true
		}
		if len(names) < max {
			names = append(names, branch.Name)
			if branch.Name == defaultBranch {
				hasDefault = true
			}
		}
	}

	if defaultListed && !hasDefault {
		names[len(names)-1] = defaultBranch
	}

	return names
}
