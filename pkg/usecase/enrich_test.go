package usecase_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/domain/mock"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra"
	"github.com/m-mizutani/repopeek/pkg/usecase"
)

func enrichOne(t *testing.T, gh *mock.GitHubMock, repo *model.Repository, options ...usecase.Option) ([]*model.BranchSummary, error) {
	t.Helper()
	gh.ListRepositoriesFunc = func(ctx context.Context, token types.GitHubToken, count int) ([]*model.Repository, error) {
		return []*model.Repository{repo}, nil
	}
	gh.GetUserFunc = func(ctx context.Context, token types.GitHubToken) (*model.User, error) {
		return &model.User{Login: "octocat"}, nil
	}

	var r rendered
	uc := usecase.New(infra.New(
		infra.WithGitHub(gh),
		infra.WithRenderer(newRenderer(&r)),
	), options...)

	result, err := uc.LoadRepositories(ctxAt(baseTime), &model.LoadInput{Token: "t", ForceFresh: true})
	if err != nil {
		return nil, err
	}
	gt.A(t, result.Repositories).Length(1)
	return result.Repositories[0].Branches, nil
}

func TestEnrichFallbackChain(t *testing.T) {
	repo := &model.Repository{ID: 1, Name: "alpha", FullName: "octocat/alpha", DefaultBranch: "main", UpdatedAt: baseTime.Add(-time.Hour)}

	t.Run("direct lookup succeeds", func(t *testing.T) {
		expected := newCommit("direct", baseTime.Add(-2*time.Hour))
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return expected, nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(1)
		gt.V(t, branches[0].Commit).Equal(expected)
		gt.True(t, branches[0].LastUpdate.Equal(expected.Date))
		gt.True(t, branches[0].IsDefault)
		gt.A(t, gh.ListCommitsCalls()).Length(0)
	})

	t.Run("direct lookup fails and list fallback succeeds", func(t *testing.T) {
		first := newCommit("listed", baseTime.Add(-3*time.Hour))
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return nil, goerr.Wrap(&types.APIError{StatusCode: 404}, "not found")
			},
			ListCommitsFunc: func(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName, perPage int) ([]*model.CommitInfo, error) {
				gt.V(t, perPage).Equal(1)
				gt.V(t, branch).Equal(types.BranchName("main"))
				return []*model.CommitInfo{first, newCommit("older", baseTime.Add(-4*time.Hour))}, nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(1)
		gt.V(t, branches[0].Commit).Equal(first)
	})

	t.Run("direct lookup returns incomplete commit", func(t *testing.T) {
		listed := newCommit("listed", baseTime.Add(-3*time.Hour))
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return &model.CommitInfo{SHA: "nodate"}, nil
			},
			ListCommitsFunc: func(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName, perPage int) ([]*model.CommitInfo, error) {
				return []*model.CommitInfo{listed}, nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.V(t, branches[0].Commit).Equal(listed)
	})

	t.Run("both lookups fail", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "feature"}, {Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return nil, goerr.Wrap(&types.APIError{StatusCode: 409}, "conflict")
			},
			ListCommitsFunc: func(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName, perPage int) ([]*model.CommitInfo, error) {
				return nil, nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(2)
		for _, b := range branches {
			gt.True(t, b.Commit == nil)
			gt.True(t, b.LastUpdate.Equal(repo.UpdatedAt))
			gt.V(t, b.IsDefault).Equal(b.Name == "main")
		}
	})

	t.Run("invalid token aborts enrichment", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return nil, goerr.Wrap(types.ErrInvalidToken, "unauthorized")
			},
		}

		_, err := enrichOne(t, gh, repo)
		gt.True(t, errors.Is(err, types.ErrInvalidToken))
		gt.A(t, gh.ListCommitsCalls()).Length(0)
	})
}

func TestEnrichBranchSelection(t *testing.T) {
	repo := &model.Repository{ID: 1, Name: "alpha", FullName: "octocat/alpha", DefaultBranch: "main", UpdatedAt: baseTime}

	t.Run("sorted by last update descending", func(t *testing.T) {
		times := map[types.BranchName]time.Time{
			"b1":   baseTime.Add(-3 * time.Hour),
			"b2":   baseTime.Add(-2 * time.Hour),
			"main": baseTime.Add(-1 * time.Hour),
		}
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "b1"}, {Name: "main"}, {Name: "b2"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return newCommit(string(ref), times[ref]), nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(3)
		gt.V(t, branches[0].Name).Equal(types.BranchName("main"))
		gt.V(t, branches[1].Name).Equal(types.BranchName("b2"))
		gt.V(t, branches[2].Name).Equal(types.BranchName("b1"))
	})

	t.Run("bounded to max branches with default included", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return []*model.Branch{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "main"}}, nil
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return newCommit(string(ref), baseTime), nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo, usecase.WithBranchPolicy(model.BranchPolicy{
			Mode:        types.BranchModeAll,
			MaxBranches: 2,
		}))).NoError(t)
		gt.A(t, branches).Length(2)
		gt.A(t, gh.GetCommitCalls()).Length(2)

		var names []types.BranchName
		for _, b := range branches {
			names = append(names, b.Name)
		}
		gt.True(t, slices.Contains(names, "main"))
		gt.True(t, slices.Contains(names, "a"))
	})

	t.Run("empty branch list yields default summary", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return nil, nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(1)
		gt.V(t, branches[0].Name).Equal(types.BranchName("main"))
		gt.True(t, branches[0].IsDefault)
		gt.True(t, branches[0].Commit == nil)
		gt.True(t, branches[0].LastUpdate.Equal(repo.UpdatedAt))
	})

	t.Run("branch list failure falls back to default branch", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
				return nil, goerr.Wrap(&types.APIError{StatusCode: 500}, "failed")
			},
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				return newCommit("x", baseTime), nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, repo)).NoError(t)
		gt.A(t, branches).Length(1)
		gt.V(t, branches[0].Name).Equal(types.BranchName("main"))
		gt.True(t, branches[0].Commit != nil)
	})

	t.Run("default mode does not list branches", func(t *testing.T) {
		noDefault := &model.Repository{ID: 2, Name: "beta", FullName: "octocat/beta", UpdatedAt: baseTime}
		gh := &mock.GitHubMock{
			GetCommitFunc: func(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
				gt.V(t, ref).Equal(types.BranchName("main"))
				return newCommit("x", baseTime), nil
			},
		}

		branches := gt.R1(enrichOne(t, gh, noDefault, usecase.WithBranchPolicy(model.BranchPolicy{
			Mode:        types.BranchModeDefault,
			MaxBranches: 10,
		}))).NoError(t)
		gt.A(t, branches).Length(1)
		gt.True(t, branches[0].IsDefault)
		gt.A(t, gh.ListBranchesCalls()).Length(0)
	})
}
