package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

type Client struct {
	baseURL    *url.URL
	transport  http.RoundTripper
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL sets API endpoint, e.g. https://github.example.com/api/v3/ for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", baseURL), goerr.V("error", err.Error()))
		}
		x.baseURL = u
		return nil
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) error {
		x.transport = tr
		return nil
	}
}

// WithRetry configures retry of rate limited and temporarily unavailable responses
func WithRetry(maxRetries int, baseDelay, maxDelay time.Duration) Option {
	return func(x *Client) error {
		if maxRetries < 0 || baseDelay < 0 || maxDelay < baseDelay {
			return goerr.Wrap(types.ErrInvalidOption, "invalid retry setting",
				goerr.V("maxRetries", maxRetries),
				goerr.V("baseDelay", baseDelay),
				goerr.V("maxDelay", maxDelay),
			)
		}
		x.maxRetries = maxRetries
		x.baseDelay = baseDelay
		x.maxDelay = maxDelay
		return nil
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		transport:  http.DefaultTransport,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		maxDelay:   DefaultMaxDelay,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

func (x *Client) buildGithubClient(token types.GitHubToken) *github.Client {
	httpClient := &http.Client{
		Transport: &tokenTransport{
			token: token,
			base: &retryTransport{
				base:       x.transport,
				maxRetries: x.maxRetries,
				baseDelay:  x.baseDelay,
				maxDelay:   x.maxDelay,
			},
		},
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func splitFullName(fullName string) (string, string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "invalid repository full name", goerr.V("fullName", fullName))
	}
	return owner, repo, nil
}

// translateError converts go-github error into APIError or ErrInvalidToken
func translateError(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	options = append(options, goerr.V("cause", err.Error()))

	if resp != nil && resp.Response != nil {
		options = append(options, goerr.V("status", resp.StatusCode))
		if resp.StatusCode == http.StatusUnauthorized {
			return goerr.Wrap(types.ErrInvalidToken, msg, options...)
		}
		if resp.StatusCode >= 300 {
			return goerr.Wrap(&types.APIError{StatusCode: resp.StatusCode}, msg, options...)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return goerr.Wrap(err, msg, options...)
	}

	return goerr.Wrap(&types.APIError{StatusCode: 0}, msg, options...)
}

func (x *Client) GetUser(ctx context.Context, token types.GitHubToken) (*model.User, error) {
	client := x.buildGithubClient(token)

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, translateError(err, resp, "failed to get user")
	}

	return &model.User{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
		HTMLURL:   user.GetHTMLURL(),
	}, nil
}

func (x *Client) ListRepositories(ctx context.Context, token types.GitHubToken, count int) ([]*model.Repository, error) {
	client := x.buildGithubClient(token)

	// https://docs.github.com/en/rest/repos/repos#list-repositories-for-the-authenticated-user
	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: count},
	}
	repos, resp, err := client.Repositories.List(ctx, "", opt)
	if err != nil {
		return nil, translateError(err, resp, "failed to list repositories", goerr.V("count", count))
	}

	results := make([]*model.Repository, 0, len(repos))
	for _, repo := range repos {
		results = append(results, &model.Repository{
			ID:            types.RepoID(repo.GetID()),
			Name:          repo.GetName(),
			FullName:      repo.GetFullName(),
			HTMLURL:       repo.GetHTMLURL(),
			DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
			Homepage:      repo.GetHomepage(),
			Description:   repo.GetDescription(),
			Private:       repo.GetPrivate(),
			UpdatedAt:     repo.GetUpdatedAt().Time,
		})
	}

	logging.From(ctx).Debug("Listed repositories", slog.Int("count", len(results)))
	return results, nil
}

func (x *Client) ListBranches(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error) {
	owner, repo, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	client := x.buildGithubClient(token)

	// First page only
	branches, resp, err := client.Repositories.ListBranches(ctx, owner, repo, &github.BranchListOptions{})
	if err != nil {
		return nil, translateError(err, resp, "failed to list branches", goerr.V("repo", fullName))
	}

	results := make([]*model.Branch, 0, len(branches))
	for _, branch := range branches {
		results = append(results, &model.Branch{
			Name:      types.BranchName(branch.GetName()),
			CommitSHA: types.CommitSHA(branch.GetCommit().GetSHA()),
			Protected: branch.GetProtected(),
		})
	}

	return results, nil
}

func (x *Client) GetCommit(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error) {
	owner, repo, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	client := x.buildGithubClient(token)

	commit, resp, err := client.Repositories.GetCommit(ctx, owner, repo, ref.String(), nil)
	if err != nil {
		return nil, translateError(err, resp, "failed to get commit",
			goerr.V("repo", fullName),
			goerr.V("ref", ref),
		)
	}

	return toCommitInfo(commit), nil
}

func (x *Client) ListCommits(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName, perPage int) ([]*model.CommitInfo, error) {
	owner, repo, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	client := x.buildGithubClient(token)

	opt := &github.CommitsListOptions{
		SHA:         branch.String(),
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	commits, resp, err := client.Repositories.ListCommits(ctx, owner, repo, opt)
	if err != nil {
		return nil, translateError(err, resp, "failed to list commits",
			goerr.V("repo", fullName),
			goerr.V("branch", branch),
		)
	}

	results := make([]*model.CommitInfo, 0, len(commits))
	for _, commit := range commits {
		results = append(results, toCommitInfo(commit))
	}
	return results, nil
}

func toCommitInfo(commit *github.RepositoryCommit) *model.CommitInfo {
	return &model.CommitInfo{
		SHA:     types.CommitSHA(commit.GetSHA()),
		Message: commit.GetCommit().GetMessage(),
		Author: model.CommitAuthor{
			Name:      commit.GetCommit().GetAuthor().GetName(),
			Email:     commit.GetCommit().GetAuthor().GetEmail(),
			AvatarURL: commit.GetAuthor().GetAvatarURL(),
			Login:     commit.GetAuthor().GetLogin(),
		},
		HTMLURL: commit.GetHTMLURL(),
		Date:    commit.GetCommit().GetAuthor().GetDate().Time,
	}
}
