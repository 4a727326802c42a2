package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub TokenStore Renderer

import (
	"context"
	"time"

	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

type GitHub interface {
	GetUser(ctx context.Context, token types.GitHubToken) (*model.User, error)
	ListRepositories(ctx context.Context, token types.GitHubToken, count int) ([]*model.Repository, error)
	ListBranches(ctx context.Context, token types.GitHubToken, fullName string) ([]*model.Branch, error)
	GetCommit(ctx context.Context, token types.GitHubToken, fullName string, ref types.BranchName) (*model.CommitInfo, error)
	ListCommits(ctx context.Context, token types.GitHubToken, fullName string, branch types.BranchName, perPage int) ([]*model.CommitInfo, error)
}

// TokenStore persists GitHub token. Get returns empty token without error when nothing is stored.
type TokenStore interface {
	Get(ctx context.Context) (types.GitHubToken, error)
	Set(ctx context.Context, token types.GitHubToken) error
	Clear(ctx context.Context) error
}

type Renderer interface {
	RenderUser(ctx context.Context, user *model.User)
	RenderRepositories(ctx context.Context, repos []*model.Repository, updatedAt time.Time)
}
