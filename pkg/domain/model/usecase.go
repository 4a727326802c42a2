package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

// Progress is reported by LoadRepositories on each state transition and after each enriched repository
type Progress struct {
	State   types.LoadState
	Title   string
	Detail  string
	Current int
	Total   int
}

type ProgressFunc func(Progress)

type LoadInput struct {
	Token      types.GitHubToken
	ForceFresh bool
	Session    *Session
	Progress   ProgressFunc
}

func (x *LoadInput) Validate() error {
	if x.Token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub token is required")
	}
	return nil
}

type LoadResult struct {
	User         *User
	Repositories []*Repository
	UpdatedAt    time.Time
	FromCache    bool
}

// SetupInput is the settings form: token is optional when already configured
type SetupInput struct {
	Token           types.GitHubToken
	RepositoryCount int
	Session         *Session
	Progress        ProgressFunc
}
