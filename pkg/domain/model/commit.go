package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

type CommitAuthor struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Login     string `json:"login,omitempty"`
}

type CommitInfo struct {
	SHA     types.CommitSHA `json:"sha"`
	Message string          `json:"message"`
	Author  CommitAuthor    `json:"author"`
	HTMLURL string          `json:"html_url"`
	Date    time.Time       `json:"date"`
}

func (x *CommitInfo) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrInvalidGitHubData, "commit is nil")
	}
	if x.SHA == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "commit SHA is empty")
	}
	if x.Date.IsZero() {
		return goerr.Wrap(types.ErrInvalidGitHubData, "commit date is empty", goerr.V("sha", x.SHA))
	}
	return nil
}
