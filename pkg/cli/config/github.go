package config

import (
	"log/slog"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token   types.GitHubToken
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Aliases:     []string{"t"},
			Usage:       "GitHub personal access token (overrides stored token)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("REPOPEEK_GITHUB_TOKEN", "GITHUB_TOKEN"),
			Destination: (*string)(&x.token),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL, e.g. for GitHub Enterprise",
			Category:    "GitHub",
			Sources:     cli.EnvVars("REPOPEEK_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
	}
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

func (x *GitHub) New() (*github.Client, error) {
	var options []github.Option
	if x.baseURL != "" {
		options = append(options, github.WithBaseURL(x.baseURL))
	}
	return github.New(options...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("token", x.token),
		slog.String("baseURL", x.baseURL),
	)
}
