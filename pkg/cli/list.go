package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repopeek/pkg/cli/config"
	"github.com/m-mizutani/repopeek/pkg/controller/view"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/infra"
	"github.com/m-mizutani/repopeek/pkg/usecase"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func listCommand(global *globalConfig) *cli.Command {
	var (
		gh     config.GitHub
		enrich config.Enrich
		fresh  bool
		expand bool
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show recently updated repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "fresh",
				Usage:       "Ignore cached data and fetch from GitHub",
				Destination: &fresh,
			},
			&cli.BoolFlag{
				Name:        "expand",
				Aliases:     []string{"e"},
				Usage:       "Show latest commit of every branch",
				Destination: &expand,
			},
		}, gh.Flags(), enrich.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting list",
				slog.Bool("fresh", fresh),
				slog.Bool("expand", expand),
				slog.Any("github", &gh),
				slog.Any("enrich", &enrich),
				slog.Any("storage", &global.storage),
			)

			policy, err := enrich.Policy()
			if err != nil {
				return goerr.Wrap(err, "invalid enrich option")
			}

			ghClient, err := gh.New()
			if err != nil {
				return err
			}

			// Rendered text is held until the progress bar is finished
			var out bytes.Buffer
			renderer := view.NewText(&out,
				view.WithExpandAll(expand),
				view.WithRefreshHint("repopeek list --fresh"),
			)

			clients, closeFn, err := global.newClients(ctx,
				infra.WithGitHub(ghClient),
				infra.WithRenderer(renderer),
			)
			if err != nil {
				return err
			}
			defer closeFn()

			token, err := resolveToken(ctx, &gh, clients.TokenStore())
			if err != nil {
				return err
			}
			if token == "" {
				return goerr.Wrap(types.ErrInvalidOption, "GitHub token is not configured. Run `repopeek token set` or use --token")
			}

			uc := usecase.New(clients, usecase.WithBranchPolicy(policy))

			bar := newProgressBar(global.stderr)
			_, loadErr := uc.LoadRepositories(ctx, &model.LoadInput{
				Token:      token,
				ForceFresh: fresh,
				Session:    model.NewSession(token),
				Progress:   bar.Update,
			})
			bar.Finish()

			if _, err := out.WriteTo(global.stdout); err != nil {
				return goerr.Wrap(err, "failed to write output")
			}

			if loadErr != nil {
				fmt.Fprintln(global.stderr, model.UserMessage(loadErr))
				return loadErr
			}
			return nil
		},
	}
}
