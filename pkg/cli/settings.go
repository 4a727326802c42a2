package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func settingsCommand(global *globalConfig) *cli.Command {
	var repos int64

	return &cli.Command{
		Name:  "settings",
		Usage: "Show or update settings",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show current settings",
				Action: func(ctx context.Context, c *cli.Command) error {
					clients, closeFn, err := global.newClients(ctx)
					if err != nil {
						return err
					}
					defer closeFn()

					settings := usecase.New(clients).GetSettings(ctx)
					fmt.Fprintf(global.stdout, "Repositories to load: %d\n", settings.RepositoryCount)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "Update settings",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:        "repos",
						Usage:       fmt.Sprintf("Number of repositories to load (1-%d)", model.MaxRepositoryCount),
						Value:       model.DefaultRepositoryCount,
						Destination: &repos,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					clients, closeFn, err := global.newClients(ctx)
					if err != nil {
						return err
					}
					defer closeFn()

					saved := usecase.New(clients).SaveSettings(ctx, model.Settings{RepositoryCount: int(repos)})
					fmt.Fprintf(global.stdout, "Repositories to load: %d\n", saved.RepositoryCount)
					return nil
				},
			},
		},
	}
}
