package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/repopeek/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cacheCommand(global *globalConfig) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage cached GitHub data",
		Commands: []*cli.Command{
			{
				Name:  "clear",
				Usage: "Remove cached user profile and repositories",
				Action: func(ctx context.Context, c *cli.Command) error {
					clients, closeFn, err := global.newClients(ctx)
					if err != nil {
						return err
					}
					defer closeFn()

					usecase.New(clients).ClearCache(ctx)
					fmt.Fprintln(global.stdout, "Cache cleared")
					return nil
				},
			},
		},
	}
}
