package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func tokenCommand(global *globalConfig) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage stored GitHub token",
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Store GitHub personal access token. Token is read from stdin if not given",
				ArgsUsage: "[TOKEN]",
				Action: func(ctx context.Context, c *cli.Command) error {
					token := types.GitHubToken(strings.TrimSpace(c.Args().First()))
					if token == "" {
						line, err := bufio.NewReader(os.Stdin).ReadString('\n')
						if err != nil && line == "" {
							return goerr.Wrap(err, "failed to read token from stdin")
						}
						token = types.GitHubToken(strings.TrimSpace(line))
					}
					if token == "" {
						return goerr.Wrap(types.ErrInvalidOption, "token is empty")
					}

					clients, closeFn, err := global.newClients(ctx)
					if err != nil {
						return err
					}
					defer closeFn()

					if err := clients.TokenStore().Set(ctx, token); err != nil {
						return goerr.Wrap(err, "failed to store token")
					}
					// Cached data belongs to previous token
					usecase.New(clients).ClearCache(ctx)

					fmt.Fprintln(global.stdout, "Token saved")
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "Remove stored token and cached data",
				Action: func(ctx context.Context, c *cli.Command) error {
					clients, closeFn, err := global.newClients(ctx)
					if err != nil {
						return err
					}
					defer closeFn()

					if err := usecase.New(clients).Logout(ctx); err != nil {
						return err
					}

					fmt.Fprintln(global.stdout, "Token removed")
					return nil
				},
			},
		},
	}
}
