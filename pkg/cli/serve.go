package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repopeek/pkg/cli/config"
	"github.com/m-mizutani/repopeek/pkg/controller/server"
	"github.com/m-mizutani/repopeek/pkg/controller/view"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/infra"
	"github.com/m-mizutani/repopeek/pkg/usecase"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand(global *globalConfig) *cli.Command {
	var (
		addr string

		gh     config.GitHub
		enrich config.Enrich
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8765",
			Sources:     cli.EnvVars("REPOPEEK_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start local web UI",
		Flags: slice.Flatten(
			serveFlags,
			gh.Flags(),
			enrich.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", &gh),
				slog.Any("Enrich", &enrich),
				slog.Any("Storage", &global.storage),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			policy, err := enrich.Policy()
			if err != nil {
				return goerr.Wrap(err, "invalid enrich option")
			}

			ghClient, err := gh.New()
			if err != nil {
				return err
			}

			page := view.NewHTML()
			clients, closeFn, err := global.newClients(ctx,
				infra.WithGitHub(ghClient),
				infra.WithRenderer(page),
			)
			if err != nil {
				return err
			}
			defer closeFn()

			token, err := resolveToken(ctx, &gh, clients.TokenStore())
			if err != nil {
				return err
			}

			uc := usecase.New(clients, usecase.WithBranchPolicy(policy))
			s := server.New(uc, page, model.NewSession(token))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Page load may include a full fetch from GitHub
				WriteTimeout: 5 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
