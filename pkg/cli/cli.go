package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repopeek/pkg/cli/config"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	stdout  io.Writer
	stderr  io.Writer
	envFile string
}

type Option func(*CLI)

// WithOutput replaces stdout and stderr of commands
func WithOutput(stdout, stderr io.Writer) Option {
	return func(x *CLI) {
		x.stdout = stdout
		x.stderr = stderr
	}
}

// WithEnvFile changes dotenv file loaded before flags are parsed. Empty path disables loading.
func WithEnvFile(path string) Option {
	return func(x *CLI) {
		x.envFile = path
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		envFile: ".env",
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// globalConfig is shared by all sub commands
type globalConfig struct {
	stdout  io.Writer
	stderr  io.Writer
	storage config.Storage
	token   config.Token
}

func (x *CLI) loadEnvFile() error {
	if x.envFile == "" {
		return nil
	}
	if err := godotenv.Load(x.envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", x.envFile))
	}
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	if err := x.loadEnvFile(); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	global := &globalConfig{
		stdout: x.stdout,
		stderr: x.stderr,
	}

	logFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("REPOPEEK_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "warn",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("REPOPEEK_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("REPOPEEK_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "stderr",
		},
	}

	app := &cli.Command{
		Name:      "repopeek",
		Usage:     "Show your recently updated GitHub repositories with their latest branches and commits",
		Writer:    x.stdout,
		ErrWriter: x.stderr,
		Flags: slice.Flatten(
			logFlags,
			global.storage.Flags(),
			global.token.Flags(),
		),
		Commands: []*cli.Command{
			listCommand(global),
			serveCommand(global),
			tokenCommand(global),
			settingsCommand(global),
			cacheCommand(global),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
