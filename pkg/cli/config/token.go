package config

import (
	"log/slog"

	"github.com/m-mizutani/repopeek/pkg/infra/tokenfile"
	"github.com/urfave/cli/v3"
)

type Token struct {
	path string
}

func (x *Token) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "File to store GitHub token (default: <user config dir>/repopeek/token)",
			Sources:     cli.EnvVars("REPOPEEK_TOKEN_FILE"),
			Destination: &x.path,
		},
	}
}

func (x *Token) New() (*tokenfile.Store, error) {
	path := x.path
	if path == "" {
		p, err := tokenfile.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return tokenfile.New(path), nil
}

func (x *Token) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}
