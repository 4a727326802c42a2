package config

import (
	"log/slog"

	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Enrich struct {
	mode        string
	maxBranches int64
}

func (x *Enrich) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "branch-mode",
			Usage:       "Branches to enrich [all|default]",
			Category:    "Enrich",
			Sources:     cli.EnvVars("REPOPEEK_BRANCH_MODE"),
			Value:       string(types.BranchModeAll),
			Destination: &x.mode,
		},
		&cli.Int64Flag{
			Name:        "max-branches",
			Usage:       "Max branches per repository in all mode",
			Category:    "Enrich",
			Sources:     cli.EnvVars("REPOPEEK_MAX_BRANCHES"),
			Value:       model.DefaultMaxBranches,
			Destination: &x.maxBranches,
		},
	}
}

func (x *Enrich) Policy() (model.BranchPolicy, error) {
	policy := model.BranchPolicy{
		Mode:        types.BranchMode(x.mode),
		MaxBranches: int(x.maxBranches),
	}
	if err := policy.Validate(); err != nil {
		return model.BranchPolicy{}, err
	}
	return policy, nil
}

func (x *Enrich) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", x.mode),
		slog.Int64("maxBranches", x.maxBranches),
	)
}
