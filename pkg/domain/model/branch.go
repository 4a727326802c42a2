package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

// Branch is an item of branch list API
type Branch struct {
	Name      types.BranchName
	CommitSHA types.CommitSHA
	Protected bool
}

// BranchSummary is a branch with its latest commit. Commit is nil when no commit could be resolved.
type BranchSummary struct {
	Name       types.BranchName `json:"name"`
	LastUpdate time.Time        `json:"last_update"`
	IsDefault  bool             `json:"is_default"`
	Commit     *CommitInfo      `json:"commit"`
}

// SortBranchesByRecency returns a copy of branches ordered by LastUpdate, newest first
func SortBranchesByRecency(branches []*BranchSummary) []*BranchSummary {
	sorted := slices.Clone(branches)
	slices.SortStableFunc(sorted, func(a, b *BranchSummary) int {
		return b.LastUpdate.Compare(a.LastUpdate)
	})
	return sorted
}

type BranchPolicy struct {
	Mode        types.BranchMode
	MaxBranches int
}

const DefaultMaxBranches = 10

func DefaultBranchPolicy() BranchPolicy {
	return BranchPolicy{
		Mode:        types.BranchModeAll,
		MaxBranches: DefaultMaxBranches,
	}
}

func (x BranchPolicy) Validate() error {
	if err := x.Mode.Validate(); err != nil {
		return err
	}
	if x.MaxBranches <= 0 {
		return types.ErrInvalidOption
	}
	return nil
}
