package types

type LoadState string

const (
	LoadStateIdle              LoadState = "idle"
	LoadStateLoadingUser       LoadState = "loading_user"
	LoadStateLoadingRepoList   LoadState = "loading_repo_list"
	LoadStateEnrichingBranches LoadState = "enriching_branches"
	LoadStateDone              LoadState = "done"
	LoadStateFailed            LoadState = "failed"
)

type BranchMode string

const (
	BranchModeAll     BranchMode = "all"
	BranchModeDefault BranchMode = "default"
)

func (x BranchMode) Validate() error {
	switch x {
	case BranchModeAll, BranchModeDefault:
		return nil
	default:
		return ErrInvalidOption
	}
}
