package model

import (
	"time"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

// Repository represents a GitHub repository owned by or accessible to the user
type Repository struct {
	ID            types.RepoID     `json:"id"`
	Name          string           `json:"name"`
	FullName      string           `json:"full_name"`
	HTMLURL       string           `json:"html_url"`
	DefaultBranch types.BranchName `json:"default_branch"`
	Homepage      string           `json:"homepage,omitempty"`
	Description   string           `json:"description,omitempty"`
	Private       bool             `json:"private"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Branches      []*BranchSummary `json:"branches"`
}

// DefaultBranchName returns default branch of the repository. "main" is used if not set
func (x *Repository) DefaultBranchName() types.BranchName {
	if x.DefaultBranch == "" {
		return types.DefaultBranchName
	}
	return x.DefaultBranch
}
