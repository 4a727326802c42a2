package view

import (
	"strings"
	"time"

	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

type commitView struct {
	Author    string
	Initial   string
	AvatarURL string
	Date      string
	Message   string
	ShortSHA  string
	HTMLURL   string
}

type branchView struct {
	Name       string
	IsDefault  bool
	LastUpdate string
	Commit     *commitView
}

type repoView struct {
	ID          types.RepoID
	Name        string
	FullName    string
	HTMLURL     string
	Homepage    string
	Description string
	Private     bool
	Expanded    bool
	// Preview is up to CollapsedBranchCount branches, Branches is all of them
	Preview         []branchView
	Branches        []branchView
	More            string
	UpdatedRelative string
}

func newBranchView(now time.Time, branch *model.BranchSummary) branchView {
	v := branchView{
		Name:       branch.Name.String(),
		IsDefault:  branch.IsDefault,
		LastUpdate: RelativeTime(now, branch.LastUpdate),
	}

	if c := branch.Commit; c != nil {
		var initial string
		if c.Author.Name != "" {
			initial = strings.ToUpper(string([]rune(c.Author.Name)[0]))
		}
		v.Commit = &commitView{
			Author:    c.Author.Name,
			Initial:   initial,
			AvatarURL: c.Author.AvatarURL,
			Date:      RelativeTime(now, c.Date),
			Message:   CommitHeadline(c.Message),
			ShortSHA:  c.SHA.Short(),
			HTMLURL:   c.HTMLURL,
		}
	}
	return v
}

func newRepoViews(now time.Time, repos []*model.Repository, isExpanded func(types.RepoID) bool) []repoView {
	views := make([]repoView, 0, len(repos))

	for _, repo := range repos {
		branches := model.SortBranchesByRecency(repo.Branches)

		v := repoView{
			ID:              repo.ID,
			Name:            repo.Name,
			FullName:        repo.FullName,
			HTMLURL:         repo.HTMLURL,
			Homepage:        repo.Homepage,
			Description:     repo.Description,
			Private:         repo.Private,
			Expanded:        isExpanded(repo.ID),
			More:            MoreBranches(len(branches)),
			UpdatedRelative: RelativeTime(now, repo.UpdatedAt),
		}

		for i, branch := range branches {
			bv := newBranchView(now, branch)
			if i < CollapsedBranchCount {
				v.Preview = append(v.Preview, bv)
			}
			v.Branches = append(v.Branches, bv)
		}

		views = append(views, v)
	}

	return views
}
