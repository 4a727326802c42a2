package view

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

var (
	colorHeader   = color.New(color.FgHiWhite, color.Bold)
	colorRepo     = color.New(color.FgBlue, color.Bold)
	colorDefault  = color.New(color.FgBlue)
	colorSubtle   = color.New(color.FgHiBlack)
	colorWarning  = color.New(color.FgYellow)
	colorSHA      = color.New(color.FgCyan)
	colorFreshNow = color.New(color.FgGreen)
)

// Text renders repositories to a terminal
type Text struct {
	mu            sync.Mutex
	w             io.Writer
	session       *model.Session
	expandAll     bool
	refreshHint   string
	headerPrinted bool
}

var _ interfaces.Renderer = (*Text)(nil)

type TextOption func(*Text)

// WithSession uses expanded state of the session
func WithSession(session *model.Session) TextOption {
	return func(x *Text) {
		x.session = session
	}
}

// WithExpandAll shows commit details of all repositories
func WithExpandAll(expand bool) TextOption {
	return func(x *Text) {
		x.expandAll = expand
	}
}

// WithRefreshHint sets command shown next to "Refresh now"
func WithRefreshHint(hint string) TextOption {
	return func(x *Text) {
		x.refreshHint = hint
	}
}

func NewText(w io.Writer, options ...TextOption) *Text {
	x := &Text{w: w}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Text) isExpanded(id types.RepoID) bool {
	if x.expandAll {
		return true
	}
	return x.session != nil && x.session.IsExpanded(id)
}

func (x *Text) RenderUser(ctx context.Context, user *model.User) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if user == nil {
		return
	}
	colorHeader.Fprintf(x.w, "%s (@%s)\n\n", user.DisplayName(), user.Login)
	x.headerPrinted = true
}

func (x *Text) RenderRepositories(ctx context.Context, repos []*model.Repository, updatedAt time.Time) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.headerPrinted {
		colorHeader.Fprint(x.w, "My Repositories\n\n")
		x.headerPrinted = true
	}

	if len(repos) == 0 {
		fmt.Fprintln(x.w, model.EmptyStateMessage)
		return
	}

	now := logging.CtxTime(ctx)
	for _, repo := range newRepoViews(now, repos, x.isExpanded) {
		x.writeRepo(repo)
	}

	x.writeFreshness(now, updatedAt)
}

func (x *Text) writeRepo(repo repoView) {
	marker := "▸"
	if repo.Expanded {
		marker = "▾"
	}
	fmt.Fprintf(x.w, "%s ", marker)
	colorRepo.Fprint(x.w, repo.Name)
	if repo.Private {
		colorSubtle.Fprint(x.w, " (private)")
	}
	fmt.Fprintln(x.w)

	if repo.Homepage != "" {
		colorSubtle.Fprintf(x.w, "    %s\n", repo.Homepage)
	}

	if len(repo.Branches) == 0 {
		colorSubtle.Fprintf(x.w, "    %s\n\n", NoBranchMessage)
		return
	}

	if !repo.Expanded {
		for _, b := range repo.Preview {
			x.writeBranchName(b)
			colorSubtle.Fprintf(x.w, "  %s\n", b.LastUpdate)
		}
		if repo.More != "" {
			colorSubtle.Fprintf(x.w, "    %s\n", repo.More)
		}
		fmt.Fprintln(x.w)
		return
	}

	for _, b := range repo.Branches {
		x.writeBranchName(b)
		fmt.Fprintln(x.w)

		if b.Commit == nil {
			colorWarning.Fprintf(x.w, "      %s\n", NoCommitMessage)
			colorWarning.Fprintf(x.w, "      Repository last updated: %s\n", repo.UpdatedRelative)
			continue
		}

		fmt.Fprintf(x.w, "      %s ", b.Commit.Author)
		colorSubtle.Fprintf(x.w, "%s\n", b.Commit.Date)
		fmt.Fprintf(x.w, "      %s\n", b.Commit.Message)
		fmt.Fprint(x.w, "      ")
		colorSHA.Fprint(x.w, b.Commit.ShortSHA)
		if b.Commit.HTMLURL != "" {
			colorSubtle.Fprintf(x.w, "  %s", b.Commit.HTMLURL)
		}
		fmt.Fprintln(x.w)
	}
	fmt.Fprintln(x.w)
}

func (x *Text) writeBranchName(b branchView) {
	if b.IsDefault {
		colorDefault.Fprintf(x.w, "    %s (default)", b.Name)
		return
	}
	fmt.Fprintf(x.w, "    %s", b.Name)
}

func (x *Text) writeFreshness(now, updatedAt time.Time) {
	status := Freshness(now, updatedAt)
	if now.Sub(updatedAt) < time.Minute {
		colorFreshNow.Fprint(x.w, status)
	} else {
		colorSubtle.Fprint(x.w, status)
	}

	fmt.Fprintf(x.w, " • %s", RefreshLabel)
	if x.refreshHint != "" {
		colorSubtle.Fprintf(x.w, ": %s", x.refreshHint)
	}
	fmt.Fprintln(x.w)
}
