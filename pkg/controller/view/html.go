package view

import (
	"context"
	"embed"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HTML keeps the latest rendered state and writes it as a web page on request
type HTML struct {
	mu        sync.RWMutex
	user      *model.User
	repos     []*model.Repository
	updatedAt time.Time
	loaded    bool
	errMsg    string
	progress  *model.Progress
}

var _ interfaces.Renderer = (*HTML)(nil)

func NewHTML() *HTML {
	return &HTML{}
}

func (x *HTML) RenderUser(ctx context.Context, user *model.User) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.user = user
}

func (x *HTML) RenderRepositories(ctx context.Context, repos []*model.Repository, updatedAt time.Time) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.repos = repos
	x.updatedAt = updatedAt
	x.loaded = true
	x.errMsg = ""
}

// SetError sets message shown on top of the page. Empty message clears it.
func (x *HTML) SetError(msg string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.errMsg = msg
}

// SetProgress records progress of running load. Progress is hidden once load is done or failed.
func (x *HTML) SetProgress(p model.Progress) {
	x.mu.Lock()
	defer x.mu.Unlock()

	switch p.State {
	case types.LoadStateDone, types.LoadStateFailed, types.LoadStateIdle:
		x.progress = nil
	default:
		x.progress = &p
	}
}

// Loaded returns true once repositories have been rendered
func (x *HTML) Loaded() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.loaded
}

// Reset drops rendered state, e.g. after logout
func (x *HTML) Reset() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.user = nil
	x.repos = nil
	x.updatedAt = time.Time{}
	x.loaded = false
	x.errMsg = ""
	x.progress = nil
}

type PageInput struct {
	Session  *model.Session
	Settings model.Settings
	// Setup forces setup view even if token is configured
	Setup bool
}

type pageData struct {
	Setup     bool
	HasToken  bool
	Header    string
	User      *model.User
	Loaded    bool
	Repos     []repoView
	Empty     string
	Error     string
	Freshness string
	Fresh     bool
	Refresh   string
	Settings  model.Settings
	Progress  *model.Progress
}

// WritePage writes setup view or main view
func (x *HTML) WritePage(ctx context.Context, w io.Writer, input PageInput) error {
	x.mu.RLock()
	defer x.mu.RUnlock()

	now := logging.CtxTime(ctx)
	hasToken := input.Session != nil && input.Session.Token() != ""

	data := pageData{
		Setup:    input.Setup || !hasToken,
		HasToken: hasToken,
		Header:   "My Repositories",
		User:     x.user,
		Loaded:   x.loaded,
		Error:    x.errMsg,
		Refresh:  RefreshLabel,
		Settings: input.Settings,
		Progress: x.progress,
	}
	if x.user != nil {
		data.Header = x.user.DisplayName()
	}

	if x.loaded {
		isExpanded := func(id types.RepoID) bool {
			return input.Session != nil && input.Session.IsExpanded(id)
		}
		data.Repos = newRepoViews(now, x.repos, isExpanded)
		if len(x.repos) == 0 {
			data.Empty = model.EmptyStateMessage
		}
		data.Freshness = Freshness(now, x.updatedAt)
		data.Fresh = now.Sub(x.updatedAt) < time.Minute
	}

	if err := pageTemplate.ExecuteTemplate(w, "page.html", data); err != nil {
		return goerr.Wrap(err, "failed to render page")
	}
	return nil
}

// Snapshot is JSON form of the current state
type Snapshot struct {
	User         *model.User         `json:"user,omitempty"`
	Repositories []*model.Repository `json:"repositories"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
	Loaded       bool                `json:"loaded"`
	Error        string              `json:"error,omitempty"`
}

func (x *HTML) Snapshot() *Snapshot {
	x.mu.RLock()
	defer x.mu.RUnlock()

	snapshot := &Snapshot{
		User:         x.user,
		Repositories: x.repos,
		Loaded:       x.loaded,
		Error:        x.errMsg,
	}
	if snapshot.Repositories == nil {
		snapshot.Repositories = []*model.Repository{}
	}
	if x.loaded {
		updatedAt := x.updatedAt
		snapshot.UpdatedAt = &updatedAt
	}
	return snapshot
}
