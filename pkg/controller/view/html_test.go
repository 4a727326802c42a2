package view_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/controller/view"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

func TestHTMLSetupView(t *testing.T) {
	page := view.NewHTML()

	var buf bytes.Buffer
	gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{
		Session:  model.NewSession(""),
		Settings: model.DefaultSettings(),
	}))

	out := buf.String()
	gt.S(t, out).Contains(`action="/setup"`)
	gt.S(t, out).Contains(`value="10"`)
	gt.False(t, strings.Contains(out, "Refresh now"))
}

func TestHTMLMainView(t *testing.T) {
	page := view.NewHTML()
	session := model.NewSession("t")

	t.Run("loading before render", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))
		gt.S(t, buf.String()).Contains("Loading repositories")
		gt.False(t, page.Loaded())
	})

	page.RenderUser(ctxNow(), &model.User{Login: "octocat"})
	page.RenderRepositories(ctxNow(), []*model.Repository{sampleRepository()}, now.Add(-10*time.Minute))

	t.Run("collapsed", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))

		out := buf.String()
		gt.S(t, out).Contains("<h1>octocat</h1>")
		gt.S(t, out).Contains("+1 more branches")
		gt.S(t, out).Contains("Last updated 10 minutes ago")
		gt.S(t, out).Contains("Refresh now")
		gt.S(t, out).Contains(`action="/repos/1/toggle"`)
		gt.True(t, page.Loaded())
	})

	t.Run("expanded", func(t *testing.T) {
		session.Toggle(1)
		var buf bytes.Buffer
		gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))

		out := buf.String()
		gt.S(t, out).Contains("No commit information available")
		gt.S(t, out).Contains("Repository last updated: 2d ago")
		gt.S(t, out).Contains("0123456")
		gt.S(t, out).Contains("https://github.com/octocat/alpha/commit/0123456789abcdef")
	})

	t.Run("error message", func(t *testing.T) {
		page.SetError(model.InvalidTokenMessage)
		var buf bytes.Buffer
		gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))
		gt.S(t, buf.String()).Contains("Invalid token. Please enter a valid GitHub token.")
	})
}

func TestHTMLEmpty(t *testing.T) {
	page := view.NewHTML()
	page.RenderRepositories(ctxNow(), nil, now)

	var buf bytes.Buffer
	gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: model.NewSession("t")}))
	gt.S(t, buf.String()).Contains("No repositories found")
}

func TestHTMLSnapshot(t *testing.T) {
	page := view.NewHTML()
	snapshot := page.Snapshot()
	gt.False(t, snapshot.Loaded)
	gt.A(t, snapshot.Repositories).Length(0)
	gt.True(t, snapshot.UpdatedAt == nil)

	page.RenderRepositories(ctxNow(), []*model.Repository{sampleRepository()}, now)
	snapshot = page.Snapshot()
	gt.True(t, snapshot.Loaded)
	gt.A(t, snapshot.Repositories).Length(1)
	gt.True(t, snapshot.UpdatedAt.Equal(now))

	page.Reset()
	gt.False(t, page.Snapshot().Loaded)
}

func TestHTMLProgress(t *testing.T) {
	page := view.NewHTML()
	session := model.NewSession("t")

	page.SetProgress(model.Progress{State: types.LoadStateEnrichingBranches, Title: "Processing repository 2 of 5", Current: 2, Total: 5})
	var buf bytes.Buffer
	gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))
	gt.S(t, buf.String()).Contains("Processing repository 2 of 5 (2/5)")

	page.SetProgress(model.Progress{State: types.LoadStateDone})
	buf.Reset()
	gt.NoError(t, page.WritePage(ctxNow(), &buf, view.PageInput{Session: session}))
	gt.False(t, strings.Contains(buf.String(), "Processing repository"))
}
