package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/repopeek/pkg/controller/view"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/errutil"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

type handler struct {
	uc      interfaces.UseCase
	page    *view.HTML
	session *model.Session
}

func (x *handler) index(w http.ResponseWriter, r *http.Request) {
	if x.session.Token() != "" && !x.page.Loaded() {
		x.load(r, false)
	}

	x.writePage(w, r, false)
}

func (x *handler) settings(w http.ResponseWriter, r *http.Request) {
	x.writePage(w, r, true)
}

func (x *handler) writePage(w http.ResponseWriter, r *http.Request, setup bool) {
	ctx := r.Context()

	var buf bytes.Buffer
	input := view.PageInput{
		Session:  x.session,
		Settings: x.uc.GetSettings(ctx),
		Setup:    setup,
	}
	if err := x.page.WritePage(ctx, &buf, input); err != nil {
		errutil.HandleError(ctx, "failed to render page", err)
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, http.StatusOK, buf.Bytes())
}

func (x *handler) setup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		safeWrite(w, http.StatusBadRequest, []byte("invalid form"))
		return
	}

	count := 0
	if v := r.PostForm.Get("repos"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			safeWrite(w, http.StatusBadRequest, []byte("invalid repository count"))
			return
		}
		count = n
	}

	input := &model.SetupInput{
		Token:           types.GitHubToken(r.PostForm.Get("token")),
		RepositoryCount: count,
		Session:         x.session,
		Progress:        x.page.SetProgress,
	}
	if _, err := x.uc.SetupCredentials(ctx, input); err != nil {
		x.handleLoadError(r, err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (x *handler) refresh(w http.ResponseWriter, r *http.Request) {
	if x.session.Token() == "" {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	// Load continues after the redirect
	bg := r.WithContext(DetachContext(r.Context()))
	go x.load(bg, true)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (x *handler) load(r *http.Request, fresh bool) {
	ctx := r.Context()

	input := &model.LoadInput{
		Token:      x.session.Token(),
		ForceFresh: fresh,
		Session:    x.session,
		Progress:   x.page.SetProgress,
	}
	if _, err := x.uc.LoadRepositories(ctx, input); err != nil {
		x.handleLoadError(r, err)
		return
	}
	x.page.SetError("")
}

func (x *handler) handleLoadError(r *http.Request, err error) {
	ctx := r.Context()
	x.page.SetError(model.UserMessage(err))

	switch {
	case errors.Is(err, types.ErrInvalidToken), errors.Is(err, types.ErrInvalidOption):
		logging.From(ctx).Warn("failed to load repositories", slog.Any("error", err))
	default:
		var apiErr *types.APIError
		if errors.As(err, &apiErr) {
			logging.From(ctx).Warn("GitHub API error", slog.Any("error", err))
			return
		}
		errutil.HandleError(ctx, "failed to load repositories", err)
	}
}

func (x *handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		safeWrite(w, http.StatusBadRequest, []byte("invalid repository id"))
		return
	}

	expanded := x.session.Toggle(types.RepoID(id))
	logging.From(r.Context()).Debug("toggled repository",
		slog.Int64("id", id),
		slog.Bool("expanded", expanded),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (x *handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := x.uc.Logout(ctx); err != nil {
		errutil.HandleError(ctx, "failed to logout", err)
		safeWrite(w, http.StatusInternalServerError, []byte("failed to logout"))
		return
	}
	x.session.SetToken("")
	x.page.Reset()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (x *handler) apiRepos(w http.ResponseWriter, r *http.Request) {
	raw, err := json.Marshal(x.page.Snapshot())
	if err != nil {
		errutil.HandleError(r.Context(), "failed to marshal snapshot", err)
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, http.StatusOK, raw)
}
