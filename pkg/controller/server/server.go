package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/repopeek/pkg/controller/view"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase, page *view.HTML, session *model.Session) *Server {
	h := &handler{
		uc:      uc,
		page:    page,
		session: session,
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/", h.index)
	r.Get("/settings", h.settings)
	r.Post("/setup", h.setup)
	r.Post("/refresh", h.refresh)
	r.Post("/logout", h.logout)
	r.Post("/repos/{id}/toggle", h.toggle)
	r.Get("/api/repos", h.apiRepos)

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
