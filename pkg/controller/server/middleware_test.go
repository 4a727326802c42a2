package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("request context has logger and request ID", func(t *testing.T) {
		var captured context.Context
		srv, _, _ := newServer(t, newUseCaseMock())
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			captured = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.True(t, logging.From(captured) != logging.From(context.Background()))
		id1, _ := logging.CtxRequestID(captured)
		id2, _ := logging.CtxRequestID(captured)
		gt.V(t, id1).Equal(id2)
	})

	t.Run("status code passes through", func(t *testing.T) {
		testCases := []struct {
			name string
			code int
		}{
			{name: "ok", code: http.StatusOK},
			{name: "not found", code: http.StatusNotFound},
			{name: "internal error", code: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv, _, _ := newServer(t, newUseCaseMock())
				mux := srv.Mux()
				mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.code)
				})

				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
				gt.V(t, rec.Code).Equal(tc.code)
			})
		}
	})

	t.Run("defaults to 200 when WriteHeader is not called", func(t *testing.T) {
		srv, _, _ := newServer(t, newUseCaseMock())
		mux := srv.Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})
}
