package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/controller/server"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

func TestDetachContext(t *testing.T) {
	t.Run("carries logger, request ID and clock", func(t *testing.T) {
		logger := slog.Default().With("component", "refresh")
		ctx := logging.With(context.Background(), logger)
		reqID, ctx := logging.CtxRequestID(ctx)
		fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
		ctx = logging.CtxWithTime(ctx, func() time.Time { return fixedTime })

		bgCtx := server.DetachContext(ctx)

		gt.V(t, logging.From(bgCtx)).Equal(logger)
		inherited, _ := logging.CtxRequestID(bgCtx)
		gt.V(t, inherited).Equal(reqID)
		gt.V(t, logging.CtxTime(bgCtx)).Equal(fixedTime)
	})

	t.Run("survives cancel of request context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		bgCtx := server.DetachContext(ctx)

		cancel()

		gt.V(t, ctx.Err()).Equal(context.Canceled)
		gt.NoError(t, bgCtx.Err())
	})
}
