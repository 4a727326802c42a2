package server

import (
	"context"

	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

// DetachContext returns a background context carrying logger, request ID and time function of ctx.
// Used for loads that must outlive the HTTP request.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))
	bgCtx = logging.InheritContextValues(bgCtx, ctx)

	return bgCtx
}
