package github

import (
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
	"github.com/m-mizutani/repopeek/pkg/utils/safe"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 500 * time.Millisecond
	DefaultMaxDelay   = 10 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
)

type tokenTransport struct {
	token types.GitHubToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "token "+x.token.Reveal())
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", acceptHeader)
	}
	return x.base.RoundTrip(req)
}

type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (x *retryTransport) backoffDelay(attempt int) time.Duration {
	delay := time.Duration(float64(x.baseDelay) * math.Pow(2, float64(attempt)))
	return min(delay, x.maxDelay)
}

// retryAfter parses Retry-After header as seconds or HTTP date
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}
	if sec, err := strconv.Atoi(value); err == nil && sec >= 0 {
		return time.Duration(sec) * time.Second, true
	}
	if at, err := http.ParseTime(value); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

func (x *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		resp, err := x.base.RoundTrip(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !isRetryableStatus(resp.StatusCode) || attempt >= x.maxRetries {
			return resp, nil
		}

		delay := x.backoffDelay(attempt)
		if d, ok := retryAfter(resp, logging.CtxTime(ctx)); ok {
			delay = min(d, x.maxDelay)
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		safe.Close(resp.Body)

		logging.From(ctx).Debug("Retrying GitHub API request",
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"attempt", attempt+1,
			"delay", delay,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
