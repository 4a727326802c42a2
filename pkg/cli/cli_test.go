package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/cli"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

const commitJSON = `{
	"sha": "0123456789abcdef",
	"html_url": "https://github.com/octocat/alpha/commit/0123456789abcdef",
	"commit": {
		"message": "Add feature",
		"author": {"name": "Octo Cat", "email": "octo@example.com", "date": "2024-06-01T00:00:00Z"}
	},
	"author": {"login": "octocat"}
}`

// newFakeGitHub serves one repository with one branch. requests counts API calls.
func newFakeGitHub(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		if r.Header.Get("Authorization") != "token ghp_valid" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Bad credentials"}`)
			return
		}
		fmt.Fprint(w, `{"id":1,"login":"octocat","name":"The Octocat"}`)
	})
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		fmt.Fprint(w, `[{"id":100,"name":"alpha","full_name":"octocat/alpha","default_branch":"main","updated_at":"2024-06-01T00:00:00Z"}]`)
	})
	mux.HandleFunc("GET /repos/{owner}/{repo}/branches", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		fmt.Fprint(w, `[{"name":"main","commit":{"sha":"0123456789abcdef"}}]`)
	})
	mux.HandleFunc("GET /repos/{owner}/{repo}/commits/{sha}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		fmt.Fprint(w, commitJSON)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type testCLI struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	global []string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	color.NoColor = true
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("REPOPEEK_GITHUB_TOKEN", "")

	dir := t.TempDir()
	return &testCLI{
		global: []string{
			"repopeek",
			"--cache-driver", "sqlite",
			"--cache-path", filepath.Join(dir, "cache.db"),
			"--token-file", filepath.Join(dir, "token"),
		},
	}
}

func (x *testCLI) run(args ...string) error {
	x.stdout.Reset()
	x.stderr.Reset()
	argv := append(append([]string{}, x.global...), args...)
	return cli.New(cli.WithOutput(&x.stdout, &x.stderr), cli.WithEnvFile("")).Run(argv)
}

func TestList(t *testing.T) {
	var requests int32
	srv := newFakeGitHub(t, &requests)
	c := newTestCLI(t)
	baseURL := srv.URL + "/"

	t.Run("fetch with token flag", func(t *testing.T) {
		gt.NoError(t, c.run("list", "--token", "ghp_valid", "--github-base-url", baseURL, "--expand"))

		out := c.stdout.String()
		gt.S(t, out).Contains("The Octocat (@octocat)")
		gt.S(t, out).Contains("alpha")
		gt.S(t, out).Contains("main (default)")
		gt.S(t, out).Contains("Add feature")
		gt.S(t, out).Contains("0123456")
		gt.S(t, out).Contains("Refresh now: repopeek list --fresh")
		gt.True(t, atomic.LoadInt32(&requests) > 0)
	})

	t.Run("second run uses cache", func(t *testing.T) {
		atomic.StoreInt32(&requests, 0)
		gt.NoError(t, c.run("list", "--token", "ghp_valid", "--github-base-url", baseURL))

		gt.S(t, c.stdout.String()).Contains("alpha")
		gt.V(t, atomic.LoadInt32(&requests)).Equal(int32(0))
	})

	t.Run("fresh run fetches again", func(t *testing.T) {
		atomic.StoreInt32(&requests, 0)
		gt.NoError(t, c.run("list", "--fresh", "--token", "ghp_valid", "--github-base-url", baseURL))

		gt.True(t, atomic.LoadInt32(&requests) > 0)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := c.run("list", "--fresh", "--token", "ghp_wrong", "--github-base-url", baseURL)
		gt.True(t, errors.Is(err, types.ErrInvalidToken))
		gt.S(t, c.stderr.String()).Contains("Invalid token. Please enter a valid GitHub token.")
	})

	t.Run("no token configured", func(t *testing.T) {
		err := c.run("list", "--github-base-url", baseURL)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid branch mode", func(t *testing.T) {
		err := c.run("list", "--token", "ghp_valid", "--branch-mode", "some")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestToken(t *testing.T) {
	var requests int32
	srv := newFakeGitHub(t, &requests)
	c := newTestCLI(t)
	baseURL := srv.URL + "/"

	gt.NoError(t, c.run("token", "set", "ghp_valid"))
	gt.S(t, c.stdout.String()).Contains("Token saved")

	// Stored token is used when no flag is given
	gt.NoError(t, c.run("list", "--github-base-url", baseURL))
	gt.S(t, c.stdout.String()).Contains("alpha")

	gt.NoError(t, c.run("token", "clear"))
	err := c.run("list", "--github-base-url", baseURL)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestSettings(t *testing.T) {
	c := newTestCLI(t)

	gt.NoError(t, c.run("settings", "show"))
	gt.V(t, strings.TrimSpace(c.stdout.String())).Equal("Repositories to load: 10")

	gt.NoError(t, c.run("settings", "set", "--repos", "25"))
	gt.NoError(t, c.run("settings", "show"))
	gt.V(t, strings.TrimSpace(c.stdout.String())).Equal("Repositories to load: 25")

	gt.NoError(t, c.run("settings", "set", "--repos", "500"))
	gt.V(t, strings.TrimSpace(c.stdout.String())).Equal("Repositories to load: 100")
}

func TestCacheClear(t *testing.T) {
	var requests int32
	srv := newFakeGitHub(t, &requests)
	c := newTestCLI(t)
	baseURL := srv.URL + "/"

	gt.NoError(t, c.run("list", "--token", "ghp_valid", "--github-base-url", baseURL))
	gt.NoError(t, c.run("cache", "clear"))
	gt.S(t, c.stdout.String()).Contains("Cache cleared")

	atomic.StoreInt32(&requests, 0)
	gt.NoError(t, c.run("list", "--token", "ghp_valid", "--github-base-url", baseURL))
	gt.True(t, atomic.LoadInt32(&requests) > 0)
}
