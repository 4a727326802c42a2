package types

import "log/slog"

type (
	GitHubToken string
	RepoID      int64
	BranchName  string
	CommitSHA   string
)

// DefaultBranchName is used when a repository does not report its default branch
const DefaultBranchName BranchName = "main"

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// Reveal returns raw token value for Authorization header
func (x GitHubToken) Reveal() string {
	return string(x)
}

func (x BranchName) String() string { return string(x) }
func (x CommitSHA) String() string  { return string(x) }

// Short returns first 7 characters of commit SHA
func (x CommitSHA) Short() string {
	if len(x) <= 7 {
		return string(x)
	}
	return string(x[:7])
}
