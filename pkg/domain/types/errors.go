package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidToken      = goerr.New("invalid GitHub token")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrValidationFailed  = goerr.New("validation failed")
)

// APIError represents non-success response from GitHub API. StatusCode 0 means the request did not reach GitHub.
type APIError struct {
	StatusCode int
}

func (x *APIError) Error() string {
	if x.StatusCode == 0 {
		return "GitHub API error: network failure"
	}
	return fmt.Sprintf("GitHub API error: %d", x.StatusCode)
}
