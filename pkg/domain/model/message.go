package model

import (
	"errors"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

const (
	InvalidTokenMessage = "Invalid token. Please enter a valid GitHub token."
	EmptyStateMessage   = "No repositories found"
)

// UserMessage converts an error of LoadRepositories into the message shown to the user
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, types.ErrInvalidToken) {
		return InvalidTokenMessage
	}

	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return "Error loading repositories: " + apiErr.Error()
	}
	return "Error loading repositories: " + err.Error()
}
