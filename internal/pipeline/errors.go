package pipeline

import (
	"context"
	"errors"
	"net/http"

	"github.com/eveporcello/repo-to-presentation/internal/github"
	"github.com/eveporcello/repo-to-presentation/internal/llm"
)

const (
	msgInvalidURL     = "Please provide a valid GitHub repository URL (e.g. https://github.com/owner/repo)"
	msgNotFound       = "Repository not found. Please check the URL and make sure the repository is public."
	msgForbidden      = "Access forbidden. The repository may be private or the GitHub API rate limit has been reached."
	msgFetchPrefix    = "Failed to fetch repository: "
	msgMisconfigured  = "Server configuration error. Please contact the administrator."
	msgUnexpectedType = "Unexpected response type from the generation service"
	msgMalformed      = "Failed to parse the generated run of show. Please try again."
	msgTimeout        = "Request timed out. Please try again."
	msgInternal       = "Failed to generate run of show"
)

// Classify maps a pipeline error to its HTTP status and client-facing
// message. Caller-correctable problems are 400s; everything else is a 5xx.
func Classify(err error) (int, string) {
	var validationErr *ValidationError
	var fetchErr *github.FetchError

	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, github.ErrInvalidURL):
		return http.StatusBadRequest, msgInvalidURL
	case errors.Is(err, github.ErrRepositoryNotFound):
		return http.StatusBadRequest, msgNotFound
	case errors.Is(err, github.ErrAccessForbidden):
		return http.StatusBadRequest, msgForbidden
	case errors.As(err, &fetchErr):
		return http.StatusBadRequest, msgFetchPrefix + fetchErr.Message
	case errors.Is(err, ErrMisconfigured):
		return http.StatusInternalServerError, msgMisconfigured
	case errors.Is(err, llm.ErrUnexpectedResponseType):
		return http.StatusInternalServerError, msgUnexpectedType
	case errors.Is(err, llm.ErrMalformedGeneration):
		return http.StatusInternalServerError, msgMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, msgTimeout
	}
	return http.StatusInternalServerError, msgInternal
}
