package github

import (
	"context"
	"errors"
	"net/http"

	gogithub "github.com/google/go-github/v69/github"
)

var (
	ErrInvalidURL         = errors.New("invalid GitHub repository URL")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrAccessForbidden    = errors.New("access forbidden")
)

// FetchError is any other failure of the GitHub API while reading
// repository metadata.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return "fetching repository: " + e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

// classifyError maps a go-github error onto the fetcher's error kinds.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var rateErr *gogithub.RateLimitError
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return errors.Join(ErrAccessForbidden, err)
	}

	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Join(ErrRepositoryNotFound, err)
		case http.StatusForbidden, http.StatusTooManyRequests, http.StatusUnauthorized:
			return errors.Join(ErrAccessForbidden, err)
		}
		msg := respErr.Message
		if msg == "" {
			msg = http.StatusText(respErr.Response.StatusCode)
		}
		return &FetchError{Message: msg, Err: err}
	}

	return &FetchError{Message: err.Error(), Err: err}
}
