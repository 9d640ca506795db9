package client

import (
	"errors"
	"fmt"

	"github.com/zielmicha/satori-cli/internal/session"
)

// ErrNotLoggedIn mirrors session.ErrNotLoggedIn for callers that only
// import client.
var ErrNotLoggedIn = session.ErrNotLoggedIn

// ErrInvalidCredentials is returned when the login POST does not answer
// with the redirect the platform uses as its success signal.
var ErrInvalidCredentials = errors.New("invalid login")

// ResolutionError reports a query no listing entry matched. It is never
// cached, so a corrected query on the next run starts clean.
type ResolutionError struct {
	Kind  string // "contest", "problem", "submit problem"
	Query string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no %s %q found", e.Kind, e.Query)
}

// SubmissionRejectedError reports a submit response that was not the
// expected redirect. The raw body is saved for inspection.
type SubmissionRejectedError struct {
	Status   string
	DiagPath string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("submission rejected (%s) - server response saved to %s", e.Status, e.DiagPath)
}
