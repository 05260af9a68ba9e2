package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-screener/internal/analyzer"
)

// HTTPStatus returns the transport status code for an engine error. Input
// problems the caller can fix are 4xx; anything unrecognized is a 500 and must
// never be turned into a fabricated score.
func HTTPStatus(err error) int {
	var emptyInput *analyzer.ErrEmptyInput
	var invalidContent *analyzer.ErrInvalidResumeContent
	var extractionFailed *analyzer.ErrExtractionFailed

	switch {
	case errors.As(err, &emptyInput):
		return http.StatusBadRequest
	case errors.As(err, &invalidContent):
		return http.StatusUnprocessableEntity
	case errors.As(err, &extractionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the message safe to relay to callers. User-input-class
// failures keep their specific message; internal faults get a generic one.
func publicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "analysis failed due to an internal error"
	}
	return err.Error()
}
