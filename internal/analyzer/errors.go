package analyzer

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/validity"
)

// ErrEmptyInput indicates no analyzable text was supplied.
type ErrEmptyInput struct {
	Field string
}

func (e *ErrEmptyInput) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ErrInvalidResumeContent indicates text was present but failed the validity
// gate. Reason carries the specific rule that rejected it.
type ErrInvalidResumeContent struct {
	Reason  validity.Reason
	Message string
}

func (e *ErrInvalidResumeContent) Error() string {
	return e.Message
}

// ErrExtractionFailed indicates upstream text extraction did not yield usable
// content. The engine does not re-attempt extraction; callers raise this when
// they detect an unreadable source document.
type ErrExtractionFailed struct {
	Cause error
}

func (e *ErrExtractionFailed) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume text could not be extracted: %v", e.Cause)
	}
	return "resume text could not be extracted from the source document"
}

func (e *ErrExtractionFailed) Unwrap() error {
	return e.Cause
}
