package gradcheck

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTableNotFound indicates the document holds no table element.
var ErrTableNotFound = errors.New("target table not found")

// ErrInvalidFormat indicates the input could not be read as HTML.
var ErrInvalidFormat = errors.New("invalid html document")

// NotFoundError reports a document without any table element.
type NotFoundError struct {
	// Source names the input (file name, "upload", ...), may be empty.
	Source string
}

func (e *NotFoundError) Error() string {
	if e.Source == "" {
		return ErrTableNotFound.Error()
	}
	return fmt.Sprintf("%s in %q", ErrTableNotFound, e.Source)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTableNotFound
}

// ExtractionError represents an error during one pipeline stage.
type ExtractionError struct {
	Stage string // "decode", "document"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error (%s): %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(stage string, err error) *ExtractionError {
	return &ExtractionError{
		Stage: stage,
		Err:   err,
	}
}
