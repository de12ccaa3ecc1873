package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput means the resume or job description was absent.
	ErrMissingInput = errors.New("both a resume and a job description are required")

	// ErrUnsupportedFormat means the uploaded file is not PDF or DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format: only PDF and DOCX are accepted")

	// ErrNotAResume is the validator's negative verdict: the document does
	// not look like a resume. It halts the pipeline before scoring.
	ErrNotAResume = errors.New("the uploaded document does not appear to be a resume")
)

// ExtractionError means the document bytes could not be decoded as the
// declared format, or decoding produced no text at all.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to read %s document: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
