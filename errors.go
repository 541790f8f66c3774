package tokcmp

import (
	"errors"
	"fmt"
)

type FileErrorKind int

const (
	FileNotFound FileErrorKind = iota + 1
	FileReadError
	FileWriteError
)

func (k FileErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case FileReadError:
		return "read error"
	case FileWriteError:
		return "write error"
	}
	return fmt.Sprintf("FileErrorKind(%d)", int(k))
}

// FileError is returned when reading an input or writing the report fails.
// It stops the analysis before any report is written.
type FileError struct {
	Kind FileErrorKind
	Path string
	err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Path, e.err)
}

func (e FileError) Unwrap() error { return e.err }

// ErrAnnotatorUnavailable is wrapped by AnnotatorError when an annotator
// cannot be initialized.
var ErrAnnotatorUnavailable = errors.New("annotator unavailable")

// AnnotatorError reports an annotator that failed to initialize. Without an
// annotator no analysis is possible.
type AnnotatorError struct {
	Annotator string
	err       error
}

func NewAnnotatorError(annotator string, cause error) AnnotatorError {
	return AnnotatorError{Annotator: annotator, err: cause}
}

func (e AnnotatorError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Annotator, ErrAnnotatorUnavailable, e.err)
}

func (e AnnotatorError) Unwrap() []error {
	return []error{ErrAnnotatorUnavailable, e.err}
}
