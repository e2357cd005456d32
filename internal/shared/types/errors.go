package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotDirectory          = errors.New("not a directory")
	ErrInvalidMaxDepth       = errors.New("max depth must be zero or greater")
	ErrUnsupportedReportType = errors.New("unsupported report type")
)

// TraversalError reports a directory that could not be listed.
// It aborts the whole scan.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("unable to read directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}
