package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get for a path with no document.
var ErrNotFound = errors.New("document not found")

// WriteError reports a failed save or commit. The caller's local state is
// untouched and the operation may be retried.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write failed for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError reports a failed point read or subscription fetch.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store read failed for %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
