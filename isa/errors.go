package isa

import (
	"errors"
	"io/fs"
)

type LoadFailure int

const (
	NotFound LoadFailure = iota
	Unreadable
	Empty
)

func (f LoadFailure) String() string {
	switch f {
	case NotFound:
		return "file not found"
	case Unreadable:
		return "file could not be read"
	case Empty:
		return "no instructions declared"
	}
	return "unknown failure"
}

// SpecLoadError reports why a custom ISA table could not be used.
type SpecLoadError struct {
	Path   string
	Reason LoadFailure
	Err    error
}

func (e *SpecLoadError) Error() string {
	msg := e.Path + ": " + e.Reason.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SpecLoadError) Unwrap() error {
	return e.Err
}

func newReadError(path string, err error) *SpecLoadError {
	if errors.Is(err, fs.ErrNotExist) {
		return &SpecLoadError{Path: path, Reason: NotFound, Err: err}
	}
	return &SpecLoadError{Path: path, Reason: Unreadable, Err: err}
}

// IsLoadFailure reports whether err is a *SpecLoadError with the given reason.
func IsLoadFailure(err error, reason LoadFailure) bool {
	var loadErr *SpecLoadError
	return errors.As(err, &loadErr) && loadErr.Reason == reason
}
