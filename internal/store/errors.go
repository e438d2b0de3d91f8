package store

import (
	"errors"
	"fmt"
)

// Kind classifies a storage failure.
type Kind int

const (
	KindInit  Kind = iota + 1 // schema creation or connection setup
	KindWrite                 // insert failed
	KindRead                  // query or scan failed
)

func (k Kind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindWrite:
		return "write"
	case KindRead:
		return "read"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every Store method.
type Error struct {
	Kind    Kind
	Op      string // store operation, e.g. "save catch"
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s store %s (%s): %v", e.Backend, e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a store *Error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == k
	}
	return false
}
