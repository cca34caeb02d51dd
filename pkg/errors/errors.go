// Package errors provides structured error handling for the Toga toolkit.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMembership indicates a reference to a row or value that is not a
	// member of the source it was looked up in.
	KindMembership
	// KindType indicates a value that violates a declared type contract.
	KindType
	// KindIndex indicates an index outside the valid range of a source.
	KindIndex
	// KindBackend indicates a backend registration or bridge error.
	KindBackend
	// KindConfig indicates a configuration or stylesheet error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindMembership:
		return "membership"
	case KindType:
		return "type"
	case KindIndex:
		return "index"
	case KindBackend:
		return "backend"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ErrIndexOutOfRange is returned when an index falls outside a source's
// valid range.
var ErrIndexOutOfRange = errors.New("index out of range")

// TogaError represents a structured error in the Toga toolkit.
type TogaError struct {
	// Op is the operation that failed (e.g., "sources.ListSource.Insert").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *TogaError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TogaError) Unwrap() error {
	return e.Err
}

// MembershipError reports a row or value that is not a member of the source
// an operation was addressed to.
type MembershipError struct {
	// Source describes the container that was searched.
	Source string
	// Value is the value or row that was not found.
	Value any
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("%v is not a member of %s", e.Value, e.Source)
}

// TypeError reports an externally supplied value of the wrong type.
type TypeError struct {
	// Expected describes the accepted types.
	Expected string
	// Got is the value that was supplied.
	Got any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %T", e.Expected, e.Got)
}

// New wraps err as a TogaError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *TogaError {
	return &TogaError{Op: op, Kind: kind, Err: err}
}

// IsMembership reports whether err is (or wraps) a MembershipError.
func IsMembership(err error) bool {
	var me *MembershipError
	return errors.As(err, &me)
}

// IsType reports whether err is (or wraps) a TypeError.
func IsType(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}
