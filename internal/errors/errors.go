// Package errors defines the structured error taxonomy shared by the
// variant, data, and jsoncodec packages.
package errors

import (
	"fmt"
)

// Kind identifies which of the data core's seven failure modes occurred.
type Kind string

const (
	TypeError         Kind = "TypeError"
	ConversionError   Kind = "ConversionError"
	MemberNotExisting Kind = "MemberNotExisting"
	OutOfRange        Kind = "OutOfRange"
	ParseError        Kind = "ParseError"
	FormatError       Kind = "FormatError"
	NumberError       Kind = "NumberError"
)

// Location is the byte offset and line/column a decoder error occurred at.
// The zero value means "no location" (used by non-decoder errors).
type Location struct {
	Offset int
	Line   int
	Column int
}

// DataError is the single error type returned by this module. It never
// wraps a third-party error because the core performs no I/O of its own.
type DataError struct {
	Kind     Kind
	Message  string
	Location Location
	hasLoc   bool
}

func (e *DataError) Error() string {
	if e.hasLoc {
		return fmt.Sprintf("%s: %s (at %d:%d, offset %d)", e.Kind, e.Message, e.Location.Line, e.Location.Column, e.Location.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates a DataError without a source location.
func New(kind Kind, format string, args ...any) *DataError {
	return &DataError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt creates a DataError with a source location, for decoder failures.
func NewAt(kind Kind, loc Location, format string, args ...any) *DataError {
	return &DataError{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc, hasLoc: true}
}

// Is reports whether err is a *DataError of the given kind.
func Is(err error, kind Kind) bool {
	de, ok := err.(*DataError)
	return ok && de.Kind == kind
}

// Conversion builds a ConversionError for a failed Variant conversion.
func Conversion(from, to string) *DataError {
	return New(ConversionError, "cannot convert %s to %s", from, to)
}
