package ini

import (
	"errors"
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies the class of an [Error].
type Kind int

const (
	KindUnknown         Kind = iota
	KindMalformedNode        // a node line has no '=' delimiter
	KindMalformedHeader      // a header line lacks '[' or ']'
	KindEmptyNodeValue       // a value was requested from a node whose value is blank
	KindCastNotAllowed       // the deserializer may not produce the requested type
	KindHeaderNotFound       // no nodes were ever recorded under the header
	KindNodeNotFound         // the header has no node with the requested name
	KindInvalidValue         // the value text does not parse as the requested type
	KindUnsupportedType      // no conversion is known for the Go type
)

var kindMessages = map[Kind]string{
	KindUnknown:         "unknown error",
	KindMalformedNode:   "malformed node",
	KindMalformedHeader: "malformed header",
	KindEmptyNodeValue:  "empty node value",
	KindCastNotAllowed:  "cast not allowed",
	KindHeaderNotFound:  "header not found",
	KindNodeNotFound:    "node not found",
	KindInvalidValue:    "invalid value",
	KindUnsupportedType: "unsupported type",
}

// Sentinel errors for use with errors.Is. Any *Error matches the sentinel
// of the same Kind, regardless of its line, text or cause.
var (
	ErrMalformedNode   = &Error{Kind: KindMalformedNode}
	ErrMalformedHeader = &Error{Kind: KindMalformedHeader}
	ErrEmptyNodeValue  = &Error{Kind: KindEmptyNodeValue}
	ErrCastNotAllowed  = &Error{Kind: KindCastNotAllowed}
	ErrHeaderNotFound  = &Error{Kind: KindHeaderNotFound}
	ErrNodeNotFound    = &Error{Kind: KindNodeNotFound}
	ErrInvalidValue    = &Error{Kind: KindInvalidValue}
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType}
)

// Error is the error type returned by every parse and conversion failure
// in this package.
type Error struct {
	Kind Kind
	Line int    // 1-based source line, or 0 when not produced while parsing a document
	Text string // the offending text, if any
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	return "ini: " + e.message()
}

// message renders the error without the package prefix so that wrapping
// errors can embed it.
func (e *Error) message() string {
	msg, ok := kindMessages[e.Kind]
	if !ok {
		msg = e.Kind.String()
	}
	if e.Line > 0 {
		msg = "line " + strconv.Itoa(e.Line) + ": " + msg
	}
	if e.Text != "" {
		msg += ": " + strconv.Quote(e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// castError reports that a deserializer declared for from may not be used
// to produce to.
func castError(from, to reflect.Type) *Error {
	return &Error{Kind: KindCastNotAllowed, Text: from.String() + " -> " + to.String()}
}

// A DecodeError describes a failure to store a node value into a struct
// field during Unmarshal.
type DecodeError struct {
	Section string
	Key     string
	Type    reflect.Type
	Err     error
}

func (e *DecodeError) Error() string {
	msg := "ini: cannot decode [" + e.Section + "] " + e.Key + " into Go value of type " + e.Type.String()
	if e.Err == nil {
		return msg
	}
	var ie *Error
	if errors.As(e.Err, &ie) {
		return msg + ": " + ie.message()
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// A MarshalerError represents an error from calling a MarshalText method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "ini: error calling MarshalText for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
