package cmd

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
)

// Error represents a CLI command error with structured logging support.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.err == nil && t.msg != "" && t.msg == e.msg
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

var (
	ErrNoSources      = NewError("no source files matched")
	ErrBadPattern     = NewError("invalid source pattern")
	ErrOpenSource     = NewError("open source")
	ErrWriteOutput    = NewError("write output")
	ErrOutputConflict = NewError("conflicting output paths")
	ErrStdoutMulti    = NewError("standard output requires exactly one source")
	ErrNotCanonical   = NewError("input is not in canonical form")
	ErrInvalidFormat  = NewError("invalid format")
	ErrWriteConfig    = NewError("write configuration file")
	ErrFileExists     = NewError("file exists (use --force to overwrite)")
)

// SourceError carries the source text a diagnostic was raised against, so
// the command-line boundary can render the offending line.
type SourceError struct {
	Source []byte
	Err    error
}

func (e *SourceError) Error() string { return e.Err.Error() }

func (e *SourceError) Unwrap() error { return e.Err }

// withSource attaches src to err if err carries a diagnostic.
func withSource(err error, src []byte) error {
	var (
		se  *diag.SyntaxError
		sig *diag.SignatureError
	)

	if errors.As(err, &se) || errors.As(err, &sig) {
		return &SourceError{Source: src, Err: err}
	}

	return err
}
