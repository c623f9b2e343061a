// Package diag defines the two diagnostic error kinds of the front-end and
// renders them against the source they were raised for.
//
// Parsing and loading never recover: the first [SyntaxError] or
// [SignatureError] aborts the unit. Library code returns these errors as
// values; only the command-line boundary calls [Fatal] to print the
// diagnostic and terminate the process.
package diag

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// SyntaxError is a structural mismatch between what a production or the AST
// text reader expected and what it found.
type SyntaxError struct {
	File string
	Msg  string
	Near string // offending token or word, if any
	Pos  token.Pos
}

// NewSyntaxError returns a SyntaxError at pos.
func NewSyntaxError(pos token.Pos, near, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Near: near, Msg: msg}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder

	writeLocation(&b, e.File, e.Pos)
	b.WriteString(e.Msg)

	if e.Near != "" {
		b.WriteString(" near ")
		b.WriteString(strconv.Quote(e.Near))
	}

	return b.String()
}

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Msg),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.File != "" {
		attrs = append(attrs, slog.String("file", e.File))
	}

	if e.Near != "" {
		attrs = append(attrs, slog.String("near", e.Near))
	}

	return slog.GroupValue(attrs...)
}

// SignatureError reports that the leading fingerprint of an AST text file does
// not match. Word is what was found ("" when the input ended early) and Want
// is the expected line.
type SignatureError struct {
	File string
	Word string
	Want string
	Pos  token.Pos
}

// Error implements the error interface.
func (e *SignatureError) Error() string {
	var b strings.Builder

	writeLocation(&b, e.File, e.Pos)
	b.WriteString("bad signature: ")

	if e.Word == "" {
		b.WriteString("missing ")
		b.WriteString(strconv.Quote(e.Want))
	} else {
		b.WriteString(strconv.Quote(e.Word))
		b.WriteString(", want ")
		b.WriteString(strconv.Quote(e.Want))
	}

	return b.String()
}

// LogValue implements slog.LogValuer.
func (e *SignatureError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", "bad signature"),
		slog.String("word", e.Word),
		slog.String("want", e.Want),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.File != "" {
		attrs = append(attrs, slog.String("file", e.File))
	}

	return slog.GroupValue(attrs...)
}

func writeLocation(b *strings.Builder, file string, pos token.Pos) {
	if file != "" {
		b.WriteString(file)
		b.WriteByte(':')
	}

	if pos.IsValid() {
		b.WriteString(pos.String())
		b.WriteByte(':')
	}

	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}
