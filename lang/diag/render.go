package diag

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// Excerpt returns the 1-based line of src followed by a caret under the
// 1-based rune column col:
//
//	  3 | x = 5 * - 3;
//	              ^
//
// Tabs before the column are copied so the caret lines up however the
// terminal expands them. Wide runes are padded by their display width.
// Excerpt returns "" when line is out of range.
func Excerpt(src []byte, line, col int) string {
	text, ok := sourceLine(src, line)
	if !ok {
		return ""
	}

	num := strconv.Itoa(line)

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(num)
	b.WriteString(" | ")
	b.WriteString(text)
	b.WriteByte('\n')

	// 2 leading spaces + " | "
	b.WriteString(strings.Repeat(" ", len(num)+5))
	b.WriteString(caretPadding(text, col))
	b.WriteString("^\n")

	return b.String()
}

// sourceLine finds the n-th line of src by counting newline bytes.
func sourceLine(src []byte, n int) (string, bool) {
	if n < 1 {
		return "", false
	}

	for i := 1; i < n; i++ {
		j := bytes.IndexByte(src, '\n')
		if j < 0 {
			return "", false
		}

		src = src[j+1:]
	}

	if j := bytes.IndexByte(src, '\n'); j >= 0 {
		src = src[:j]
	}

	return string(bytes.TrimSuffix(src, []byte{'\r'})), true
}

func caretPadding(text string, col int) string {
	var b strings.Builder

	for i := 1; i < col && text != ""; i++ {
		r, size := utf8.DecodeRuneInString(text)
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", max(1, uniseg.StringWidth(text[:size]))))
		}

		text = text[size:]
	}

	return b.String()
}

// Render writes err to w. Syntax and signature errors are printed as
// "file:line:col: kind: message" followed by an [Excerpt] of src; any other
// error is printed as "error: message". Styling is applied only when w is a
// terminal.
func Render(w io.Writer, src []byte, err error) error {
	if err == nil {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	caret := r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	where := r.NewStyle().Bold(true)

	var (
		file, kind, msg string
		pos             token.Pos
	)

	var (
		se  *SyntaxError
		sig *SignatureError
	)

	switch {
	case errors.As(err, &se):
		file, pos, kind = se.File, se.Pos, "syntax error"
		msg = (&SyntaxError{Msg: se.Msg, Near: se.Near}).Error()
	case errors.As(err, &sig):
		file, pos, kind = sig.File, sig.Pos, "bad signature"
		msg = strings.TrimPrefix(
			(&SignatureError{Word: sig.Word, Want: sig.Want}).Error(),
			"bad signature: ",
		)
	default:
		_, werr := io.WriteString(w, label.Render("error:")+" "+err.Error()+"\n")

		return werr
	}

	var head strings.Builder

	writeLocation(&head, file, pos)

	var b strings.Builder

	if head.Len() > 0 {
		b.WriteString(where.Render(strings.TrimSuffix(head.String(), " ")))
		b.WriteByte(' ')
	}

	b.WriteString(label.Render(kind + ":"))
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')

	if ex := Excerpt(src, pos.Line, pos.Column); ex != "" {
		b.WriteString(ex[:len(ex)-2])
		b.WriteString(caret.Render("^"))
		b.WriteByte('\n')
	}

	_, werr := io.WriteString(w, b.String())

	return werr
}

// Fatal renders err against src and calls exit(1). It is meant to be called
// once, at the outermost boundary of a command.
func Fatal(w io.Writer, exit func(int), src []byte, err error) {
	_ = Render(w, src, err)

	exit(1)
}
