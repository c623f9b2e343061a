// Package lexer turns source text into the token sequence consumed by the
// parser.
//
// The sequence is always terminated by exactly one [token.EOF] token that
// carries the end-of-input position. Every identifier is interned in the
// supplied [names.Table] and the token records its id.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/lang/names"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// Scan tokenizes src. A nil table is replaced by a fresh one.
func Scan(src []byte, tab *names.Table) ([]token.Token, error) {
	if tab == nil {
		tab = new(names.Table)
	}

	s := scanner{
		src:   src,
		names: tab,
		line:  1,
		col:   1,
		toks:  make([]token.Token, 0, len(src)/3+1),
	}

	for {
		if err := s.skipSpaceAndComments(); err != nil {
			return nil, err
		}

		if s.eof() {
			s.toks = append(s.toks, token.Token{Kind: token.EOF, Pos: s.pos()})

			return s.toks, nil
		}

		tok, err := s.next()
		if err != nil {
			return nil, err
		}

		s.toks = append(s.toks, tok)
	}
}

type scanner struct {
	src   []byte
	names *names.Table
	toks  []token.Token
	off   int
	line  int
	col   int
}

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) pos() token.Pos { return token.Pos{Line: s.line, Column: s.col} }

func (s *scanner) peek() rune {
	if s.eof() {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRune(s.src[s.off:])

	return r
}

func (s *scanner) peekByte(n int) byte {
	if s.off+n >= len(s.src) {
		return 0
	}

	return s.src[s.off+n]
}

func (s *scanner) advance() rune {
	r, size := utf8.DecodeRune(s.src[s.off:])
	s.off += size

	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	return r
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.advance()
	}
}

func (s *scanner) skipSpaceAndComments() error {
	for {
		s.skipSpace()

		switch {
		case s.peekByte(0) == '/' && s.peekByte(1) == '/':
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}

		case s.peekByte(0) == '/' && s.peekByte(1) == '*':
			start := s.pos()

			s.advance()
			s.advance()

			for {
				if s.eof() {
					return diag.NewSyntaxError(start, "/*", "unterminated comment")
				}

				if s.peekByte(0) == '*' && s.peekByte(1) == '/' {
					s.advance()
					s.advance()

					break
				}

				s.advance()
			}

		default:
			return nil
		}
	}
}

func (s *scanner) next() (token.Token, error) {
	pos := s.pos()
	r := s.peek()

	switch {
	case isDigit(r):
		return s.scanNumber(pos)

	case r == '\'':
		return s.scanChar(pos)

	case isIdentStart(r):
		return s.scanWord(pos), nil
	}

	switch r {
	case ',':
		s.advance()

		return token.Token{Kind: token.Separator, Sep: token.Comma, Pos: pos}, nil
	case ';':
		s.advance()

		return token.Token{Kind: token.Separator, Sep: token.Semicolon, Pos: pos}, nil
	case '(':
		s.advance()

		return token.Token{Kind: token.Bracket, Brace: token.LeftRound, Pos: pos}, nil
	case ')':
		s.advance()

		return token.Token{Kind: token.Bracket, Brace: token.RightRound, Pos: pos}, nil
	case '{':
		s.advance()

		return token.Token{Kind: token.Bracket, Brace: token.LeftCurly, Pos: pos}, nil
	case '}':
		s.advance()

		return token.Token{Kind: token.Bracket, Brace: token.RightCurly, Pos: pos}, nil
	}

	// Longest match: every operator is one or two bytes.
	if s.off+2 <= len(s.src) {
		if op, ok := token.LookupOp(string(s.src[s.off : s.off+2])); ok {
			s.advance()
			s.advance()

			return token.Token{Kind: token.Operator, Op: op, Text: op.String(), Pos: pos}, nil
		}
	}

	if op, ok := token.LookupOp(string(r)); ok {
		s.advance()

		return token.Token{Kind: token.Operator, Op: op, Text: op.String(), Pos: pos}, nil
	}

	return token.Token{}, diag.NewSyntaxError(pos, string(r), "unexpected character")
}

func (s *scanner) scanNumber(pos token.Pos) (token.Token, error) {
	start := s.off

	for isDigit(s.peek()) {
		s.advance()
	}

	double := false
	if s.peekByte(0) == '.' && isDigit(rune(s.peekByte(1))) {
		double = true

		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.src[start:s.off])
	tok := token.Token{Kind: token.Number, Text: text, Pos: pos}

	if double {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, diag.NewSyntaxError(pos, text, "number out of range")
		}

		tok.Num = token.DoubleValue(f)

		return tok, nil
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, diag.NewSyntaxError(pos, text, "number out of range")
	}

	tok.Num = token.IntValue(n)

	return tok, nil
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
}

func (s *scanner) scanChar(pos token.Pos) (token.Token, error) {
	start := s.off

	s.advance() // opening quote

	if s.eof() || s.peek() == '\n' || s.peek() == '\'' {
		return token.Token{}, diag.NewSyntaxError(pos, "'", "malformed character literal")
	}

	r := s.advance()
	if r == '\\' {
		esc, ok := escapes[s.peek()]
		if !ok {
			return token.Token{}, diag.NewSyntaxError(pos, string(s.src[start:s.off]), "unknown escape sequence")
		}

		s.advance()

		r = esc
	}

	if s.peek() != '\'' {
		return token.Token{}, diag.NewSyntaxError(pos, string(s.src[start:s.off]), "malformed character literal")
	}

	s.advance()

	return token.Token{
		Kind: token.Number,
		Num:  token.CharValue(r),
		Text: string(s.src[start:s.off]),
		Pos:  pos,
	}, nil
}

func (s *scanner) scanWord(pos token.Pos) token.Token {
	word := s.ident()

	kw, ok := token.LookupKeyword(word)
	if !ok {
		return token.Token{
			Kind: token.Name,
			Text: word,
			ID:   s.names.Push(word),
			Pos:  pos,
		}
	}

	kw.Pos = pos
	kw.Text = word

	if kw.IsKeyword(token.Else) {
		// "else" followed by "if" is a single condition keyword.
		save := *s

		s.skipSpace()

		if isIdentStart(s.peek()) && s.ident() == token.If.String() {
			kw.Keyword = token.ElseIf
			kw.Text = token.ElseIf.String()
		} else {
			*s = save
		}
	}

	return kw
}

func (s *scanner) ident() string {
	start := s.off

	for !s.eof() && isIdentPart(s.peek()) {
		s.advance()
	}

	return string(s.src[start:s.off])
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
