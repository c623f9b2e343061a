package asttext

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// ReadOption configures [Read].
type ReadOption func(*reader)

// WithFile sets the file name reported in diagnostics.
func WithFile(name string) ReadOption {
	return func(r *reader) { r.file = name }
}

// Read parses canonical AST text. The signature lines are checked first and
// must match exactly; the first mismatching line is reported as a
// [*diag.SignatureError]. In the body, indentation and blank lines are not
// significant, and any other deviation from the format is a
// [*diag.SyntaxError] naming the offending word and its position.
func Read(r io.Reader, opts ...ReadOption) (*ast.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Unmarshal(data, opts...)
}

// Unmarshal parses canonical AST text from data.
func Unmarshal(data []byte, opts ...ReadOption) (*ast.Node, error) {
	lines := bytes.Split(data, []byte{'\n'})
	rd := &reader{}

	for _, opt := range opts {
		opt(rd)
	}

	if err := rd.signature(lines); err != nil {
		return nil, err
	}

	rd.words = split(lines[len(Signature):], len(Signature))

	var items []*ast.Node

	for !rd.eof() {
		n, err := rd.item()
		if err != nil {
			return nil, err
		}

		items = append(items, n)
	}

	return ast.Fold(items...), nil
}

// word is one trimmed, non-empty line of the body.
type word struct {
	text string
	pos  token.Pos
}

// split collects the words of lines; skip is the number of lines before
// them.
func split(lines [][]byte, skip int) []word {
	var words []word

	for i, line := range lines {
		text := strings.TrimRight(string(line), " \t\r")
		trimmed := strings.TrimLeft(text, " \t")

		if trimmed == "" {
			continue
		}

		words = append(words, word{
			text: trimmed,
			pos: token.Pos{
				Line:   skip + i + 1,
				Column: utf8.RuneCountInString(text[:len(text)-len(trimmed)]) + 1,
			},
		})
	}

	return words
}

type reader struct {
	file  string
	words []word
	off   int
}

func (r *reader) eof() bool { return r.off >= len(r.words) }

func (r *reader) peek() (word, bool) {
	if r.eof() {
		return word{pos: r.endPos()}, false
	}

	return r.words[r.off], true
}

func (r *reader) endPos() token.Pos {
	if len(r.words) == 0 {
		return token.Pos{Line: len(Signature) + 1, Column: 1}
	}

	return token.Pos{Line: r.words[len(r.words)-1].pos.Line + 1, Column: 1}
}

func (r *reader) next() (word, bool) {
	w, ok := r.peek()
	if ok {
		r.off++
	}

	return w, ok
}

// signature matches the leading lines against [Signature] verbatim; only a
// trailing carriage return is dropped.
func (r *reader) signature(lines [][]byte) error {
	for i, want := range Signature {
		var got string
		if i < len(lines) {
			got = strings.TrimSuffix(string(lines[i]), "\r")
		}

		if got != want {
			return &diag.SignatureError{
				File: r.file, Word: got, Want: want,
				Pos: token.Pos{Line: i + 1, Column: 1},
			}
		}
	}

	return nil
}

// unexpected reports w, adding a hint when w resembles a known keyword.
func (r *reader) unexpected(w word, ok bool, expected string) error {
	if !ok {
		return &diag.SyntaxError{
			File: r.file, Pos: w.pos, Near: "end of input",
			Msg: "expected " + expected,
		}
	}

	msg := "expected " + expected

	key, _, _ := strings.Cut(w.text, tagSeparator)
	if matches := fuzzy.Find(key, vocabulary); len(matches) > 0 &&
		matches[0].Str != key {
		msg += fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
	}

	return &diag.SyntaxError{File: r.file, Pos: w.pos, Near: w.text, Msg: msg}
}

// expect consumes the exact word want.
func (r *reader) expect(want string) (word, error) {
	w, ok := r.next()
	if !ok || w.text != want {
		return w, r.unexpected(w, ok, fmt.Sprintf("%q", want))
	}

	return w, nil
}

// expectTagged consumes "key: value" and returns value.
func (r *reader) expectTagged(key string) (string, word, error) {
	w, ok := r.next()
	if ok {
		if k, v, found := strings.Cut(w.text, tagSeparator); found && k == key && v != "" {
			return v, w, nil
		}
	}

	return "", w, r.unexpected(w, ok, fmt.Sprintf("%q", key+tagSeparator+"…"))
}

// block reads { item… } and returns the items.
func (r *reader) block(item func() (*ast.Node, error)) ([]*ast.Node, error) {
	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	var items []*ast.Node

	for {
		w, ok := r.peek()
		if !ok {
			return nil, r.unexpected(w, ok, fmt.Sprintf("%q", wordClose))
		}

		if w.text == wordClose {
			r.off++

			return items, nil
		}

		n, err := item()
		if err != nil {
			return nil, err
		}

		items = append(items, n)
	}
}

// labeled reads label { item… } and folds the items.
func (r *reader) labeled(label string, item func() (*ast.Node, error)) (*ast.Node, error) {
	if _, err := r.expect(label); err != nil {
		return nil, err
	}

	items, err := r.block(item)
	if err != nil {
		return nil, err
	}

	return ast.Fold(items...), nil
}

// exactly reads a block holding exactly n items.
func (r *reader) exactly(n int, what string, item func() (*ast.Node, error)) ([]*ast.Node, error) {
	open, _ := r.peek()

	items, err := r.block(item)
	if err != nil {
		return nil, err
	}

	if len(items) != n {
		return nil, &diag.SyntaxError{
			File: r.file, Pos: open.pos, Near: open.text,
			Msg: fmt.Sprintf("%s takes %d node(s), found %d", what, n, len(items)),
		}
	}

	return items, nil
}

// item reads a top-level item: a function definition or a statement.
func (r *reader) item() (*ast.Node, error) {
	if w, ok := r.peek(); ok && w.text == wordDefFunc {
		return r.defFunc()
	}

	return r.statement()
}

func (r *reader) statement() (*ast.Node, error) {
	w, ok := r.peek()
	key, value, _ := strings.Cut(w.text, tagSeparator)

	switch {
	case !ok:
	case w.text == wordCondition:
		return r.condition()
	case key == wordCycle:
		return r.cycle(value)
	case w.text == wordReturn:
		return r.ret()
	case w.text == wordDefVar:
		return r.defVar()
	case w.text == wordAssign:
		return r.assign()
	case isExpr(key):
		return r.expr()
	}

	return nil, r.unexpected(w, ok, "statement")
}

func isExpr(key string) bool {
	switch key {
	case wordOp, wordCall, wordNum, wordName:
		return true
	}

	return false
}

// expr reads an operator with its operands, a call, a number or a name.
func (r *reader) expr() (*ast.Node, error) {
	w, ok := r.peek()
	key, value, _ := strings.Cut(w.text, tagSeparator)

	switch {
	case !ok:
	case key == wordOp:
		return r.operation(token.ClassBinary, token.ClassBinaryOrUnary, token.ClassUnary)
	case w.text == wordCall:
		return r.call()
	case key == wordNum:
		return r.number()
	case key == wordName && value != "":
		r.off++

		return ast.MakeNode(ast.Name, ast.Payload{Name: value}, nil, nil).At(w.pos), nil
	}

	return nil, r.unexpected(w, ok, "expression")
}

// forInit reads the first part of a for header.
func (r *reader) forInit() (*ast.Node, error) {
	if w, ok := r.peek(); ok && w.text == wordDefVar {
		return r.defVar()
	}

	return r.forStep()
}

// forStep reads the last part of a for header.
func (r *reader) forStep() (*ast.Node, error) {
	if w, ok := r.peek(); ok && w.text == wordAssign {
		return r.assign()
	}

	return r.expr()
}

// sequence returns an item reader that applies parts in order and repeats
// the last one.
func sequence(parts ...func() (*ast.Node, error)) func() (*ast.Node, error) {
	var i int

	return func() (*ast.Node, error) {
		part := parts[min(i, len(parts)-1)]
		i++

		return part()
	}
}

func (r *reader) typed(kind ast.Kind) (*ast.Node, *ast.Node, error) {
	t, tw, err := r.expectTagged(wordType)
	if err != nil {
		return nil, nil, err
	}

	typ, ok := typeByName[t]
	if !ok || (kind == ast.DefineVariable && typ == token.Void) {
		return nil, nil, &diag.SyntaxError{File: r.file, Pos: tw.pos, Near: tw.text, Msg: "unknown type"}
	}

	n, nw, err := r.expectTagged(wordName)
	if err != nil {
		return nil, nil, err
	}

	return ast.MakeNode(ast.Type, ast.Payload{Type: typ}, nil, nil).At(tw.pos),
		ast.MakeNode(ast.Name, ast.Payload{Name: n}, nil, nil).At(nw.pos),
		nil
}

var typeByName = map[string]token.Type{
	token.Int.String():    token.Int,
	token.Char.String():   token.Char,
	token.Double.String(): token.Double,
	token.Void.String():   token.Void,
}

func (r *reader) defFunc() (*ast.Node, error) {
	head, _ := r.next()

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	typ, name, err := r.typed(ast.DefineFunction)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordArgs); err != nil {
		return nil, err
	}

	params, err := r.block(r.param)
	if err != nil {
		return nil, err
	}

	body, err := r.labeled(wordBody, r.statement)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	name.BindLeft(ast.Fold(params...)).BindRight(body)
	typ.BindLeft(name)

	return ast.MakeNode(ast.DefineFunction, ast.Payload{}, typ, nil).At(head.pos), nil
}

// param reads DEF_VAR { TYPE NAME } without an initializer.
func (r *reader) param() (*ast.Node, error) {
	head, err := r.expect(wordDefVar)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	typ, name, err := r.typed(ast.DefineVariable)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	typ.BindLeft(name)

	return ast.MakeNode(ast.DefineVariable, ast.Payload{}, typ, nil).At(head.pos), nil
}

func (r *reader) condition() (*ast.Node, error) {
	r.off++

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	ifNode, err := r.branch(condIf, ast.If)
	if err != nil {
		return nil, err
	}

	var (
		elseIfs  []*ast.Node
		elseNode *ast.Node
	)

	for {
		w, ok := r.peek()
		if !ok {
			return nil, r.unexpected(w, ok, fmt.Sprintf("%q", wordClose))
		}

		switch w.text {
		case tagged(wordCondition, condElseIf):
			if elseNode != nil {
				return nil, r.unexpected(w, ok, fmt.Sprintf("%q", wordClose))
			}

			n, err := r.branch(condElseIf, ast.ElseIf)
			if err != nil {
				return nil, err
			}

			elseIfs = append(elseIfs, n)

			continue

		case tagged(wordCondition, condElse):
			if elseNode != nil {
				return nil, r.unexpected(w, ok, fmt.Sprintf("%q", wordClose))
			}

			elseNode, err = r.branch(condElse, ast.Else)
			if err != nil {
				return nil, err
			}

			continue
		}

		if _, err := r.expect(wordClose); err != nil {
			return nil, err
		}

		return ast.IfChain(ifNode, elseIfs, elseNode), nil
	}
}

// branch reads CONDITION: kind { [expr] BODY { … } }.
func (r *reader) branch(kind string, k ast.Kind) (*ast.Node, error) {
	head, err := r.expect(tagged(wordCondition, kind))
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	var cond *ast.Node

	if k != ast.Else {
		if cond, err = r.expr(); err != nil {
			return nil, err
		}
	}

	body, err := r.labeled(wordBody, r.statement)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	return ast.MakeNode(k, ast.Payload{}, cond, body).At(head.pos), nil
}

func (r *reader) cycle(kind string) (*ast.Node, error) {
	head, _ := r.next()

	var k ast.Kind

	switch kind {
	case cycleWhile:
		k = ast.While
	case cycleFor:
		k = ast.For
	default:
		return nil, r.unexpected(head, true,
			fmt.Sprintf("%q or %q", tagged(wordCycle, cycleWhile), tagged(wordCycle, cycleFor)))
	}

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	if _, err := r.expect(wordCycleCond); err != nil {
		return nil, err
	}

	var left *ast.Node

	if k == ast.While {
		parts, err := r.exactly(1, "while condition", r.expr)
		if err != nil {
			return nil, err
		}

		left = parts[0]
	} else {
		parts, err := r.exactly(3, "for header", sequence(r.forInit, r.expr, r.forStep))
		if err != nil {
			return nil, err
		}

		left = ast.ForHeader(parts[0], parts[1], parts[2])
	}

	body, err := r.labeled(wordBody, r.statement)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	return ast.MakeNode(k, ast.Payload{}, left, body).At(head.pos), nil
}

func (r *reader) ret() (*ast.Node, error) {
	head, _ := r.next()

	parts, err := r.exactly(1, "return", r.expr)
	if err != nil {
		return nil, err
	}

	return ast.MakeNode(ast.Return, ast.Payload{}, parts[0], nil).At(head.pos), nil
}

func (r *reader) defVar() (*ast.Node, error) {
	head, _ := r.next()

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	typ, name, err := r.typed(ast.DefineVariable)
	if err != nil {
		return nil, err
	}

	w, _ := r.peek()

	op, err := r.operation(token.ClassAssign)
	if err != nil {
		return nil, err
	}

	if op.Op != token.Assign {
		return nil, &diag.SyntaxError{
			File: r.file, Pos: w.pos, Near: w.text,
			Msg: fmt.Sprintf("expected %q", tagged(wordOp, token.Assign.String())),
		}
	}

	name.BindLeft(op)

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	typ.BindLeft(name)

	return ast.MakeNode(ast.DefineVariable, ast.Payload{}, typ, nil).At(head.pos), nil
}

func (r *reader) assign() (*ast.Node, error) {
	head, _ := r.next()

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	n, nw, err := r.expectTagged(wordName)
	if err != nil {
		return nil, err
	}

	op, err := r.operation(token.ClassAssign, token.ClassStep)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	name := ast.MakeNode(ast.Name, ast.Payload{Name: n}, nil, nil).At(nw.pos).BindLeft(op)

	return ast.MakeNode(ast.AssignVariable, ast.Payload{}, name, nil).At(head.pos), nil
}

// operation reads an OP node whose operator belongs to one of classes. The
// operands are expressions.
func (r *reader) operation(classes ...token.Class) (*ast.Node, error) {
	tag, head, err := r.expectTagged(wordOp)
	if err != nil {
		return nil, err
	}

	op, ok := token.LookupOp(tag)
	if !ok {
		return nil, &diag.SyntaxError{File: r.file, Pos: head.pos, Near: head.text, Msg: "unknown operator"}
	}

	if !slices.Contains(classes, op.Class()) {
		return nil, &diag.SyntaxError{
			File: r.file, Pos: head.pos, Near: head.text,
			Msg: fmt.Sprintf("operator %s not allowed here", op),
		}
	}

	operands, err := r.block(r.expr)
	if err != nil {
		return nil, err
	}

	var lo, hi int

	switch op.Class() {
	case token.ClassBinary:
		lo, hi = 2, 2
	case token.ClassBinaryOrUnary:
		lo, hi = 1, 2
	case token.ClassUnary, token.ClassAssign:
		lo, hi = 1, 1
	}

	if len(operands) < lo || len(operands) > hi {
		return nil, &diag.SyntaxError{
			File: r.file, Pos: head.pos, Near: head.text,
			Msg: fmt.Sprintf("operator %s takes %d to %d operands, found %d", op, lo, hi, len(operands)),
		}
	}

	operands = append(operands, nil, nil)

	return ast.MakeNode(ast.Operator, ast.Payload{Op: op}, operands[0], operands[1]).At(head.pos), nil
}

func (r *reader) call() (*ast.Node, error) {
	head, _ := r.next()

	if _, err := r.expect(wordOpen); err != nil {
		return nil, err
	}

	n, nw, err := r.expectTagged(wordName)
	if err != nil {
		return nil, err
	}

	args, err := r.labeled(wordCallArgs, r.expr)
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(wordClose); err != nil {
		return nil, err
	}

	name := ast.MakeNode(ast.Name, ast.Payload{Name: n}, nil, nil).At(nw.pos).BindLeft(args)

	return ast.MakeNode(ast.CallFunction, ast.Payload{}, name, nil).At(head.pos), nil
}

func (r *reader) number() (*ast.Node, error) {
	value, w, err := r.expectTagged(wordNum)
	if err != nil {
		return nil, err
	}

	typ, text, _ := strings.Cut(value, numFieldSeparator)

	num, err := token.ParseValue(typ, text)
	if err != nil {
		return nil, &diag.SyntaxError{File: r.file, Pos: w.pos, Near: w.text, Msg: "malformed number"}
	}

	return ast.MakeNode(ast.Number, ast.Payload{Num: num}, nil, nil).At(w.pos), nil
}
