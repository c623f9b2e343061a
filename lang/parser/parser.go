// Package parser implements the grammar engine: a recursive-descent,
// precedence-climbing parser that turns a token sequence into an AST.
//
// # Grammar
//
//	Program        → { TopItem } EOF
//	TopItem        → DefineFunction | Statement
//	DefineFunction → Type Name '(' [ Param { ',' Param } ] ')' Block
//	Param          → Type Name
//	Block          → '{' { Statement } '}'
//	Statement      → IfChain | Cycle
//	IfChain        → If { ElseIf } [ Else ]
//	If, ElseIf     → ( 'if' | 'else if' ) '(' BoolExpr ')' Block
//	Else           → 'else' Block
//	Cycle          → While | For | Return
//	While          → 'while' '(' BoolExpr ')' Block
//	For            → 'for' '(' Init BoolExpr ';' Step ')' Block
//	Return         → 'return' BoolExpr ';' | DefineVariable
//	DefineVariable → Type Name '=' BoolExpr ';' | Assign
//	Assign         → Name AssignOp BoolExpr ';' | Name StepOp ';' | BoolExpr ';'
//	BoolExpr       → AddSub { BoolOp AddSub }
//	AddSub         → MulDiv { ( '+' | '-' ) MulDiv }
//	MulDiv         → Pow { ( '*' | '/' ) Pow }
//	Pow            → CallFunction { '^' CallFunction }
//	CallFunction   → [ 'call' ] Name '(' [ BoolExpr { ',' BoolExpr } ] ')' | MinusNot
//	MinusNot       → ( '-' | '!' ) CallFunction | Bracket
//	Bracket        → '(' BoolExpr ')' | Number | Name
//
// All binary levels are left-associative. Lists are parsed with loops and
// folded into Sequence chains with [ast.Fold].
//
// The parser does not recover: the first mismatch is returned as a
// [*diag.SyntaxError] and no partial tree is produced.
package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// DefaultMaxDepth is the default limit on block and expression nesting.
const DefaultMaxDepth = 256

// Option configures a parse.
type Option func(*parser)

// WithMaxDepth sets the nesting limit. Values below 1 select
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		p.maxDepth = depth
	}
}

// WithLogger sets the logger used for trace output. The zero value logs
// nothing.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

type parser struct {
	ctx      context.Context
	cur      *Cursor
	logger   log.Logger
	maxDepth int
	depth    int
	blocks   int
}

// Parse parses a whole program. An empty program yields a nil tree.
func Parse(
	ctx context.Context,
	toks []token.Token,
	opts ...Option,
) (*ast.Node, error) {
	p := &parser{
		ctx:      ctx,
		cur:      NewCursor(toks),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(p)
	}

	root, err := p.program()
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("tokens", len(toks)),
		slog.Int("items", len(ast.Flatten(root))),
	)

	return root, nil
}

func (p *parser) peek() token.Token { return p.cur.Peek() }

func (p *parser) next() token.Token { return p.cur.Next() }

func (p *parser) errorf(t token.Token, format string, args ...any) error {
	return diag.NewSyntaxError(t.Pos, t.String(), fmt.Sprintf(format, args...))
}

func (p *parser) trace(rule string, t token.Token) {
	p.logger.TraceContext(p.ctx, "production",
		slog.String("rule", rule),
		slog.String("token", t.String()),
		log.Pos(t.Pos.Line, t.Pos.Column),
	)
}

// enter tracks nesting depth; the returned func restores it.
func (p *parser) enter() (func(), error) {
	if p.depth >= p.maxDepth {
		return nil, p.errorf(p.peek(), "nesting too deep (limit %d)", p.maxDepth)
	}

	p.depth++

	return func() { p.depth-- }, nil
}

func (p *parser) expectBrace(b token.Brace) (token.Token, error) {
	t := p.peek()
	if !t.IsBrace(b) {
		return t, p.errorf(t, "expected '%s'", b)
	}

	return p.next(), nil
}

func (p *parser) expectSep(s token.Sep) error {
	t := p.peek()
	if !t.IsSep(s) {
		return p.errorf(t, "expected '%s'", s)
	}

	p.next()

	return nil
}

func (p *parser) expectName() (token.Token, error) {
	t := p.peek()
	if t.Kind != token.Name {
		return t, p.errorf(t, "expected name")
	}

	return p.next(), nil
}

func (p *parser) program() (*ast.Node, error) {
	var items []*ast.Node

	for p.peek().Kind != token.EOF {
		if err := p.ctx.Err(); err != nil {
			return nil, err
		}

		item, err := p.statement()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return ast.Fold(items...), nil
}

// block parses '{' { Statement } '}' into a Sequence chain.
func (p *parser) block() (*ast.Node, error) {
	if _, err := p.expectBrace(token.LeftCurly); err != nil {
		return nil, err
	}

	leave, err := p.enter()
	if err != nil {
		return nil, err
	}
	defer leave()

	p.blocks++
	defer func() { p.blocks-- }()

	var stmts []*ast.Node

	for !p.peek().IsBrace(token.RightCurly) {
		if p.peek().Kind == token.EOF {
			return nil, p.errorf(p.peek(), "expected '}'")
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	p.next()

	return ast.Fold(stmts...), nil
}

func (p *parser) statement() (*ast.Node, error) {
	t := p.peek()

	switch {
	case t.IsKeyword(token.If):
		return p.ifChain()
	case t.IsKeyword(token.ElseIf), t.IsKeyword(token.Else):
		return nil, p.errorf(t, "'%s' without 'if'", t.Keyword)
	default:
		return p.cycle()
	}
}

func (p *parser) ifChain() (*ast.Node, error) {
	p.trace("if", p.peek())

	ifNode, err := p.branch(ast.If)
	if err != nil {
		return nil, err
	}

	var elseIfs []*ast.Node

	for p.peek().IsKeyword(token.ElseIf) {
		n, err := p.branch(ast.ElseIf)
		if err != nil {
			return nil, err
		}

		elseIfs = append(elseIfs, n)
	}

	var elseNode *ast.Node

	if t := p.peek(); t.IsKeyword(token.Else) {
		p.next()

		body, err := p.block()
		if err != nil {
			return nil, err
		}

		elseNode = ast.MakeNode(ast.Else, ast.Payload{}, nil, body).At(t.Pos)
	}

	return ast.IfChain(ifNode, elseIfs, elseNode), nil
}

// branch parses keyword '(' BoolExpr ')' Block for if, else if and while.
func (p *parser) branch(kind ast.Kind) (*ast.Node, error) {
	kw := p.next()

	if _, err := p.expectBrace(token.LeftRound); err != nil {
		return nil, err
	}

	cond, err := p.operand(p.boolExpr)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectBrace(token.RightRound); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return ast.MakeNode(kind, ast.Payload{}, cond, body).At(kw.Pos), nil
}

func (p *parser) cycle() (*ast.Node, error) {
	t := p.peek()

	switch {
	case t.IsKeyword(token.While):
		p.trace("while", t)

		return p.branch(ast.While)
	case t.IsKeyword(token.For):
		p.trace("for", t)

		return p.forLoop()
	default:
		return p.ret()
	}
}

func (p *parser) forLoop() (*ast.Node, error) {
	kw := p.next()

	if _, err := p.expectBrace(token.LeftRound); err != nil {
		return nil, err
	}

	var (
		init *ast.Node
		err  error
	)

	if p.peek().Kind == token.TypeKeyword {
		init, err = p.defineVariable(false)
	} else {
		init, err = p.assign(true)
	}

	if err != nil {
		return nil, err
	}

	cond, err := p.operand(p.boolExpr)
	if err != nil {
		return nil, err
	}

	if err := p.expectSep(token.Semicolon); err != nil {
		return nil, err
	}

	step, err := p.assign(false)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectBrace(token.RightRound); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return ast.MakeNode(ast.For, ast.Payload{},
		ast.ForHeader(init, cond, step), body).At(kw.Pos), nil
}

func (p *parser) ret() (*ast.Node, error) {
	t := p.peek()
	if !t.IsKeyword(token.Return) {
		return p.defineVariable(p.blocks == 0)
	}

	p.trace("return", t)
	p.next()

	value, err := p.operand(p.boolExpr)
	if err != nil {
		return nil, err
	}

	if err := p.expectSep(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.MakeNode(ast.Return, ast.Payload{}, value, nil).At(t.Pos), nil
}

// defineVariable parses a declaration. With allowFunc set, a '(' after the
// declared name turns the declaration into a function definition.
func (p *parser) defineVariable(allowFunc bool) (*ast.Node, error) {
	t := p.peek()
	if t.Kind != token.TypeKeyword {
		return p.assign(true)
	}

	p.next()

	nameTok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	typ := ast.MakeNode(ast.Type, ast.Payload{Type: t.Type}, nil, nil).At(t.Pos)
	name := ast.MakeNode(ast.Name, ast.Payload{Name: nameTok.Text}, nil, nil).
		At(nameTok.Pos)

	if next := p.peek(); next.IsBrace(token.LeftRound) {
		if !allowFunc {
			return nil, p.errorf(next, "function definition is only allowed at top level")
		}

		return p.defineFunction(typ, name)
	}

	p.trace("define variable", t)

	if t.Type == token.Void {
		return nil, p.errorf(t, "variable of type void")
	}

	eq := p.peek()
	if !eq.Is(token.Assign) {
		return nil, p.errorf(eq, "expected '='")
	}

	p.next()

	value, err := p.operand(p.boolExpr)
	if err != nil {
		return nil, err
	}

	if err := p.expectSep(token.Semicolon); err != nil {
		return nil, err
	}

	name.BindLeft(ast.MakeNode(ast.Operator, ast.Payload{Op: token.Assign}, value, nil).
		At(eq.Pos))
	typ.BindLeft(name)

	return ast.MakeNode(ast.DefineVariable, ast.Payload{}, typ, nil).At(t.Pos), nil
}

// defineFunction parses the parameter list and body after Type Name.
func (p *parser) defineFunction(typ, name *ast.Node) (*ast.Node, error) {
	p.trace("define function", p.peek())
	p.next() // '('

	var params []*ast.Node

	if !p.peek().IsBrace(token.RightRound) {
		for {
			param, err := p.param()
			if err != nil {
				return nil, err
			}

			params = append(params, param)

			if !p.peek().IsSep(token.Comma) {
				break
			}

			p.next()
		}
	}

	if _, err := p.expectBrace(token.RightRound); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	name.BindLeft(ast.Fold(params...)).BindRight(body)
	typ.BindLeft(name)

	return ast.MakeNode(ast.DefineFunction, ast.Payload{}, typ, nil).At(typ.Pos), nil
}

func (p *parser) param() (*ast.Node, error) {
	t := p.peek()
	if t.Kind != token.TypeKeyword {
		return nil, p.errorf(t, "expected parameter type")
	}

	if t.Type == token.Void {
		return nil, p.errorf(t, "parameter of type void")
	}

	p.next()

	nameTok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	name := ast.MakeNode(ast.Name, ast.Payload{Name: nameTok.Text}, nil, nil).
		At(nameTok.Pos)
	typ := ast.MakeNode(ast.Type, ast.Payload{Type: t.Type}, name, nil).At(t.Pos)

	return ast.MakeNode(ast.DefineVariable, ast.Payload{}, typ, nil).At(t.Pos), nil
}

// assign parses an assignment or an expression statement. The statement is
// terminated by ';' when semi is set; a for-loop step is not.
func (p *parser) assign(semi bool) (*ast.Node, error) {
	t, op := p.peek(), p.cur.PeekNext()

	var stmt *ast.Node

	if t.Kind == token.Name && op.Kind == token.Operator && op.Op.IsAssign() {
		p.trace("assign", t)
		p.next()
		p.next()

		var value *ast.Node

		if op.Op.Class() == token.ClassAssign {
			var err error

			value, err = p.operand(p.boolExpr)
			if err != nil {
				return nil, err
			}
		}

		name := ast.MakeNode(ast.Name, ast.Payload{Name: t.Text}, nil, nil).At(t.Pos)
		name.BindLeft(ast.MakeNode(ast.Operator, ast.Payload{Op: op.Op}, value, nil).
			At(op.Pos))
		stmt = ast.MakeNode(ast.AssignVariable, ast.Payload{}, name, nil).At(t.Pos)
	} else {
		var err error

		stmt, err = p.operand(p.boolExpr)
		if err != nil {
			return nil, err
		}
	}

	if semi {
		if err := p.expectSep(token.Semicolon); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}
