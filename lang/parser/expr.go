package parser

import (
	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// operand runs one precedence level and asserts that it consumed input and
// produced a node.
func (p *parser) operand(level func() (*ast.Node, error)) (*ast.Node, error) {
	start := p.cur.Offset()

	n, err := level()
	if err != nil {
		return nil, err
	}

	if n == nil || p.cur.Offset() == start {
		return nil, p.errorf(p.peek(), "expected math expression")
	}

	return n, nil
}

// binary parses operand { op operand } for one left-associative level.
func (p *parser) binary(
	tighter func() (*ast.Node, error),
	match func(token.Op) bool,
) (*ast.Node, error) {
	node, err := p.operand(tighter)
	if err != nil {
		return nil, err
	}

	for t := p.peek(); t.Kind == token.Operator && match(t.Op); t = p.peek() {
		p.next()

		rhs, err := p.operand(tighter)
		if err != nil {
			return nil, err
		}

		node = ast.MakeNode(ast.Operator, ast.Payload{Op: t.Op}, node, rhs).At(t.Pos)
	}

	return node, nil
}

func (p *parser) boolExpr() (*ast.Node, error) {
	return p.binary(p.addSub, token.Op.IsBool)
}

func (p *parser) addSub() (*ast.Node, error) {
	return p.binary(p.mulDiv, func(op token.Op) bool {
		return op == token.Add || op == token.Sub
	})
}

func (p *parser) mulDiv() (*ast.Node, error) {
	return p.binary(p.pow, func(op token.Op) bool {
		return op == token.Mul || op == token.Div
	})
}

func (p *parser) pow() (*ast.Node, error) {
	return p.binary(p.callFunction, func(op token.Op) bool {
		return op == token.Pow
	})
}

// callFunction resolves the name/call ambiguity with one token of lookahead:
// a name directly followed by '(' is a call.
func (p *parser) callFunction() (*ast.Node, error) {
	t := p.peek()

	if t.IsKeyword(token.Call) {
		p.next()

		if name := p.peek(); name.Kind != token.Name ||
			!p.cur.PeekNext().IsBrace(token.LeftRound) {
			return nil, p.errorf(name, "expected function call after 'call'")
		}

		return p.call(p.next())
	}

	if t.Kind == token.Name && p.cur.PeekNext().IsBrace(token.LeftRound) {
		return p.call(p.next())
	}

	return p.minusNot()
}

func (p *parser) call(nameTok token.Token) (*ast.Node, error) {
	p.trace("call", nameTok)
	p.next() // '('

	leave, err := p.enter()
	if err != nil {
		return nil, err
	}
	defer leave()

	var args []*ast.Node

	if !p.peek().IsBrace(token.RightRound) {
		for {
			arg, err := p.operand(p.boolExpr)
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if !p.peek().IsSep(token.Comma) {
				break
			}

			p.next()
		}
	}

	if _, err := p.expectBrace(token.RightRound); err != nil {
		return nil, err
	}

	name := ast.MakeNode(ast.Name, ast.Payload{Name: nameTok.Text}, nil, nil).
		At(nameTok.Pos).
		BindLeft(ast.Fold(args...))

	return ast.MakeNode(ast.CallFunction, ast.Payload{}, name, nil).At(nameTok.Pos), nil
}

// minusNot parses prefix '-' and '!'. A unary minus directly after another
// operator (other than '=') is rejected.
func (p *parser) minusNot() (*ast.Node, error) {
	t := p.peek()
	if !t.Is(token.Sub) && !t.Is(token.Not) {
		return p.bracket()
	}

	if t.Is(token.Sub) {
		if prev, ok := p.cur.Prev(); ok && prev.Kind == token.Operator &&
			prev.Op != token.Assign {
			return nil, p.errorf(t, "Operation before '-'")
		}
	}

	p.next()

	leave, err := p.enter()
	if err != nil {
		return nil, err
	}
	defer leave()

	operand, err := p.operand(p.callFunction)
	if err != nil {
		return nil, err
	}

	return ast.MakeNode(ast.Operator, ast.Payload{Op: t.Op}, operand, nil).At(t.Pos), nil
}

// bracket parses a primary. It returns a nil node without consuming input
// when the current token cannot start one; the caller reports that.
func (p *parser) bracket() (*ast.Node, error) {
	t := p.peek()

	switch t.Kind {
	case token.Number:
		p.next()

		return ast.MakeNode(ast.Number, ast.Payload{Num: t.Num}, nil, nil).At(t.Pos), nil

	case token.Name:
		p.next()

		return ast.MakeNode(ast.Name, ast.Payload{Name: t.Text}, nil, nil).At(t.Pos), nil

	case token.Bracket:
		if !t.IsBrace(token.LeftRound) {
			return nil, nil
		}

		p.next()

		leave, err := p.enter()
		if err != nil {
			return nil, err
		}
		defer leave()

		n, err := p.operand(p.boolExpr)
		if err != nil {
			return nil, err
		}

		if _, err := p.expectBrace(token.RightRound); err != nil {
			return nil, err
		}

		return n, nil

	default:
		return nil, nil
	}
}
