package asttext

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// Write writes the signature and the canonical text of root to w. A nil root
// is an empty program.
func Write(w io.Writer, root *ast.Node) error {
	p := printer{w: bufio.NewWriter(w)}

	for _, line := range Signature {
		p.line(line)
	}

	if err := p.list(root); err != nil {
		return err
	}

	return p.w.Flush()
}

// Marshal returns the canonical text of root.
func Marshal(root *ast.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, root); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type printer struct {
	w     *bufio.Writer
	depth int
}

// line writes one word at the current depth. Write errors are sticky in
// bufio.Writer and surface at Flush.
func (p *printer) line(word string) {
	for range p.depth {
		_ = p.w.WriteByte('\t')
	}

	_, _ = p.w.WriteString(word)
	_ = p.w.WriteByte('\n')
}

// block writes { body } with body one level deeper.
func (p *printer) block(body func() error) error {
	p.line(wordOpen)
	p.depth++

	if err := body(); err != nil {
		return err
	}

	p.depth--
	p.line(wordClose)

	return nil
}

// list writes every item of a Sequence chain at the current depth.
func (p *printer) list(n *ast.Node) error {
	for item := range ast.Items(n) {
		if err := p.node(item); err != nil {
			return err
		}
	}

	return nil
}

// labeled writes label { items of n }.
func (p *printer) labeled(label string, n *ast.Node) error {
	p.line(label)

	return p.block(func() error { return p.list(n) })
}

func malformed(n *ast.Node, what string) error {
	return fmt.Errorf("%w: %s %s", ErrMalformedTree, n.Kind, what)
}

// node is the head of the printer chain. Each printer handles one family of
// node kinds and passes anything else to the next:
// function → condition → cycle → return → variable definition → assignment
// → operation → call → number/name.
func (p *printer) node(n *ast.Node) error { return p.defFunc(n) }

func (p *printer) defFunc(n *ast.Node) error {
	if !n.Is(ast.DefineFunction) {
		return p.condition(n)
	}

	typ := n.Left
	if !typ.Is(ast.Type) || !typ.Left.Is(ast.Name) {
		return malformed(n, "without type and name")
	}

	name := typ.Left

	p.line(wordDefFunc)

	return p.block(func() error {
		p.line(tagged(wordType, typ.Type.String()))
		p.line(tagged(wordName, name.Name))

		if err := p.labeled(wordArgs, name.Left); err != nil {
			return err
		}

		return p.labeled(wordBody, name.Right)
	})
}

func (p *printer) condition(n *ast.Node) error {
	ifNode, elseIfs, elseNode, ok := ast.SplitIfChain(n)
	if !ok {
		return p.cycle(n)
	}

	p.line(wordCondition)

	return p.block(func() error {
		if err := p.branch(condIf, ifNode); err != nil {
			return err
		}

		for _, ei := range elseIfs {
			if err := p.branch(condElseIf, ei); err != nil {
				return err
			}
		}

		if elseNode != nil {
			return p.branch(condElse, elseNode)
		}

		return nil
	})
}

// branch writes CONDITION: kind { [cond] BODY { … } }.
func (p *printer) branch(kind string, n *ast.Node) error {
	p.line(tagged(wordCondition, kind))

	return p.block(func() error {
		if n.Left != nil {
			if err := p.node(n.Left); err != nil {
				return err
			}
		}

		return p.labeled(wordBody, n.Right)
	})
}

func (p *printer) cycle(n *ast.Node) error {
	var head func() error

	switch {
	case n.Is(ast.While):
		p.line(tagged(wordCycle, cycleWhile))

		head = func() error { return p.node(n.Left) }

	case n.Is(ast.For):
		init, cond, step, ok := ast.SplitForHeader(n.Left)
		if !ok {
			return malformed(n, "without init, condition and step")
		}

		p.line(tagged(wordCycle, cycleFor))

		head = func() error {
			for _, part := range []*ast.Node{init, cond, step} {
				if err := p.node(part); err != nil {
					return err
				}
			}

			return nil
		}

	default:
		return p.ret(n)
	}

	return p.block(func() error {
		p.line(wordCycleCond)

		if err := p.block(head); err != nil {
			return err
		}

		return p.labeled(wordBody, n.Right)
	})
}

func (p *printer) ret(n *ast.Node) error {
	if !n.Is(ast.Return) {
		return p.defVar(n)
	}

	p.line(wordReturn)

	return p.block(func() error { return p.node(n.Left) })
}

func (p *printer) defVar(n *ast.Node) error {
	if !n.Is(ast.DefineVariable) {
		return p.assign(n)
	}

	typ := n.Left
	if !typ.Is(ast.Type) || !typ.Left.Is(ast.Name) {
		return malformed(n, "without type and name")
	}

	name := typ.Left

	p.line(wordDefVar)

	return p.block(func() error {
		p.line(tagged(wordType, typ.Type.String()))
		p.line(tagged(wordName, name.Name))

		if name.Left != nil {
			return p.operation(name.Left)
		}

		return nil
	})
}

func (p *printer) assign(n *ast.Node) error {
	if !n.Is(ast.AssignVariable) {
		return p.operation(n)
	}

	name := n.Left
	if !name.Is(ast.Name) || !name.Left.Is(ast.Operator) {
		return malformed(n, "without name and operator")
	}

	p.line(wordAssign)

	return p.block(func() error {
		p.line(tagged(wordName, name.Name))

		return p.operation(name.Left)
	})
}

func (p *printer) operation(n *ast.Node) error {
	if !n.Is(ast.Operator) {
		return p.callFunc(n)
	}

	p.line(tagged(wordOp, n.Op.String()))

	return p.block(func() error {
		for _, operand := range []*ast.Node{n.Left, n.Right} {
			if operand == nil {
				continue
			}

			if err := p.node(operand); err != nil {
				return err
			}
		}

		return nil
	})
}

func (p *printer) callFunc(n *ast.Node) error {
	if !n.Is(ast.CallFunction) {
		return p.leaf(n)
	}

	name := n.Left
	if !name.Is(ast.Name) {
		return malformed(n, "without name")
	}

	p.line(wordCall)

	return p.block(func() error {
		p.line(tagged(wordName, name.Name))

		return p.labeled(wordCallArgs, name.Left)
	})
}

func (p *printer) leaf(n *ast.Node) error {
	switch {
	case n.Is(ast.Number):
		p.line(tagged(wordNum, formatNum(n.Num)))

		return nil

	case n.Is(ast.Name):
		p.line(tagged(wordName, n.Name))

		return nil

	case n == nil:
		return fmt.Errorf("%w: missing node", ErrMalformedTree)

	default:
		return malformed(n, "in expression position")
	}
}

// formatNum returns "<type> <value>".
func formatNum(v token.Value) string {
	return strings.Join([]string{v.Type.String(), v.String()}, numFieldSeparator)
}
