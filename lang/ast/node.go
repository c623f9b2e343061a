// Package ast defines the abstract syntax tree of the language.
//
// Every construct is a [Node] with exactly two child slots. Ordered lists of
// siblings (statements of a block, parameters, call arguments, top-level
// items, else-if chains) are encoded as right-leaning chains of [Sequence]
// nodes built by [Fold]. Consumers must flatten these chains with [Items] or
// [Flatten] instead of treating a Sequence as an ordinary binary node.
//
// A node exclusively owns its children: no node is reachable from two parents
// and the tree has no cycles. Nodes are built bottom-up with [MakeNode], which
// enforces the per-kind child arity, and are only mutated afterwards through
// [Node.BindLeft] and [Node.BindRight].
package ast

//go:generate go tool stringer --type Kind --output kind_string.go

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// Kind is the variant tag of a [Node].
type Kind uint8

const (
	Invalid Kind = iota
	Number
	Name
	Type
	Operator
	Sequence
	DefineVariable
	AssignVariable
	CallFunction
	If
	ElseIf
	Else
	While
	For
	DefineFunction
	Return
)

// Payload is the kind-specific data of a node. Only the field matching the
// node's kind is set: Num for Number, Name for Name, Type for Type and Op for
// Operator.
type Payload struct {
	Name string
	Num  token.Value
	Type token.Type
	Op   token.Op
}

// Node is the universal AST node.
type Node struct {
	Left  *Node
	Right *Node
	Payload
	Pos  token.Pos
	Kind Kind
}

// slot describes what a child slot accepts at construction time.
type slot uint8

const (
	none     slot = iota // must be nil
	optional             // may be nil
	required             // must be non-nil
)

// arity returns the construction-time child rules for a kind and payload.
func arity(kind Kind, p Payload) (left, right slot, ok bool) {
	switch kind {
	case Number, Name:
		return none, none, true
	case Type:
		return optional, none, true
	case Operator:
		switch p.Op.Class() {
		case token.ClassBinary:
			return required, required, true
		case token.ClassBinaryOrUnary:
			return required, optional, true
		case token.ClassUnary, token.ClassAssign:
			return required, none, true
		case token.ClassStep:
			return none, none, true
		default:
			return none, none, false
		}
	case Sequence:
		return required, optional, true
	case DefineVariable, AssignVariable, CallFunction, DefineFunction, Return:
		return required, none, true
	case If, ElseIf, While, For:
		return required, optional, true
	case Else:
		return none, optional, true
	default:
		return none, none, false
	}
}

func (s slot) accepts(n *Node) bool {
	switch s {
	case none:
		return n == nil
	case required:
		return n != nil
	default:
		return true
	}
}

// MakeNode allocates a node of the given kind. It panics when the payload or
// the children violate the arity of kind; the parser and the AST text reader
// are the only callers and they construct nodes under their own control.
func MakeNode(kind Kind, p Payload, left, right *Node) *Node {
	l, r, ok := arity(kind, p)
	if !ok {
		panic(fmt.Sprintf("ast: invalid node %s (op %q)", kind, p.Op))
	}

	if !l.accepts(left) || !r.accepts(right) {
		panic(fmt.Sprintf(
			"ast: %s node given left=%t right=%t",
			kind, left != nil, right != nil,
		))
	}

	switch kind {
	case Number:
		if p.Num.Type != token.Int && p.Num.Type != token.Char &&
			p.Num.Type != token.Double {
			panic(fmt.Sprintf("ast: number of type %s", p.Num.Type))
		}
	case Name:
		if p.Name == "" {
			panic("ast: empty name")
		}
	case Type:
		if p.Type == token.TypeNone {
			panic("ast: type node without a type")
		}
	}

	return &Node{Kind: kind, Payload: p, Left: left, Right: right}
}

// At sets the source position of n and returns n.
func (n *Node) At(pos token.Pos) *Node {
	n.Pos = pos

	return n
}

// BindLeft attaches child to the empty left slot of n and returns n. Only
// Type and Name nodes have slots bound after construction.
func (n *Node) BindLeft(child *Node) *Node {
	if n.Kind != Type && n.Kind != Name {
		panic(fmt.Sprintf("ast: cannot bind left child of %s", n.Kind))
	}

	if n.Left != nil {
		panic(fmt.Sprintf("ast: left child of %s already bound", n.Kind))
	}

	n.Left = child

	return n
}

// BindRight attaches child to the empty right slot of a Name node and returns
// n. It is used for function bodies.
func (n *Node) BindRight(child *Node) *Node {
	if n.Kind != Name {
		panic(fmt.Sprintf("ast: cannot bind right child of %s", n.Kind))
	}

	if n.Right != nil {
		panic(fmt.Sprintf("ast: right child of %s already bound", n.Kind))
	}

	n.Right = child

	return n
}

// Swap exchanges the contents of a and b in constant time. Subtrees move with
// their owners, so ownership stays exclusive.
func Swap(a, b *Node) {
	*a, *b = *b, *a
}

// Is reports whether n is non-nil and of kind k.
func (n *Node) Is(k Kind) bool { return n != nil && n.Kind == k }

// ignorePos makes comparisons structural.
var ignorePos = cmpopts.IgnoreFields(Node{}, "Pos")

// Equal reports whether a and b are structurally equal, ignoring source
// positions.
func Equal(a, b *Node) bool {
	return cmp.Equal(a, b, ignorePos)
}

// Diff returns a human-readable report of the differences between a and b,
// or "" when they are structurally equal.
func Diff(a, b *Node) string {
	return cmp.Diff(a, b, ignorePos)
}
