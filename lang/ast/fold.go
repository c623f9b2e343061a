package ast

import (
	"iter"
	"slices"
)

// Fold encodes items as a Sequence chain:
//
//	()            → nil
//	(a)           → Sequence(a, nil)
//	(a, b)        → Sequence(a, b)
//	(a, b, c)     → Sequence(a, Sequence(b, c))
//
// Items must be non-nil.
func Fold(items ...*Node) *Node {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return MakeNode(Sequence, Payload{}, items[0], nil).At(items[0].Pos)
	}

	last := len(items) - 1
	tail := MakeNode(Sequence, Payload{}, items[last-1], items[last]).
		At(items[last-1].Pos)

	for i := last - 2; i >= 0; i-- {
		tail = MakeNode(Sequence, Payload{}, items[i], tail).At(items[i].Pos)
	}

	return tail
}

// Items returns an iterator over the items of a Sequence chain in order.
// Children of a chain link are peers: a Sequence in either slot is descended
// into, except for if-chains (see [IsIfChain]), which are items. A node that
// is not a Sequence is a chain of one item; nil is an empty chain.
func Items(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walkItems(n, yield)
	}
}

func walkItems(n *Node, yield func(*Node) bool) bool {
	for n != nil {
		if n.Kind != Sequence || IsIfChain(n) {
			return yield(n)
		}

		if !walkItems(n.Left, yield) {
			return false
		}

		n = n.Right
	}

	return true
}

// Flatten returns the items of a Sequence chain as a slice.
func Flatten(n *Node) []*Node {
	return slices.Collect(Items(n))
}

// IfChain folds an if statement with its else-if and else branches into the
// one of four shapes the grammar allows:
//
//	If                                  → If
//	If, ElseIf…                         → Sequence(If, Fold(ElseIf…))
//	If, Else                            → Sequence(If, Else)
//	If, ElseIf…, Else                   → Sequence(If, Sequence(Fold(ElseIf…), Else))
func IfChain(ifNode *Node, elseIfs []*Node, elseNode *Node) *Node {
	pos := ifNode.Pos

	switch {
	case len(elseIfs) == 0 && elseNode == nil:
		return ifNode
	case elseNode == nil:
		return MakeNode(Sequence, Payload{}, ifNode, Fold(elseIfs...)).At(pos)
	case len(elseIfs) == 0:
		return MakeNode(Sequence, Payload{}, ifNode, elseNode).At(pos)
	default:
		tail := MakeNode(Sequence, Payload{}, Fold(elseIfs...), elseNode).
			At(elseIfs[0].Pos)

		return MakeNode(Sequence, Payload{}, ifNode, tail).At(pos)
	}
}

// IsIfChain reports whether n is a Sequence produced by [IfChain], as opposed
// to a list link. A lone If node is a valid chain but is not reported here
// because it needs no special treatment when flattening.
func IsIfChain(n *Node) bool {
	if !n.Is(Sequence) || !n.Left.Is(If) {
		return false
	}

	r := n.Right

	switch {
	case r.Is(Else):
		return true
	case !r.Is(Sequence):
		return false
	case isElseIfList(r):
		return true
	default:
		return r.Right.Is(Else) && isElseIfList(r.Left)
	}
}

// isElseIfList reports whether n is Fold of one or more ElseIf nodes.
func isElseIfList(n *Node) bool {
	if !n.Is(Sequence) {
		return false
	}

	for n.Is(Sequence) {
		if !n.Left.Is(ElseIf) {
			return false
		}

		n = n.Right
	}

	return n == nil || n.Is(ElseIf)
}

// SplitIfChain is the inverse of [IfChain]. It reports false if n is neither
// a lone If nor an if-chain.
func SplitIfChain(n *Node) (ifNode *Node, elseIfs []*Node, elseNode *Node, ok bool) {
	if n.Is(If) {
		return n, nil, nil, true
	}

	if !IsIfChain(n) {
		return nil, nil, nil, false
	}

	ifNode = n.Left

	switch r := n.Right; {
	case r.Is(Else):
		elseNode = r
	case isElseIfList(r):
		elseIfs = Flatten(r)
	default:
		elseIfs = Flatten(r.Left)
		elseNode = r.Right
	}

	return ifNode, elseIfs, elseNode, true
}

// ForHeader builds the left child of a For node: Sequence(init, Sequence(cond,
// step)).
func ForHeader(init, cond, step *Node) *Node {
	return MakeNode(Sequence, Payload{}, init,
		MakeNode(Sequence, Payload{}, cond, step).At(cond.Pos),
	).At(init.Pos)
}

// SplitForHeader is the inverse of [ForHeader].
func SplitForHeader(n *Node) (init, cond, step *Node, ok bool) {
	if !n.Is(Sequence) || !n.Right.Is(Sequence) {
		return nil, nil, nil, false
	}

	init, cond, step = n.Left, n.Right.Left, n.Right.Right
	if init == nil || cond == nil || step == nil {
		return nil, nil, nil, false
	}

	return init, cond, step, true
}
