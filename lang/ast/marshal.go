package ast

import (
	"encoding/json"
	"iter"
)

// MarshalJSON implements json.Marshaler for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

// ToMap converts the tree rooted at n to native Go maps and slices. Sequence
// chains become "items" lists so the output shows the logical structure
// rather than the two-child encoding.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}

	m := map[string]any{"kind": n.Kind.String()}

	if n.Pos.IsValid() {
		m["pos"] = n.Pos.String()
	}

	switch n.Kind {
	case Number:
		m["type"] = n.Num.Type.String()
		m["value"] = n.Num.String()

		return m
	case Name:
		m["name"] = n.Name
	case Type:
		m["type"] = n.Type.String()
	case Operator:
		m["op"] = n.Op.String()
	case Sequence:
		if !IsIfChain(n) {
			m["items"] = toList(Items(n))

			return m
		}
	}

	if n.Left != nil {
		m["left"] = n.Left.ToMap()
	}

	if n.Right != nil {
		m["right"] = n.Right.ToMap()
	}

	return m
}

func toList(seq iter.Seq[*Node]) []any {
	var out []any
	for n := range seq {
		out = append(out, n.ToMap())
	}

	return out
}

// Walk calls fn for each node of the tree in pre-order. If fn returns false,
// the children of that node are skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	Walk(n.Left, fn)
	Walk(n.Right, fn)
}

// Count returns the number of nodes of each kind in the tree rooted at n.
func Count(n *Node) map[Kind]int {
	counts := make(map[Kind]int)

	Walk(n, func(n *Node) bool {
		counts[n.Kind]++

		return true
	})

	return counts
}
