package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

var b Builder

func names(items []*Node) string {
	parts := make([]string, 0, len(items))

	for _, n := range items {
		switch n.Kind {
		case Name:
			parts = append(parts, n.Name)
		case Number:
			parts = append(parts, n.Num.String())
		default:
			parts = append(parts, n.Kind.String())
		}
	}

	return strings.Join(parts, ",")
}

func TestFold_Shapes(t *testing.T) {
	x, y, z := b.Ident("x"), b.Ident("y"), b.Ident("z")

	if Fold() != nil {
		t.Error("Fold() != nil")
	}

	one := Fold(x)
	if !one.Is(Sequence) || one.Left != x || one.Right != nil {
		t.Errorf("Fold(x) = %+v", one)
	}

	two := Fold(x, y)
	if two.Left != x || two.Right != y {
		t.Errorf("Fold(x, y) = %+v", two)
	}

	three := Fold(b.Ident("x"), b.Ident("y"), z)
	if !three.Right.Is(Sequence) || three.Right.Right != z {
		t.Errorf("Fold(x, y, z) is not right-leaning: %+v", three)
	}
}

func TestItems(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want string
	}{
		{"nil", nil, ""},
		{"single node", b.Ident("a"), "a"},
		{"one", Fold(b.Ident("a")), "a"},
		{"many", Fold(b.Ident("a"), b.Ident("b"), b.Ident("c"), b.Int(4)), "a,b,c,4"},
		{
			"if chain is one item",
			Fold(
				b.Ident("a"),
				IfChain(b.If(b.Ident("c")), nil, b.Else()),
				b.Ident("z"),
			),
			"a,Sequence,z",
		},
		{
			"two ifs are two items",
			Fold(b.If(b.Ident("p")), b.If(b.Ident("q"))),
			"If,If",
		},
		{
			"if followed by an if chain",
			Fold(b.If(b.Ident("p")), IfChain(b.If(b.Ident("q")), nil, b.Else())),
			"If,Sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(Flatten(tt.root)); got != tt.want {
				t.Errorf("Flatten = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItems_StopsEarly(t *testing.T) {
	seen := 0

	for range Items(Fold(b.Int(1), b.Int(2), b.Int(3))) {
		seen++
		if seen == 2 {
			break
		}
	}

	if seen != 2 {
		t.Errorf("seen %d items, want 2", seen)
	}
}

func TestIfChain_RoundTrip(t *testing.T) {
	cond := func(s string) *Node { return b.Ident(s) }

	tests := []struct {
		name    string
		elseIfs int
		hasElse bool
	}{
		{"if", 0, false},
		{"if else", 0, true},
		{"if else-if", 1, false},
		{"if else-ifs", 3, false},
		{"if else-ifs else", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ifNode := b.If(cond("c0"), b.Int(0))

			var elseIfs []*Node
			for i := range tt.elseIfs {
				elseIfs = append(elseIfs, b.ElseIf(cond("c"), b.Int(int64(i+1))))
			}

			var elseNode *Node
			if tt.hasElse {
				elseNode = b.Else(b.Int(9))
			}

			chain := IfChain(ifNode, elseIfs, elseNode)

			if isChain := tt.elseIfs > 0 || tt.hasElse; IsIfChain(chain) != isChain {
				t.Errorf("IsIfChain = %v, want %v", IsIfChain(chain), isChain)
			}

			gotIf, gotElseIfs, gotElse, ok := SplitIfChain(chain)
			if !ok {
				t.Fatal("SplitIfChain reported false")
			}

			if gotIf != ifNode || gotElse != elseNode || len(gotElseIfs) != len(elseIfs) {
				t.Fatalf("SplitIfChain = %v, %d else-ifs, %v", gotIf, len(gotElseIfs), gotElse)
			}

			for i := range elseIfs {
				if gotElseIfs[i] != elseIfs[i] {
					t.Errorf("else-if %d mismatch", i)
				}
			}
		})
	}
}

func TestSplitIfChain_NotAChain(t *testing.T) {
	for _, n := range []*Node{
		nil,
		b.Ident("x"),
		Fold(b.Ident("x"), b.Ident("y")),
		Fold(b.If(b.Ident("p")), b.Ident("y")),
	} {
		if _, _, _, ok := SplitIfChain(n); ok {
			t.Errorf("SplitIfChain(%v) reported true", n)
		}
	}
}

func TestForHeader(t *testing.T) {
	init := b.Decl(token.Int, "i", b.Int(0))
	cond := b.Op(token.Lt, b.Ident("i"), b.Int(10))
	step := b.Assign("i", token.Inc, nil)

	gotInit, gotCond, gotStep, ok := SplitForHeader(ForHeader(init, cond, step))
	if !ok || gotInit != init || gotCond != cond || gotStep != step {
		t.Errorf("SplitForHeader = %v %v %v %v", gotInit, gotCond, gotStep, ok)
	}

	if _, _, _, ok := SplitForHeader(Fold(init)); ok {
		t.Error("SplitForHeader accepted a one-item chain")
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()

		fn()
	})
}

func TestMakeNode_Arity(t *testing.T) {
	x := func() *Node { return b.Ident("x") }

	mustPanic(t, "number with child", func() {
		MakeNode(Number, Payload{Num: token.IntValue(1)}, x(), nil)
	})
	mustPanic(t, "number without type", func() {
		MakeNode(Number, Payload{}, nil, nil)
	})
	mustPanic(t, "empty name", func() {
		MakeNode(Name, Payload{}, nil, nil)
	})
	mustPanic(t, "type without type", func() {
		MakeNode(Type, Payload{}, nil, nil)
	})
	mustPanic(t, "operator without op", func() {
		MakeNode(Operator, Payload{}, x(), x())
	})
	mustPanic(t, "binary missing right", func() {
		MakeNode(Operator, Payload{Op: token.Mul}, x(), nil)
	})
	mustPanic(t, "unary with right", func() {
		MakeNode(Operator, Payload{Op: token.Not}, x(), x())
	})
	mustPanic(t, "step with operand", func() {
		MakeNode(Operator, Payload{Op: token.Inc}, x(), nil)
	})
	mustPanic(t, "sequence without left", func() {
		MakeNode(Sequence, Payload{}, nil, x())
	})
	mustPanic(t, "else with condition", func() {
		MakeNode(Else, Payload{}, x(), nil)
	})
	mustPanic(t, "return without value", func() {
		MakeNode(Return, Payload{}, nil, nil)
	})
	mustPanic(t, "invalid kind", func() {
		MakeNode(Invalid, Payload{}, nil, nil)
	})

	// Accepted shapes.
	MakeNode(Operator, Payload{Op: token.Sub}, x(), nil)
	MakeNode(Operator, Payload{Op: token.Sub}, x(), x())
	MakeNode(Operator, Payload{Op: token.Dec}, nil, nil)
	MakeNode(Else, Payload{}, nil, nil)
	MakeNode(While, Payload{}, x(), nil)
}

func TestBind(t *testing.T) {
	n := b.Ident("f").BindLeft(b.Int(1)).BindRight(b.Int(2))
	if n.Left == nil || n.Right == nil {
		t.Fatal("bind did not attach children")
	}

	mustPanic(t, "left bound twice", func() { n.BindLeft(b.Int(3)) })
	mustPanic(t, "right bound twice", func() { n.BindRight(b.Int(3)) })
	mustPanic(t, "bind left of operator", func() {
		b.Op(token.Add, b.Int(1), b.Int(2)).BindLeft(b.Int(3))
	})
	mustPanic(t, "bind right of type", func() {
		MakeNode(Type, Payload{Type: token.Int}, nil, nil).BindRight(b.Int(3))
	})
}

func TestSwap(t *testing.T) {
	a := b.Op(token.Add, b.Int(1), b.Int(2))
	c := b.Ident("c")

	Swap(a, c)

	if !a.Is(Name) || !c.Is(Operator) || c.Left.Num.Int != 1 {
		t.Errorf("Swap: a=%v c=%v", a.Kind, c.Kind)
	}
}

func TestEqual_IgnoresPositions(t *testing.T) {
	build := func(line int) *Node {
		return Fold(
			b.Decl(token.Double, "x", b.Double(1.5)).At(token.Pos{Line: line, Column: 1}),
			b.Return(b.Ident("x").At(token.Pos{Line: line + 1, Column: 8})),
		)
	}

	x, y := build(1), build(40)

	if !Equal(x, y) {
		t.Errorf("trees differ only in positions but Equal is false:\n%s", Diff(x, y))
	}

	if d := Diff(x, y); d != "" {
		t.Errorf("Diff = %q, want empty", d)
	}

	z := Fold(b.Decl(token.Double, "x", b.Double(2.5)), b.Return(b.Ident("x")))
	if Equal(x, z) || Diff(x, z) == "" {
		t.Error("trees with different literals compare equal")
	}

	if !Equal(nil, nil) || Equal(x, nil) {
		t.Error("nil comparison mismatch")
	}
}

func TestWalkAndCount(t *testing.T) {
	root := Fold(
		b.Func(token.Int, "f", []*Node{b.Decl(token.Int, "n", nil)},
			b.Return(b.Op(token.Mul, b.Ident("n"), b.Int(2))),
		),
		b.Call("f", b.Int(3)),
	)

	counts := Count(root)

	want := map[Kind]int{
		Sequence:       4,
		DefineFunction: 1,
		Type:           2,
		Name:           4,
		DefineVariable: 1,
		Return:         1,
		Operator:       1,
		Number:         2,
		CallFunction:   1,
	}

	for k, n := range want {
		if counts[k] != n {
			t.Errorf("Count[%s] = %d, want %d", k, counts[k], n)
		}
	}

	visited := 0

	Walk(root, func(n *Node) bool {
		visited++

		return !n.Is(DefineFunction)
	})

	// root Sequence, DefineFunction, CallFunction, Name f, argument
	// Sequence, Number 3
	if visited != 6 {
		t.Errorf("Walk with pruning visited %d nodes, want 6", visited)
	}
}

func TestMarshalJSON_ItemsList(t *testing.T) {
	root := Fold(b.Int(1), b.Ident("y"), b.Char('c'))

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got struct {
		Kind  string `json:"kind"`
		Items []struct {
			Kind  string `json:"kind"`
			Name  string `json:"name"`
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"items"`
	}

	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Kind != "Sequence" || len(got.Items) != 3 {
		t.Fatalf("got %s", data)
	}

	if got.Items[1].Name != "y" || got.Items[2].Type != "char" || got.Items[2].Value != "99" {
		t.Errorf("unexpected items: %s", data)
	}
}
