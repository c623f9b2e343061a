package ast

import "github.com/Maksim-Sebelev/Language-sub000/lang/token"

// Builder provides a programmatic API for constructing trees without parsing
// source text. It is used by tests and by tools that generate programs.
//
// Example:
//
//	var b ast.Builder
//	fn := b.Func(token.Int, "main", nil,
//	    b.Decl(token.Int, "x", b.Int(1)),
//	    b.Return(b.Ident("x")),
//	)
//	root := ast.Fold(fn)
type Builder struct{}

// Int creates an int literal.
func (Builder) Int(v int64) *Node {
	return MakeNode(Number, Payload{Num: token.IntValue(v)}, nil, nil)
}

// Char creates a char literal.
func (Builder) Char(r rune) *Node {
	return MakeNode(Number, Payload{Num: token.CharValue(r)}, nil, nil)
}

// Double creates a double literal.
func (Builder) Double(f float64) *Node {
	return MakeNode(Number, Payload{Num: token.DoubleValue(f)}, nil, nil)
}

// Ident creates a bare name reference.
func (Builder) Ident(name string) *Node {
	return MakeNode(Name, Payload{Name: name}, nil, nil)
}

// Op creates a binary operator node.
func (Builder) Op(op token.Op, left, right *Node) *Node {
	return MakeNode(Operator, Payload{Op: op}, left, right)
}

// Unary creates a unary minus or not node.
func (Builder) Unary(op token.Op, operand *Node) *Node {
	return MakeNode(Operator, Payload{Op: op}, operand, nil)
}

// Decl creates DefineVariable(Type(Name(Operator(=, value)))). A nil value
// creates a parameter declaration without the assignment.
func (b Builder) Decl(typ token.Type, name string, value *Node) *Node {
	id := b.Ident(name)
	if value != nil {
		id.BindLeft(MakeNode(Operator, Payload{Op: token.Assign}, value, nil))
	}

	t := MakeNode(Type, Payload{Type: typ}, id, nil)

	return MakeNode(DefineVariable, Payload{}, t, nil)
}

// Assign creates AssignVariable(Name(Operator(op, value))). Step operators
// take a nil value.
func (b Builder) Assign(name string, op token.Op, value *Node) *Node {
	id := b.Ident(name).BindLeft(MakeNode(Operator, Payload{Op: op}, value, nil))

	return MakeNode(AssignVariable, Payload{}, id, nil)
}

// Call creates CallFunction(Name(Fold(args))).
func (b Builder) Call(name string, args ...*Node) *Node {
	return MakeNode(CallFunction, Payload{}, b.Ident(name).BindLeft(Fold(args...)), nil)
}

// If creates an If node.
func (Builder) If(cond *Node, body ...*Node) *Node {
	return MakeNode(If, Payload{}, cond, Fold(body...))
}

// ElseIf creates an ElseIf node.
func (Builder) ElseIf(cond *Node, body ...*Node) *Node {
	return MakeNode(ElseIf, Payload{}, cond, Fold(body...))
}

// Else creates an Else node.
func (Builder) Else(body ...*Node) *Node {
	return MakeNode(Else, Payload{}, nil, Fold(body...))
}

// While creates a While node.
func (Builder) While(cond *Node, body ...*Node) *Node {
	return MakeNode(While, Payload{}, cond, Fold(body...))
}

// For creates a For node.
func (Builder) For(init, cond, step *Node, body ...*Node) *Node {
	return MakeNode(For, Payload{}, ForHeader(init, cond, step), Fold(body...))
}

// Return creates a Return node.
func (Builder) Return(value *Node) *Node {
	return MakeNode(Return, Payload{}, value, nil)
}

// Func creates DefineFunction(Type(Name(Fold(params), Fold(body)))). Params
// are expected to be declarations created by [Builder.Decl] with a nil value.
func (b Builder) Func(typ token.Type, name string, params []*Node, body ...*Node) *Node {
	id := b.Ident(name).BindLeft(Fold(params...)).BindRight(Fold(body...))
	t := MakeNode(Type, Payload{Type: typ}, id, nil)

	return MakeNode(DefineFunction, Payload{}, t, nil)
}
