package token

import (
	"iter"
	"maps"
	"slices"
)

// keywords maps every reserved word to its token template. "else if" is
// merged by the lexer, so only its two halves appear here.
var keywords = map[string]Token{
	Int.String():    {Kind: TypeKeyword, Type: Int},
	Char.String():   {Kind: TypeKeyword, Type: Char},
	Double.String(): {Kind: TypeKeyword, Type: Double},
	Void.String():   {Kind: TypeKeyword, Type: Void},
	If.String():     {Kind: Condition, Keyword: If},
	Else.String():   {Kind: Condition, Keyword: Else},
	While.String():  {Kind: Cycle, Keyword: While},
	For.String():    {Kind: Cycle, Keyword: For},
	Call.String():   {Kind: FuncAttr, Keyword: Call},
	Return.String(): {Kind: FuncAttr, Keyword: Return},
}

// operators maps operator spellings to tags.
var operators = func() map[string]Op {
	m := make(map[string]Op, int(Dec))
	for op := Add; op <= Dec; op++ {
		m[op.String()] = op
	}

	return m
}()

// LookupKeyword returns the token template for a reserved word.
func LookupKeyword(word string) (Token, bool) {
	t, ok := keywords[word]

	return t, ok
}

// LookupOp returns the operator spelled s.
func LookupOp(s string) (Op, bool) {
	op, ok := operators[s]

	return op, ok
}

// Keywords returns the reserved words in lexical order.
func Keywords() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(keywords)))
}

// Ops returns every operator tag in declaration order.
func Ops() iter.Seq[Op] {
	return func(yield func(Op) bool) {
		for op := Add; op <= Dec; op++ {
			if !yield(op) {
				return
			}
		}
	}
}
