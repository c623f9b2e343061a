package token

import (
	"errors"
	"slices"
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		kind Kind
		typ  Type
		kw   Keyword
		ok   bool
	}{
		{word: "int", kind: TypeKeyword, typ: Int, ok: true},
		{word: "void", kind: TypeKeyword, typ: Void, ok: true},
		{word: "if", kind: Condition, kw: If, ok: true},
		{word: "else", kind: Condition, kw: Else, ok: true},
		{word: "while", kind: Cycle, kw: While, ok: true},
		{word: "for", kind: Cycle, kw: For, ok: true},
		{word: "call", kind: FuncAttr, kw: Call, ok: true},
		{word: "return", kind: FuncAttr, kw: Return, ok: true},
		{word: "main", ok: false},
		{word: "Int", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			tok, ok := LookupKeyword(tt.word)
			if ok != tt.ok {
				t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.word, ok, tt.ok)
			}

			if !ok {
				return
			}

			if tok.Kind != tt.kind || tok.Type != tt.typ || tok.Keyword != tt.kw {
				t.Errorf("LookupKeyword(%q) = %v/%v/%v, want %v/%v/%v",
					tt.word, tok.Kind, tok.Type, tok.Keyword, tt.kind, tt.typ, tt.kw)
			}
		})
	}
}

func TestLookupOp_EverySpelling(t *testing.T) {
	for op := range Ops() {
		got, ok := LookupOp(op.String())
		if !ok || got != op {
			t.Errorf("LookupOp(%q) = %v, %v", op.String(), got, ok)
		}
	}

	for _, s := range []string{"", "=>", "**", "&", "|", "%"} {
		if op, ok := LookupOp(s); ok {
			t.Errorf("LookupOp(%q) = %v, want no match", s, op)
		}
	}
}

func TestKeywords_Sorted(t *testing.T) {
	got := slices.Collect(Keywords())

	if !slices.IsSorted(got) {
		t.Errorf("Keywords() not sorted: %v", got)
	}

	if slices.Contains(got, "else if") {
		t.Error("Keywords() contains merged \"else if\"")
	}
}

func TestOp_Class(t *testing.T) {
	tests := []struct {
		op     Op
		class  Class
		bool   bool
		assign bool
	}{
		{op: Add, class: ClassBinary},
		{op: Sub, class: ClassBinaryOrUnary},
		{op: Pow, class: ClassBinary},
		{op: Le, class: ClassBinary, bool: true},
		{op: Or, class: ClassBinary, bool: true},
		{op: Not, class: ClassUnary},
		{op: Assign, class: ClassAssign, assign: true},
		{op: DivAssign, class: ClassAssign, assign: true},
		{op: Inc, class: ClassStep, assign: true},
		{op: OpNone, class: ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Class(); got != tt.class {
				t.Errorf("Class() = %v, want %v", got, tt.class)
			}

			if got := tt.op.IsBool(); got != tt.bool {
				t.Errorf("IsBool() = %v, want %v", got, tt.bool)
			}

			if got := tt.op.IsAssign(); got != tt.assign {
				t.Errorf("IsAssign() = %v, want %v", got, tt.assign)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: EOF}, "end of input"},
		{Token{Kind: Number, Num: IntValue(42)}, "42"},
		{Token{Kind: Name, Text: "x"}, "x"},
		{Token{Kind: TypeKeyword, Type: Double}, "double"},
		{Token{Kind: Operator, Op: Ge}, ">="},
		{Token{Kind: Separator, Sep: Semicolon}, ";"},
		{Token{Kind: Bracket, Brace: LeftCurly}, "{"},
		{Token{Kind: Condition, Keyword: ElseIf}, "else if"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToken_Predicates(t *testing.T) {
	tok := Token{Kind: Operator, Op: Add}

	if !tok.Is(Add) || tok.Is(Sub) {
		t.Error("Is mismatch")
	}

	if tok.IsKeyword(KeywordNone) {
		t.Error("operator reported as keyword")
	}

	if !(Token{Kind: Cycle, Keyword: For}).IsKeyword(For) {
		t.Error("for not reported as keyword")
	}

	if !(Token{Kind: Bracket, Brace: RightRound}).IsBrace(RightRound) {
		t.Error("IsBrace mismatch")
	}

	if !(Token{Kind: Separator, Sep: Comma}).IsSep(Comma) {
		t.Error("IsSep mismatch")
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", IntValue(-7), "-7"},
		{"char", CharValue('a'), "97"},
		{"double whole", DoubleValue(2), "2"},
		{"double fraction", DoubleValue(3.25), "3.25"},
		{"double large", DoubleValue(1e21), "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			back, err := ParseValue(tt.v.Type.String(), tt.want)
			if err != nil {
				t.Fatalf("ParseValue: %v", err)
			}

			if back != tt.v {
				t.Errorf("ParseValue = %+v, want %+v", back, tt.v)
			}
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := []struct {
		typ, text string
	}{
		{"int", "1.5"},
		{"char", "x"},
		{"char", "4294967393"},
		{"char", "-1"},
		{"char", "55296"},
		{"char", "1114112"},
		{"double", "abc"},
		{"void", "0"},
		{"", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+" "+tt.text, func(t *testing.T) {
			_, err := ParseValue(tt.typ, tt.text)
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("ParseValue(%q, %q) error = %v, want ErrInvalidNumber", tt.typ, tt.text, err)
			}
		})
	}
}

func TestValue_Float64(t *testing.T) {
	if got := CharValue('A').Float64(); got != 65 {
		t.Errorf("char Float64() = %v", got)
	}

	if got := DoubleValue(0.5).Float64(); got != 0.5 {
		t.Errorf("double Float64() = %v", got)
	}
}
