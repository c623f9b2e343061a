package token

//go:generate go tool stringer --linecomment --type Kind,Op,Class,Type,Brace,Sep,Keyword --output token_string.go

import (
	"log/slog"
	"strconv"
)

// Kind classifies a lexical unit.
type Kind uint8

const (
	EOF         Kind = iota // end of input
	Number                  // number
	Name                    // name
	TypeKeyword             // type
	Operator                // operator
	Separator               // separator
	Bracket                 // bracket
	Condition               // condition
	Cycle                   // cycle
	FuncAttr                // function attribute
)

// Op is an operator tag.
type Op uint8

const (
	OpNone    Op = iota // none
	Add                 // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Pow                 // ^
	Eq                  // ==
	Neq                 // !=
	Gt                  // >
	Ge                  // >=
	Lt                  // <
	Le                  // <=
	And                 // &&
	Or                  // ||
	Not                 // !
	Assign              // =
	AddAssign           // +=
	SubAssign           // -=
	MulAssign           // *=
	DivAssign           // /=
	Inc                 // ++
	Dec                 // --
)

// Class determines how many operands an operator node carries.
type Class uint8

const (
	ClassNone          Class = iota // none
	ClassBinary                     // binary
	ClassBinaryOrUnary              // binary or unary
	ClassUnary                      // unary
	ClassAssign                     // assign
	ClassStep                       // step
)

// Class returns the operand class of o.
func (o Op) Class() Class {
	switch o {
	case Add, Mul, Div, Pow, Eq, Neq, Gt, Ge, Lt, Le, And, Or:
		return ClassBinary
	case Sub:
		return ClassBinaryOrUnary
	case Not:
		return ClassUnary
	case Assign, AddAssign, SubAssign, MulAssign, DivAssign:
		return ClassAssign
	case Inc, Dec:
		return ClassStep
	default:
		return ClassNone
	}
}

// IsBool reports whether o belongs to the boolean/comparison precedence level.
func (o Op) IsBool() bool {
	switch o {
	case Eq, Neq, Gt, Ge, Lt, Le, And, Or:
		return true
	default:
		return false
	}
}

// IsAssign reports whether o may follow a name in an assignment statement.
func (o Op) IsAssign() bool {
	c := o.Class()

	return c == ClassAssign || c == ClassStep
}

// Type is a type keyword tag. Number literals use the Int, Char and Double
// subset.
type Type uint8

const (
	TypeNone Type = iota // none
	Int                  // int
	Char                 // char
	Double               // double
	Void                 // void
)

// Brace identifies one of the four bracket tokens.
type Brace uint8

const (
	BraceNone  Brace = iota // none
	LeftRound               // (
	RightRound              // )
	LeftCurly               // {
	RightCurly              // }
)

// Sep identifies a separator token.
type Sep uint8

const (
	SepNone   Sep = iota // none
	Comma                // ,
	Semicolon            // ;
)

// Keyword identifies a condition, cycle or function attribute keyword.
type Keyword uint8

const (
	KeywordNone Keyword = iota // none
	If                         // if
	ElseIf                     // else if
	Else                       // else
	While                      // while
	For                        // for
	Call                       // call
	Return                     // return
)

// Pos is a 1-based source location. Column counts runes.
type Pos struct {
	Line   int
	Column int
}

// String returns "line:column".
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid reports whether p refers to a real source location.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Token is a classified lexical unit. Only the payload field matching Kind
// is meaningful.
type Token struct {
	Text    string // identifier text or raw spelling
	Num     Value
	Pos     Pos
	ID      int // name table index for Name tokens
	Kind    Kind
	Op      Op
	Type    Type
	Brace   Brace
	Sep     Sep
	Keyword Keyword
}

// Is reports whether t is the operator op.
func (t Token) Is(op Op) bool { return t.Kind == Operator && t.Op == op }

// IsBrace reports whether t is the bracket b.
func (t Token) IsBrace(b Brace) bool { return t.Kind == Bracket && t.Brace == b }

// IsSep reports whether t is the separator s.
func (t Token) IsSep(s Sep) bool { return t.Kind == Separator && t.Sep == s }

// IsKeyword reports whether t carries keyword k.
func (t Token) IsKeyword(k Keyword) bool {
	switch t.Kind {
	case Condition, Cycle, FuncAttr:
		return t.Keyword == k
	default:
		return false
	}
}

// String returns the token as it would be spelled in source.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Number:
		return t.Num.String()
	case Name:
		return t.Text
	case TypeKeyword:
		return t.Type.String()
	case Operator:
		return t.Op.String()
	case Separator:
		return t.Sep.String()
	case Bracket:
		return t.Brace.String()
	case Condition, Cycle, FuncAttr:
		return t.Keyword.String()
	default:
		return t.Kind.String()
	}
}

// LogValue implements slog.LogValuer.
func (t Token) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", t.Kind.String()),
		slog.String("text", t.String()),
		slog.String("pos", t.Pos.String()),
	)
}
