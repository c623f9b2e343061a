package token

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrInvalidNumber is returned by [ParseValue] for malformed input.
var ErrInvalidNumber = errors.New("invalid number")

// Value is a numeric literal. Int holds int and char values (a char is its
// code point), Float holds double values.
type Value struct {
	Float float64
	Int   int64
	Type  Type
}

// IntValue returns an int literal.
func IntValue(v int64) Value { return Value{Int: v, Type: Int} }

// CharValue returns a char literal.
func CharValue(r rune) Value { return Value{Int: int64(r), Type: Char} }

// DoubleValue returns a double literal.
func DoubleValue(f float64) Value { return Value{Float: f, Type: Double} }

// Float64 returns the value converted to float64.
func (v Value) Float64() float64 {
	if v.Type == Double {
		return v.Float
	}

	return float64(v.Int)
}

// String returns the shortest decimal spelling that parses back to v.
func (v Value) String() string {
	if v.Type == Double {
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}

	return strconv.FormatInt(v.Int, 10)
}

// ParseValue parses a literal produced by [Value.String] with the given type
// spelling ("int", "char" or "double").
func ParseValue(typ, text string) (Value, error) {
	switch typ {
	case Int.String():
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, errors.Join(ErrInvalidNumber, err)
		}

		return IntValue(n), nil

	case Char.String():
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Value{}, errors.Join(ErrInvalidNumber, err)
		}

		if !utf8.ValidRune(rune(n)) {
			return Value{}, fmt.Errorf("%w: code point %d", ErrInvalidNumber, n)
		}

		return CharValue(rune(n)), nil

	case Double.String():
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, errors.Join(ErrInvalidNumber, err)
		}

		return DoubleValue(f), nil

	default:
		return Value{}, ErrInvalidNumber
	}
}
