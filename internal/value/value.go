// Package value defines Noh's runtime values: a closed three-variant
// sum (Integer | String | Tuple). Bindings in scope frames hold these
// directly; no AST node is ever re-allocated to represent a result.
package value

import (
	"fmt"
	"strings"
)

// Kind identifies which of the three variants a Value holds.
type Kind int

const (
	Integer Kind = iota
	String
	Tuple
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case String:
		return "String"
	case Tuple:
		return "Tuple"
	default:
		return "Unknown"
	}
}

// Value is implemented by every runtime value variant.
type Value interface {
	Kind() Kind
	String() string
}

// Int is the Integer variant: a 64-bit signed integer using ordinary
// wrapping two's-complement arithmetic.
type Int struct {
	V int64
}

func (i Int) Kind() Kind     { return Integer }
func (i Int) String() string { return fmt.Sprintf("%d", i.V) }

// Str is the String variant: a byte sequence.
type Str struct {
	V string
}

func (s Str) Kind() Kind     { return String }
func (s Str) String() string { return s.V }

// Tup is the Tuple variant: an ordered sequence of runtime values,
// copied by value on assignment.
type Tup struct {
	Elems []Value
}

func (t Tup) Kind() Kind { return Tuple }
func (t Tup) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewInt, NewStr and NewTuple are convenience constructors for the
// three variants.
func NewInt(v int64) Value     { return Int{V: v} }
func NewStr(v string) Value    { return Str{V: v} }
func NewTuple(v []Value) Value { return Tup{Elems: v} }

// SameKind reports whether a and b are the same variant, the rule
// ReAssign enforces.
func SameKind(a, b Value) bool { return a.Kind() == b.Kind() }

// AsInt extracts the Integer payload, succeeding only for the
// Integer variant.
func AsInt(v Value) (int64, bool) {
	i, ok := v.(Int)
	return i.V, ok
}

// AsStr extracts the String payload, succeeding only for the String
// variant.
func AsStr(v Value) (string, bool) {
	s, ok := v.(Str)
	return s.V, ok
}

// AsTuple extracts the Tuple payload, succeeding only for the Tuple
// variant.
func AsTuple(v Value) ([]Value, bool) {
	t, ok := v.(Tup)
	return t.Elems, ok
}
