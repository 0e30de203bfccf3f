package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "Integer", Integer.String())
	assert.Equal(t, "String", String.String())
	assert.Equal(t, "Tuple", Tuple.String())
}

func Test_NewInt_AsInt(t *testing.T) {
	v := NewInt(42)
	assert.Equal(t, Integer, v.Kind())
	n, ok := AsInt(v)
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func Test_AsInt_failsOnWrongKind(t *testing.T) {
	_, ok := AsInt(NewStr("nope"))
	assert.False(t, ok)
}

func Test_NewStr_AsStr(t *testing.T) {
	v := NewStr("hello")
	assert.Equal(t, String, v.Kind())
	s, ok := AsStr(v)
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
}

func Test_NewTuple_AsTuple(t *testing.T) {
	v := NewTuple([]Value{NewInt(1), NewInt(2)})
	assert.Equal(t, Tuple, v.Kind())
	elems, ok := AsTuple(v)
	assert.True(t, ok)
	assert.Len(t, elems, 2)
}

func Test_SameKind(t *testing.T) {
	assert.True(t, SameKind(NewInt(1), NewInt(2)))
	assert.False(t, SameKind(NewInt(1), NewStr("x")))
}

func Test_Tup_String(t *testing.T) {
	v := NewTuple([]Value{NewInt(1), NewInt(2), NewInt(3)})
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func Test_Str_String_isRawNotQuoted(t *testing.T) {
	// print() relies on String() returning the raw payload, not a
	// quoted/escaped representation.
	v := NewStr("line1\nline2")
	assert.Equal(t, "line1\nline2", v.String())
}
