package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Boolean(false)))
	assert.True(t, Truthy(Boolean(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.False(t, Equal(Nil{}, Boolean(false)))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.False(t, Equal(String("a"), Number(1)))
	assert.True(t, Equal(Boolean(true), Boolean(true)))
}

func TestEqual_CallablesByIdentity(t *testing.T) {
	a := &Native{NameStr: "f", Fn: func(_ []Value) (Value, error) { return Nil{}, nil }}
	b := &Native{NameStr: "f", Fn: func(_ []Value) (Value, error) { return Nil{}, nil }}
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(Nil{}))
	assert.Equal(t, "true", Stringify(Boolean(true)))
	assert.Equal(t, "false", Stringify(Boolean(false)))
	assert.Equal(t, "3", Stringify(Number(3.0)))
	assert.Equal(t, "3.5", Stringify(Number(3.5)))
	assert.Equal(t, "hello", Stringify(String("hello")))
}

func TestNative_StringIsNativeFn(t *testing.T) {
	n := &Native{NameStr: "clock", ArityN: 0, Fn: func(_ []Value) (Value, error) { return Number(0), nil }}
	assert.Equal(t, "<native fn>", n.String())
	assert.Equal(t, 0, n.Arity())
}
