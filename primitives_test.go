package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead1(t *testing.T) {
	digits := NewCharSet("0123456789")

	tests := map[string]struct {
		input string
		value string
		pos   int
		ok    bool
	}{
		"empty input":  {input: "", ok: false},
		"no digits":    {input: "abc", ok: false},
		"some digits":  {input: "123abc", value: "123", pos: 3, ok: true},
		"all digits":   {input: "42", value: "42", pos: 2, ok: true},
		"leading char": {input: "a123", ok: false},
	}

	p := Read1(digits)
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			v, pos, ok := p.Parse(test.input, 0)
			require.Equal(t, test.ok, ok, "ok")
			if ok {
				assert.Equal(t, test.value, v)
				assert.Equal(t, test.pos, pos)
			}
		})
	}
}

func TestStr(t *testing.T) {
	p := Str("foo", "foobar")

	v, pos, ok := p.Parse("foobar", 0)
	require.True(t, ok)
	// Str tries options in order, so "foo" wins even though "foobar" also matches.
	assert.Equal(t, "foo", v)
	assert.Equal(t, 3, pos)

	_, _, ok = p.Parse("baz", 0)
	assert.False(t, ok)
}

func TestIStr(t *testing.T) {
	p := IStr("TRUE")

	v, pos, ok := p.Parse("true", 0)
	require.True(t, ok)
	assert.Equal(t, "TRUE", v)
	assert.Equal(t, 4, pos)

	_, _, ok = p.Parse("truthy", 0)
	assert.False(t, ok)
}

func TestReadTo(t *testing.T) {
	comma := NewCharSet(",")

	v, pos, ok := ReadTo(comma, false).Parse("abc,def", 0)
	require.True(t, ok)
	assert.Equal(t, "abc", v)
	assert.Equal(t, 3, pos)

	_, _, ok = ReadTo(comma, false).Parse("abcdef", 0)
	assert.False(t, ok, "no comma and end=false should fail")

	v, pos, ok = ReadTo(comma, true).Parse("abcdef", 0)
	require.True(t, ok, "end=true should succeed by consuming to end of input")
	assert.Equal(t, "abcdef", v)
	assert.Equal(t, 6, pos)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	v, pos, ok := Peek(3).Parse("hello", 0)
	require.True(t, ok)
	assert.Equal(t, "hel", v)
	assert.Equal(t, 0, pos)
}
