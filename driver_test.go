package parsec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConsumeAllReportsExactMessage(t *testing.T) {
	driver := New(Str("ab"), Options{Detailed: true, ConsumeAll: true})

	_, _, err := driver.Run("abcd")
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	require.NotNil(t, pe.Cause)
	assert.Equal(t, "expected to consume all input, but only 2 chars consumed", pe.Cause.Message)
}

func TestRunConsumeAllSucceedsOnExactMatch(t *testing.T) {
	driver := New(Str("ab"), Options{ConsumeAll: true})

	v, _, err := driver.Run("ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
}

func TestOptionsThrowPanicsWithParseError(t *testing.T) {
	driver := New(Str("a"), Options{Detailed: true, Throw: true})

	defer func() {
		r := recover()
		require.NotNil(t, r, "Run must panic when Throw is set")
		pe, ok := r.(*ParseError)
		require.True(t, ok, "panic value must be a *ParseError, got %T", r)
		assert.Equal(t, 0, pe.Pos)
	}()

	driver.Run("b")
	t.Fatal("unreachable: Run should have panicked")
}

func TestContextEnterHonorsMaxDepth(t *testing.T) {
	ctx := newContext(true, false, 3)

	require.True(t, ctx.enter(0))
	require.True(t, ctx.enter(0))
	require.True(t, ctx.enter(0))

	ok := ctx.enter(0)
	assert.False(t, ok, "a 4th nesting level must trip a MaxDepth of 3")
	require.NotNil(t, ctx.GetCause())
	assert.Equal(t, "grammar recursion exceeded depth limit", ctx.GetCause().Message)
}

func TestOptionsMaxDepthLimitsRecursion(t *testing.T) {
	var expr Parser[string]
	expr = Alt("expr",
		Str("x"),
		Map(Seq2(Str("("), Lazy(func() Parser[string] { return expr })), func(v Tuple2[string, string], fail Fail, start, end int) (string, bool) {
			return v.F2, true
		}),
	)

	driver := New(expr, Options{Detailed: true, MaxDepth: 5})

	// Ten levels of "(" before the "x" parse fine under the default limit,
	// but with MaxDepth 5 the recursion guard trips long before the "x" is
	// reached, so Run must fail regardless of which combinator's own
	// message ends up on top of the resulting error.
	_, _, err := driver.Run(strings.Repeat("(", 10) + "x")
	require.Error(t, err)
}

func TestGetLineNum(t *testing.T) {
	input := "abc\ndef\nghi"

	tests := []struct {
		pos      int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
	}

	for _, tt := range tests {
		line, col := GetLineNum(input, tt.pos)
		assert.Equal(t, tt.wantLine, line, "pos %d line", tt.pos)
		assert.Equal(t, tt.wantCol, col, "pos %d col", tt.pos)
	}
}

func TestParseErrorMarked(t *testing.T) {
	driver := New(Str("ok"), Options{Detailed: true, ConsumeAll: true, ContextLines: 1})

	_, _, err := driver.Run("nope")
	require.Error(t, err)

	pe := err.(*ParseError)
	marked := pe.Marked()
	assert.Contains(t, marked, "nope")
	assert.Contains(t, marked, "^")
}

func TestOptionsDetailedErrorsAccessor(t *testing.T) {
	var o Options

	assert.Equal(t, DetailBits(0), o.DetailedErrors())

	got := o.DetailedErrors(DetailMessages)
	assert.Equal(t, DetailMessages, got)
	assert.True(t, o.Detailed)
	assert.False(t, o.Causes)

	got = o.DetailedErrors(DetailMessages | DetailCauses)
	assert.Equal(t, DetailMessages|DetailCauses, got)
	assert.True(t, o.Detailed)
	assert.True(t, o.Causes)

	got = o.DetailedErrors(0)
	assert.Equal(t, DetailBits(0), got)
	assert.False(t, o.Detailed)
	assert.False(t, o.Causes)
}

func TestGetParseErrorSetsPosFromCause(t *testing.T) {
	cause := &Cause{Pos: 4, Message: "boom"}
	pe := GetParseError(cause, "whatever", 0)

	assert.Equal(t, 4, pe.Pos)
	assert.Equal(t, 2, pe.ContextLines, "zero ContextLines defaults to 2")
	assert.Same(t, cause, pe.Cause)
}
