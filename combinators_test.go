package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitParser() Parser[string] {
	return Read1(NewCharSet("0123456789"))
}

func TestSeq2(t *testing.T) {
	p := Seq2(Str("a"), Str("b"))

	v, pos, ok := p.Parse("ab", 0)
	require.True(t, ok)
	assert.Equal(t, "a", v.F1)
	assert.Equal(t, "b", v.F2)
	assert.Equal(t, 2, pos)

	_, pos, ok = p.Parse("ac", 0)
	assert.False(t, ok)
	assert.Equal(t, 0, pos, "sequence must rewind fully on failure")
}

func TestAlt(t *testing.T) {
	p := Alt("letter-or-digit", Str("x"), Str("y"))

	_, _, ok := p.Parse("x", 0)
	assert.True(t, ok)

	_, _, ok = p.Parse("y", 0)
	assert.True(t, ok)

	_, _, ok = p.Parse("z", 0)
	assert.False(t, ok)
}

func TestAltReportsFurthestCause(t *testing.T) {
	ctx := newContext(true, true, 0)
	p := Alt("branches",
		Seq2(Str("a"), Str("b")),
		Seq2(Str("a"), Str("c")),
	)

	// Both branches fail after consuming "a"; the reported cause should
	// come from the furthest-advanced sibling (pos 1) rather than pos 0.
	_, _, ok := p.parse(ctx, "ax", 0, nil)
	require.False(t, ok)
	cause := ctx.GetCause()
	require.NotNil(t, cause)
	assert.Equal(t, 1, cause.Pos)
}

func TestRepNeverFails(t *testing.T) {
	p := Rep(Str("a"))

	v, pos, ok := p.Parse("", 0)
	require.True(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, 0, pos)

	v, pos, ok = p.Parse("aaab", 0)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "a", "a"}, v)
	assert.Equal(t, 3, pos)
}

func TestRep1RequiresOne(t *testing.T) {
	p := Rep1(Str("a"))

	_, _, ok := p.Parse("b", 0)
	assert.False(t, ok)

	v, pos, ok := p.Parse("aab", 0)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "a"}, v)
	assert.Equal(t, 2, pos)
}

func TestRepSepTrailPolicies(t *testing.T) {
	comma := Str(",")

	tests := map[string]struct {
		trail TrailPolicy
		input string
		want  []string
		pos   int
		ok    bool
	}{
		"disallow, no trailing comma": {trail: TrailDisallow, input: "1,2,3", want: []string{"1", "2", "3"}, pos: 5, ok: true},
		"disallow, trailing comma rewinds": {trail: TrailDisallow, input: "1,2,", want: []string{"1", "2"}, pos: 3, ok: true},
		"allow, trailing comma consumed":   {trail: TrailAllow, input: "1,2,", want: []string{"1", "2"}, pos: 4, ok: true},
		"require, missing trailing comma fails": {trail: TrailRequire, input: "1,2", ok: false},
		"require, trailing comma present":       {trail: TrailRequire, input: "1,2,", want: []string{"1", "2"}, pos: 4, ok: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := RepSep(digitParser(), comma, test.trail)
			v, pos, ok := p.Parse(test.input, 0)
			require.Equal(t, test.ok, ok)
			if ok {
				assert.Equal(t, test.want, v)
				assert.Equal(t, test.pos, pos)
			}
		})
	}
}

func TestOpt(t *testing.T) {
	p := Opt(Str("x"))

	v, pos, ok := p.Parse("x", 0)
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, "x", *v)
	assert.Equal(t, 1, pos)

	v, pos, ok = p.Parse("y", 0)
	require.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 0, pos)
}

func TestNot(t *testing.T) {
	p := Not(Str("x"))

	_, pos, ok := p.Parse("y", 0)
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	_, _, ok = p.Parse("x", 0)
	assert.False(t, ok)
}

func TestMapCanFail(t *testing.T) {
	p := Map(digitParser(), func(v string, fail Fail, start, end int) (int, bool) {
		if v == "13" {
			return 0, fail("unlucky number")
		}
		return len(v), true
	})

	v, _, ok := p.Parse("42", 0)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	ctx := newContext(true, false, 0)
	_, _, ok = p.parse(ctx, "13", 0, nil)
	require.False(t, ok)
	assert.Equal(t, 2, ctx.GetCause().Pos, "map failure position is the end of the match")
}

func TestVerify(t *testing.T) {
	p := Verify(digitParser(), func(v string) string {
		if len(v) > 2 {
			return "too many digits"
		}
		return ""
	})

	_, _, ok := p.Parse("42", 0)
	assert.True(t, ok)

	_, _, ok = p.Parse("4242", 0)
	assert.False(t, ok)
}

func TestChainNilSelectorFails(t *testing.T) {
	p := Chain[string, string](Str("a"), nil)
	ctx := newContext(true, false, 0)
	_, _, ok := p.parse(ctx, "a", 0, nil)
	require.False(t, ok)
	assert.Equal(t, "chain selection failed", ctx.GetCause().Message)
}

func TestBracket(t *testing.T) {
	p := Bracket(Str("("), digitParser(), Str(")"))

	v, pos, ok := p.Parse("(42)", 0)
	require.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, 4, pos)

	_, _, ok = p.Parse("(42", 0)
	assert.False(t, ok)
}

func TestBracketEitherRequiresMatchingClose(t *testing.T) {
	p := BracketEither([]Parser[string]{Str(`"`), Str("'")}, digitParser())

	v, pos, ok := p.Parse(`"42"`, 0)
	require.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, 4, pos)

	_, _, ok = p.Parse(`"42'`, 0)
	assert.False(t, ok, `opened with " must close with ", not '`)
}

func TestLazyRecursion(t *testing.T) {
	// balanced parens: "" | "(" expr ")"
	var expr Parser[int]
	lazyExpr := Lazy(func() Parser[int] { return expr })
	expr = Alt("expr",
		Map(Seq3(Str("("), lazyExpr, Str(")")), func(t Tuple3[string, int, string], _ Fail, _, _ int) (int, bool) {
			return t.F2 + 1, true
		}),
		Map(Str(""), func(string, Fail, int, int) (int, bool) { return 0, true }),
	)

	v, pos, ok := expr.Parse("((()))", 0)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 6, pos)
}

func TestLazyUninitializedFails(t *testing.T) {
	var never Parser[int]
	p := Lazy(func() Parser[int] { return never })
	ctx := newContext(true, false, 0)
	_, _, ok := p.parse(ctx, "1", 0, nil)
	require.False(t, ok)
	assert.Equal(t, "uninitialized lazy parser", ctx.GetCause().Message)
}

func TestNameLabelsFailure(t *testing.T) {
	p := Name(Str("keyword"), "keyword")
	ctx := newContext(true, false, 0)
	_, _, ok := p.parse(ctx, "nope", 0, nil)
	require.False(t, ok)
	cause := ctx.GetCause()
	require.True(t, cause.HasName)
	assert.Equal(t, "keyword", cause.Name)
}

func TestTreeBuildsOnlyForSeqAndName(t *testing.T) {
	inner := Name(digitParser(), "digits")
	p := Seq2(inner, Str("!"))

	root := &ParseNode{}
	_, _, ok := p.parse(newContext(false, false, 0), "42!", 0, root)
	require.True(t, ok)

	require.Len(t, root.Children, 1, "only the Seq itself should open a node here")
	seqNode := root.Children[0]
	require.Len(t, seqNode.Children, 1, "Name should open a node, Str should not")
	assert.Equal(t, "digits", seqNode.Children[0].Name.Label)
}
