package parsec

// Fail is passed to a Map/Verify callback so it can abort the match. Calling
// it always returns false, which callers return alongside the zero value of
// their result type: `return zero, fail("message")`.
type Fail func(message string) bool

// Map runs p, then passes its value, a start/end span, and a Fail callback
// to f. If f calls fail, the whole Map fails; the failure position is the
// END of p's match (SPEC_FULL.md's resolution of the open question on
// where a Map-time rejection should be reported — endorsed by the
// changelog note that a fixed release moved this from the start position).
func Map[T, U any](p Parser[T], f func(value T, fail Fail, start, end int) (U, bool)) Parser[U] {
	return newParser("map", func(ctx *Context, input string, pos int, out *ParseNode) (U, int, bool) {
		var zero U
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "map")
			return zero, pos, false
		}
		failFn := Fail(func(message string) bool {
			return ctx.Fail(np, message)
		})
		result, ok2 := f(v, failFn, pos, np)
		if !ok2 {
			return zero, pos, false
		}
		return result, np, true
	})
}

// Verify runs p, then calls pred with the value. An empty string means the
// value is accepted; any other string is a rejection message, and the whole
// Verify fails at the end position of p's match.
func Verify[T any](p Parser[T], pred func(T) string) Parser[T] {
	return newParser("verify", func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		var zero T
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "verify")
			return zero, pos, false
		}
		if msg := pred(v); msg != "" {
			return zero, pos, ctx.Fail(np, msg)
		}
		return v, np, true
	})
}

// Chain runs p, then uses sel to pick the next parser to run from p's
// value, continuing from p's end position. A nil sel always fails with
// "chain selection failed".
func Chain[T, U any](p Parser[T], sel func(T) Parser[U]) Parser[U] {
	return newParser("chain", func(ctx *Context, input string, pos int, out *ParseNode) (U, int, bool) {
		var zero U
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "chain")
			return zero, pos, false
		}
		if sel == nil {
			return zero, pos, ctx.Fail(np, "chain selection failed")
		}
		next := sel(v)
		v2, np2, ok2 := next.parse(ctx, input, np, out)
		if !ok2 {
			ctx.WrapCause(pos, "chain")
			return zero, pos, false
		}
		return v2, np2, true
	})
}
