package parsec

import "fmt"

// Alt tries each parser in order at the same starting position and returns
// the first success. If every alternative fails, and ctx.Causes is set, the
// failures of every branch are collected as siblings and combined via
// GetLatestCauseAmong so the reported cause points at whichever alternative
// got furthest into the input (SPEC_FULL.md §4.3). name, if non-empty, is
// attached to the combined failure the way Name attaches one to a single
// parser's failure, and appears in the failure message as `expected
// `<name>``.
func Alt[T any](name string, parsers ...Parser[T]) Parser[T] {
	message := "expected an alternative"
	if name != "" {
		message = fmt.Sprintf("expected `%s`", name)
	}
	return newParser(name, func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		var zero T
		var siblings []*Cause
		outerStart := pos
		for _, p := range parsers {
			v, np, ok := p.parse(ctx, input, pos, out)
			if ok {
				return v, np, true
			}
			if ctx.Causes {
				siblings = append(siblings, ctx.GetCauseCopy())
			}
		}
		if len(parsers) == 0 {
			return zero, pos, ctx.Fail(pos, message)
		}
		if ctx.Causes {
			outer := &Cause{Pos: outerStart}
			if ctx.Detailed {
				if name != "" {
					outer.Name = name
					outer.HasName = true
				}
				outer.Message = message
			}
			combined := GetLatestCauseAmong(siblings, outer)
			ctx.failure = combined
			ctx.touchLatest(combined)
			return zero, pos, false
		}
		return zero, pos, ctx.Fail(pos, message)
	})
}
