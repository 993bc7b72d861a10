package parsec

// TrailPolicy controls how RepSep/Rep1Sep treat a separator that appears
// after the final element.
type TrailPolicy int

const (
	// TrailAllow permits (but does not require) a trailing separator.
	TrailAllow TrailPolicy = iota
	// TrailDisallow forbids a trailing separator: if one is found but the
	// element parser fails afterwards, the match rewinds to just after
	// the last successful element rather than consuming the separator.
	TrailDisallow
	// TrailRequire mandates a trailing separator after the last element.
	TrailRequire
)

// Rep applies p until it fails, accumulating values. It never fails. A
// zero-width success from p terminates the loop rather than looping
// forever, satisfying the "idempotent under zero-width failures" property.
func Rep[T any](p Parser[T]) Parser[[]T] {
	return newParser("rep", func(ctx *Context, input string, pos int, out *ParseNode) ([]T, int, bool) {
		var values []T
		cur := pos
		for {
			v, np, ok := p.parse(ctx, input, cur, out)
			if !ok {
				break
			}
			values = append(values, v)
			if np == cur {
				break
			}
			cur = np
		}
		return values, cur, true
	})
}

// Rep1 is like Rep but requires at least one success.
func Rep1[T any](p Parser[T]) Parser[[]T] {
	return newParser("rep1", func(ctx *Context, input string, pos int, out *ParseNode) ([]T, int, bool) {
		var values []T
		cur := pos
		for {
			v, np, ok := p.parse(ctx, input, cur, out)
			if !ok {
				break
			}
			values = append(values, v)
			if np == cur {
				break
			}
			cur = np
		}
		if len(values) == 0 {
			ctx.WrapCause(pos, "rep1")
			return nil, pos, false
		}
		return values, cur, true
	})
}

// RepSep applies p interleaved with sep (an empty match succeeds with a nil
// slice). trail controls trailing-separator handling; RepSep fails only
// under TrailRequire, when no separator follows the last element.
func RepSep[T, S any](p Parser[T], sep Parser[S], trail TrailPolicy) Parser[[]T] {
	return repSepCore("repsep", p, sep, trail, false)
}

// Rep1Sep is like RepSep but requires at least one element.
func Rep1Sep[T, S any](p Parser[T], sep Parser[S], trail TrailPolicy) Parser[[]T] {
	return repSepCore("rep1sep", p, sep, trail, true)
}

func repSepCore[T, S any](name string, p Parser[T], sep Parser[S], trail TrailPolicy, requireOne bool) Parser[[]T] {
	return newParser(name, func(ctx *Context, input string, pos int, out *ParseNode) ([]T, int, bool) {
		var values []T
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			if requireOne {
				ctx.WrapCause(pos, name)
				return nil, pos, false
			}
			return values, pos, true
		}
		values = append(values, v)
		cur := np

		for {
			afterElem := cur
			_, sepEnd, sepOk := sep.parse(ctx, input, cur, out)
			if !sepOk {
				if trail == TrailRequire {
					return nil, pos, ctx.Fail(afterElem, "expected trailing separator")
				}
				return values, afterElem, true
			}

			v2, np2, ok2 := p.parse(ctx, input, sepEnd, out)
			if !ok2 {
				switch trail {
				case TrailDisallow:
					// Fixed semantics (see SPEC_FULL.md §4.5): rewind to
					// before the trailing separator attempt rather than
					// consuming it.
					return values, afterElem, true
				default: // TrailAllow, TrailRequire
					return values, sepEnd, true
				}
			}
			values = append(values, v2)
			cur = np2
		}
	})
}
