package parsec

// Tuple2..Tuple9 hold the per-child values of a Seq2..Seq9 combinator.
// Fields are named uniformly (F1, F2, …) rather than reusing type-parameter
// letters as field names — the source grammar this library is modeled on
// has a documented typo at arity 9 (a duplicated letter in the tuple type's
// field list); naming fields positionally instead of by type-parameter
// letter sidesteps that whole class of mistake. See DESIGN.md.
type Tuple2[A, B any] struct {
	F1 A
	F2 B
}

type Tuple3[A, B, C any] struct {
	F1 A
	F2 B
	F3 C
}

type Tuple4[A, B, C, D any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
}

type Tuple5[A, B, C, D, E any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
	F5 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
	F5 E
	F6 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
	F5 E
	F6 F
	F7 G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
	F5 E
	F6 F
	F7 G
	F8 H
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	F1 A
	F2 B
	F3 C
	F4 D
	F5 E
	F6 F
	F7 G
	F8 H
	F9 I
}

// Seq2 runs pa then pb in order, starting each at the position the
// previous child left off, and returns both values as a Tuple2. On any
// child's failure the whole sequence fails. In tree mode, Seq opens a node
// at its starting position and closes it on success (SPEC_FULL.md §4.4).
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return newParser("seq", withNode[Tuple2[A, B]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple2[A, B], int, bool) {
		var zero Tuple2[A, B]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple2[A, B]{a, b}, p2, true
	}))
}

func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return newParser("seq", withNode[Tuple3[A, B, C]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple3[A, B, C], int, bool) {
		var zero Tuple3[A, B, C]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple3[A, B, C]{a, b, c}, p3, true
	}))
}

func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return newParser("seq", withNode[Tuple4[A, B, C, D]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple4[A, B, C, D], int, bool) {
		var zero Tuple4[A, B, C, D]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple4[A, B, C, D]{a, b, c, d}, p4, true
	}))
}

func Seq5[A, B, C, D, E any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return newParser("seq", withNode[Tuple5[A, B, C, D, E]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple5[A, B, C, D, E], int, bool) {
		var zero Tuple5[A, B, C, D, E]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		e, p5, ok := pe.parse(ctx, input, p4, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple5[A, B, C, D, E]{a, b, c, d, e}, p5, true
	}))
}

func Seq6[A, B, C, D, E, F any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	return newParser("seq", withNode[Tuple6[A, B, C, D, E, F]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple6[A, B, C, D, E, F], int, bool) {
		var zero Tuple6[A, B, C, D, E, F]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		e, p5, ok := pe.parse(ctx, input, p4, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		f, p6, ok := pf.parse(ctx, input, p5, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple6[A, B, C, D, E, F]{a, b, c, d, e, f}, p6, true
	}))
}

func Seq7[A, B, C, D, E, F, G any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F], pg Parser[G]) Parser[Tuple7[A, B, C, D, E, F, G]] {
	return newParser("seq", withNode[Tuple7[A, B, C, D, E, F, G]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple7[A, B, C, D, E, F, G], int, bool) {
		var zero Tuple7[A, B, C, D, E, F, G]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		e, p5, ok := pe.parse(ctx, input, p4, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		f, p6, ok := pf.parse(ctx, input, p5, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		g, p7, ok := pg.parse(ctx, input, p6, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple7[A, B, C, D, E, F, G]{a, b, c, d, e, f, g}, p7, true
	}))
}

func Seq8[A, B, C, D, E, F, G, H any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F], pg Parser[G], ph Parser[H]) Parser[Tuple8[A, B, C, D, E, F, G, H]] {
	return newParser("seq", withNode[Tuple8[A, B, C, D, E, F, G, H]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple8[A, B, C, D, E, F, G, H], int, bool) {
		var zero Tuple8[A, B, C, D, E, F, G, H]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		e, p5, ok := pe.parse(ctx, input, p4, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		f, p6, ok := pf.parse(ctx, input, p5, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		g, p7, ok := pg.parse(ctx, input, p6, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		h, p8, ok := ph.parse(ctx, input, p7, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple8[A, B, C, D, E, F, G, H]{a, b, c, d, e, f, g, h}, p8, true
	}))
}

func Seq9[A, B, C, D, E, F, G, H, I any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F], pg Parser[G], ph Parser[H], pi Parser[I]) Parser[Tuple9[A, B, C, D, E, F, G, H, I]] {
	return newParser("seq", withNode[Tuple9[A, B, C, D, E, F, G, H, I]](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Tuple9[A, B, C, D, E, F, G, H, I], int, bool) {
		var zero Tuple9[A, B, C, D, E, F, G, H, I]
		a, p1, ok := pa.parse(ctx, input, pos, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		b, p2, ok := pb.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		c, p3, ok := pc.parse(ctx, input, p2, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		d, p4, ok := pd.parse(ctx, input, p3, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		e, p5, ok := pe.parse(ctx, input, p4, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		f, p6, ok := pf.parse(ctx, input, p5, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		g, p7, ok := pg.parse(ctx, input, p6, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		h, p8, ok := ph.parse(ctx, input, p7, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		i, p9, ok := pi.parse(ctx, input, p8, out)
		if !ok {
			ctx.WrapCause(pos, "seq")
			return zero, pos, false
		}
		return Tuple9[A, B, C, D, E, F, G, H, I]{a, b, c, d, e, f, g, h, i}, p9, true
	}))
}

// SeqAll runs same-typed parsers in order and returns their values as a
// slice. It is the homogeneous counterpart to Seq2..Seq9, useful when a
// grammar rule's arity is a runtime slice rather than a fixed shape.
func SeqAll[T any](parsers ...Parser[T]) Parser[[]T] {
	return newParser("seq", withNode[[]T](nil, func(ctx *Context, input string, pos int, out *ParseNode) ([]T, int, bool) {
		values := make([]T, 0, len(parsers))
		p := pos
		for _, child := range parsers {
			v, np, ok := child.parse(ctx, input, p, out)
			if !ok {
				ctx.WrapCause(pos, "seq")
				return nil, pos, false
			}
			values = append(values, v)
			p = np
		}
		return values, p, true
	}))
}

// Check is like SeqAll but discards every child's value; a success carries
// Unit{}.
func Check[T any](parsers ...Parser[T]) Parser[Unit] {
	return newParser("check", withNode[Unit](nil, func(ctx *Context, input string, pos int, out *ParseNode) (Unit, int, bool) {
		p := pos
		for _, child := range parsers {
			_, np, ok := child.parse(ctx, input, p, out)
			if !ok {
				ctx.WrapCause(pos, "check")
				return unit, pos, false
			}
			p = np
		}
		return unit, p, true
	}))
}

// Bracket matches left, then content, then right, and returns content's
// value.
func Bracket[L, C, R any](left Parser[L], content Parser[C], right Parser[R]) Parser[C] {
	return Map(Seq3(left, content, right), func(t Tuple3[L, C, R], _ Fail, _, _ int) (C, bool) {
		return t.F2, true
	})
}

// BracketEither tries each of ends in turn as the opening delimiter,
// remembers which matched, parses content, then requires that SAME
// delimiter (not any of the others) to match at the end.
func BracketEither[C any](ends []Parser[string], content Parser[C]) Parser[C] {
	return newParser("bracket", func(ctx *Context, input string, pos int, out *ParseNode) (C, int, bool) {
		var zero C
		matched := -1
		p1 := pos
		for i, e := range ends {
			_, np, ok := e.parse(ctx, input, pos, out)
			if ok {
				matched = i
				p1 = np
				break
			}
		}
		if matched == -1 {
			return zero, pos, ctx.Fail(pos, "expected opening delimiter")
		}
		v, p2, ok := content.parse(ctx, input, p1, out)
		if !ok {
			ctx.WrapCause(pos, "bracket")
			return zero, pos, false
		}
		_, p3, ok := ends[matched].parse(ctx, input, p2, out)
		if !ok {
			return zero, pos, ctx.Fail(p2, "expected matching closing delimiter")
		}
		return v, p3, true
	})
}
