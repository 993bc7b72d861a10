package parsec

// Opt makes p optional: on success it returns a pointer to the value; on
// failure it succeeds anyway, without advancing, returning nil.
func Opt[T any](p Parser[T]) Parser[*T] {
	return newParser("opt", func(ctx *Context, input string, pos int, out *ParseNode) (*T, int, bool) {
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			return nil, pos, true
		}
		return &v, np, true
	})
}

// Not succeeds without advancing iff p fails at pos; if p succeeds, Not
// fails, reporting the text p consumed.
func Not[T any](p Parser[T]) Parser[Unit] {
	return newParser("not", func(ctx *Context, input string, pos int, out *ParseNode) (Unit, int, bool) {
		_, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			return unit, pos, true
		}
		return unit, pos, ctx.Failf(pos, "unexpected `%s`", input[pos:np])
	})
}

// AndNot runs p, and only accepts it if q also fails when tried at the same
// starting position. It is useful for excluding a general pattern's keyword
// collisions, e.g. an identifier parser that must not also match a reserved
// word parser.
func AndNot[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return newParser("andNot", func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		var zero T
		v, np, ok := p.parse(ctx, input, pos, out)
		if !ok {
			return zero, pos, false
		}
		if _, _, qok := q.parse(ctx, input, pos, out); qok {
			return zero, pos, ctx.Fail(pos, "unexpected match")
		}
		return v, np, true
	})
}
