package parsec

import "sync"

// Lazy defers calling init until the parser is first used, letting mutually
// recursive grammar rules refer to each other via ordinary forward-declared
// variables:
//
//	var expr Parser[Expr]
//	atom := Alt("atom", number, Bracket(lparen, Lazy(func() Parser[Expr] { return expr }), rparen))
//	expr = Seq2(atom, Rep(Seq2(plus, atom))) ...
//
// init is called at most once; the result is cached. If init is nil, or it
// returns a zero-value Parser (e.g. because the forward-declared variable it
// closes over was never assigned), every use fails with "uninitialized lazy
// parser" — that failure is itself cached, matching "resolved exactly once".
// The once guard makes this safe when the first use races across goroutines,
// which the rest of this package's statelessness (SPEC_FULL.md §5) requires.
func Lazy[T any](init func() Parser[T]) Parser[T] {
	var once sync.Once
	var resolved Parser[T]
	resolve := func() {
		once.Do(func() {
			if init != nil {
				resolved = init()
			}
		})
	}
	return newParser("lazy", func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		var zero T
		resolve()
		if resolved.fn == nil {
			return zero, pos, ctx.Fail(pos, "uninitialized lazy parser")
		}
		return resolved.parse(ctx, input, pos, out)
	})
}
