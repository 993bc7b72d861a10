// Package parsec implements a string parser-combinator library: a set of
// small composable parser values that recognize context-free-ish grammars
// over UTF-8 strings, producing typed results together with positional
// error diagnostics and, optionally, a hierarchical parse tree.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  Primitives │────▶│ Combinators │────▶│   Driver    │
//	│ (chars/str) │     │ (alt/seq/…) │     │ (Run/Parse) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │   Context   │     │  ParseError │
//	                    │ (diagnostics)│    │  ParseNode  │
//	                    └─────────────┘     └─────────────┘
//
// # Concurrency
//
// A Context is created fresh by every driver Run call and is never shared
// across goroutines; nothing in this package is package-level mutable
// state. Concurrent calls to independently-constructed driver functions,
// or repeated calls to the same one, are therefore safe.
//
// # Success cells
//
// Every parser is a ParseFunc[T]: given a Context, the input, and a
// position, it returns (value, new position, ok). On failure it returns
// the zero value, the original position, and false — the canonical
// failure signal — after recording the reason on the Context. Combinators
// that accumulate results (Rep, Seq) copy each child's value into their
// own accumulator before calling the next child; combinators that merely
// forward a single child's result (Opt, Alt) do not need to, since nothing
// else runs afterwards on that path.
package parsec

// ParseFunc is the low-level shape every parser implements. out is the
// currently open parse-tree node children should be appended to, or nil
// when tree mode is disabled.
type ParseFunc[T any] func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool)

// Parser is a named, sharable parser value. Parsers are created once and
// reused freely; the only state a Parser mutates after construction is the
// lazily-populated cache inside a Lazy handle.
type Parser[T any] struct {
	name string
	fn   ParseFunc[T]
}

// Named returns p's diagnostic name, or "" if none was set.
func (p Parser[T]) Named() string {
	return p.name
}

// parse runs the parser, applying the shared recursion-depth guard.
func (p Parser[T]) parse(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
	if !ctx.enter(pos) {
		var zero T
		return zero, pos, false
	}
	defer ctx.leave()
	return p.fn(ctx, input, pos, out)
}

// Parse runs the parser starting at pos with a fresh, default Context. It
// is a low-level escape hatch; most callers should build a driver with New
// instead so options like consume-all and trim apply.
func (p Parser[T]) Parse(input string, pos int) (T, int, bool) {
	ctx := newContext(true, false, 0)
	return p.parse(ctx, input, pos, nil)
}

// newParser wraps fn as a named Parser[T].
func newParser[T any](name string, fn ParseFunc[T]) Parser[T] {
	return Parser[T]{name: name, fn: fn}
}

// Unwrap returns p itself. A parser built by Lazy is returned as is, not
// replaced by the parser its init resolves to.
// Unwrap(Unwrap(p)) == Unwrap(p) for every parser value in this package.
func Unwrap[T any](p Parser[T]) Parser[T] {
	return p
}
