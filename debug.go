package parsec

import "runtime"

// Debug wraps p so that a debugger attached to the process stops right
// before p runs, at every position it is tried. It has no effect on parse
// results and is meant to be inserted and removed while diagnosing a
// grammar interactively.
func Debug[T any](p Parser[T]) Parser[T] {
	return newParser(p.name, func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		runtime.Breakpoint()
		return p.parse(ctx, input, pos, out)
	})
}
