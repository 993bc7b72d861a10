package parsec

// Name attaches a diagnostic label to p. In tree mode it makes p's match
// visible as a node (only Name, Seq and Check open nodes; every other combinator
// is tree-transparent). On failure, if the failure doesn't already carry a
// name, label carries through as the reported name — the innermost Name
// wins, since an already-named failure is left alone.
func Name[T any](p Parser[T], label string) Parser[T] {
	n := &NameHint{Label: label}
	wrapped := withNode[T](n, p.parse)
	return newParser(label, func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		v, np, ok := wrapped(ctx, input, pos, out)
		if !ok {
			if ctx.failure != nil && !ctx.failure.HasName {
				ctx.failure.Name = label
				ctx.failure.HasName = true
			}
			return v, np, false
		}
		return v, np, true
	})
}

// PrimaryName is like Name but sets Primary on the node's NameHint. Nothing
// in this package reads Primary: NodeForPosition and ParseError treat a
// primary name exactly like a plain one.
func PrimaryName[T any](p Parser[T], label string) Parser[T] {
	n := &NameHint{Label: label, Primary: true}
	wrapped := withNode[T](n, p.parse)
	return newParser(label, func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		v, np, ok := wrapped(ctx, input, pos, out)
		if !ok {
			if ctx.failure != nil && !ctx.failure.HasName {
				ctx.failure.Name = label
				ctx.failure.HasName = true
			}
			return v, np, false
		}
		return v, np, true
	})
}
