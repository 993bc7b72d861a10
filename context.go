package parsec

import "fmt"

// Cause describes why a parse attempt failed at a specific position.
// Causes form a tree: Inner is a one-level-down "this failed because…"
// chain, Siblings are peer failures (e.g. every alternative of an Alt).
type Cause struct {
	Pos      int
	Message  string
	Name     string
	HasName  bool
	Inner    *Cause
	Siblings []*Cause
}

// Copy returns a deep copy of c, safe to retain across further parsing.
func (c *Cause) Copy() *Cause {
	if c == nil {
		return nil
	}
	cp := &Cause{
		Pos:     c.Pos,
		Message: c.Message,
		Name:    c.Name,
		HasName: c.HasName,
		Inner:   c.Inner.Copy(),
	}
	if c.Siblings != nil {
		cp.Siblings = make([]*Cause, len(c.Siblings))
		for i, s := range c.Siblings {
			cp.Siblings[i] = s.Copy()
		}
	}
	return cp
}

// Context carries the per-parse mutable diagnostics state: the current
// failure record, the "latest cause" record, the active detail bits, and
// the recursion-depth guard. It is created fresh by every driver Run call
// and must not be shared across goroutines — this is the Go replacement
// for the process-wide mutable state described for dynamic hosts; see
// SPEC_FULL.md §5 and §9.
type Context struct {
	// Detailed enables human-readable failure messages (the "messages" bit).
	Detailed bool
	// Causes enables the causal-chain tree (the "causes" bit).
	Causes bool
	// MaxDepth bounds recursive-descent nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	failure *Cause
	latest  *Cause
	depth   int
}

// DefaultMaxDepth is the recursion-depth guard applied when Context.MaxDepth
// is left at zero.
const DefaultMaxDepth = 10000

func newContext(detailed, causes bool, maxDepth int) *Context {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Context{Detailed: detailed, Causes: causes, MaxDepth: maxDepth}
}

func (ctx *Context) enter(pos int) bool {
	ctx.depth++
	if ctx.depth > ctx.MaxDepth {
		ctx.depth--
		ctx.Fail(pos, "grammar recursion exceeded depth limit")
		return false
	}
	return true
}

func (ctx *Context) leave() {
	ctx.depth--
}

// Fail records a failure at pos with a plain message and returns false, so
// primitives can write `return zero, pos, ctx.Fail(pos, "...")`.
func (ctx *Context) Fail(pos int, message string) bool {
	return ctx.failNamed(pos, message, "", false)
}

// Failf is like Fail but only formats message when the messages detail bit
// is set, preserving the "error-only fast path" spec.md §9 calls out.
func (ctx *Context) Failf(pos int, format string, args ...any) bool {
	msg := ""
	if ctx.Detailed {
		msg = fmt.Sprintf(format, args...)
	}
	return ctx.failNamed(pos, msg, "", false)
}

func (ctx *Context) failNamed(pos int, message, name string, hasName bool) bool {
	c := &Cause{Pos: pos}
	if ctx.Detailed {
		c.Message = message
		c.Name = name
		c.HasName = hasName
	}
	ctx.failure = c
	ctx.touchLatest(c)
	return false
}

// touchLatest updates the latest-cause record if c's position is at least
// as far into the input as the currently recorded one (spec.md invariant 3).
func (ctx *Context) touchLatest(c *Cause) {
	if ctx.latest == nil || c.Pos >= ctx.latest.Pos {
		ctx.latest = c
	}
}

// WrapCause adds the enclosing combinator's own context to the current
// failure when the causes detail bit is on, using the same latest-cause
// merging alt.go uses to combine sibling branches (spec.md §4.3): the
// failing child's cause is treated as the lone "sibling" of an outer cause
// naming this combinator, so the reported position stays the deepest one
// reached while the combinator's own name/message is preserved as context.
// Sequencing/repetition/transform combinators call this at the point where
// they propagate a child's failure upward (SPEC_FULL.md §7). pos is the
// position the enclosing combinator itself started at.
func (ctx *Context) WrapCause(pos int, name string) {
	if !ctx.Causes {
		return
	}
	child := ctx.GetCauseCopy()
	outer := &Cause{Pos: pos}
	if ctx.Detailed && name != "" {
		outer.Name = name
		outer.HasName = true
		outer.Message = fmt.Sprintf("expected `%s`", name)
	}
	combined := GetLatestCauseAmong([]*Cause{child}, outer)
	ctx.failure = combined
	ctx.touchLatest(combined)
}

// GetCause returns the current failure record. The returned pointer is
// overwritten by the next failure; callers that need to retain it must
// call GetCauseCopy instead.
func (ctx *Context) GetCause() *Cause {
	return ctx.failure
}

// GetCauseCopy returns a deep, independent copy of the current failure
// record.
func (ctx *Context) GetCauseCopy() *Cause {
	return ctx.failure.Copy()
}

// ResetLatestCause clears the latest-cause record. Called by the driver at
// the start of every parse when the messages detail bit is on.
func (ctx *Context) ResetLatestCause() {
	ctx.latest = nil
}

// GetLatestCause returns the furthest-into-the-input failure observed since
// the last ResetLatestCause.
func (ctx *Context) GetLatestCause() *Cause {
	return ctx.latest
}

// GetLatestCauseAmong attaches siblings to outer, then returns a cause
// that surfaces whichever sibling failed furthest into the input: if some
// sibling is further than outer, the result wraps that sibling with outer
// as its Inner so callers see both the deepest concrete reason and the
// enclosing context. Otherwise outer itself (with siblings attached) is
// returned.
func GetLatestCauseAmong(siblings []*Cause, outer *Cause) *Cause {
	if outer == nil {
		outer = &Cause{}
	}
	outer.Siblings = siblings

	var furthest *Cause
	for _, s := range siblings {
		if s == nil {
			continue
		}
		if furthest == nil || s.Pos > furthest.Pos {
			furthest = s
		}
	}
	if furthest != nil && furthest.Pos > outer.Pos {
		return &Cause{
			Pos:      furthest.Pos,
			Message:  furthest.Message,
			Name:     furthest.Name,
			HasName:  furthest.HasName,
			Inner:    outer,
			Siblings: furthest.Siblings,
		}
	}
	return outer
}

// FindLatestCause performs a deep traversal of c looking for the failure
// with the greatest position anywhere in the Inner/Siblings tree, which
// may differ from the cause the driver would otherwise report (that one
// is chosen by GetLatestCauseAmong from only the top-level siblings).
func FindLatestCause(c *Cause) *Cause {
	if c == nil {
		return nil
	}
	best := c
	if inner := FindLatestCause(c.Inner); inner != nil && inner.Pos > best.Pos {
		best = inner
	}
	for _, s := range c.Siblings {
		if cand := FindLatestCause(s); cand != nil && cand.Pos > best.Pos {
			best = cand
		}
	}
	return best
}

// IsFailure reports whether a parse outcome (as returned by a Parser's Fn)
// represents the canonical failure signal.
func IsFailure(ok bool) bool {
	return !ok
}

// IsError reports whether v is a non-nil *ParseError.
func IsError(v any) bool {
	if v == nil {
		return false
	}
	_, ok := v.(*ParseError)
	return ok
}
