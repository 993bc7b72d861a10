package parsec

import "strings"

// Unit is the value type returned by parsers that only advance the cursor
// and carry no interesting result (Skip, Skip1, Check).
type Unit = struct{}

var unit = Unit{}

// Skip advances over any run of characters in set. Never fails.
func Skip(set CharSet) Parser[Unit] {
	return newParser("skip", func(ctx *Context, input string, pos int, out *ParseNode) (Unit, int, bool) {
		return unit, set.SeekWhile(input, pos), true
	})
}

// Skip1 is like Skip but fails if zero characters were consumed.
func Skip1(set CharSet) Parser[Unit] {
	return newParser("skip1", func(ctx *Context, input string, pos int, out *ParseNode) (Unit, int, bool) {
		np := set.SeekWhile(input, pos)
		if np == pos {
			return unit, pos, ctx.Failf(pos, "expected at least one of `%s`", string(set.Runes()))
		}
		return unit, np, true
	})
}

// Read returns the span skipped over as a string. Never fails.
func Read(set CharSet) Parser[string] {
	return newParser("read", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		np := set.SeekWhile(input, pos)
		return input[pos:np], np, true
	})
}

// Read1 is like Read but fails if zero characters were consumed.
func Read1(set CharSet) Parser[string] {
	return newParser("read1", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		np := set.SeekWhile(input, pos)
		if np == pos {
			return "", pos, ctx.Failf(pos, "expected one of `%s`", string(set.Runes()))
		}
		return input[pos:np], np, true
	})
}

// Chars reads exactly n characters. If allowed is non-nil, every character
// must be a member of it.
func Chars(n int, allowed *CharSet) Parser[string] {
	return newParser("chars", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		np := pos
		for i := 0; i < n; i++ {
			if np >= len(input) {
				return "", pos, ctx.Fail(np, "unexpected end of input")
			}
			r, size := decodeRune(input, np)
			if allowed != nil && !allowed.Contains(r) {
				return "", pos, ctx.Fail(np, "unexpected char")
			}
			np += size
		}
		return input[pos:np], np, true
	})
}

// NotChars reads exactly n characters, none of which may be in dis.
func NotChars(n int, dis CharSet) Parser[string] {
	return newParser("notchars", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		np := pos
		for i := 0; i < n; i++ {
			if np >= len(input) {
				return "", pos, ctx.Fail(np, "unexpected end of input")
			}
			r, size := decodeRune(input, np)
			if dis.Contains(r) {
				return "", pos, ctx.Fail(np, "unexpected char")
			}
			np += size
		}
		return input[pos:np], np, true
	})
}

// ReadTo consumes characters until one in set is found. If end is true,
// running off the end of input also stops the scan successfully;
// otherwise, failing to find a stop character fails at len(input)-1.
func ReadTo(set CharSet, end bool) Parser[string] {
	return readToImpl("readTo", func(*Context) CharSet { return set }, end)
}

// Read1To is like ReadTo but fails if zero characters were consumed.
func Read1To(set CharSet, end bool) Parser[string] {
	return read1ToImpl("read1To", func(*Context) CharSet { return set }, end)
}

// DynStop supplies a stop-set that is re-read on every ReadToDyn
// invocation, letting a grammar change the stop set between calls (e.g.
// nested-delimiter tracking).
type DynStop struct {
	Stop CharSet
}

// ReadToDyn is like ReadTo, but the stop set is read from state.Stop each
// time the parser runs, rather than being fixed at construction.
func ReadToDyn(state *DynStop, end bool) Parser[string] {
	return readToImpl("readToDyn", func(*Context) CharSet { return state.Stop }, end)
}

func readToImpl(name string, stop func(*Context) CharSet, end bool) Parser[string] {
	return newParser(name, func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		set := stop(ctx)
		np := set.SeekUntil(input, pos)
		if np >= len(input) && !end {
			return "", pos, ctx.Failf(len(input)-1, "expected one of `%s` before end of input", string(set.Runes()))
		}
		return input[pos:np], np, true
	})
}

func read1ToImpl(name string, stop func(*Context) CharSet, end bool) Parser[string] {
	inner := readToImpl(name, stop, end)
	return newParser(name, func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		v, np, ok := inner.parse(ctx, input, pos, out)
		if !ok {
			return v, np, false
		}
		if np == pos {
			return "", pos, ctx.Failf(pos, "expected at least one of `%s` before end of input", string(stop(ctx).Runes()))
		}
		return v, np, true
	})
}

// Peek returns the next n characters without advancing.
func Peek(n int) Parser[string] {
	return newParser("peek", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		np := pos
		for i := 0; i < n; i++ {
			if np >= len(input) {
				return "", pos, ctx.Fail(pos, "unexpected end of input")
			}
			_, size := decodeRune(input, np)
			np += size
		}
		return input[pos:np], pos, true
	})
}

// Str matches any one of the given literal strings and returns whichever
// one matched.
func Str(options ...string) Parser[string] {
	return newParser("str", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		for _, opt := range options {
			if strings.HasPrefix(input[pos:], opt) {
				return opt, pos + len(opt), true
			}
		}
		return "", pos, ctx.Fail(pos, strExpectedMessage(ctx, options))
	})
}

// IStr is a case-insensitive Str: it matches any of options ignoring case
// and returns the matched text normalized to the casing given for that
// option in the argument list.
func IStr(options ...string) Parser[string] {
	return newParser("istr", func(ctx *Context, input string, pos int, out *ParseNode) (string, int, bool) {
		for _, opt := range options {
			if len(input)-pos < len(opt) {
				continue
			}
			if strings.EqualFold(input[pos:pos+len(opt)], opt) {
				return opt, pos + len(opt), true
			}
		}
		return "", pos, ctx.Fail(pos, strExpectedMessage(ctx, options))
	})
}

func strExpectedMessage(ctx *Context, options []string) string {
	if !ctx.Detailed {
		return ""
	}
	if len(options) == 1 {
		return "expected `" + options[0] + "`"
	}
	return "expected one of " + strings.Join(quoteAll(options), ",")
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = "`" + s + "`"
	}
	return out
}

// ISkip is the case-insensitive form of Skip.
func ISkip(chars string) Parser[Unit] { return Skip(NewCharSetFold(chars)) }

// ISkip1 is the case-insensitive form of Skip1.
func ISkip1(chars string) Parser[Unit] { return Skip1(NewCharSetFold(chars)) }

// IRead is the case-insensitive form of Read.
func IRead(chars string) Parser[string] { return Read(NewCharSetFold(chars)) }

// IRead1 is the case-insensitive form of Read1.
func IRead1(chars string) Parser[string] { return Read1(NewCharSetFold(chars)) }

// IChars reads exactly n characters, each folded against allowed.
func IChars(n int, allowed string) Parser[string] {
	set := NewCharSetFold(allowed)
	return Chars(n, &set)
}

// NotIChars reads exactly n characters, none of which may fold-match dis.
func NotIChars(n int, dis string) Parser[string] {
	return NotChars(n, NewCharSetFold(dis))
}

// IReadTo is the case-insensitive form of ReadTo.
func IReadTo(chars string, end bool) Parser[string] { return ReadTo(NewCharSetFold(chars), end) }

// IRead1To is the case-insensitive form of Read1To.
func IRead1To(chars string, end bool) Parser[string] { return Read1To(NewCharSetFold(chars), end) }
