package parsec

import (
	"fmt"
	"strconv"
	"strings"
)

// Options configures a driver built with New or NewTree.
type Options struct {
	// Trim skips whitespace (space, tab, CR, LF) before parsing and, after a
	// successful parse, after the match, before ConsumeAll is checked.
	Trim bool
	// ConsumeAll requires the parser to reach the end of input; leftover
	// input becomes a failure at the position just after the match.
	ConsumeAll bool
	// Detailed turns on human-readable failure messages.
	Detailed bool
	// Causes turns on the causal-chain tree attached to failures.
	Causes bool
	// ContextLines is how many lines of source context ParseError.Marked
	// shows around the failing line, on each side. Zero means 2.
	ContextLines int
	// Throw makes Run panic with the *ParseError instead of returning it as err.
	Throw bool
	// MaxDepth overrides Context.MaxDepth; zero means DefaultMaxDepth.
	MaxDepth int
}

var trimSet = NewCharSet(" \t\r\n")

// Driver is a configured entry point produced by New or NewTree.
type Driver[T any] struct {
	parser Parser[T]
	opts   Options
	tree   bool
}

// New builds a driver that runs p with opts and returns its raw value.
func New[T any](p Parser[T], opts Options) *Driver[T] {
	return &Driver[T]{parser: p, opts: opts}
}

// NewTree builds a driver that runs p with opts and also builds a ParseNode
// tree, retrievable via Run's third return value.
func NewTree[T any](p Parser[T], opts Options) *Driver[T] {
	return &Driver[T]{parser: p, opts: opts, tree: true}
}

// Run executes the driver's parser over input, applying Trim/ConsumeAll,
// and returns the value, an optional root ParseNode (nil unless the driver
// was built with NewTree), and an error that is nil on success.
//
// If Options.Throw is set, Run panics with the *ParseError instead of
// returning a non-nil error.
func (d *Driver[T]) Run(input string) (result T, root *ParseNode, err error) {
	ctx := newContext(d.opts.Detailed, d.opts.Causes, d.opts.MaxDepth)
	if d.opts.Detailed {
		ctx.ResetLatestCause()
	}

	pos := 0
	if d.opts.Trim {
		pos = trimSet.SeekWhile(input, 0)
	}

	var out *ParseNode
	if d.tree {
		out = &ParseNode{Start: pos}
	}

	value, np, ok := d.parser.parse(ctx, input, pos, out)
	if ok && d.opts.Trim {
		np = trimSet.SeekWhile(input, np)
	}
	if ok && d.opts.ConsumeAll && np < len(input) {
		ok = false
		ctx.Failf(np, "expected to consume all input, but only %d chars consumed", np)
	}

	if !ok {
		perr := d.buildError(ctx, input)
		if d.opts.Throw {
			panic(perr)
		}
		var zero T
		return zero, nil, perr
	}

	if d.tree {
		out.End = np
		out.Result = value
		root = out
	}
	return value, root, nil
}

func (d *Driver[T]) buildError(ctx *Context, input string) *ParseError {
	pe := GetParseError(ctx.GetCause(), input, d.opts.ContextLines)
	if d.opts.Causes {
		pe.Latest = FindLatestCause(ctx.GetLatestCause())
	}
	return pe
}

// GetParseError assembles a ParseError around cause, the reported failure.
// It is exported so a caller assembling a Cause outside of Run — e.g. by
// walking a ParseNode tree left over from a partial parse — can build the
// same Marked()-ready error the driver itself returns. Set the returned
// value's Latest field directly if a separately tracked furthest-cause is
// also available.
func GetParseError(cause *Cause, input string, contextLines int) *ParseError {
	pe := &ParseError{Input: input, Cause: cause, ContextLines: contextLines}
	if pe.ContextLines <= 0 {
		pe.ContextLines = 2
	}
	if cause != nil {
		pe.Pos = cause.Pos
	}
	return pe
}

// ParseError is the error type returned by a Driver on failure, or supplied
// to a Throw panic. Cause is the reported failure — the innermost distinct
// cause the driver settled on — while Latest, populated only when the causes
// detail bit is on, points at whichever attempt got furthest into the input,
// which can differ from Cause once the grammar backtracks past it.
type ParseError struct {
	Input        string
	Pos          int
	Cause        *Cause
	Latest       *Cause
	ContextLines int
}

// Error implements the error interface, returning a one-line summary with
// line:column and, if the failure carries one, its message.
func (e *ParseError) Error() string {
	line, col := GetLineNum(e.Input, e.Pos)
	msg := "parse failed"
	if e.Cause != nil && e.Cause.Message != "" {
		msg = e.Cause.Message
	}
	if e.Cause != nil && e.Cause.HasName {
		return fmt.Sprintf("%d:%d: %s (in %s)", line, col, msg, e.Cause.Name)
	}
	return fmt.Sprintf("%d:%d: %s", line, col, msg)
}

// GetLineNum converts a byte offset into input into a 1-based (line, column)
// pair. Column counts bytes since the last newline, which matches how Pos
// is measured everywhere else in this package.
func GetLineNum(input string, pos int) (line, col int) {
	if pos > len(input) {
		pos = len(input)
	}
	line = 1
	lastNL := -1
	for i := 0; i < pos; i++ {
		if input[i] == '\n' {
			line++
			lastNL = i
		}
	}
	return line, pos - lastNL
}

// Marked renders a source-context snippet around the failure, with a
// caret line pointing at the exact column, e.g.:
//
//	3: foo = [1, 2, ]
//	               ^
func (e *ParseError) Marked() string {
	lines := strings.Split(e.Input, "\n")
	line, col := GetLineNum(e.Input, e.Pos)
	lo := line - 1 - e.ContextLines
	if lo < 0 {
		lo = 0
	}
	hi := line - 1 + e.ContextLines
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}

	width := len(strconv.Itoa(hi + 1))
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		fmt.Fprintf(&b, "%*d: %s\n", width, i+1, lines[i])
		if i+1 == line {
			fmt.Fprintf(&b, "%*s  %s^\n", width, "", strings.Repeat(" ", col-1))
		}
	}
	return b.String()
}

// DetailBits packs the two independent detail flags — messages and causes —
// into a single value, for callers that want to query or set both through
// one accessor rather than two separate booleans.
type DetailBits int

const (
	// DetailMessages is the "messages" bit (Options.Detailed).
	DetailMessages DetailBits = 1 << iota
	// DetailCauses is the "causes" bit (Options.Causes).
	DetailCauses
)

// DetailedErrors is the single accessor for the messages/causes detail bits.
// Called with no arguments it reports the bits currently set on o; called
// with one, it also assigns o.Detailed and o.Causes from it first. This
// mirrors detailedErrors(on?) from earlier revisions of this design, which
// took an optional argument and always returned the resulting state.
func (o *Options) DetailedErrors(set ...DetailBits) DetailBits {
	if len(set) > 0 {
		o.Detailed = set[0]&DetailMessages != 0
		o.Causes = set[0]&DetailCauses != 0
	}
	var bits DetailBits
	if o.Detailed {
		bits |= DetailMessages
	}
	if o.Causes {
		bits |= DetailCauses
	}
	return bits
}
