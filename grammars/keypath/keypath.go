// Package keypath implements a small dotted/bracketed key-path grammar —
// `a.b[0]["c d"].e` — plus a Get evaluator that walks a jsonish.Value (or
// any Go map[string]any/[]any tree) along a parsed path.
package keypath

import (
	"strconv"

	"github.com/dhamidi/parsec"
	"github.com/dhamidi/parsec/grammars/jsonish"
)

// SegmentKind discriminates a Path segment.
type SegmentKind int

const (
	// SegmentField is a `.name` or leading `name` segment.
	SegmentField SegmentKind = iota
	// SegmentIndex is a `[123]` segment.
	SegmentIndex
	// SegmentKey is a `["quoted key"]` segment.
	SegmentKey
)

// Segment is one step of a Path.
type Segment struct {
	Kind  SegmentKind
	Field string
	Index int
	Key   string
}

// Path is a parsed key-path: a sequence of segments applied left to right.
type Path []Segment

var (
	fieldStart = parsec.NewCharSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_")
	fieldCont  = parsec.NewCharSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_0123456789")
	digits     = parsec.NewCharSet("0123456789")
)

func fieldName() parsec.Parser[string] {
	return parsec.Map(
		parsec.Seq2(parsec.Read1(fieldStart), parsec.Read(fieldCont)),
		func(t parsec.Tuple2[string, string], _ parsec.Fail, _, _ int) (string, bool) {
			return t.F1 + t.F2, true
		},
	)
}

func dotField() parsec.Parser[Segment] {
	return parsec.Map(
		parsec.Seq2(parsec.Str("."), fieldName()),
		func(t parsec.Tuple2[string, string], _ parsec.Fail, _, _ int) (Segment, bool) {
			return Segment{Kind: SegmentField, Field: t.F2}, true
		},
	)
}

func indexSeg() parsec.Parser[Segment] {
	return parsec.Map(
		parsec.Bracket(parsec.Str("["), parsec.Read1(digits), parsec.Str("]")),
		func(digitsStr string, fail parsec.Fail, _, _ int) (Segment, bool) {
			n, err := strconv.Atoi(digitsStr)
			if err != nil {
				return Segment{}, fail("invalid index: " + err.Error())
			}
			return Segment{Kind: SegmentIndex, Index: n}, true
		},
	)
}

func keySeg() parsec.Parser[Segment] {
	quoted := parsec.Alt("quoted-key",
		bracketedString('"'),
		bracketedString('\''),
	)
	return parsec.Map(
		parsec.Bracket(parsec.Str("["), quoted, parsec.Str("]")),
		func(key string, _ parsec.Fail, _, _ int) (Segment, bool) {
			return Segment{Kind: SegmentKey, Key: key}, true
		},
	)
}

func bracketedString(quote rune) parsec.Parser[string] {
	q := string(quote)
	stop := parsec.NewCharSet(q)
	return parsec.Bracket(parsec.Str(q), parsec.ReadTo(stop, false), parsec.Str(q))
}

// Grammar returns a parser for a whole key-path.
func Grammar() parsec.Parser[Path] {
	head := parsec.Map(fieldName(), func(s string, _ parsec.Fail, _, _ int) (Segment, bool) {
		return Segment{Kind: SegmentField, Field: s}, true
	})
	first := parsec.Alt("path-head", head, indexSeg(), keySeg())
	rest := parsec.Rep(parsec.Alt("path-segment", dotField(), indexSeg(), keySeg()))
	return parsec.Map(
		parsec.Seq2(first, rest),
		func(t parsec.Tuple2[Segment, []Segment], _ parsec.Fail, _, _ int) (Path, bool) {
			return append(Path{t.F1}, t.F2...), true
		},
	)
}

// Parse parses a whole key-path string.
func Parse(input string) (Path, error) {
	driver := parsec.New(Grammar(), parsec.Options{Detailed: true, Causes: true, ConsumeAll: true})
	p, _, err := driver.Run(input)
	return p, err
}

// Get walks value along path, accepting either a jsonish.Value tree or a
// plain Go tree of map[string]any/[]any/string/float64, and returns the
// value found there.
func Get(value any, path string) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	cur := value
	for _, seg := range p {
		var ok bool
		cur, ok = step(cur, seg)
		if !ok {
			return nil, &NotFoundError{Segment: seg}
		}
	}
	return cur, nil
}

// NotFoundError reports that a key-path segment had nothing to resolve to.
type NotFoundError struct {
	Segment Segment
}

func (e *NotFoundError) Error() string {
	switch e.Segment.Kind {
	case SegmentField:
		return "keypath: no field " + e.Segment.Field
	case SegmentKey:
		return "keypath: no key " + e.Segment.Key
	default:
		return "keypath: index out of range"
	}
}

func step(cur any, seg Segment) (any, bool) {
	switch v := cur.(type) {
	case jsonish.Value:
		return stepJsonish(v, seg)
	case map[string]any:
		name := fieldOrKey(seg)
		val, ok := v[name]
		return val, ok
	case []any:
		if seg.Kind != SegmentIndex || seg.Index < 0 || seg.Index >= len(v) {
			return nil, false
		}
		return v[seg.Index], true
	default:
		return nil, false
	}
}

func stepJsonish(v jsonish.Value, seg Segment) (any, bool) {
	switch seg.Kind {
	case SegmentField, SegmentKey:
		name := fieldOrKey(seg)
		if v.Kind != jsonish.KindObject {
			return nil, false
		}
		for _, m := range v.Object {
			if m.Key == name {
				return m.Value, true
			}
		}
		return nil, false
	case SegmentIndex:
		if v.Kind != jsonish.KindArray || seg.Index < 0 || seg.Index >= len(v.Array) {
			return nil, false
		}
		return v.Array[seg.Index], true
	}
	return nil, false
}

func fieldOrKey(seg Segment) string {
	if seg.Kind == SegmentField {
		return seg.Field
	}
	return seg.Key
}
