// Package jsonish implements a relaxed, JSON-like grammar built on top of
// parsec: numeric literals may use 0x/0b/0o prefixes and `_` digit
// separators, strings may be single- or double-quoted, and object keys may
// be bare identifiers as well as quoted strings.
package jsonish

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec"
)

// Kind discriminates the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a parsed jsonish value.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Array  []Value
	Object []Member
}

// Member is one key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value Value
}

var (
	wsSet   = parsec.NewCharSet(" \t\r\n")
	ws      = parsec.Skip(wsSet)
	digits  = parsec.NewCharSet("0123456789")
	hexDig  = parsec.NewCharSet("0123456789abcdefABCDEF_")
	binDig  = parsec.NewCharSet("01_")
	octDig  = parsec.NewCharSet("01234567_")
	decDig  = parsec.NewCharSet("0123456789_")
	idStart = parsec.NewCharSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$")
	idCont  = parsec.NewCharSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$0123456789")
)

// lexeme wraps p so that any trailing whitespace is consumed as part of the
// token, letting the rest of the grammar ignore inter-token spacing.
func lexeme[T any](p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Map(parsec.Seq2(p, ws), func(t parsec.Tuple2[T, parsec.Unit], _ parsec.Fail, _, _ int) (T, bool) {
		return t.F1, true
	})
}

func punct(s string) parsec.Parser[string] {
	return lexeme(parsec.Str(s))
}

var (
	numberLit = lexeme(numberParser())
	stringLit = lexeme(stringParser())
	trueLit   = lexeme(parsec.Str("true"))
	falseLit  = lexeme(parsec.Str("false"))
	nullLit   = lexeme(parsec.Str("null"))
	identLit  = lexeme(parsec.Map(
		parsec.Seq2(parsec.Read1(idStart), parsec.Read(idCont)),
		func(t parsec.Tuple2[string, string], _ parsec.Fail, _, _ int) (string, bool) {
			return t.F1 + t.F2, true
		},
	))

	lbrace = punct("{")
	rbrace = punct("}")
	lbrack = punct("[")
	rbrack = punct("]")
	colon  = punct(":")
	comma  = punct(",")
)

func numberParser() parsec.Parser[float64] {
	prefixed := parsec.Alt("number",
		radixNumber("0x", 16, hexDig),
		radixNumber("0b", 2, binDig),
		radixNumber("0o", 8, octDig),
		decimalNumber(),
	)
	return prefixed
}

func radixNumber(prefix string, base int, set parsec.CharSet) parsec.Parser[float64] {
	sign := parsec.Opt(parsec.Str("-"))
	return parsec.Map(
		parsec.Seq3(sign, parsec.Str(prefix), parsec.Read1(set)),
		func(t parsec.Tuple3[*string, string, string], fail parsec.Fail, _, _ int) (float64, bool) {
			digitsOnly := strings.ReplaceAll(t.F3, "_", "")
			n, err := strconv.ParseInt(digitsOnly, base, 64)
			if err != nil {
				return 0, fail(fmt.Sprintf("invalid %s literal: %s", prefix, err))
			}
			v := float64(n)
			if t.F1 != nil {
				v = -v
			}
			return v, true
		},
	)
}

func decimalNumber() parsec.Parser[float64] {
	sign := parsec.Opt(parsec.Str("-"))
	intPart := parsec.Read1(decDig)
	fracPart := parsec.Opt(parsec.Map(
		parsec.Seq2(parsec.Str("."), parsec.Read1(decDig)),
		func(t parsec.Tuple2[string, string], _ parsec.Fail, _, _ int) (string, bool) {
			return "." + t.F2, true
		},
	))
	expPart := parsec.Opt(parsec.Map(
		parsec.Seq3(parsec.IStr("e"), parsec.Opt(parsec.Alt("sign", parsec.Str("+"), parsec.Str("-"))), parsec.Read1(digits)),
		func(t parsec.Tuple3[string, *string, string], _ parsec.Fail, _, _ int) (string, bool) {
			sign := ""
			if t.F2 != nil {
				sign = *t.F2
			}
			return "e" + sign + t.F3, true
		},
	))

	return parsec.Map(
		parsec.Seq4(sign, intPart, fracPart, expPart),
		func(t parsec.Tuple4[*string, string, *string, *string], fail parsec.Fail, _, _ int) (float64, bool) {
			var b strings.Builder
			if t.F1 != nil {
				b.WriteString(*t.F1)
			}
			b.WriteString(strings.ReplaceAll(t.F2, "_", ""))
			if t.F3 != nil {
				b.WriteString(*t.F3)
			}
			if t.F4 != nil {
				b.WriteString(*t.F4)
			}
			n, err := strconv.ParseFloat(b.String(), 64)
			if err != nil {
				return 0, fail("invalid number literal: " + err.Error())
			}
			return n, true
		},
	)
}

func stringParser() parsec.Parser[string] {
	return parsec.Alt("string", quotedString('"'), quotedString('\''))
}

func quotedString(quote rune) parsec.Parser[string] {
	q := string(quote)
	stop := parsec.NewCharSet(q + `\`)
	segment := parsec.Alt("string-segment",
		parsec.Read1To(stop, false),
		escapeSeq(),
	)
	body := parsec.Rep(segment)
	return parsec.Map(
		parsec.Seq3(parsec.Str(q), body, parsec.Str(q)),
		func(t parsec.Tuple3[string, []string, string], _ parsec.Fail, _, _ int) (string, bool) {
			return strings.Join(t.F2, ""), true
		},
	)
}

func escapeSeq() parsec.Parser[string] {
	simple := map[string]string{
		`\n`: "\n", `\t`: "\t", `\r`: "\r", `\\`: `\`, `\"`: `"`, `\'`: "'", `\0`: "\x00", `\b`: "\b", `\f`: "\f",
	}
	return parsec.Chain(
		parsec.Seq2(parsec.Str(`\`), parsec.Chars(1, nil)),
		func(t parsec.Tuple2[string, string]) parsec.Parser[string] {
			switch t.F2 {
			case "x":
				return hexEscape(2)
			case "u":
				return hexEscape(4)
			default:
				if repl, ok := simple[`\`+t.F2]; ok {
					return parsec.Map(parsec.Peek(0), func(string, parsec.Fail, int, int) (string, bool) { return repl, true })
				}
				return parsec.Map(parsec.Peek(0), func(string, parsec.Fail, int, int) (string, bool) { return t.F2, true })
			}
		},
	)
}

func hexEscape(width int) parsec.Parser[string] {
	hex := parsec.NewCharSet("0123456789abcdefABCDEF")
	return parsec.Map(parsec.Chars(width, &hex), func(v string, fail parsec.Fail, _, _ int) (string, bool) {
		n, err := strconv.ParseInt(v, 16, 32)
		if err != nil {
			return "", fail("invalid escape: " + err.Error())
		}
		return string(rune(n)), true
	})
}

var valueRef parsec.Parser[Value]

func valueParser() parsec.Parser[Value] {
	return parsec.Lazy(func() parsec.Parser[Value] { return valueRef })
}

func objectKey() parsec.Parser[string] {
	return parsec.Alt("object-key", stringLit, identLit)
}

func memberParser() parsec.Parser[Member] {
	return parsec.Map(
		parsec.Seq3(objectKey(), colon, valueParser()),
		func(t parsec.Tuple3[string, string, Value], _ parsec.Fail, _, _ int) (Member, bool) {
			return Member{Key: t.F1, Value: t.F3}, true
		},
	)
}

func objectParser() parsec.Parser[Value] {
	members := parsec.RepSep(memberParser(), comma, parsec.TrailAllow)
	return parsec.Map(
		parsec.Bracket(lbrace, members, rbrace),
		func(ms []Member, _ parsec.Fail, _, _ int) (Value, bool) {
			return Value{Kind: KindObject, Object: ms}, true
		},
	)
}

func arrayParser() parsec.Parser[Value] {
	items := parsec.RepSep(valueParser(), comma, parsec.TrailAllow)
	return parsec.Map(
		parsec.Bracket(lbrack, items, rbrack),
		func(vs []Value, _ parsec.Fail, _, _ int) (Value, bool) {
			return Value{Kind: KindArray, Array: vs}, true
		},
	)
}

func init() {
	valueRef = parsec.Alt("value",
		parsec.Map(numberLit, func(n float64, _ parsec.Fail, _, _ int) (Value, bool) {
			return Value{Kind: KindNumber, Number: n}, true
		}),
		parsec.Map(stringLit, func(s string, _ parsec.Fail, _, _ int) (Value, bool) {
			return Value{Kind: KindString, Str: s}, true
		}),
		parsec.Map(trueLit, func(string, parsec.Fail, int, int) (Value, bool) {
			return Value{Kind: KindBool, Bool: true}, true
		}),
		parsec.Map(falseLit, func(string, parsec.Fail, int, int) (Value, bool) {
			return Value{Kind: KindBool, Bool: false}, true
		}),
		parsec.Map(nullLit, func(string, parsec.Fail, int, int) (Value, bool) {
			return Value{Kind: KindNull}, true
		}),
		objectParser(),
		arrayParser(),
	)
}

// Document is the top-level grammar: one value, whose tokens consume the
// whitespace that follows them. It does not skip leading whitespace or
// require end of input; Parse gets both from its driver's Trim and
// ConsumeAll options.
func Document() parsec.Parser[Value] {
	return valueParser()
}

// Parse parses a complete jsonish document from input, requiring the whole
// string (after leading/trailing whitespace) to be consumed.
func Parse(input string) (Value, error) {
	driver := parsec.New(Document(), parsec.Options{Trim: true, ConsumeAll: true, Detailed: true, Causes: true})
	v, _, err := driver.Run(input)
	return v, err
}
