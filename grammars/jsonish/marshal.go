package jsonish

import (
	"strconv"
	"strings"
)

// Marshal renders v back to text, always using canonical (double-quoted
// string, decimal number, no digit separators) form regardless of how it
// was originally written — jsonish accepts more syntax than it produces.
func Marshal(v Value) string {
	var b strings.Builder
	marshal(&b, v)
	return b.String()
}

func marshal(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
	case KindString:
		marshalString(b, v.Str)
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			marshal(b, item)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.Object {
			if i > 0 {
				b.WriteByte(',')
			}
			marshalString(b, m.Key)
			b.WriteByte(':')
			marshal(b, m.Value)
		}
		b.WriteByte('}')
	}
}

func marshalString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
