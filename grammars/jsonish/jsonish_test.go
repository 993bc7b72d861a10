package jsonish

import (
	"strings"
	"testing"

	"github.com/dhamidi/parsec/internal/gramdev"
)

func TestGrammarDocumentationVerifies(t *testing.T) {
	result := gramdev.Check("jsonish", strings.NewReader(EBNF), "Value")
	if !result.OK() {
		t.Fatalf("grammar.ebnf failed verification: %v", result.Errs)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"null", KindNull},
		{"true", KindBool},
		{"false", KindBool},
		{"42", KindNumber},
		{"0x2A", KindNumber},
		{"0b101010", KindNumber},
		{"0o52", KindNumber},
		{"3.14", KindNumber},
		{"1_000_000", KindNumber},
		{`"hi"`, KindString},
		{"'hi'", KindString},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			v, err := Parse(test.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.input, err)
			}
			if v.Kind != test.kind {
				t.Errorf("Parse(%q).Kind = %v, want %v", test.input, v.Kind, test.kind)
			}
		})
	}
}

func TestParseHexOctBinValues(t *testing.T) {
	for _, input := range []string{"0x2A", "0o52", "0b101010"} {
		v, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		if v.Number != 42 {
			t.Errorf("%s = %v, want 42", input, v.Number)
		}
	}
}

func TestParseNegativeRadixLiteralInObject(t *testing.T) {
	v, err := Parse(`{"a": 0xFF, b: -0b1010, "c": [1, 2, "x"]}`)
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != KindObject || len(v.Object) != 3 {
		t.Fatalf("got %+v", v)
	}
	if v.Object[0].Key != "a" || v.Object[0].Value.Number != 255 {
		t.Fatalf("a: %+v", v.Object[0])
	}
	if v.Object[1].Key != "b" || v.Object[1].Value.Number != -10 {
		t.Fatalf("b: %+v", v.Object[1])
	}
	c := v.Object[2].Value
	if c.Kind != KindArray || len(c.Array) != 3 {
		t.Fatalf("c: %+v", c)
	}
	if c.Array[0].Number != 1 || c.Array[1].Number != 2 || c.Array[2].Str != "x" {
		t.Fatalf("c contents: %+v", c.Array)
	}
}

func TestParseObjectWithBareKeys(t *testing.T) {
	v, err := Parse(`{a: 1, "b": 2, c: [1, 2, 3,]}`)
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != KindObject || len(v.Object) != 3 {
		t.Fatalf("got %+v", v)
	}
	if v.Object[0].Key != "a" || v.Object[1].Key != "b" || v.Object[2].Key != "c" {
		t.Fatalf("keys: %+v", v.Object)
	}
	c := v.Object[2].Value
	if c.Kind != KindArray || len(c.Array) != 3 {
		t.Fatalf("trailing comma in array should be allowed: %+v", c)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("{not valid"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	input := `{a: 1, "b": [true, false, null, "x\ny"]}`
	v, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	out := Marshal(v)
	v2, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parsing marshaled output: %v", err)
	}
	if Marshal(v2) != out {
		t.Fatalf("marshal is not idempotent: %q vs %q", out, Marshal(v2))
	}
}
