package keypath

import (
	"strings"
	"testing"

	"github.com/dhamidi/parsec/grammars/jsonish"
	"github.com/dhamidi/parsec/internal/gramdev"
)

func TestGrammarDocumentationVerifies(t *testing.T) {
	result := gramdev.Check("keypath", strings.NewReader(EBNF), "Path")
	if !result.OK() {
		t.Fatalf("grammar.ebnf failed verification: %v", result.Errs)
	}
}

func TestParsePath(t *testing.T) {
	p, err := Parse(`a.b[0]["c d"].e`)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 5 {
		t.Fatalf("got %d segments: %+v", len(p), p)
	}
	if p[0].Kind != SegmentField || p[0].Field != "a" {
		t.Errorf("segment 0: %+v", p[0])
	}
	if p[1].Kind != SegmentField || p[1].Field != "b" {
		t.Errorf("segment 1: %+v", p[1])
	}
	if p[2].Kind != SegmentIndex || p[2].Index != 0 {
		t.Errorf("segment 2: %+v", p[2])
	}
	if p[3].Kind != SegmentKey || p[3].Key != "c d" {
		t.Errorf("segment 3: %+v", p[3])
	}
	if p[4].Kind != SegmentField || p[4].Field != "e" {
		t.Errorf("segment 4: %+v", p[4])
	}
}

func TestGetOverJsonish(t *testing.T) {
	doc, err := jsonish.Parse(`{a: {b: [10, 20, {c: "hi"}]}}`)
	if err != nil {
		t.Fatal(err)
	}

	v, err := Get(doc, "a.b[2].c")
	if err != nil {
		t.Fatal(err)
	}
	str, ok := v.(jsonish.Value)
	if !ok || str.Kind != jsonish.KindString || str.Str != "hi" {
		t.Fatalf("got %+v", v)
	}
}

func TestGetOverPlainMaps(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{
			"list": []any{1, 2, 3},
		},
	}
	v, err := Get(doc, "a.list[1]")
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Errorf("got %v, want 2", v)
	}
}

func TestGetMissingKeyErrors(t *testing.T) {
	doc := map[string]any{"a": 1}
	_, err := Get(doc, "b")
	if err == nil {
		t.Fatal("expected an error")
	}
}
