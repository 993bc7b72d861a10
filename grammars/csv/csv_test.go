package csv

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/parsec/internal/gramdev"
)

func TestGrammarDocumentationVerifies(t *testing.T) {
	result := gramdev.Check("csv", strings.NewReader(EBNF), "Table")
	if !result.OK() {
		t.Fatalf("grammar.ebnf failed verification: %v", result.Errs)
	}
}

func TestParseAllBasic(t *testing.T) {
	rows, err := ParseAll("a,b,c\n1,2,3\n", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %#v, want %#v", rows, want)
	}
}

func TestParseAllQuotedField(t *testing.T) {
	rows, err := ParseAll(`a,"b,c",d`+"\n", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b,c", "d"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %#v, want %#v", rows, want)
	}
}

func TestParseAllEscapedQuote(t *testing.T) {
	rows, err := ParseAll(`"say ""hi"""`+"\n", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{`say "hi"`}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %#v, want %#v", rows, want)
	}
}

func TestParseHeadered(t *testing.T) {
	records, err := ParseHeadered("name,age\nalice,30\nbob,40\n", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0]["name"] != "alice" || records[1]["age"] != "40" {
		t.Fatalf("got %#v", records)
	}
}

func TestCustomSeparators(t *testing.T) {
	opts := Options{FieldSep: ';', RecordSep: '\n', Quote: '\''}
	rows, err := ParseAll("a;b;c\n", opts)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b", "c"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %#v, want %#v", rows, want)
	}
}

func TestRowReader(t *testing.T) {
	r := NewRowReader("a,b\nc,d\n", DefaultOptions())

	row, ok, err := r.ParseRow()
	if err != nil || !ok {
		t.Fatalf("row 1: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(row, []string{"a", "b"}) {
		t.Fatalf("row 1 = %#v", row)
	}

	row, ok, err = r.ParseRow()
	if err != nil || !ok {
		t.Fatalf("row 2: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(row, []string{"c", "d"}) {
		t.Fatalf("row 2 = %#v", row)
	}

	_, ok, _ = r.ParseRow()
	if ok {
		t.Fatal("expected no more rows")
	}
}
