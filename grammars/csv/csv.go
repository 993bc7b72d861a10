// Package csv implements a configurable delimiter-separated-value grammar
// on top of parsec: the record separator, field separator, and quote
// character are all runtime options, and an optional header row can be
// flattened into named fields.
package csv

import (
	"fmt"
	"strings"

	"github.com/dhamidi/parsec"
)

// Options configures the grammar built by Grammar.
type Options struct {
	FieldSep  rune
	RecordSep rune
	Quote     rune
	// Header records whether the first record holds column names. ParseAll
	// and RowReader ignore it; ParseHeadered always treats the first record
	// as column names.
	Header bool
}

// DefaultOptions matches conventional CSV: comma fields, newline records,
// double-quote quoting, no header.
func DefaultOptions() Options {
	return Options{FieldSep: ',', RecordSep: '\n', Quote: '"'}
}

func defaults(o Options) Options {
	if o.FieldSep == 0 {
		o.FieldSep = ','
	}
	if o.RecordSep == 0 {
		o.RecordSep = '\n'
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	return o
}

// Grammar builds a parser for a single record (a line of fields) under o.
func Grammar(o Options) parsec.Parser[[]string] {
	o = defaults(o)
	fieldSepSet := parsec.NewCharSet(string(o.FieldSep))
	stop := parsec.NewCharSet(string(o.FieldSep) + string(o.RecordSep))
	quoted := quotedField(o)
	plain := parsec.ReadTo(stop, true)
	field := parsec.Alt("field", quoted, plain)
	return parsec.RepSep(field, parsec.Skip1(fieldSepSet), parsec.TrailAllow)
}

func quotedField(o Options) parsec.Parser[string] {
	q := string(o.Quote)
	qSet := parsec.NewCharSet(q)
	body := parsec.Rep(parsec.Alt("quoted-char",
		parsec.Read1To(qSet, false),
		parsec.Map(parsec.Str(q+q), func(string, parsec.Fail, int, int) (string, bool) { return q, true }),
	))
	return parsec.Map(
		parsec.Seq3(parsec.Str(q), body, parsec.Str(q)),
		func(t parsec.Tuple3[string, []string, string], _ parsec.Fail, _, _ int) (string, bool) {
			joined := ""
			for _, s := range t.F2 {
				joined += s
			}
			return joined, true
		},
	)
}

// recordSepParser matches one-or-more record separators, treating a run of
// them (e.g. CRLF pairs collapsing to LF, or trailing blank lines) as a
// single break.
func recordSepParser(o Options) parsec.Parser[parsec.Unit] {
	return parsec.Skip1(parsec.NewCharSet(string(o.RecordSep) + "\r"))
}

// ParseAll parses every record in input and returns each one verbatim,
// including the first; o.Header is not consulted. ParseHeadered decodes a
// header row into []map[string]string.
func ParseAll(input string, o Options) ([][]string, error) {
	o = defaults(o)
	rows, err := parseRows(input, o)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ParseHeadered is like ParseAll but treats the first row as column names.
func ParseHeadered(input string, o Options) ([]map[string]string, error) {
	o = defaults(o)
	rows, err := parseRows(input, o)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRows(input string, o Options) ([][]string, error) {
	// A trailing run of record separators ends the last record rather than
	// introducing an empty one after it — the same convention every plain
	// text file with a final newline follows.
	input = strings.TrimRight(input, string(o.RecordSep)+"\r")

	record := Grammar(o)
	sep := recordSepParser(o)
	grammar := parsec.RepSep(record, sep, parsec.TrailAllow)
	driver := parsec.New(grammar, parsec.Options{ConsumeAll: true, Detailed: true, Causes: true})
	rows, _, err := driver.Run(input)
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

// RowReader streams one record at a time out of input, tracking its own
// cursor. It is the supplemented, allocation-light counterpart to ParseAll
// for large inputs where materializing every row up front is wasteful.
type RowReader struct {
	input  string
	pos    int
	record parsec.Parser[[]string]
	sep    parsec.Parser[parsec.Unit]
	opts   Options
	done   bool
}

// NewRowReader returns a RowReader over input.
func NewRowReader(input string, o Options) *RowReader {
	o = defaults(o)
	return &RowReader{input: input, record: Grammar(o), sep: recordSepParser(o), opts: o}
}

// ParseRow returns the next record, or ok=false once input is exhausted.
func (r *RowReader) ParseRow() (row []string, ok bool, err error) {
	if r.done || r.pos >= len(r.input) {
		return nil, false, nil
	}
	v, np, matched := r.record.Parse(r.input, r.pos)
	if !matched {
		r.done = true
		return nil, false, fmt.Errorf("parse csv row at byte %d", r.pos)
	}
	r.pos = np
	if r.pos < len(r.input) {
		if _, np2, sepOk := r.sep.Parse(r.input, r.pos); sepOk {
			r.pos = np2
		}
	}
	return v, true, nil
}
