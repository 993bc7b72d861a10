// Package gramdev checks the hand-written EBNF documentation shipped
// alongside each bundled grammar (grammars/*/grammar.ebnf). It only
// verifies that the EBNF itself is well-formed and internally consistent —
// it does not compare it structurally against the Go combinators, which
// would require reflecting into unexported parser internals, so a grammar
// file that no longer describes its combinators still passes.
package gramdev

import (
	"fmt"
	"io"
	"reflect"

	"golang.org/x/exp/ebnf"
)

// CheckResult reports the outcome of checking one grammar file.
type CheckResult struct {
	Name  string
	Start string
	Errs  []string
}

// OK reports whether the grammar had no errors.
func (r CheckResult) OK() bool { return len(r.Errs) == 0 }

// Check parses and, if start is non-empty, verifies the EBNF grammar read
// from r, returning every error found.
func Check(name string, r io.Reader, start string) CheckResult {
	result := CheckResult{Name: name, Start: start}

	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		result.Errs = append(result.Errs, flattenErrors(err)...)
		return result
	}

	if start != "" {
		if err := ebnf.Verify(grammar, start); err != nil {
			result.Errs = append(result.Errs, flattenErrors(err)...)
		}
	}

	return result
}

// flattenErrors unpacks the slice-of-errors shape scanner.ErrorList and
// similar multi-error types use, since %v on the slice itself prints Go
// syntax rather than one message per line.
func flattenErrors(err error) []string {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		out := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, fmt.Sprint(v.Index(i).Interface()))
		}
		return out
	}
	return []string{err.Error()}
}
