package jsonish

import _ "embed"

// EBNF is the grammar documentation shipped alongside this package. Its
// tests verify it with internal/gramdev, which checks that it is
// well-formed and complete but does not compare it with the combinators.
//
//go:embed grammar.ebnf
var EBNF string
