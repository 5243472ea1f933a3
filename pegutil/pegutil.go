// Package pegutil provides grammar building blocks for incpeg.
//
// Every block is an incpeg.Expr built only from the primitives of incpeg,
// thus it works with both the standard and the incremental matcher.
//
// Following categories of utils are provided by this package:
//
//	Combinators (Set, Range, Opt, Q1, Qnn, Test, Keyword, Tok, J0, J1)
//	Byte classes (*Digit, ASCII*, AnyByte, EOF)
//	Simple literals (DecInteger, Integer, Identifier, String, Newline, ...)
//
// Blocks used as plain expressions are re-evaluated wherever they appear.
// Merge Scope into a rule set with With and refer to the blocks by V(name)
// to get them memoized.
package pegutil // import "github.com/hucsmn/incpeg/pegutil"

import (
	"github.com/hucsmn/incpeg"
)

// Scope contains all the named blocks defined in this package.
var Scope = map[string]incpeg.Expr{
	"OctDigit": OctDigit,
	"DecDigit": DecDigit,
	"HexDigit": HexDigit,

	"ASCIIWhitespace":  ASCIIWhitespace,
	"ASCIIDigit":       ASCIIDigit,
	"ASCIILetter":      ASCIILetter,
	"ASCIILower":       ASCIILower,
	"ASCIIUpper":       ASCIIUpper,
	"ASCIILetterDigit": ASCIILetterDigit,
	"AnyByte":          AnyByte,
	"EOF":              EOF,

	"DecInteger": DecInteger,
	"HexInteger": HexInteger,
	"Integer":    Integer,
	"Identifier": Identifier,
	"AnySpaces":  AnySpaces,
	"Spaces":     Spaces,
	"Newline":    Newline,
	"String":     String,
}

// With returns a new rule set holding rules and the rules of every scope.
// Rules defined in rules, or in an earlier scope, take priority.
func With(rules map[string]incpeg.Expr, scopes ...map[string]incpeg.Expr) map[string]incpeg.Expr {
	merged := make(map[string]incpeg.Expr, len(rules))
	for i := len(scopes) - 1; i >= 0; i-- {
		for name, expr := range scopes[i] {
			merged[name] = expr
		}
	}
	for name, expr := range rules {
		merged[name] = expr
	}
	return merged
}
