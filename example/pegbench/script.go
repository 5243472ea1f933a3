package main

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// editScript is a list of edits, replayed in order:
//
//	// comment
//	edit <start> <end> "<replacement>" [expect match|nomatch]
//
// The replacement may also be a `raw string`.
type editScript struct {
	Ops []*editOp `parser:"@@*"`
}

type editOp struct {
	Pos lexer.Position

	Start  int    `parser:"'edit' @Int"`
	End    int    `parser:"@Int"`
	Text   string `parser:"@(String | RawString)"`
	Expect string `parser:"( 'expect' @('match' | 'nomatch') )?"`
}

var scriptParser = participle.MustBuild[editScript](
	participle.Unquote("String", "RawString"),
)

func parseScript(filename, src string) ([]*editOp, error) {
	script, err := scriptParser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	return script.Ops, nil
}

// expectation reports whether the op expects a match, if it expects anything.
func (op *editOp) expectation() (match, ok bool) {
	switch op.Expect {
	case "match":
		return true, true
	case "nomatch":
		return false, true
	}
	return false, false
}
