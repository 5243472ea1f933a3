package incpeg

import (
	"fmt"
)

// Underlying types implemented Expr interface.
type (
	exprText struct {
		text string
	}
)

// T matches text literally, byte by byte.
// T("") always matches, consuming no text.
func T(text string) Expr {
	return &exprText{text: text}
}

// Matches text, stops at the first mismatched byte.
// The cursor is left where consuming stopped.
func (expr *exprText) eval(ctx *context) (Node, bool, error) {
	for i := 0; i < len(expr.text); i++ {
		if !ctx.consume(expr.text[i]) {
			return nil, false, nil
		}
	}
	return Text(expr.text), true, nil
}

func (expr *exprText) String() string {
	return fmt.Sprintf("%q", expr.text)
}
