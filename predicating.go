package incpeg

import (
	"fmt"
)

// Underlying types implemented Expr interface.
type (
	exprNot struct {
		expr Expr
	}
)

// Not predicates if expr is dismatched, consuming no text.
// Inside a Seq, Not yields no result. Elsewhere its result is an empty List.
func Not(expr Expr) Expr {
	return &exprNot{expr}
}

// Predicates and always restores the cursor.
func (expr *exprNot) eval(ctx *context) (Node, bool, error) {
	at := ctx.pos
	_, ok, err := expr.expr.eval(ctx)
	ctx.pos = at
	if err != nil {
		return nil, false, err
	}
	if ok {
		return nil, false, nil
	}
	return List(nil), true, nil
}

func (expr *exprNot) String() string {
	return fmt.Sprintf("!%s", expr.expr)
}
