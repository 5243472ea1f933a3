package incpeg

import (
	"fmt"
)

// Underlying types implemented Expr interface.
type (
	exprRule struct {
		name string
	}
)

// V applies the named rule of the grammar. Each rule is evaluated at most
// once per position while its memo entry stays valid.
func V(name string) Expr {
	return &exprRule{name: name}
}

// Invokes the rule, result passes through unchanged.
func (expr *exprRule) eval(ctx *context) (Node, bool, error) {
	return ctx.apply(expr.name)
}

func (expr *exprRule) String() string {
	return fmt.Sprintf("$%s", expr.name)
}
