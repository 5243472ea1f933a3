package incpeg

import (
	"fmt"
	"strings"
)

// Underlying types implemented Expr interface.
type (
	exprSequence struct {
		exprs []Expr
	}

	exprAlternative struct {
		exprs []Expr
	}

	exprRepetition struct {
		expr Expr
	}
)

// Seq tries to match expressions in given sequence, the Seq itself only
// matched when all of the expressions are successfully matched, the text is
// consumed in order. It dismatches if any dismatched expression is
// encountered, leaving the cursor where that expression stopped.
//
// The result is a List of the sub-results, results of Not are omitted.
func Seq(sequence ...Expr) Expr {
	return &exprSequence{sequence}
}

// Alt searches the first matched expression in the given choices, every
// choice is tried from the same position. It dismatches if all the choices
// are dismatched, leaving the cursor where Alt started.
//
// It is recommended to place expressions that match more text in a prior
// order. For example, Alt(T("match"), T("match more")) never matches
// "match more" entirely.
func Alt(choices ...Expr) Expr {
	return &exprAlternative{choices}
}

// Q0 matches expr repeated zero or more times. It never dismatches.
//
// The result is a List holding one result per repetition.
func Q0(expr Expr) Expr {
	return &exprRepetition{expr}
}

// Matches sub-expressions in sequence.
func (expr *exprSequence) eval(ctx *context) (Node, bool, error) {
	results := make(List, 0, len(expr.exprs))
	for _, sub := range expr.exprs {
		node, ok, err := sub.eval(ctx)
		if err != nil || !ok {
			return nil, false, err
		}
		if _, lookahead := sub.(*exprNot); !lookahead {
			results = append(results, node)
		}
	}
	return results, true, nil
}

// Matches if any sub-expression matches, searches in order.
func (expr *exprAlternative) eval(ctx *context) (Node, bool, error) {
	at := ctx.pos
	for _, sub := range expr.exprs {
		ctx.pos = at
		node, ok, err := sub.eval(ctx)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return node, true, nil
		}
	}
	ctx.pos = at
	return nil, false, nil
}

// Matches as many times as possible.
func (expr *exprRepetition) eval(ctx *context) (Node, bool, error) {
	results := List{}
	for i := 0; ; i++ {
		if ctx.reachedRepeatLimit(i) {
			return nil, false, ErrRepeatLimit
		}

		at := ctx.pos
		node, ok, err := expr.expr.eval(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			ctx.pos = at
			return results, true, nil
		}
		if ctx.pos == at {
			return nil, false, ErrEmptyLoop
		}
		results = append(results, node)
	}
}

func (expr *exprSequence) String() string {
	strs := make([]string, len(expr.exprs))
	for i, sub := range expr.exprs {
		strs[i] = fmt.Sprint(sub)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " "))
}

func (expr *exprAlternative) String() string {
	strs := make([]string, len(expr.exprs))
	for i, sub := range expr.exprs {
		strs[i] = fmt.Sprint(sub)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " | "))
}

func (expr *exprRepetition) String() string {
	return fmt.Sprintf("%s *", expr.expr)
}
