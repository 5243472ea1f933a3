package incpeg

import (
	"sort"
)

// Grammar is an immutable set of named rules, entered through StartRule.
type Grammar struct {
	rules map[string]Expr
}

// NewGrammar builds a grammar from a copy of rules.
// It fails if the start rule is missing, if any rule is nil, if any rule
// references an undefined rule, or if any rule is left recursive, that is,
// if it may apply itself again without consuming text.
func NewGrammar(rules map[string]Expr) (*Grammar, error) {
	copied := make(map[string]Expr, len(rules))
	for name, expr := range rules {
		if expr == nil {
			return nil, ErrNilRule
		}
		copied[name] = expr
	}
	if _, ok := copied[StartRule]; !ok {
		return nil, &UndefinedRuleError{Name: StartRule}
	}

	g := &Grammar{rules: copied}
	for _, name := range g.Names() {
		if err := g.check(copied[name]); err != nil {
			return nil, err
		}
	}
	if err := g.checkLeftRecursion(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustGrammar is like NewGrammar but panics on errors.
func MustGrammar(rules map[string]Expr) *Grammar {
	g, err := NewGrammar(rules)
	if err != nil {
		panic(err)
	}
	return g
}

// Rule looks up rule definition.
func (g *Grammar) Rule(name string) (Expr, bool) {
	expr, ok := g.rules[name]
	return expr, ok
}

// Names returns the sorted rule names.
func (g *Grammar) Names() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checks that every rule referenced in expr is defined.
func (g *Grammar) check(expr Expr) error {
	switch expr := expr.(type) {
	case nil:
		return ErrNilRule
	case *exprRule:
		if _, ok := g.rules[expr.name]; !ok {
			return &UndefinedRuleError{Name: expr.name}
		}
	case *exprSequence:
		return g.checkAll(expr.exprs)
	case *exprAlternative:
		return g.checkAll(expr.exprs)
	case *exprRepetition:
		return g.check(expr.expr)
	case *exprNot:
		return g.check(expr.expr)
	}
	return nil
}

func (g *Grammar) checkAll(exprs []Expr) error {
	for _, expr := range exprs {
		if err := g.check(expr); err != nil {
			return err
		}
	}
	return nil
}

// Tells which rules may match the empty string, up to the least fixed point.
func (g *Grammar) nullableRules() map[string]bool {
	nullable := make(map[string]bool, len(g.rules))
	for changed := true; changed; {
		changed = false
		for name, expr := range g.rules {
			if !nullable[name] && isNullable(expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func isNullable(expr Expr, nullable map[string]bool) bool {
	switch expr := expr.(type) {
	case *exprText:
		return expr.text == ""
	case *exprRule:
		return nullable[expr.name]
	case *exprSequence:
		for _, sub := range expr.exprs {
			if !isNullable(sub, nullable) {
				return false
			}
		}
		return true
	case *exprAlternative:
		for _, sub := range expr.exprs {
			if isNullable(sub, nullable) {
				return true
			}
		}
		return false
	}
	// Q0 and Not
	return true
}

// Collects the rules expr may apply at the position it starts from.
func leftCalls(expr Expr, nullable map[string]bool, into map[string]bool) {
	switch expr := expr.(type) {
	case *exprRule:
		into[expr.name] = true
	case *exprSequence:
		for _, sub := range expr.exprs {
			leftCalls(sub, nullable, into)
			if !isNullable(sub, nullable) {
				return
			}
		}
	case *exprAlternative:
		for _, sub := range expr.exprs {
			leftCalls(sub, nullable, into)
		}
	case *exprRepetition:
		leftCalls(expr.expr, nullable, into)
	case *exprNot:
		leftCalls(expr.expr, nullable, into)
	}
}

// Reports a rule lying on a cycle of left calls, searching rules in name order.
func (g *Grammar) checkLeftRecursion() error {
	nullable := g.nullableRules()
	calls := make(map[string]map[string]bool, len(g.rules))
	for name, expr := range g.rules {
		calls[name] = make(map[string]bool)
		leftCalls(expr, nullable, calls[name])
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[string]int, len(g.rules))

	// visit returns the rule closing a cycle, if any
	var visit func(name string) (string, bool)
	visit = func(name string) (string, bool) {
		switch state[name] {
		case visiting:
			return name, true
		case visited:
			return "", false
		}
		state[name] = visiting
		for _, callee := range sortedKeys(calls[name]) {
			if culprit, found := visit(callee); found {
				return culprit, true
			}
		}
		state[name] = visited
		return "", false
	}

	for _, name := range g.Names() {
		if culprit, found := visit(name); found {
			return &LeftRecursionError{Name: culprit}
		}
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
