package incpeg

import (
	"fmt"
)

var (
	// ErrCallstackOverflow reports that rule applications nested deeper than
	// Config.CallstackLimit.
	ErrCallstackOverflow = errorf("callstack overflow")

	// ErrRepeatLimit reports that a Q0 exceeded Config.RepeatLimit.
	ErrRepeatLimit = errorf("repeat limit is reached")

	// ErrEmptyLoop reports a Q0 whose body matched without consuming text.
	ErrEmptyLoop = errorf("repetition body matched the empty string")

	// ErrNilRule reports a nil expression in a rule set.
	ErrNilRule = errorf("rule expression is nil")

	errorNilGrammar = errorf("the grammar is nil")
)

// UndefinedRuleError reports a reference to a rule the grammar lacks.
type UndefinedRuleError struct {
	Name string
}

// LeftRecursionError reports a rule that may apply itself again without
// consuming text.
type LeftRecursionError struct {
	Name string
}

// InvalidEditRangeError reports edit bounds outside of [0, Len] or
// reversed bounds.
type InvalidEditRangeError struct {
	Start, End int
	Len        int
}

type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peg: " + err.value
}

func (err *UndefinedRuleError) Error() string {
	return fmt.Sprintf("peg: rule %q is undefined", err.Name)
}

func (err *LeftRecursionError) Error() string {
	return fmt.Sprintf("peg: rule %q is left recursive", err.Name)
}

func (err *InvalidEditRangeError) Error() string {
	return fmt.Sprintf("peg: invalid edit range [%d, %d) for text of length %d",
		err.Start, err.End, err.Len)
}
