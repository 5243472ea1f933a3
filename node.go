package incpeg

import (
	"fmt"
	"strings"
)

type (
	// Node is the concrete syntax tree produced by a successful match.
	// Its shape mirrors the expressions that produced it.
	Node interface {
		// IsTerminal tells if it is a terminal type.
		IsTerminal() bool
	}

	// Text is the span matched by a terminal.
	Text string

	// List holds the results of a sequence or a repetition in order.
	List []Node
)

// IsTerminal method of the Text type always returns true.
func (Text) IsTerminal() bool {
	return true
}

// IsTerminal method of the List type always returns false.
func (List) IsTerminal() bool {
	return false
}

func (t Text) String() string {
	return fmt.Sprintf("%q", string(t))
}

func (l List) String() string {
	strs := make([]string, len(l))
	for i := range l {
		strs[i] = fmt.Sprint(l[i])
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
}

// Flatten concatenates the terminal spans of the tree in order.
// For a full match it reproduces the matched text.
func Flatten(n Node) string {
	var sb strings.Builder
	flatten(&sb, n)
	return sb.String()
}

func flatten(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		sb.WriteString(string(n))
	case List:
		for _, sub := range n {
			flatten(sb, sub)
		}
	}
}
