// Package incpeg implements packrat matching of Parsing Expression Grammars,
// in both a batch and an incremental flavour.
//
// A grammar is a set of named rules, each rule being an expression tree built
// from six primitives:
//
//	T(text)        matches text literally
//	Seq(expr, ...) matches expressions in sequence
//	Alt(expr, ...) ordered choice, the first matched alternative wins
//	Q0(expr)       zero or more repetitions, never dismatches
//	Not(expr)      negative lookahead, consumes no text
//	V(rulename)    memoized rule application
//
// The entry rule is always named "start" (see StartRule).
//
// # Matchers
//
// Two matchers accept the very same *Grammar:
//
//	m := incpeg.NewMatcher(g)
//	node, err := m.Match(text)
//
//	im := incpeg.NewIncrementalMatcher(g)
//	err = im.ApplyEdit(0, 0, text)
//	node, err = im.Match()
//
// Matcher builds a fresh memo table for every call of Match.
// IncrementalMatcher keeps its memo table across edits. Every memo entry
// remembers how far into the text its rule looked, and ApplyEdit drops only
// the entries whose examined text overlaps the edited region. The result of
// IncrementalMatcher.Match always equals the result of Matcher.Match on the
// current text, as long as no Config limit is set.
//
// # Results
//
// A successful match yields a concrete syntax tree (see Node): terminals give
// Text, sequences and repetitions give List, alternatives and rule references
// pass the selected result through unchanged, and negative lookaheads give
// nothing. A failed match, including one that does not consume the whole
// text, yields a nil Node and a nil error. Errors are reserved for grammar
// defects, such as an undefined rule, and for configured limits.
//
// Positions are byte offsets into the text.
//
// # Common mistakes
//
// Left recursion never terminates, so NewGrammar rejects it with a
// *LeftRecursionError.
//
// A Q0 whose body matches the empty string would loop forever, the matcher
// reports ErrEmptyLoop instead.
//
// A failed Seq does not restore the cursor. Only Alt, Q0, Not and the outer
// match reset it, so any new code path that retries at a position must reset
// the cursor first.
package incpeg // import "github.com/hucsmn/incpeg"

// StartRule is the name of the entry rule of every grammar.
const StartRule = "start"

// Default limits of pattern matching, both unlimited.
const (
	DefaultCallstackLimit = 0
	DefaultRepeatLimit    = 0
)

var (
	defaultConfig = Config{
		CallstackLimit: DefaultCallstackLimit,
		RepeatLimit:    DefaultRepeatLimit,
	}
)

// Expr is the tree representation of a parsing expression.
// The set of expression kinds is closed, see the package documentation.
type Expr interface {
	eval(ctx *context) (Node, bool, error)
	String() string
}

// Config contains configuration for pattern matching.
//
// Limits are safety nets against runaway grammars. The incremental matcher
// skips the rule applications it recalls from its memo table, so it nests
// and repeats less than the standard matcher on the same text. Once a limit
// is set, the two matchers may disagree on texts that reach it.
type Config struct {
	// Maximum depth of nested rule applications, zero or negative for unlimited.
	CallstackLimit int

	// Maximum repetition times of a single Q0, zero or negative for unlimited.
	RepeatLimit int
}

// DefaultConfig returns the configuration used by NewMatcher and
// NewIncrementalMatcher.
func DefaultConfig() Config {
	return defaultConfig
}

// NewMatcher creates a standard matcher using the default configuration.
func NewMatcher(g *Grammar) *Matcher {
	return defaultConfig.NewMatcher(g)
}

// NewIncrementalMatcher creates an incremental matcher with an empty text,
// using the default configuration.
func NewIncrementalMatcher(g *Grammar) *IncrementalMatcher {
	return defaultConfig.NewIncrementalMatcher(g)
}

// NewMatcher creates a standard matcher.
func (cfg Config) NewMatcher(g *Grammar) *Matcher {
	return &Matcher{config: cfg, grammar: g}
}

// NewIncrementalMatcher creates an incremental matcher with an empty text.
func (cfg Config) NewIncrementalMatcher(g *Grammar) *IncrementalMatcher {
	return &IncrementalMatcher{
		config:  cfg,
		grammar: g,
		memo:    newIncrementalMemo(0),
	}
}
