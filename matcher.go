package incpeg

// Matcher matches whole texts against a grammar, building a fresh memo
// table for each match.
type Matcher struct {
	config  Config
	grammar *Grammar
}

// Match applies the start rule to text. It returns a nil node if the rule
// dismatches or if it does not consume the full text.
func (m *Matcher) Match(text string) (Node, error) {
	node, n, err := m.MatchPrefix(text)
	if err != nil || node == nil || n != len(text) {
		return nil, err
	}
	return node, nil
}

// MatchPrefix applies the start rule to text and tells how many bytes it
// matched, without requiring the full text to be consumed.
func (m *Matcher) MatchPrefix(text string) (Node, int, error) {
	ctx := newContext(m.config, m.grammar, newStandardMemo(len(text)), text)
	return ctx.match()
}
