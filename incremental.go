package incpeg

// IncrementalMatcher matches an editable text against a grammar, keeping
// memoized results across edits.
//
// An IncrementalMatcher is not safe for concurrent use.
type IncrementalMatcher struct {
	config  Config
	grammar *Grammar
	text    string
	memo    *incrementalMemo
	ctx     context
}

// MemoStats counts the memo table content of an IncrementalMatcher.
type MemoStats struct {
	// Columns is the number of positions with memoized results.
	Columns int

	// Entries is the number of memoized (rule, position) pairs.
	Entries int
}

// Text returns the current text.
func (m *IncrementalMatcher) Text() string {
	return m.text
}

// Len returns the length of the current text in bytes.
func (m *IncrementalMatcher) Len() int {
	return len(m.text)
}

// Stats counts the memo table content.
func (m *IncrementalMatcher) Stats() MemoStats {
	return m.memo.stats()
}

// ApplyEdit replaces text[start:end] with replacement, and invalidates the
// memoized results that examined any replaced byte. Memoized results past
// end are kept and shifted along with their text.
//
// The edit is rejected with an *InvalidEditRangeError unless
// 0 <= start <= end <= Len().
func (m *IncrementalMatcher) ApplyEdit(start, end int, replacement string) error {
	if start < 0 || start > end || end > len(m.text) {
		return &InvalidEditRangeError{Start: start, End: end, Len: len(m.text)}
	}

	m.text = m.text[:start] + replacement + m.text[end:]
	m.memo.splice(start, end, len(replacement))
	return nil
}

// Match applies the start rule to the current text. It returns a nil node
// if the rule dismatches or if it does not consume the full text.
func (m *IncrementalMatcher) Match() (Node, error) {
	m.ctx.reset(m.config, m.grammar, m.memo, m.text)
	node, n, err := m.ctx.match()
	if err != nil || node == nil || n != len(m.text) {
		return nil, err
	}
	return node, nil
}
