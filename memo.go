package incpeg

import (
	"slices"
)

// Memoized outcome of a rule application.
type memoEntry struct {
	node Node
	ok   bool

	// standard: absolute position after the match
	next int

	// incremental: lengths relative to the position of the entry
	matchLength    int
	examinedLength int
}

// Memo table of Matcher, one column per text position, discarded after
// each match.
type standardMemo []map[string]*memoEntry

func newStandardMemo(n int) standardMemo {
	return make(standardMemo, n+1)
}

func (memo standardMemo) recall(ctx *context, rule string) (Node, bool, bool) {
	entry, found := memo[ctx.pos][rule]
	if !found {
		return nil, false, false
	}
	if entry.ok {
		ctx.pos = entry.next
	}
	return entry.node, entry.ok, true
}

func (memo standardMemo) memoize(ctx *context, start int, rule string, node Node, ok bool) {
	col := memo[start]
	if col == nil {
		col = make(map[string]*memoEntry)
		memo[start] = col
	}
	if ok {
		col[rule] = &memoEntry{node: node, ok: true, next: ctx.pos}
	} else {
		col[rule] = &memoEntry{}
	}
}

// Memo column of IncrementalMatcher.
type memoColumn struct {
	entries map[string]*memoEntry

	// maximum examinedLength over entries
	maxExaminedLength int
}

// Memo table of IncrementalMatcher, one column per text position plus one
// for the end of text. Columns are spliced along with the text.
type incrementalMemo struct {
	columns []*memoColumn
}

func newIncrementalMemo(n int) *incrementalMemo {
	return &incrementalMemo{columns: make([]*memoColumn, n+1)}
}

func (memo *incrementalMemo) recall(ctx *context, rule string) (Node, bool, bool) {
	col := memo.columns[ctx.pos]
	if col == nil {
		return nil, false, false
	}
	entry, found := col.entries[rule]
	if !found {
		return nil, false, false
	}

	if entry.examinedLength > 0 {
		ctx.examined(ctx.pos + entry.examinedLength - 1)
	}
	if entry.ok {
		ctx.pos += entry.matchLength
	}
	return entry.node, entry.ok, true
}

func (memo *incrementalMemo) memoize(ctx *context, start int, rule string, node Node, ok bool) {
	col := memo.columns[start]
	if col == nil {
		col = &memoColumn{entries: make(map[string]*memoEntry)}
		memo.columns[start] = col
	}

	examinedLength := 0
	if ctx.maxExamined >= start {
		examinedLength = ctx.maxExamined - start + 1
	}
	entry := &memoEntry{node: node, ok: ok, examinedLength: examinedLength}
	if ok {
		entry.matchLength = ctx.pos - start
	}
	col.entries[rule] = entry
	if examinedLength > col.maxExaminedLength {
		col.maxExaminedLength = examinedLength
	}
}

// Replaces columns [start, end) with n empty columns, then drops entries
// before start whose examined text reaches into the replaced region.
func (memo *incrementalMemo) splice(start, end, n int) {
	memo.columns = slices.Replace(memo.columns, start, end, make([]*memoColumn, n)...)

	for pos := 0; pos < start; pos++ {
		col := memo.columns[pos]
		if col == nil || pos+col.maxExaminedLength <= start {
			continue
		}
		longest := 0
		for rule, entry := range col.entries {
			if pos+entry.examinedLength > start {
				delete(col.entries, rule)
			} else if entry.examinedLength > longest {
				longest = entry.examinedLength
			}
		}
		col.maxExaminedLength = longest
	}
}

// Counts occupied columns and memo entries.
func (memo *incrementalMemo) stats() MemoStats {
	var stats MemoStats
	for _, col := range memo.columns {
		if col != nil && len(col.entries) > 0 {
			stats.Columns++
			stats.Entries += len(col.entries)
		}
	}
	return stats
}
