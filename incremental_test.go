package incpeg

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

var arithmetic = MustGrammar(map[string]Expr{
	StartRule: Seq(V("expr")),
	"expr":    Seq(V("term"), Q0(Seq(Alt(T("+"), T("-")), V("term")))),
	"term":    Seq(V("factor"), Q0(Seq(Alt(T("*"), T("/")), V("factor")))),
	"factor":  Alt(Seq(T("("), V("expr"), T(")")), V("number")),
	"number":  Seq(V("digit"), Q0(V("digit"))),
	"digit": Alt(T("0"), T("1"), T("2"), T("3"), T("4"),
		T("5"), T("6"), T("7"), T("8"), T("9")),
})

type editTestData struct {
	start, end  int
	replacement string
}

// Splices text the way ApplyEdit does.
func splice(text string, edit editTestData) string {
	return text[:edit.start] + edit.replacement + text[edit.end:]
}

func randomEdit(rnd *rand.Rand, text, alphabet string) editTestData {
	start := rnd.Intn(len(text) + 1)
	end := start + rnd.Intn(len(text)-start+1)
	if end-start > 3 {
		end = start + rnd.Intn(4)
	}
	var sb strings.Builder
	for i := rnd.Intn(4); i > 0; i-- {
		sb.WriteByte(alphabet[rnd.Intn(len(alphabet))])
	}
	return editTestData{start, end, sb.String()}
}

func runEditSequence(t *testing.T, g *Grammar, text string, edits []editTestData) {
	m := NewMatcher(g)
	im := NewIncrementalMatcher(g)
	if err := im.ApplyEdit(0, 0, text); err != nil {
		t.Fatal(err)
	}

	matched := 0
	for i := -1; i < len(edits); i++ {
		if i >= 0 {
			if err := im.ApplyEdit(edits[i].start, edits[i].end, edits[i].replacement); err != nil {
				t.Fatalf("ApplyEdit(%v) on %q => %s", edits[i], text, err)
			}
			text = splice(text, edits[i])
		}
		if im.Text() != text {
			t.Fatalf("TEXT DISMATCH: %q != %q", im.Text(), text)
		}

		expected, err := m.Match(text)
		if err != nil {
			t.Fatal(err)
		}
		actual, err := im.Match()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected, actual) {
			t.Fatalf("RESULT DISMATCH: after edit #%d on %q => %v != %v", i, text, actual, expected)
		}
		if expected != nil {
			matched++
		}
	}
	t.Logf("%d of %d states matched", matched, len(edits)+1)
}

// Tests random edit sequences against the standard matcher.
func TestIncrementalEditSequences(t *testing.T) {
	rnd := rand.New(rand.NewSource(1979))
	for round := 0; round < 20; round++ {
		text := "(1+2)*3-45/(6*7)"
		edits := make([]editTestData, 0, 50)
		cur := text
		for i := 0; i < 50; i++ {
			edit := randomEdit(rnd, cur, "0123456789+-*/()")
			edits = append(edits, edit)
			cur = splice(cur, edit)
		}
		runEditSequence(t, arithmetic, text, edits)
	}
}

// Tests edits that leave the text unchanged never change the result.
func TestNoopEdits(t *testing.T) {
	for _, text := range []string{"(1+2)*3", "1+", ""} {
		im := NewIncrementalMatcher(arithmetic)
		if err := im.ApplyEdit(0, 0, text); err != nil {
			t.Fatal(err)
		}
		expected, err := im.Match()
		if err != nil {
			t.Fatal(err)
		}
		for p := 0; p <= len(text); p++ {
			for q := p; q <= len(text); q++ {
				for _, replacement := range []string{"", text[p:q]} {
					if err := im.ApplyEdit(p, p, ""); err != nil {
						t.Fatal(err)
					}
					if err := im.ApplyEdit(p, q, replacement); err != nil {
						t.Fatal(err)
					}
					if replacement == "" {
						if err := im.ApplyEdit(p, p, text[p:q]); err != nil {
							t.Fatal(err)
						}
					}
					actual, err := im.Match()
					if err != nil {
						t.Fatal(err)
					}
					if !reflect.DeepEqual(expected, actual) {
						t.Fatalf("RESULT DISMATCH: no-op edit [%d, %d) on %q => %v != %v",
							p, q, text, actual, expected)
					}
				}
			}
		}
	}
}

// Tests rejected edits change nothing.
func TestInvalidEditRange(t *testing.T) {
	im := NewIncrementalMatcher(arithmetic)
	if err := im.ApplyEdit(0, 0, "1+2"); err != nil {
		t.Fatal(err)
	}
	if _, err := im.Match(); err != nil {
		t.Fatal(err)
	}
	stats := im.Stats()

	for _, edit := range []editTestData{
		{-1, 0, "x"},
		{0, 4, ""},
		{2, 1, ""},
		{4, 4, "+3"},
	} {
		err := im.ApplyEdit(edit.start, edit.end, edit.replacement)
		var rangeErr *InvalidEditRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("ApplyEdit(%v) => %v, expected an invalid range", edit, err)
			continue
		}
		if rangeErr.Start != edit.start || rangeErr.End != edit.end || rangeErr.Len != 3 {
			t.Errorf("ApplyEdit(%v) => %+v", edit, rangeErr)
		}
	}
	if im.Text() != "1+2" || im.Stats() != stats {
		t.Errorf("rejected edits changed the matcher: %q %+v", im.Text(), im.Stats())
	}
	if node, err := im.Match(); err != nil || Flatten(node) != "1+2" {
		t.Errorf("Match after rejected edits => (%v, %v)", node, err)
	}
}

type memoSnapshot struct {
	pos   int
	rule  string
	entry *memoEntry
}

func snapshotMemo(memo *incrementalMemo) []memoSnapshot {
	var snaps []memoSnapshot
	for pos, col := range memo.columns {
		if col == nil {
			continue
		}
		for rule, entry := range col.entries {
			snaps = append(snaps, memoSnapshot{pos, rule, entry})
		}
	}
	return snaps
}

// Tests every edit drops exactly the entries whose examined text reaches
// into the edited region, and shifts the entries after it.
func TestInvalidationLocality(t *testing.T) {
	text := "(12+3)*45-6/(7+8)"
	for start := 0; start <= len(text); start++ {
		for end := start; end <= len(text) && end <= start+3; end++ {
			for _, replacement := range []string{"", "9", "+(0"} {
				im := NewIncrementalMatcher(arithmetic)
				if err := im.ApplyEdit(0, 0, text); err != nil {
					t.Fatal(err)
				}
				if _, err := im.Match(); err != nil {
					t.Fatal(err)
				}
				before := snapshotMemo(im.memo)
				if err := im.ApplyEdit(start, end, replacement); err != nil {
					t.Fatal(err)
				}
				shift := len(replacement) - (end - start)
				checkInvalidation(t, im.memo, before, start, end, shift)

				if len(im.memo.columns) != im.Len()+1 {
					t.Fatalf("memo has %d columns for text of length %d", len(im.memo.columns), im.Len())
				}
				for pos := start; pos < start+len(replacement); pos++ {
					if im.memo.columns[pos] != nil {
						t.Fatalf("inserted column %d is not empty", pos)
					}
				}
			}
		}
	}
}

func checkInvalidation(t *testing.T, memo *incrementalMemo, before []memoSnapshot, start, end, shift int) {
	for _, snap := range before {
		switch {
		case snap.pos < start:
			col := memo.columns[snap.pos]
			kept := col != nil && col.entries[snap.rule] == snap.entry
			if reaches := snap.pos+snap.entry.examinedLength > start; reaches == kept {
				t.Fatalf("edit [%d, %d) => entry %s@%d (examined %d) kept=%t",
					start, end, snap.rule, snap.pos, snap.entry.examinedLength, kept)
			}
		case snap.pos >= end:
			col := memo.columns[snap.pos+shift]
			if col == nil || col.entries[snap.rule] != snap.entry {
				t.Fatalf("edit [%d, %d) => entry %s@%d was not shifted by %d",
					start, end, snap.rule, snap.pos, shift)
			}
		}
	}

	for pos := 0; pos < start; pos++ {
		col := memo.columns[pos]
		if col == nil {
			continue
		}
		longest := 0
		for _, entry := range col.entries {
			if entry.examinedLength > longest {
				longest = entry.examinedLength
			}
		}
		if pos+col.maxExaminedLength > start && col.maxExaminedLength != longest {
			t.Fatalf("column %d => maxExaminedLength %d != %d", pos, col.maxExaminedLength, longest)
		}
	}
}

// Tests a failed deep attempt counts in the examined length of the rule
// that finally matched shallower.
func TestExaminedLengthOfFailedAttempts(t *testing.T) {
	g := MustGrammar(map[string]Expr{
		StartRule: Alt(V("long"), V("short")),
		"long":    T("abcx"),
		"short":   T("abc"),
	})
	im := NewIncrementalMatcher(g)
	if err := im.ApplyEdit(0, 0, "abc"); err != nil {
		t.Fatal(err)
	}
	node, err := im.Match()
	if err != nil || node != Text("abc") {
		t.Fatalf("Match => (%v, %v)", node, err)
	}

	col := im.memo.columns[0]
	for rule, length := range map[string]int{StartRule: 4, "long": 4, "short": 3} {
		if entry := col.entries[rule]; entry == nil || entry.examinedLength != length {
			t.Errorf("entry %s => %+v, expected examined length %d", rule, entry, length)
		}
	}
	if col.maxExaminedLength != 4 {
		t.Errorf("maxExaminedLength => %d != 4", col.maxExaminedLength)
	}

	if err := im.ApplyEdit(3, 3, "x"); err != nil {
		t.Fatal(err)
	}
	if _, kept := col.entries["short"]; !kept || len(col.entries) != 1 || col.maxExaminedLength != 3 {
		t.Errorf("after appending => %v, maxExaminedLength %d", col.entries, col.maxExaminedLength)
	}
	node, err = im.Match()
	if err != nil || node != Text("abcx") {
		t.Fatalf("Match after appending => (%v, %v)", node, err)
	}
}

// Tests the examined length of a memo hit is folded into the rule that
// reused it, even when the hit was memoized by an earlier match.
func TestRecalledExaminedLengthIsFolded(t *testing.T) {
	g := MustGrammar(map[string]Expr{
		StartRule: Seq(Q0(T(" ")), V("word")),
		"word":    Alt(T("abc"), T("ab")),
	})
	im := NewIncrementalMatcher(g)
	for _, edit := range []editTestData{{0, 0, "ab"}, {0, 0, " "}} {
		if err := im.ApplyEdit(edit.start, edit.end, edit.replacement); err != nil {
			t.Fatal(err)
		}
		if node, err := im.Match(); err != nil || node == nil {
			t.Fatalf("Match %q => (%v, %v)", im.Text(), node, err)
		}
	}
	if entry := im.memo.columns[0].entries[StartRule]; entry.examinedLength != 4 {
		t.Errorf("start examined length => %d != 4", entry.examinedLength)
	}

	if err := im.ApplyEdit(3, 3, "c"); err != nil {
		t.Fatal(err)
	}
	node, err := im.Match()
	if err != nil || Flatten(node) != " abc" {
		t.Fatalf("Match %q => (%v, %v)", im.Text(), node, err)
	}
}

// Tests the memo table survives matches and is counted.
func TestStats(t *testing.T) {
	im := NewIncrementalMatcher(arithmetic)
	if s := im.Stats(); s.Columns != 0 || s.Entries != 0 {
		t.Errorf("empty matcher => %+v", s)
	}
	if err := im.ApplyEdit(0, 0, "1+2"); err != nil {
		t.Fatal(err)
	}
	if _, err := im.Match(); err != nil {
		t.Fatal(err)
	}
	stats := im.Stats()
	if stats.Columns != 4 || stats.Entries == 0 {
		t.Errorf("after match => %+v", stats)
	}
	if _, err := im.Match(); err != nil {
		t.Fatal(err)
	}
	if im.Stats() != stats {
		t.Errorf("rematch => %+v != %+v", im.Stats(), stats)
	}
	if err := im.ApplyEdit(0, 3, ""); err != nil {
		t.Fatal(err)
	}
	if s := im.Stats(); s.Entries >= stats.Entries {
		t.Errorf("after deleting => %+v", s)
	}
}
