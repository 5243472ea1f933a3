package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// position is an offset and its line and column numbers, counting from zero.
type position struct {
	offset int
	line   int
	column int
}

func (pos position) String() string {
	return fmt.Sprintf("%d:%d+%d", pos.line+1, pos.column+1, pos.offset)
}

// lineIndex maps byte offsets of a text to line and column numbers.
// Columns count runes.
type lineIndex struct {
	text   string
	starts []int // offsets after every "\r" | "\n" | "\r\n" line ending
}

func newLineIndex(text string) *lineIndex {
	idx := &lineIndex{text: text}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			idx.starts = append(idx.starts, i+1)
		case '\r':
			if !strings.HasPrefix(text[i+1:], "\n") {
				idx.starts = append(idx.starts, i+1)
			}
		}
	}
	return idx
}

// locate clamps offset into the text.
func (idx *lineIndex) locate(offset int) position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(idx.text) {
		offset = len(idx.text)
	}

	// line is the number of line starts at or before offset
	i, j := 0, len(idx.starts)
	for i < j {
		m := i + (j-i)/2
		if idx.starts[m] <= offset {
			i = m + 1
		} else {
			j = m
		}
	}
	lnstart := 0
	if i > 0 {
		lnstart = idx.starts[i-1]
	}
	return position{
		offset: offset,
		line:   i,
		column: utf8.RuneCountInString(idx.text[lnstart:offset]),
	}
}
