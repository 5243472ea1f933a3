package main

import (
	"testing"
)

func TestLocate(t *testing.T) {
	text := "ab\ncd\r\nef\rgh\n\nå€x"
	data := []struct {
		offset int
		pos    string
	}{
		{0, "1:1+0"},
		{2, "1:3+2"},
		{3, "2:1+3"},
		{5, "2:3+5"},
		{6, "2:4+6"},
		{7, "3:1+7"},
		{10, "4:1+10"},
		{13, "5:1+13"},
		{14, "6:1+14"},
		{19, "6:3+19"},
		{20, "6:4+20"},
		{99, "6:4+20"},
		{-1, "1:1+0"},
	}

	idx := newLineIndex(text)
	for _, d := range data {
		if pos := idx.locate(d.offset).String(); pos != d.pos {
			t.Errorf("RESULT DISMATCH: locate(%d) => %s != %s", d.offset, pos, d.pos)
		}
	}
}
