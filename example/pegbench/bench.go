package main

import (
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/hucsmn/incpeg"
)

// bench replays edits of a text with the standard matcher, the incremental
// matcher, or both.
type bench struct {
	standard    *incpeg.Matcher
	incremental *incpeg.IncrementalMatcher
	check       bool
	logger      *log.Logger

	text string

	// per-edit times of each matcher, empty unless it runs
	standardTimes    []time.Duration
	incrementalTimes []time.Duration
	failed           int
}

func newBench(g *incpeg.Grammar, standard, incremental, check bool, logger *log.Logger) *bench {
	b := &bench{check: check, logger: logger}
	if standard || check {
		b.standard = incpeg.NewMatcher(g)
	}
	if incremental || check {
		b.incremental = incpeg.NewIncrementalMatcher(g)
	}
	return b
}

// run applies every op in order. A failed expectation is logged and counted,
// only an invalid edit, a matcher error or a disagreement of the matchers
// stops the run.
func (b *bench) run(ops []*editOp) error {
	for i, op := range ops {
		if err := b.apply(i, op); err != nil {
			return err
		}
	}
	if b.incremental != nil {
		stats := b.incremental.Stats()
		b.logger.Printf("memo: %d entries in %d columns", stats.Entries, stats.Columns)
	}
	return nil
}

func (b *bench) apply(step int, op *editOp) error {
	if op.Start < 0 || op.Start > op.End || op.End > len(b.text) {
		err := &incpeg.InvalidEditRangeError{Start: op.Start, End: op.End, Len: len(b.text)}
		return fmt.Errorf("%s: %w", op.Pos, err)
	}
	at := newLineIndex(b.text).locate(op.Start)
	b.text = b.text[:op.Start] + op.Text + b.text[op.End:]

	var (
		standard, incremental incpeg.Node
		matched               bool
		times                 []string
	)
	if b.standard != nil {
		begin := time.Now()
		node, err := b.standard.Match(b.text)
		if err != nil {
			return fmt.Errorf("%s: %w", op.Pos, err)
		}
		elapsed := time.Since(begin)
		b.standardTimes = append(b.standardTimes, elapsed)
		times = append(times, "standard "+elapsed.String())
		standard, matched = node, node != nil
	}
	if b.incremental != nil {
		begin := time.Now()
		if err := b.incremental.ApplyEdit(op.Start, op.End, op.Text); err != nil {
			return fmt.Errorf("%s: %w", op.Pos, err)
		}
		node, err := b.incremental.Match()
		if err != nil {
			return fmt.Errorf("%s: %w", op.Pos, err)
		}
		elapsed := time.Since(begin)
		b.incrementalTimes = append(b.incrementalTimes, elapsed)
		times = append(times, "incremental "+elapsed.String())
		incremental, matched = node, node != nil
	}

	if b.check && !reflect.DeepEqual(standard, incremental) {
		return fmt.Errorf("%s: incremental result differs from the standard matcher", op.Pos)
	}

	status := "match"
	if !matched {
		status = "nomatch"
	}
	if want, ok := op.expectation(); ok && want != matched {
		b.failed++
		status += ", expected " + op.Expect
	}
	b.logger.Printf("edit %d at %s (-%d +%d): %s, %s", step, at, op.End-op.Start, len(op.Text), status, strings.Join(times, ", "))
	return nil
}
