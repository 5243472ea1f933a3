// Command pegbench matches a JavaScript document with the minijs grammar and
// replays an edit script on it, timing every match.
//
// Usage:
//
//	pegbench [-standard] [-incremental] [-check] [-o timings] document [script]
//
// Without -standard or -incremental both matchers run.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hucsmn/incpeg/example/minijs"
)

var (
	useStandard    = flag.Bool("standard", false, "match with the standard matcher")
	useIncremental = flag.Bool("incremental", false, "match with the incremental matcher")
	check          = flag.Bool("check", false, "compare the incremental result with the standard matcher after every edit")
	output         = flag.String("o", "", "write the times of every edit in milliseconds to `file`, one line per edit and one column per matcher")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pegbench: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: pegbench [flags] document [script]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if !*useStandard && !*useIncremental {
		*useStandard, *useIncremental = true, true
	}

	doc, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	ops := []*editOp{{Start: 0, End: 0, Text: string(doc)}}
	if flag.NArg() == 2 {
		src, err := os.ReadFile(flag.Arg(1))
		if err != nil {
			log.Fatal(err)
		}
		script, err := parseScript(flag.Arg(1), string(src))
		if err != nil {
			log.Fatal(err)
		}
		ops = append(ops, script...)
	}

	b := newBench(minijs.Grammar(), *useStandard, *useIncremental, *check, log.Default())
	if err := b.run(ops); err != nil {
		log.Fatal(err)
	}
	if *output != "" {
		if err := writeTimings(*output, b.standardTimes, b.incrementalTimes); err != nil {
			log.Fatal(err)
		}
	}
	if b.failed > 0 {
		log.Fatalf("%d of %d edits did not match as expected", b.failed, len(ops))
	}
}

// writeTimings writes a header naming the matchers that ran, then one line
// per edit. Columns are separated by a tab.
func writeTimings(name string, standard, incremental []time.Duration) error {
	var (
		header  []string
		columns [][]time.Duration
	)
	if len(standard) > 0 {
		header = append(header, "standard")
		columns = append(columns, standard)
	}
	if len(incremental) > 0 {
		header = append(header, "incremental")
		columns = append(columns, incremental)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for i := 0; len(columns) > 0 && i < len(columns[0]); i++ {
		fields := make([]string, len(columns))
		for j, times := range columns {
			fields[j] = fmt.Sprintf("%.3f", float64(times[i])/float64(time.Millisecond))
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
