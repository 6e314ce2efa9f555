package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/arborlang/arbor"
)

func main() {
	var r io.Reader

	switch len(os.Args) {
	case 1:
		r = os.Stdin
	case 2:
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [path to file]\n", os.Args[0])
		os.Exit(1)
	}

	if f, ok := r.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		runREPL(f)
		return
	}

	runBatch(r)
}

// runBatch evaluates every top-level form in r against a single Context,
// matching the reference CLI described for piped or redirected input:
// read to EOF, evaluate each form as it completes, print the final
// result, exit 0.
func runBatch(r io.Reader) {
	src, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	ctx := arbor.NewContext()
	result := ctx.Run(string(src))
	if out := ctx.Output(); out != "" {
		fmt.Print(out)
	}
	if result != "" {
		fmt.Println(result)
	}
}

const (
	prompt         = "arbor> "
	continuePrompt = "...... "
)

// runREPL drives an interactive session against a single persistent
// Context: each line is accumulated until it parses as a complete form
// (or reports a genuine syntax error), then evaluated immediately so
// definitions from one line are visible to the next.
func runREPL(stdin *os.File) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	ctx := arbor.NewContext()

	var buf strings.Builder
	for {
		p := prompt
		if buf.Len() > 0 {
			p = continuePrompt
		}

		line, err := ln.Prompt(p)
		if err != nil {
			fmt.Println()
			return
		}
		ln.AppendHistory(line)

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		source := buf.String()
		if strings.TrimSpace(source) == "" {
			buf.Reset()
			continue
		}

		if _, perr := arbor.ParseString(source); perr != nil {
			if arbor.IsIncomplete(perr) {
				continue
			}
			fmt.Fprintln(os.Stderr, perr.Error())
			buf.Reset()
			continue
		}

		result := ctx.Run(source)
		buf.Reset()

		if out := ctx.Output(); out != "" {
			fmt.Print(out)
		}
		if result != "" {
			fmt.Println(result)
		}
	}
}
