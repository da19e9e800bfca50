/*
File    : numen/cmd/numen/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the numen interpreter. It provides
two modes of operation: an interactive REPL (default) and file execution
(-file path.nm), both built on the same lexer/parser/eval/primitives
pipeline.
*/
package main

import (
	"flag"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/numen/eval"
	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/parser"
	"github.com/akashmaji946/numen/primitives"
	"github.com/akashmaji946/numen/repl"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	line    = "----------------------------------------------------------------"
)

var banner = `
 _ __  _   _ _ __ ___   ___ _ __
| '_ \| | | | '_ \ _ \ / _ \ '_ \
| | | | |_| | | | | | |  __/ | | |
|_| |_|\__,_|_| |_| |_|\___|_| |_|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	prompt := flag.String("prompt", "numen >>> ", "REPL prompt string")
	noColor := flag.Bool("no-color", false, "disable colored output")
	file := flag.String("file", "", "execute a numen source file instead of starting the REPL")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if *file != "" {
		runFile(*file)
		return
	}

	repler := repl.NewRepl(banner, version, author, line, *prompt, *noColor)
	repler.Start(os.Stdout)
}

// runFile parses and evaluates every statement in path in sequence against
// a single root environment, so later statements can reference bindings
// made by earlier ones. The first error of any kind aborts execution.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[FILE ERROR] could not read %q: %v", path, err)
	}

	env := primitives.NewRootEnvironment()
	p := parser.New(lexer.New(string(src)))

	for !p.AtEnd() {
		node, err := p.ParseStatement()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
			os.Exit(1)
		}

		result, err := eval.Eval(node, env)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[EVAL ERROR] %v\n", err)
			os.Exit(1)
		}
		if result != nil {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
		}
	}
}
