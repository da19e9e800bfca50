/*
File    : numen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for numen. The REPL reads
one statement per line, parses and evaluates it against a persistent root
environment, and prints the result. It uses the readline library for line
editing and command history, and fatih/color for feedback coloring.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/numen/eval"
	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/parser"
	"github.com/akashmaji946/numen/primitives"
	"github.com/akashmaji946/numen/value"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: expression results
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation details of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
	NoColor bool
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, prompt string, noColor bool) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt, NoColor: noColor}
}

// PrintBannerInfo prints the startup banner and basic usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to numen!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or EOF is reached. Each
// accepted line is evaluated against the same root environment, so
// definitions persist across lines for the life of the session.
func (r *Repl) Start(writer io.Writer) {
	if r.NoColor {
		color.NoColor = true
	}

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := primitives.NewRootEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates one line against env, printing
// the result or an error. Unlike file execution, the REPL never exits on
// an error — it recovers from parser/evaluator panics and returns to the
// prompt so the user can try again.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *value.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.New(lexer.New(line))
	node, err := par.ParseStatement()
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}

	result, err := eval.Eval(node, env)
	if err != nil {
		redColor.Fprintf(writer, "[EVAL ERROR] %v\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
