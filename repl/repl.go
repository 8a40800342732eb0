/*
File    : monkey/repl/repl.go
Author  : A. Roy
*/

// Package repl implements the Read-Eval-Print Loop for the interpreter. The
// REPL provides an interactive environment where a user can enter source
// line by line, see results immediately, navigate history with the arrow
// keys, and get colored feedback.
package repl

import (
	"io"
	"strings"

	"github.com/aroy/monkey/config"
	"github.com/aroy/monkey/diag"
	"github.com/aroy/monkey/environment"
	"github.com/aroy/monkey/eval"
	"github.com/aroy/monkey/lexer"
	"github.com/aroy/monkey/object"
	"github.com/aroy/monkey/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Repl holds everything a session needs: cosmetic settings from config.Config,
// the environment that persists across lines so that `let` bindings from one
// line are visible to the next - the REPL is, in effect, one long running
// Program - and a palette of colors (blue for separators, yellow for
// results, red for errors, green for the banner, cyan for informational
// messages) built fresh per session so cfg.NoColor only ever affects this
// session's output, never a sibling `serve` connection's.
type Repl struct {
	cfg config.Config
	env *environment.Environment

	blue   *color.Color
	yellow *color.Color
	red    *color.Color
	green  *color.Color
	cyan   *color.Color
}

// New creates a Repl from cfg with a fresh root environment. When
// cfg.NoColor is set, every palette color is disabled up front so all of
// this session's writes come out as plain text.
func New(cfg config.Config) *Repl {
	r := &Repl{
		cfg:    cfg,
		env:    environment.New(),
		blue:   color.New(color.FgBlue),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		cyan:   color.New(color.FgCyan),
	}
	if cfg.NoColor {
		r.blue.DisableColor()
		r.yellow.DisableColor()
		r.red.DisableColor()
		r.green.DisableColor()
		r.cyan.DisableColor()
	}
	return r
}

// printBanner displays the welcome banner and usage instructions. Colors
// are already disabled on r's palette if cfg.NoColor is set, so this prints
// plain text in that case without any branching here.
func (r *Repl) printBanner(writer io.Writer) {
	line, banner := r.cfg.Line, r.cfg.Banner

	r.blue.Fprintf(writer, "%s\n", line)
	r.green.Fprintf(writer, "%s\n", banner)
	r.blue.Fprintf(writer, "%s\n", line)
	r.yellow.Fprintln(writer, "Version: "+r.cfg.Version+" | Author: "+r.cfg.Author+" | License: "+r.cfg.License)
	r.blue.Fprintf(writer, "%s\n", line)
	r.cyan.Fprintf(writer, "%s\n", "Type your code and press enter")
	r.cyan.Fprintf(writer, "%s\n", "Type ':exit' to quit, ':ast <expr>' to inspect the parse tree")
	r.cyan.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	r.blue.Fprintf(writer, "%s\n", line)
}

// Start begins the REPL main loop: print the banner, wire up readline for
// history and line editing, then read-eval-print until `:exit`, EOF, or a
// readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.cfg.Prompt,
		HistoryFile: r.cfg.HistoryFile,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		Stderr:      writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ":exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		if rest, ok := strings.CutPrefix(line, ":ast "); ok {
			r.printAST(writer, rest)
			continue
		}

		r.executeWithRecovery(writer, line)
	}
}

// printAST parses (but does not evaluate) source and dumps its AST via
// diag.Dump - the `:ast` debug command.
func (r *Repl) printAST(writer io.Writer, src string) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			r.red.Fprintf(writer, "%s\n", e)
		}
		return
	}
	r.cyan.Fprintf(writer, "%s\n", diag.Dump(program))
}

// executeWithRecovery parses and evaluates one line against the session's
// persistent environment, with panic recovery so a single bad line cannot
// kill the session. Unlike file execution mode, the REPL always keeps
// going after an error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.red.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			r.red.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := eval.Eval(program, r.env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		r.red.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	r.yellow.Fprintf(writer, "%s\n", result.Inspect())
}
