/*
File    : monkey/cmd/monkeygo/main.go
Author  : A. Roy
*/

// Command monkeygo is the interpreter's entry point: it threads
// source -> tokens -> AST -> value, in REPL mode, file mode, one-shot
// expression mode, AST-dump mode, or as a small REPL server, one
// independent session per TCP connection.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/aroy/monkey/config"
	"github.com/aroy/monkey/diag"
	"github.com/aroy/monkey/environment"
	"github.com/aroy/monkey/eval"
	"github.com/aroy/monkey/lexer"
	"github.com/aroy/monkey/object"
	"github.com/aroy/monkey/parser"
	"github.com/aroy/monkey/repl"
	"github.com/aroy/monkey/source"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	if cfg.NoColor {
		redColor.DisableColor()
		yellowColor.DisableColor()
		cyanColor.DisableColor()
	}

	if len(os.Args) <= 1 {
		repl.New(cfg).Start(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp(cfg)
	case "--version", "-v":
		showVersion(cfg)
	case "-e":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] -e requires an expression argument\n")
			os.Exit(1)
		}
		runSource(os.Args[2], true)
	case "--dump-ast":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] --dump-ast requires a file path\n")
			os.Exit(1)
		}
		dumpFile(os.Args[2])
	case "serve":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for serve mode. Usage: monkeygo serve <port>\n")
			os.Exit(1)
		}
		startServer(cfg, os.Args[2])
	case "-":
		runStdin()
	default:
		runFile(arg)
	}
}

func showHelp(cfg config.Config) {
	cyanColor.Println("monkeygo - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkeygo                     start REPL on stdin/stdout")
	yellowColor.Println("  monkeygo <path>               execute a source file")
	yellowColor.Println("  monkeygo -                    execute a script piped in on stdin")
	yellowColor.Println("  monkeygo -e '<expr>'          evaluate one expression from argv")
	yellowColor.Println("  monkeygo serve <port>         start a REPL server, one session per connection")
	yellowColor.Println("  monkeygo --dump-ast <path>    parse only, print the AST, do not evaluate")
	yellowColor.Println("  monkeygo --version            print version/author/license")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  :exit                         exit the REPL")
	yellowColor.Println("  :ast <expr>                   parse <expr> and print its AST")
	_ = cfg
}

func showVersion(cfg config.Config) {
	cyanColor.Println("monkeygo")
	cyanColor.Printf("Version: %s\n", cfg.Version)
	cyanColor.Printf("License: %s\n", cfg.License)
	cyanColor.Printf("Author : %s\n", cfg.Author)
}

// runFile executes a source file. The CLI exits non-zero if the parser
// produced any errors, without evaluating; a surfaced evaluator Error also
// exits non-zero, since file mode treats it as a failed run, not an
// in-language value to merely observe (unlike REPL mode, which stays up).
func runFile(path string) {
	src, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}
	runSource(src, true)
}

// runStdin executes a script piped in on stdin (`monkeygo -`), with the
// same failed-run-on-error exit discipline as runFile.
func runStdin() {
	src, err := source.Stdin(os.Stdin)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}
	runSource(src, true)
}

// runSource lexes, parses, and evaluates src. exitOnError governs whether a
// surfaced evaluator Error ends the process non-zero: true for one-shot
// invocations (file, stdin, -e), since there is no session left to keep
// running once the single program has failed.
func runSource(src string, exitOnError bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		os.Exit(1)
	}

	env := environment.New()
	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		if exitOnError {
			os.Exit(1)
		}
		return
	}
	if result.Type() != object.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}

// dumpFile parses path and prints its AST via diag.Dump without
// evaluating - the `--dump-ast` flag.
func dumpFile(path string) {
	src, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		os.Exit(1)
	}
	fmt.Println(diag.Dump(program))
}

// startServer listens on port and hands each accepted connection its own
// REPL session (own prompt, own environment) running in its own goroutine -
// concurrency lives at the host/network layer only; nothing here lets two
// interpreted programs run concurrently against shared state.
func startServer(cfg config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("monkeygo REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(cfg, conn)
	}
}

func handleClient(cfg config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())

	sessionCfg := cfg
	sessionCfg.HistoryFile = "" // per-connection sessions don't share a history file
	repl.New(sessionCfg).Start(conn, conn)

	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
