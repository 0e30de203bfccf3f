/*
Noh runs a Noh script.

Usage:

	noh [flags] <file.noh>

The flags are:

	-v, --version
		Print the version banner and exit.

	-i, --input FILE
		Read scanNum/scanStr input from FILE instead of stdin.

	-r, --repl
		Start an interactive read-eval-print loop instead of running a
		file.

This is the external driver around the Noh core (parser + evaluator):
argument parsing, file loading, file-extension validation, and
diagnostic formatting are deliberately kept out of the core itself and
live here instead.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/interp"
	"github.com/sam-decook/noh/internal/lexer"
	"github.com/sam-decook/noh/internal/parser"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates the program ran to completion (including
	// programs that called exit).
	ExitSuccess = iota
	// ExitUsageError indicates bad flags or a missing/malformed file
	// argument.
	ExitUsageError
	// ExitFileError indicates the source file could not be read, or
	// lacked the required .noh extension.
	ExitFileError
	// ExitParseError indicates the parser rejected the source.
	ExitParseError
	// ExitRuntimeError indicates a fatal evaluation error.
	ExitRuntimeError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "print the version banner and exit")
	flagInput   = pflag.StringP("input", "i", "", "read scanNum/scanStr input from this file instead of stdin")
	flagRepl    = pflag.BoolP("repl", "r", false, "start an interactive read-eval-print loop")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, color.RedString("panic")+": "+fmt.Sprint(r))
			os.Exit(ExitRuntimeError)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("noh version %s\n", version)
		return
	}

	if *flagRepl {
		runREPL()
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: noh [flags] <file.noh>")
		returnCode = ExitUsageError
		return
	}

	runFile(args[0])
}

func runFile(path string) {
	if !strings.HasSuffix(path, ".noh") {
		fmt.Fprintf(os.Stderr, "error: %q does not have a .noh extension\n", path)
		returnCode = ExitFileError
		return
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %q: %v\n", path, err)
		returnCode = ExitFileError
		return
	}

	mod, perr := parseSource(src)
	if perr != nil {
		returnCode = ExitParseError
		return
	}

	in := os.Stdin
	if *flagInput != "" {
		f, err := os.Open(*flagInput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening %q: %v\n", *flagInput, err)
			returnCode = ExitFileError
			return
		}
		defer f.Close()
		in = f
	}

	it := interp.New(interp.WithIO(in, os.Stdout))
	if err := it.Run(mod); err != nil {
		diag.Report(err)
		returnCode = ExitRuntimeError
	}
}

func parseSource(src []byte) (*ast.Module, error) {
	toks, lexErr := lexer.New(src).Scan()
	if lexErr != nil {
		diag.ParseFailed(lexErr)
		return nil, lexErr
	}
	mod, pErr := parser.Parse(toks)
	if pErr != nil {
		diag.ParseFailed(pErr)
		return nil, pErr
	}
	return mod, nil
}
