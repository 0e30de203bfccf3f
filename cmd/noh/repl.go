package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/interp"
)

// runREPL starts an interactive session. readline gives history and
// line editing, which a bare bufio.Scanner loop would not.
//
// There is no statement-by-statement evaluation mode, so each line the
// user enters is wrapped as the body of a throwaway `main` function
// and run as its own complete program; the Interpreter instance is
// reused only to share stdin/stdout, not variable bindings, across
// lines. This is strictly a convenience built around the core, not a
// change to its semantics.
func runREPL() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "noh> ",
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error starting repl:", err)
		return
	}
	defer rl.Close()

	it := interp.New(interp.WithIO(os.Stdin, os.Stdout))

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		evalLine(it, line)
	}
}

func evalLine(it *interp.Interpreter, line string) {
	src := []byte("fn main() {\n" + line + "\n}\n")
	mod, err := parseSource(src)
	if err != nil {
		return // parseSource already reported it
	}
	if err := it.Run(mod); err != nil {
		diag.Report(err)
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.noh_history"
}
