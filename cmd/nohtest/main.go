/*
Nohtest runs every golden script under testdata/scripts and reports a
pass/fail summary: each script is run through the real lexer, parser
and interpreter in-process, and its captured stdout is compared
against a golden fixture on disk.
*/
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/sam-decook/noh/internal/interp"
	"github.com/sam-decook/noh/internal/lexer"
	"github.com/sam-decook/noh/internal/parser"
)

// TestCase is one script under test, its expected and actual stdout.
type TestCase struct {
	Name     string
	Script   string
	Expected string
	Actual   string
	RunErr   error
}

const width = 100

func main() {
	dir := "testdata/scripts"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cases, err := collectCases(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error collecting test cases:", err)
		os.Exit(1)
	}

	failed := 0
	for i := range cases {
		executeCase(&cases[i])
		if !printResult(&cases[i]) {
			failed++
		}
	}

	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("Tests run: %d, failed: %d\n", len(cases), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// collectCases walks dir for *.noh files and builds one TestCase per
// script, sorted by name for stable output.
func collectCases(dir string) ([]TestCase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var cases []TestCase
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".noh") {
			continue
		}
		cases = append(cases, TestCase{
			Name:   strings.TrimSuffix(e.Name(), ".noh"),
			Script: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

func executeCase(tc *TestCase) {
	src, err := os.ReadFile(tc.Script)
	if err != nil {
		tc.RunErr = err
		return
	}

	goldenPath := strings.TrimSuffix(tc.Script, ".noh") + ".golden"
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		tc.RunErr = fmt.Errorf("missing golden file %q: %w", goldenPath, err)
		return
	}
	tc.Expected = string(golden)

	stdinReader := io.Reader(strings.NewReader(""))
	stdinPath := strings.TrimSuffix(tc.Script, ".noh") + ".stdin"
	if f, err := os.Open(stdinPath); err == nil {
		defer f.Close()
		stdinReader = f
	}

	toks, lexErr := lexer.New(src).Scan()
	if lexErr != nil {
		tc.RunErr = lexErr
		return
	}
	mod, pErr := parser.Parse(toks)
	if pErr != nil {
		tc.RunErr = pErr
		return
	}

	var out bytes.Buffer
	it := interp.New(interp.WithIO(stdinReader, &out))
	if err := it.Run(mod); err != nil {
		tc.RunErr = err
	}
	tc.Actual = out.String()
}

// printResult prints a green "passed" / red "failed" line, plus a
// side-by-side diff of expected vs. actual on mismatch.
func printResult(tc *TestCase) bool {
	passed := tc.RunErr == nil && tc.Expected == tc.Actual

	label := color.GreenString("passed")
	if !passed {
		label = color.RedString("failed")
	}
	spacing := strings.Repeat(" ", max(1, width-len("  [passed] ")-len(tc.Name)))
	fmt.Printf("  [%s] %s%s\n", label, tc.Name, spacing)

	if passed {
		return true
	}
	if tc.RunErr != nil {
		fmt.Printf("    error: %v\n", tc.RunErr)
		return false
	}
	printDiff(tc.Expected, tc.Actual)
	return false
}

func printDiff(expected, actual string) {
	half := width / 2
	header := fmt.Sprintf("%-*s%s", half, "expected", "actual")
	fmt.Println("    " + header)

	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")
	n := len(expLines)
	if len(actLines) > n {
		n = len(actLines)
	}
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expLines) {
			e = expLines[i]
		}
		if i < len(actLines) {
			a = actLines[i]
		}
		fmt.Printf("    %-*s%s\n", half, e, a)
	}
}
