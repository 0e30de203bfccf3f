// Package interp implements Noh's tree-walking evaluator: it walks an
// *ast.Module, locates the entry function, and executes it to
// completion or until an exit signal. The scope stack enforces a
// call-barrier model rather than closures over a parent environment:
// a called function can never see its caller's locals.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/value"
)

// reservedNames may not be used as a function or variable name. Kept
// independent of the token package's reserved word table because the
// evaluator only cares about the name collision rule, not lexical class.
var reservedNames = map[string]bool{
	"break": true, "continue": true, "exit": true, "return": true,
	"print": true, "scanNum": true, "scanStr": true,
	"var": true, "num": true, "str": true, "fn": true,
	"if": true, "then": true, "else": true, "end": true,
	"while": true, "for": true,
}

// Interpreter holds all process-wide evaluation state for one run: the
// function table, the scope stack, the control-flow state (folded into
// the signal values returned by exec rather than kept as separate
// flags), and the I/O streams scanNum/scanStr/print use.
type Interpreter struct {
	funcs map[string]*ast.Func
	env   *Env

	stdin  *bufio.Reader
	stdout io.Writer

	// runID correlates a fatal diagnostic with a specific Run
	// invocation; purely cosmetic, never read back by Noh programs.
	runID uuid.UUID
}

// Option configures an Interpreter constructed by New.
type Option func(*Interpreter)

// WithIO redirects stdin/stdout, used by tests and cmd/nohtest to
// capture output instead of touching the real console.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(i *Interpreter) {
		i.stdin = bufio.NewReader(in)
		i.stdout = out
	}
}

// New returns an Interpreter defaulting to the real stdin/stdout.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run validates the module's function table, selects the entry
// function ("main" if present, else the first zero-parameter
// function, else a no-op), and executes it.
//
// Run recovers its own fatal diagnostics (raised via diag.Fatalf) and
// returns them as a plain error; it does not recover from programmer
// bugs (any other panic propagates).
func (i *Interpreter) Run(mod *ast.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case exitRequest:
				err = nil
			case *diag.Fatal:
				err = fmt.Errorf("%s (run %s)", v.Message, i.runID)
			default:
				panic(r)
			}
		}
	}()

	if err := i.buildFuncTable(mod); err != nil {
		return err
	}

	entry := i.selectEntry(mod)
	if entry == nil {
		return nil
	}
	if len(entry.Params) != 0 {
		return fmt.Errorf("entry function %q must take zero parameters", entry.Name)
	}

	i.env = NewEnv()
	i.callFunc(entry, nil)
	return nil
}

// checkName fatals if name collides with a reserved word — used for
// every binding site (Assign, function parameters, for-loop
// variables), not just function declarations.
func checkName(name string) {
	if reservedNames[name] {
		diag.Fatalf("%q is a reserved word and cannot be used as a name", name)
	}
}

func (i *Interpreter) buildFuncTable(mod *ast.Module) error {
	i.funcs = make(map[string]*ast.Func, len(mod.Funcs))
	for _, f := range mod.Funcs {
		if reservedNames[f.Name] {
			return fmt.Errorf("function name %q collides with a reserved word", f.Name)
		}
		if _, exists := i.funcs[f.Name]; exists {
			return fmt.Errorf("duplicate function name %q", f.Name)
		}
		i.funcs[f.Name] = f
	}
	return nil
}

// selectEntry picks "main" if declared, otherwise the first
// zero-parameter function in declaration order, otherwise nil.
func (i *Interpreter) selectEntry(mod *ast.Module) *ast.Func {
	if f, ok := i.funcs["main"]; ok {
		return f
	}
	for _, f := range mod.Funcs {
		if len(f.Params) == 0 {
			return f
		}
	}
	return nil
}
