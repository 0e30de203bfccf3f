package interp

import (
	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/value"
)

// evalCall implements the synthetic-indexing rule: a Call whose
// callee name is not in the function table, with exactly one
// argument, is reinterpreted as tuple indexing (`tup(i)` ->
// IdxAt(tup, i)) rather than being a call at all. The function table
// is always consulted first.
func (i *Interpreter) evalCall(c *ast.Call) value.Value {
	f, ok := i.funcs[c.Callee]
	if !ok {
		if len(c.Args) != 1 {
			diag.Fatalf("unknown function %q", c.Callee)
		}
		return i.evalIdxAt(&ast.BinaryExp{
			Op:    ast.IdxAt,
			Left:  &ast.Ident{Name: c.Callee},
			Right: c.Args[0],
		})
	}
	return i.callFunc(f, c.Args)
}

// callFunc implements the function call protocol. Arguments are
// evaluated against the caller's scope before the new call barrier is
// installed, so a parameter expression can never see its own
// function's locals (and, transitively, a Call argument that is
// itself a Call is fully resolved to a value the same way any other
// expression is: evalAny recurses into evalCall already).
func (i *Interpreter) callFunc(f *ast.Func, argExprs []ast.Expr) value.Value {
	if len(argExprs) != len(f.Params) {
		diag.Fatalf("%s: expected %d argument(s), got %d", f.Name, len(f.Params), len(argExprs))
	}

	args := make([]value.Value, len(argExprs))
	for idx, a := range argExprs {
		args[idx] = i.evalAny(a)
	}

	i.env.PushCall()
	defer i.env.PopCall()

	for idx, p := range f.Params {
		checkName(p)
		if !i.env.Declare(p, args[idx]) {
			diag.Fatalf("%s: duplicate parameter name %q", f.Name, p)
		}
	}

	sig := i.runBody(f.Body)
	if sig.kind == sigReturn {
		return sig.value
	}
	// No explicit return: yield Integer 0.
	return value.NewInt(0)
}
