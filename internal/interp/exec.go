package interp

import (
	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
)

// runBody executes a function's statement list directly in the
// already-pushed call frame: the body does not get its own nested
// scope, so parameters and body-level declarations share one frame. A
// break or continue that reaches here uncaught by any loop is reported
// fatally rather than silently dropped.
func (i *Interpreter) runBody(stmts []ast.Stmt) signal {
	for _, s := range stmts {
		sig := i.exec(s)
		switch sig.kind {
		case sigReturn:
			return sig
		case sigBreak:
			diag.Fatalf("break outside of a loop")
		case sigContinue:
			diag.Fatalf("continue outside of a loop")
		}
	}
	return normal
}

// execBlock runs stmts in a freshly pushed scope, used for if/else
// bodies and loop bodies. Any Break/Continue/Return is passed
// straight through to the caller, which decides whether it owns the
// signal (a loop) or must forward it further (an if branch, a nested
// block).
func (i *Interpreter) execBlock(stmts []ast.Stmt) signal {
	i.env.PushScope()
	defer i.env.PopScope()

	for _, s := range stmts {
		sig := i.exec(s)
		if sig.kind != sigNormal {
			return sig
		}
	}
	return normal
}

// exec dispatches one statement to its handler.
func (i *Interpreter) exec(s ast.Stmt) signal {
	switch n := s.(type) {
	case *ast.Assign:
		return i.execAssign(n)
	case *ast.ReAssign:
		return i.execReAssign(n)
	case *ast.Builtin:
		return i.execBuiltin(n)
	case *ast.IfStmt:
		return i.execIf(n)
	case *ast.WhileStmt:
		return i.execWhile(n)
	case *ast.ForStmt:
		return i.execFor(n)
	case *ast.Call:
		i.evalCall(n) // statement-position call: discard the result
		return normal
	default:
		diag.Fatalf("illegal statement node %T", s)
		panic("unreachable")
	}
}

func (i *Interpreter) execAssign(a *ast.Assign) signal {
	checkName(a.Name)
	v := i.evalAny(a.Value)
	if !i.env.Declare(a.Name, v) {
		diag.Fatalf("%q is already declared in this scope", a.Name)
	}
	return normal
}

func (i *Interpreter) execReAssign(r *ast.ReAssign) signal {
	v := i.evalAny(r.Value)
	ok, kindMismatch := i.env.Mutate(r.Name, v)
	if kindMismatch {
		diag.Fatalf("cannot assign a different type to %q", r.Name)
	}
	if !ok {
		diag.Fatalf("undefined variable %q", r.Name)
	}
	return normal
}

func (i *Interpreter) execIf(n *ast.IfStmt) signal {
	if i.evalNum(n.Cond) != 0 {
		return i.execBlock(n.Then)
	}
	return i.execBlock(n.Else)
}

func (i *Interpreter) execWhile(n *ast.WhileStmt) signal {
	for i.evalNum(n.Cond) != 0 {
		sig := i.execBlock(n.Body)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigReturn:
			return sig
		}
	}
	return normal
}

func (i *Interpreter) execFor(n *ast.ForStmt) signal {
	checkName(n.Var)
	from := i.evalNum(n.Range.From)
	to := i.evalNum(n.Range.To)

	i.env.PushScope()
	defer i.env.PopScope()
	i.env.Declare(n.Var, intVal(from))

	for {
		cur, _ := i.env.Lookup(n.Var)
		curN, _ := asIntOrFatal(cur, "for loop variable")
		if curN >= to {
			break
		}

		sig := i.execBlock(n.Body)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigReturn:
			return sig
		}

		cur, _ = i.env.Lookup(n.Var)
		curN, _ = asIntOrFatal(cur, "for loop variable")
		i.env.Mutate(n.Var, intVal(curN+1))
	}
	return normal
}
