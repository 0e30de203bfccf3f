package interp

import (
	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/value"
)

func intVal(n int64) value.Value { return value.NewInt(n) }

func asIntOrFatal(v value.Value, what string) (int64, bool) {
	n, ok := value.AsInt(v)
	if !ok {
		diag.Fatalf("%s must be an Integer, got %s", what, v.Kind())
	}
	return n, ok
}

// evalAny evaluates an expression to whatever Value kind it actually
// produces, used anywhere the caller does not statically know (or
// care about) the resulting kind: declaration values, reassignment
// values, call arguments, print arguments, tuple elements.
func (i *Interpreter) evalAny(e ast.Expr) value.Value {
	switch n := e.(type) {
	case *ast.Number:
		return value.NewInt(n.Value)
	case *ast.String:
		return value.NewStr(n.Value)
	case *ast.Tuple:
		return value.NewTuple(i.evalTupleElems(n))
	case *ast.Ident:
		v, ok := i.env.Lookup(n.Name)
		if !ok {
			diag.Fatalf("undefined variable %q", n.Name)
		}
		return v
	case *ast.Call:
		return i.evalCall(n)
	case *ast.MonoExp:
		return i.evalMono(n)
	case *ast.BinaryExp:
		return i.evalBinary(n)
	default:
		diag.Fatalf("illegal expression node %T", e)
		panic("unreachable")
	}
}

// evalNum evaluates e and coerces the result to Integer, fatal if the
// actual kind differs.
func (i *Interpreter) evalNum(e ast.Expr) int64 {
	v := i.evalAny(e)
	n, ok := value.AsInt(v)
	if !ok {
		diag.Fatalf("expected an Integer, got %s", v.Kind())
	}
	return n
}

// evalStr evaluates e and coerces the result to String.
func (i *Interpreter) evalStr(e ast.Expr) string {
	v := i.evalAny(e)
	s, ok := value.AsStr(v)
	if !ok {
		diag.Fatalf("expected a String, got %s", v.Kind())
	}
	return s
}

// evalTuple evaluates e and coerces the result to Tuple.
func (i *Interpreter) evalTuple(e ast.Expr) []value.Value {
	v := i.evalAny(e)
	t, ok := value.AsTuple(v)
	if !ok {
		diag.Fatalf("expected a Tuple, got %s", v.Kind())
	}
	return t
}

func (i *Interpreter) evalTupleElems(t *ast.Tuple) []value.Value {
	out := make([]value.Value, len(t.Elems))
	for idx, e := range t.Elems {
		out[idx] = i.evalAny(e)
	}
	return out
}

func (i *Interpreter) evalMono(m *ast.MonoExp) value.Value {
	switch m.Op {
	case ast.OpNot:
		n := i.evalNum(m.Operand)
		if n == 0 {
			return intVal(1)
		}
		return intVal(0)
	case ast.OpNeg:
		return intVal(-i.evalNum(m.Operand))
	case ast.OpBitNot:
		return intVal(^i.evalNum(m.Operand))
	default:
		diag.Fatalf("unknown unary operator %q", m.Op)
		panic("unreachable")
	}
}

func boolInt(b bool) value.Value {
	if b {
		return intVal(1)
	}
	return intVal(0)
}

func (i *Interpreter) evalBinary(b *ast.BinaryExp) value.Value {
	if b.Op == ast.IdxAt {
		return i.evalIdxAt(b)
	}

	l := i.evalNum(b.Left)
	r := i.evalNum(b.Right)

	switch b.Op {
	case "+":
		return intVal(l + r)
	case "-":
		return intVal(l - r)
	case "*":
		return intVal(l * r)
	case "/":
		if r == 0 {
			diag.Fatalf("division by zero")
		}
		return intVal(l / r)
	case "%":
		if r == 0 {
			diag.Fatalf("modulo by zero")
		}
		return intVal(l % r)
	case "==":
		return boolInt(l == r)
	case "!=":
		return boolInt(l != r)
	case "<":
		return boolInt(l < r)
	case ">":
		return boolInt(l > r)
	case "<=":
		return boolInt(l <= r)
	case ">=":
		return boolInt(l >= r)
	case "&&":
		return boolInt(l != 0 && r != 0)
	case "||":
		return boolInt(l != 0 || r != 0)
	default:
		diag.Fatalf("unknown binary operator %q", b.Op)
		panic("unreachable")
	}
}

// evalIdxAt implements tuple indexing. Both operands are always fully
// evaluated — indexing has no natural short-circuit case — the left
// coerced to Tuple and the right to Integer.
func (i *Interpreter) evalIdxAt(b *ast.BinaryExp) value.Value {
	tup := i.evalTuple(b.Left)
	idx := i.evalNum(b.Right)
	if idx < 0 || idx >= int64(len(tup)) {
		diag.Fatalf("tuple index %d out of range (len %d)", idx, len(tup))
	}
	return tup[idx]
}
