package interp

import (
	"fmt"
	"strings"

	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/diag"
	"github.com/sam-decook/noh/internal/value"
)

// execBuiltin dispatches the seven intrinsics.
func (i *Interpreter) execBuiltin(b *ast.Builtin) signal {
	switch b.Name {
	case ast.BuiltinBreak:
		return signal{kind: sigBreak}
	case ast.BuiltinContinue:
		return signal{kind: sigContinue}
	case ast.BuiltinExit:
		panic(exitRequest{})
	case ast.BuiltinReturn:
		return signal{kind: sigReturn, value: i.evalAny(b.Args[0])}
	case ast.BuiltinPrint:
		i.execPrint(b)
		return normal
	case ast.BuiltinScanNum:
		i.execScanNum(b)
		return normal
	case ast.BuiltinScanStr:
		i.execScanStr(b)
		return normal
	default:
		diag.Fatalf("unknown builtin %q", b.Name)
		panic("unreachable")
	}
}

// execPrint writes each argument as its own line, left to right.
func (i *Interpreter) execPrint(b *ast.Builtin) {
	for _, arg := range b.Args {
		v := i.evalAny(arg)
		fmt.Fprintln(i.stdout, v.String())
	}
}

// execScanNum reads one whitespace-delimited token from stdin and
// parses it as an Integer into the named binding, fatal if the
// binding does not already exist as an Integer.
func (i *Interpreter) execScanNum(b *ast.Builtin) {
	name := b.Args[0].(*ast.Ident).Name
	existing, ok := i.env.Lookup(name)
	if !ok || existing.Kind() != value.Integer {
		diag.Fatalf("scanNum target %q must already be a declared Integer", name)
	}

	tok, err := i.readToken()
	if err != nil {
		diag.Fatalf("scanNum: %v", err)
	}
	var n int64
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		diag.Fatalf("scanNum: %q is not an integer", tok)
	}
	if ok, mismatch := i.env.Mutate(name, value.NewInt(n)); !ok || mismatch {
		diag.Fatalf("scanNum: could not assign to %q", name)
	}
}

// execScanStr reads one whitespace-delimited token from stdin into
// the named String binding.
func (i *Interpreter) execScanStr(b *ast.Builtin) {
	name := b.Args[0].(*ast.Ident).Name
	existing, ok := i.env.Lookup(name)
	if !ok || existing.Kind() != value.String {
		diag.Fatalf("scanStr target %q must already be a declared String", name)
	}

	tok, err := i.readToken()
	if err != nil {
		diag.Fatalf("scanStr: %v", err)
	}
	if ok, mismatch := i.env.Mutate(name, value.NewStr(tok)); !ok || mismatch {
		diag.Fatalf("scanStr: could not assign to %q", name)
	}
}

// readToken consumes and discards leading whitespace, then reads
// bytes up to (but not including) the next whitespace byte or EOF.
func (i *Interpreter) readToken() (string, error) {
	var sb strings.Builder

	// skip whitespace
	for {
		b, err := i.stdin.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			sb.WriteByte(b)
			break
		}
	}

	for {
		b, err := i.stdin.ReadByte()
		if err != nil {
			break
		}
		if isSpace(b) {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
