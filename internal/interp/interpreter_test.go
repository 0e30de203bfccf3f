package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-decook/noh/internal/ast"
	"github.com/sam-decook/noh/internal/lexer"
	"github.com/sam-decook/noh/internal/parser"
)

// run parses and executes src, feeding stdin to scanNum/scanStr and
// capturing stdout, returning both the captured output and any error
// Run returned.
func run(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	toks, err := lexer.New([]byte(src)).Scan()
	require.NoError(t, err)
	mod, err := parser.Parse(toks)
	require.NoError(t, err)

	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(stdin), &out))
	runErr := it.Run(mod)
	return out.String(), runErr
}

func Test_Run_arithmeticPrecedence(t *testing.T) {
	out, err := run(t, `fn main() { var a = 2; var b = 3; print(a + b * 4); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func Test_Run_stringWithEmbeddedNewline(t *testing.T) {
	out, err := run(t, `fn main() { var s = "hi\n"; print(s); print("bye"); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "hi\n\nbye\n", out)
}

func Test_Run_whileLoop(t *testing.T) {
	out, err := run(t, `fn main() { var i = 0; while i < 3 { print(i); i = i + 1; } }`, "")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func Test_Run_forLoopWithContinue(t *testing.T) {
	out, err := run(t, `fn main() { for k in 1..4 { if k == 2 { continue; } print(k); } }`, "")
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", out)
}

func Test_Run_functionCall(t *testing.T) {
	out, err := run(t, `fn add(x, y) { return x + y; } fn main() { print(add(40, 2)); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func Test_Run_tupleIndexing(t *testing.T) {
	out, err := run(t, `fn main() { var t = [10, 20, 30]; print(t(0)); print(t(2)); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "10\n30\n", out)
}

func Test_Run_redeclarationInTopFrameIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { var a = 1; var a = 2; }`, "")
	assert.Error(t, err)
}

func Test_Run_reassignTypeMismatchIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { var a = 1; a = "x"; }`, "")
	assert.Error(t, err)
}

func Test_Run_divisionByZeroIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { print(1 / 0); }`, "")
	assert.Error(t, err)
}

func Test_Run_moduloByZeroIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { print(1 % 0); }`, "")
	assert.Error(t, err)
}

func Test_Run_tupleIndexOutOfRangeIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { var t = [1, 2]; print(t(5)); }`, "")
	assert.Error(t, err)
}

func Test_Run_unknownFunctionIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { print(frobnicate(1, 2)); }`, "")
	assert.Error(t, err)
}

func Test_Run_arityMismatchIsFatal(t *testing.T) {
	_, err := run(t, `fn add(x, y) { return x + y; } fn main() { print(add(1)); }`, "")
	assert.Error(t, err)
}

func Test_Run_undefinedVariableIsFatal(t *testing.T) {
	_, err := run(t, `fn main() { print(nope); }`, "")
	assert.Error(t, err)
}

func Test_Run_reservedWordCannotBeAVariableName(t *testing.T) {
	// "num" and "str" are reserved names but not lexed as keyword
	// tokens the way "print" or "var" are, so this rejection can only
	// happen at the name-binding check inside the evaluator.
	_, err := run(t, `fn main() { var num = 1; }`, "")
	assert.Error(t, err)
}

func Test_Run_exitStopsExecutionSuccessfully(t *testing.T) {
	out, err := run(t, `fn main() { print(1); exit; print(2); }`, "")
	require.NoError(t, err, "exit is not itself a failure")
	assert.Equal(t, "1\n", out, "execution must stop at exit; the second print never runs")
}

func Test_Run_exitInsideNestedExpressionStillHalts(t *testing.T) {
	// exit cannot be expressed as a mere statement-level signal because
	// it must interrupt an in-progress expression evaluation too.
	src := `
	fn f() { exit; return 1; }
	fn main() { var x = 1 + f(); print(999); }
	`
	out, err := run(t, src, "")
	require.NoError(t, err)
	assert.Equal(t, "", out, "print(999) must never run: exit interrupts the enclosing expression")
}

func Test_Run_functionCallLeavesScopeStackDepthUnchanged(t *testing.T) {
	toks, err := lexer.New([]byte(`fn add(x, y) { return x + y; } fn main() { var r = add(1, 2); }`)).Scan()
	require.NoError(t, err)
	mod, err := parser.Parse(toks)
	require.NoError(t, err)

	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out))
	require.NoError(t, it.buildFuncTable(mod))
	it.env = NewEnv()

	it.env.PushScope()
	before := it.env.Depth()
	args := []ast.Expr{&ast.Number{Value: 1}, &ast.Number{Value: 2}}
	it.callFunc(it.funcs["add"], args)
	after := it.env.Depth()
	it.env.PopScope()

	assert.Equal(t, before, after, "a function call must leave the scope stack exactly as it found it")
}

func Test_Run_breakStopsWhileLoop(t *testing.T) {
	out, err := run(t, `fn main() { var i = 0; while i < 5 { if i == 3 { break; } i = i + 1; } print(i); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func Test_Run_scanNumReadsFromStdin(t *testing.T) {
	out, err := run(t, `fn main() { var n = 0; scanNum(n); print(n + 1); }`, "41")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func Test_Run_scanStrReadsFromStdin(t *testing.T) {
	out, err := run(t, `fn main() { var s = ""; scanStr(s); print(s); }`, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func Test_Run_entryDefaultsToFirstZeroParamFunctionWhenNoMain(t *testing.T) {
	out, err := run(t, `fn greet() { print("hi"); } fn needsArgs(x) { print(x); }`, "")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}
