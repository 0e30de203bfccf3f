// Package ast defines the Noh abstract syntax tree: a closed sum type
// over statement and expression node kinds. Every variant owns its
// children outright; there is no shared ownership and no node mutates
// after construction.
package ast

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST variant so that diagnostics and
// the pretty-printer (used to check the parse/print/reparse
// invariant) share one surface.
type Node interface {
	String() string
}

// Stmt is implemented by every statement-position node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-position node.
type Expr interface {
	Node
	exprNode()
}

// Module is the root of a parsed program: an ordered sequence of
// function declarations.
type Module struct {
	Funcs []*Func
}

func (m *Module) String() string {
	var sb strings.Builder
	for _, f := range m.Funcs {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Func is a callable: a name, ordered parameter names, and an ordered
// body of statements.
type Func struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (f *Func) String() string {
	var sb strings.Builder
	sb.WriteString("fn ")
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(f.Params, ", "))
	sb.WriteString(") {\n")
	writeBlock(&sb, f.Body)
	sb.WriteByte('}')
	return sb.String()
}

// writeBlock prints one statement per line, indented. IfStmt, WhileStmt
// and ForStmt are self-delimiting (they end in "}") and take no
// trailing semicolon; every other statement form does.
func writeBlock(sb *strings.Builder, stmts []Stmt) {
	for _, s := range stmts {
		sb.WriteString("    ")
		sb.WriteString(s.String())
		switch s.(type) {
		case *IfStmt, *WhileStmt, *ForStmt:
			sb.WriteByte('\n')
		default:
			sb.WriteString(";\n")
		}
	}
}

// Call is a function invocation used either as an expression or, when
// its result is discarded, as a statement on its own.
type Call struct {
	Callee string
	Args   []Expr
}

func (c *Call) exprNode() {}
func (c *Call) stmtNode() {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(parts, ", "))
}

// Number is a 64-bit signed integer literal.
type Number struct {
	Value int64
}

func (n *Number) exprNode()      {}
func (n *Number) String() string { return fmt.Sprintf("%d", n.Value) }

// String is a string literal with escapes already resolved.
type String struct {
	Value string
}

func (s *String) exprNode() {}
func (s *String) String() string {
	return fmt.Sprintf("%q", s.Value)
}

// Ident references an identifier, either as an r-value (lookup) or as
// the target of Assign/ReAssign.
type Ident struct {
	Name string
}

func (i *Ident) exprNode()      {}
func (i *Ident) String() string { return i.Name }

// Unary operators recognized by MonoExp.
const (
	OpNot    = "!"
	OpNeg    = "-"
	OpBitNot = "~"
)

// MonoExp is a unary expression: one of !, -, ~ applied to an operand.
type MonoExp struct {
	Op      string
	Operand Expr
}

func (m *MonoExp) exprNode()      {}
func (m *MonoExp) String() string { return fmt.Sprintf("(%s%s)", m.Op, m.Operand) }

// IdxAt is the synthetic tuple-indexing binary operator. The parser
// produces it for an application to anything other than a bare
// identifier's first one (a chained application, a tuple literal), and
// the evaluator produces it when a Call refers to a name that is not
// in the function table; it is never spelled directly by a user.
const IdxAt = "IdxAt"

// BinaryExp is a binary expression: an operator plus its two operands.
type BinaryExp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExp) exprNode() {}
func (b *BinaryExp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Tuple is an ordered, fixed-size aggregate literal.
type Tuple struct {
	Elems []Expr
}

func (t *Tuple) exprNode() {}
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Range is a half-open iteration bound: [From, To).
type Range struct {
	From Expr
	To   Expr
}

func (r *Range) exprNode() {}
func (r *Range) String() string {
	return fmt.Sprintf("%s..%s", r.From, r.To)
}

// Assign declares a new binding named Name in the current (top) scope
// frame. Redeclaring a name already present in that frame is fatal at
// evaluation time.
type Assign struct {
	Name  string
	Value Expr
}

func (a *Assign) stmtNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("var %s = %s", a.Name, a.Value)
}

// ReAssign mutates the nearest existing binding named Name above the
// enclosing function-call barrier. The new value's kind must match
// the binding's existing kind.
type ReAssign struct {
	Name  string
	Value Expr
}

func (r *ReAssign) stmtNode() {}
func (r *ReAssign) String() string {
	return fmt.Sprintf("%s = %s", r.Name, r.Value)
}

// Builtin names recognized by the Builtin AST node.
const (
	BuiltinBreak    = "break"
	BuiltinContinue = "continue"
	BuiltinExit     = "exit"
	BuiltinReturn   = "return"
	BuiltinPrint    = "print"
	BuiltinScanNum  = "scanNum"
	BuiltinScanStr  = "scanStr"
)

// Builtin is an intrinsic statement: break, continue, exit, return,
// print, scanNum, or scanStr.
type Builtin struct {
	Name string
	Args []Expr
}

func (b *Builtin) stmtNode() {}
func (b *Builtin) String() string {
	if len(b.Args) == 0 {
		return b.Name
	}
	parts := make([]string, len(b.Args))
	for i, a := range b.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", b.Name, strings.Join(parts, ", "))
}

// IfStmt is a conditional with an optional else body.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (i *IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	sb.WriteString(i.Cond.String())
	sb.WriteString(" {\n")
	writeBlock(&sb, i.Then)
	sb.WriteByte('}')
	if len(i.Else) > 0 {
		sb.WriteString(" else {\n")
		writeBlock(&sb, i.Else)
		sb.WriteByte('}')
	}
	return sb.String()
}

// WhileStmt is a pre-test loop.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

func (w *WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	var sb strings.Builder
	sb.WriteString("while ")
	sb.WriteString(w.Cond.String())
	sb.WriteString(" {\n")
	writeBlock(&sb, w.Body)
	sb.WriteByte('}')
	return sb.String()
}

// ForStmt is a C-style numeric range loop, half-open over Range.
type ForStmt struct {
	Var   string
	Range *Range
	Body  []Stmt
}

func (f *ForStmt) stmtNode() {}
func (f *ForStmt) String() string {
	var sb strings.Builder
	sb.WriteString("for ")
	sb.WriteString(f.Var)
	sb.WriteString(" in ")
	sb.WriteString(f.Range.String())
	sb.WriteString(" {\n")
	writeBlock(&sb, f.Body)
	sb.WriteByte('}')
	return sb.String()
}
