package compiler

import (
	"fmt"
	"strings"
)

// The AST is a closed sum type: every consumer type-switches over the
// variants, so a new statement or expression kind is a compile-time
// obligation at each switch, not a runtime name comparison.
//
// A well-formed tree always has the shape
// Program → Function → ReturnStmt → Constant; the grammar admits nothing
// else. Ownership is strictly tree-shaped and nodes are immutable after
// construction.

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// Constant is a compile-time decimal integer literal.
//
//	return 42;
//	       ^^  Constant{Value: 42}
type Constant struct {
	Value int64
}

func (*Constant) exprNode()        {}
func (c *Constant) String() string { return fmt.Sprintf("Constant: %d", c.Value) }

// ReturnStmt returns the value of its expression from the enclosing function.
type ReturnStmt struct {
	Expression Expr
}

func (*ReturnStmt) stmtNode()        {}
func (r *ReturnStmt) String() string { return "Return" }

// Function is a single function definition with exactly one body statement.
type Function struct {
	Name string
	Body Stmt
}

func (f *Function) String() string { return "Function: " + f.Name }

// Program is the AST root: one translation unit, one function.
type Program struct {
	Function *Function
}

func (p *Program) String() string { return "Program" }

// Tree renders the AST one node per line, children below their parent, each
// nesting level indented four spaces and prefixed with a branch marker.
func (p *Program) Tree() string {
	lines := []string{"Program", branch(0, p.Function.String())}
	switch s := p.Function.Body.(type) {
	case *ReturnStmt:
		lines = append(lines, branch(1, s.String()), branch(2, s.Expression.String()))
	default:
		lines = append(lines, branch(1, s.String()))
	}
	return strings.Join(lines, "\n")
}

func branch(level int, text string) string {
	return strings.Repeat("    ", level) + "└── " + text
}
