package compiler

import "fmt"

// The three stage errors are disjoint: each stage fails with exactly one of
// them, never recovers internally, and propagates by early return. The
// driver tells them apart with errors.As.

// LexError reports source text the lexer could not turn into a token.
type LexError struct {
	Pos  int    // byte offset into the source
	Char rune   // the offending character, when one exists
	Msg  string // overrides the default message when set
}

func (e *LexError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
	}
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

// SyntaxError reports a token the parser did not expect at its cursor.
type SyntaxError struct {
	Expected string // kind name, e.g. `CONSTANT` or `keyword "int"`
	Found    string // description of the actual token; empty at end of input
	Pos      int    // offset of the found token, or -1 at end of input
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %s at offset %d", e.Expected, e.Found, e.Pos)
}

// CodegenError reports an AST shape the code generator does not support.
type CodegenError struct {
	Construct string
}

func (e *CodegenError) Error() string {
	return "unsupported construct: " + e.Construct
}
