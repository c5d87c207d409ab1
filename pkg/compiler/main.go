// Package compiler provides the minicc lexer, parser, and code generator
// for the single-function C subset "int main(void) { return <constant>; }".
//
// Pipeline: C source → Lex → Parse → Generate → native assembly text
package compiler
