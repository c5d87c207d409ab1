package compiler

import (
	"fmt"
	"strings"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Literals
	KEYWORD    TokenType = iota // "int", "void" or "return"
	IDENTIFIER                  // function name
	CONSTANT                    // decimal integer literal

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	CONSTANT:   "CONSTANT",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // 0-based byte offset of the first byte of the lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at offset %d", t.Type, t.Lexeme, t.Pos)
}

// FormatTokens renders tokens as a three-column table: type, value, position.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-20s %s\n", "TYPE", "VALUE", "POSITION")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%-12s %-20s %d\n", tok.Type, tok.Lexeme, tok.Pos)
	}
	return b.String()
}
