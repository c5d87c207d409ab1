package compiler

import (
	"fmt"
	"strconv"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program    = function EOF
//	function   = "int" IDENTIFIER "(" "void" ")" "{" statement "}"
//	statement  = "return" expression ";"
//	expression = CONSTANT
//
// One routine per rule, a single monotonically advancing cursor, no
// backtracking and no lookahead beyond the current token.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse builds the AST for tokens. The returned error is always a
// *SyntaxError describing the first expectation that failed.
func Parse(tokens []Token) (*Program, error) {
	p := &Parser{tokens: tokens}
	return p.parseProgram()
}

// peek returns the current token; ok is false past the last token.
func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// describe renders a token for error messages.
func describe(tok Token) string {
	return fmt.Sprintf("%s %q", tok.Type, tok.Lexeme)
}

// expect consumes the current token if its kind equals tt, otherwise fails
// naming the expected kind and what was actually found.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, &SyntaxError{Expected: tt.String(), Pos: -1}
	}
	if tok.Type != tt {
		return Token{}, &SyntaxError{Expected: tt.String(), Found: describe(tok), Pos: tok.Pos}
	}
	p.pos++
	return tok, nil
}

// expectKeyword consumes a KEYWORD token with the given spelling. Keyword
// positions are fixed by the grammar, so the spelling is checked too; a
// keyword kind alone would let "return main(void)..." through.
func (p *Parser) expectKeyword(word string) (Token, error) {
	expected := fmt.Sprintf("keyword %q", word)
	tok, ok := p.peek()
	if !ok {
		return Token{}, &SyntaxError{Expected: expected, Pos: -1}
	}
	if tok.Type != KEYWORD || tok.Lexeme != word {
		return Token{}, &SyntaxError{Expected: expected, Found: describe(tok), Pos: tok.Pos}
	}
	p.pos++
	return tok, nil
}

// parseProgram parses the single function and asserts no tokens remain.
func (p *Parser) parseProgram() (*Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return nil, err
	}
	if extra, ok := p.peek(); ok {
		return nil, &SyntaxError{Expected: "end of input", Found: describe(extra), Pos: extra.Pos}
	}
	return &Program{Function: fn}, nil
}

func (p *Parser) parseFunction() (*Function, error) {
	if _, err := p.expectKeyword("int"); err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("void"); err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &Function{Name: name.Lexeme, Body: body}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	if _, err := p.expectKeyword("return"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expression: expr}, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	tok, err := p.expect(CONSTANT)
	if err != nil {
		return nil, err
	}
	// Literals are radix-10 and unsigned in the grammar; anything that does
	// not fit a signed 64-bit value is rejected here rather than wrapped.
	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Expected: "integer constant within int64 range",
			Found:    describe(tok),
			Pos:      tok.Pos,
		}
	}
	return &Constant{Value: value}, nil
}
