package compiler

import "unicode/utf8"

// keywords is the reserved-word set. Keywords share the identifier pattern;
// classification is by exact lookup here after the lexeme has been scanned,
// never by a separate keyword pattern.
var keywords = map[string]bool{
	"int":    true,
	"void":   true,
	"return": true,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src string
	pos int // byte offset of the next byte to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// peek returns the byte at the current position without advancing.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the byte one position ahead of the current position.
func (l *Lexer) peek2() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool { return isIdentStart(b) || isDigit(b) }

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isSpace(l.peek()) {
		l.pos++
	}
}

// skipLineComment discards everything from the opening "//" to end-of-line.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.pos++
	}
}

// skipBlockComment discards everything up to and including the first "*/"
// after the opening marker. Reaching end of input first is a lexical error
// reported at the offset of the opening "/*".
func (l *Lexer) skipBlockComment() error {
	openPos := l.pos
	l.pos += 2 // consume /*
	for l.pos < len(l.src) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.pos += 2
			return nil
		}
		l.pos++
	}
	return &LexError{Pos: openPos, Msg: "unterminated block comment"}
}

// scanIdent collects identifier-shaped text and classifies it as KEYWORD or
// IDENTIFIER by membership in the reserved-word set.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	tt := IDENTIFIER
	if keywords[lexeme] {
		tt = KEYWORD
	}
	return Token{Type: tt, Lexeme: lexeme, Pos: start}
}

// scanInt collects a run of decimal digits.
func (l *Lexer) scanInt() Token {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.pos++
	}
	return Token{Type: CONSTANT, Lexeme: l.src[start:l.pos], Pos: start}
}

// nextToken skips whitespace/comments and scans the next token.
// ok is false when the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool, err error) {
	// Skip whitespace and both comment styles in a loop so that
	// a comment followed immediately by more whitespace is handled.
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{}, false, nil
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.skipLineComment()
			continue
		}
		if l.peek() == '/' && l.peek2() == '*' {
			if err := l.skipBlockComment(); err != nil {
				return Token{}, false, err
			}
			continue
		}
		break
	}

	ch := l.peek()
	pos := l.pos

	if isIdentStart(ch) {
		return l.scanIdent(), true, nil
	}
	if isDigit(ch) {
		return l.scanInt(), true, nil
	}

	l.pos++
	switch ch {
	case '(':
		return Token{LPAREN, "(", pos}, true, nil
	case ')':
		return Token{RPAREN, ")", pos}, true, nil
	case '{':
		return Token{LBRACE, "{", pos}, true, nil
	case '}':
		return Token{RBRACE, "}", pos}, true, nil
	case ';':
		return Token{SEMICOLON, ";", pos}, true, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[pos:])
	return Token{}, false, &LexError{Pos: pos, Char: r}
}

// Lex tokenises src in source order. Whitespace and comments are discarded,
// never materialized. It returns a non-nil error on the first byte that
// matches no token pattern, or on an unterminated block comment.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, ok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
