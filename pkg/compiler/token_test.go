package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "KEYWORD", KEYWORD.String())
	assert.Equal(t, "SEMICOLON", SEMICOLON.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}

func TestFormatTokens(t *testing.T) {
	tokens, err := Lex("int main(void){return 0;}")
	require.NoError(t, err)

	out := FormatTokens(tokens)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11) // header + one row per token

	assert.Equal(t, []string{"TYPE", "VALUE", "POSITION"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"KEYWORD", "int", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"IDENTIFIER", "main", "4"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"RBRACE", "}", "24"}, strings.Fields(lines[10]))
}
