/*
File    : numen/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(src string) []Token {
	lx := New(src)
	var out []Token
	for {
		tok := lx.Next()
		if tok.Kind == End {
			break
		}
		out = append(out, tok)
	}
	return out
}

func TestConsumeTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "arithmetic and whitespace",
			input: ` 123 + 2   31 - 12 `,
			expected: []Token{
				{Kind: Number, Text: "123"},
				{Kind: Operator, Op: Add},
				{Kind: Number, Text: "2"},
				{Kind: Number, Text: "31"},
				{Kind: Operator, Op: Sub},
				{Kind: Number, Text: "12"},
			},
		},
		{
			name:  "brackets and identifiers",
			input: ` { } + []  abc - a12 `,
			expected: []Token{
				{Kind: LeftBrace},
				{Kind: RightBrace},
				{Kind: Operator, Op: Add},
				{Kind: LeftBracket},
				{Kind: RightBracket},
				{Kind: Symbol, Text: "abc"},
				{Kind: Operator, Op: Sub},
				{Kind: Symbol, Text: "a12"},
			},
		},
		{
			name:  "two-character operators",
			input: `<= >= == != && || =>`,
			expected: []Token{
				{Kind: Operator, Op: Lte},
				{Kind: Operator, Op: Gte},
				{Kind: Operator, Op: Eq},
				{Kind: Operator, Op: Neq},
				{Kind: Operator, Op: And},
				{Kind: Operator, Op: Or},
				{Kind: Arrow},
			},
		},
		{
			name:  "keywords and booleans",
			input: `let if elseif else true false`,
			expected: []Token{
				{Kind: Let, Text: "let"},
				{Kind: If, Text: "if"},
				{Kind: ElseIf, Text: "elseif"},
				{Kind: Else, Text: "else"},
				{Kind: Boolean, Bool: true},
				{Kind: Boolean, Bool: false},
			},
		},
		{
			name:  "leading-dot number",
			input: `.5 + 3.14`,
			expected: []Token{
				{Kind: Number, Text: ".5"},
				{Kind: Operator, Op: Add},
				{Kind: Number, Text: "3.14"},
			},
		},
		{
			name:  "illegal character",
			input: `1 @ 2`,
			expected: []Token{
				{Kind: Number, Text: "1"},
				{Kind: Illegal, Text: "@"},
				{Kind: Number, Text: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collect(tt.input))
		})
	}
}

func TestPeekNextPrevRoundTrip(t *testing.T) {
	lx := New(`1 + 2`)

	first := lx.Peek()
	assert.Equal(t, first, lx.Peek(), "peek must be idempotent")
	assert.Equal(t, first, lx.Next(), "next must return what peek promised")

	second := lx.Next()
	lx.Prev()
	assert.Equal(t, second, lx.Peek(), "prev must restore the stream position")
}

func TestNextPastEndYieldsEndIndefinitely(t *testing.T) {
	lx := New(`1`)
	assert.Equal(t, Token{Kind: Number, Text: "1"}, lx.Next())
	assert.Equal(t, Token{Kind: End}, lx.Next())
	assert.Equal(t, Token{Kind: End}, lx.Next())
	assert.Equal(t, Token{Kind: End}, lx.Peek())
}

func TestSpanTracksOffsets(t *testing.T) {
	lx := New(`12 + 345`)
	// Span reports the current token, the one Peek would return.
	assert.Equal(t, Span{Begin: 0, End: 2}, lx.Span()) // "12"
	lx.Next()
	assert.Equal(t, Span{Begin: 3, End: 4}, lx.Span()) // "+"
	lx.Next()
	assert.Equal(t, Span{Begin: 5, End: 8}, lx.Span()) // "345"
}

func TestThreeDeepRewind(t *testing.T) {
	lx := New(`let x = 1`)
	lx.Next()
	lx.Next()
	lx.Next()
	lx.Prev()
	lx.Prev()
	lx.Prev()
	assert.Equal(t, Token{Kind: Let, Text: "let"}, lx.Peek())
}
