/*
File    : numen/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns a line of numen source into an ordered token buffer.
package lexer

import "fmt"

// Op is the closed set of binary/unary operators numen understands. Each
// binary operator carries a fixed precedence used by the parser's
// precedence-climbing loop; Not is unary-only and never consulted for
// binary precedence.
type Op int

const (
	Or Op = iota
	And
	Lt
	Gt
	Lte
	Gte
	Eq
	Neq
	Add
	Sub
	Mul
	Div
	Pow
	Mod
	Not
)

// precedence maps every binary operator to its climbing priority. Or binds
// loosest, Mul/Div/Pow/Mod bind tightest. Not has no entry: it is only ever
// parsed as a unary prefix, never dispatched through the binary table.
var precedence = map[Op]int{
	Or:  0,
	And: 1,
	Lt:  2,
	Gt:  2,
	Lte: 2,
	Gte: 2,
	Eq:  3,
	Neq: 3,
	Add: 4,
	Sub: 4,
	Mul: 5,
	Div: 5,
	Pow: 5,
	Mod: 5,
}

// notPrecedence is the sentinel precedence for the unary-only Not operator.
const notPrecedence = -1

// Precedence returns op's binary precedence, or notPrecedence for Not.
func (op Op) Precedence() int {
	if p, ok := precedence[op]; ok {
		return p
	}
	return notPrecedence
}

func (op Op) String() string {
	switch op {
	case Or:
		return "||"
	case And:
		return "&&"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Lte:
		return "<="
	case Gte:
		return ">="
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Mod:
		return "%"
	case Not:
		return "!"
	default:
		return "<unknown-op>"
	}
}

// Kind discriminates the tagged Token variant. Token carries payload fields
// (Op, Bool, Text) that are only meaningful for their matching Kind.
type Kind int

const (
	Let Kind = iota
	If
	ElseIf
	Else
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Assign
	Arrow
	Colon
	SemiColon
	Operator
	Boolean
	Number
	Symbol
	Illegal
	End
)

// keywords maps reserved words to their keyword Kind. Any identifier not
// found here lexes as Symbol (or Boolean, for true/false).
var keywords = map[string]Kind{
	"let":    Let,
	"if":     If,
	"elseif": ElseIf,
	"else":   Else,
}

// Span is a half-open character-offset range [Begin, End) into the source
// line a token was scanned from. It exists purely for error reporting.
type Span struct {
	Begin int
	End   int
}

// Token is the lexer's tagged output variant. Only the field matching Kind
// is meaningful: Op for Operator, Bool for Boolean, Text for Number and
// Symbol and Illegal (holding the raw source text or offending character).
type Token struct {
	Kind Kind
	Op   Op
	Bool bool
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case Operator:
		return t.Op.String()
	case Boolean:
		return fmt.Sprintf("%t", t.Bool)
	case Number, Symbol:
		return t.Text
	case Illegal:
		return fmt.Sprintf("illegal(%s)", t.Text)
	case End:
		return "<end>"
	default:
		return kindNames[t.Kind]
	}
}

var kindNames = map[Kind]string{
	Let:          "let",
	If:           "if",
	ElseIf:       "elseif",
	Else:         "else",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBracket:  "[",
	RightBracket: "]",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Assign:       "=",
	Arrow:        "=>",
	Colon:        ":",
	SemiColon:    ";",
	End:          "<end>",
}

func lookupIdent(word string) Token {
	if kind, ok := keywords[word]; ok {
		return Token{Kind: kind, Text: word}
	}
	if word == "true" || word == "false" {
		return Token{Kind: Boolean, Bool: word == "true"}
	}
	return Token{Kind: Symbol, Text: word}
}
