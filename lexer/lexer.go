/*
File    : numen/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strings"

// Lexer tokenises one line of numen source up front into a random-access
// token buffer. The parser drives the buffer through Peek/Next/Prev; the
// lexer itself never re-scans once New has run.
type Lexer struct {
	src    string
	tokens []Token
	spans  []Span
	pos    int // index of the "current" token in tokens
}

// New scans src completely and returns a Lexer positioned before the first
// token. Scanning never fails: unrecognised characters become Illegal
// tokens rather than aborting the scan, so parsing is what reports errors.
func New(src string) *Lexer {
	lx := &Lexer{src: src}
	lx.scan()
	return lx
}

// scan runs the lexer's scanning loop to completion, repeatedly skipping
// whitespace and emitting one token until the source is exhausted. The
// token buffer always ends with a synthetic End token so Peek past the
// recorded tokens is never required to special-case an empty buffer.
func (lx *Lexer) scan() {
	i := 0
	n := len(lx.src)
	for i < n {
		for i < n && isSpace(lx.src[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		c := lx.src[i]

		switch {
		case isSymbolStart(c):
			for i < n && isSymbolCont(lx.src[i]) {
				i++
			}
			word := lx.src[start:i]
			lx.emit(lookupIdent(word), start, i)

		case isNumberClass(c):
			for i < n && isNumberClass(lx.src[i]) {
				i++
			}
			lx.emit(Token{Kind: Number, Text: lx.src[start:i]}, start, i)

		default:
			if tok, width, ok := scanOperatorOrPunct(lx.src[i:]); ok {
				i += width
				lx.emit(tok, start, i)
			} else {
				i++
				lx.emit(Token{Kind: Illegal, Text: string(c)}, start, i)
			}
		}
	}
	lx.tokens = append(lx.tokens, Token{Kind: End})
	lx.spans = append(lx.spans, Span{Begin: n, End: n})
}

func (lx *Lexer) emit(tok Token, begin, end int) {
	lx.tokens = append(lx.tokens, tok)
	lx.spans = append(lx.spans, Span{Begin: begin, End: end})
}

// Peek returns the current token without advancing. Once the buffer is
// exhausted (pos at or past the final, synthetic End token) it keeps
// returning End.
func (lx *Lexer) Peek() Token {
	if lx.pos >= len(lx.tokens) {
		return Token{Kind: End}
	}
	return lx.tokens[lx.pos]
}

// Next returns the current token and advances past it. Calling Next once
// the stream is already at End leaves it at End and keeps returning End,
// so callers may poll it indefinitely without bounds-checking.
func (lx *Lexer) Next() Token {
	tok := lx.Peek()
	if lx.pos < len(lx.tokens) {
		lx.pos++
	}
	return tok
}

// Prev rewinds the stream by one token. Precondition: pos > 0 (the parser
// may call Prev up to three times in a row); violating it is a parser bug,
// not a user-facing error, so Prev simply no-ops at the floor.
func (lx *Lexer) Prev() {
	if lx.pos > 0 {
		lx.pos--
	}
}

// Span returns the source span of the current token (the one Peek would
// return), or of the final token once the stream has run past the end.
func (lx *Lexer) Span() Span {
	idx := lx.pos
	if idx >= len(lx.spans) {
		idx = len(lx.spans) - 1
	}
	return lx.spans[idx]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isSymbolStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isSymbolCont(c byte) bool {
	return isSymbolStart(c) || (c >= '0' && c <= '9')
}

func isNumberClass(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// twoCharOps lists, in the order the spec prescribes, every two-character
// operator the lexer must try before falling back to single characters.
var twoCharOps = []struct {
	text string
	tok  Token
}{
	{"==", Token{Kind: Operator, Op: Eq}},
	{"!=", Token{Kind: Operator, Op: Neq}},
	{"<=", Token{Kind: Operator, Op: Lte}},
	{">=", Token{Kind: Operator, Op: Gte}},
	{"&&", Token{Kind: Operator, Op: And}},
	{"||", Token{Kind: Operator, Op: Or}},
	{"=>", Token{Kind: Arrow}},
}

var oneCharTokens = map[byte]Token{
	'(': {Kind: LeftParen},
	')': {Kind: RightParen},
	'[': {Kind: LeftBracket},
	']': {Kind: RightBracket},
	'{': {Kind: LeftBrace},
	'}': {Kind: RightBrace},
	',': {Kind: Comma},
	'=': {Kind: Assign},
	':': {Kind: Colon},
	';': {Kind: SemiColon},
	'+': {Kind: Operator, Op: Add},
	'-': {Kind: Operator, Op: Sub},
	'*': {Kind: Operator, Op: Mul},
	'/': {Kind: Operator, Op: Div},
	'^': {Kind: Operator, Op: Pow},
	'%': {Kind: Operator, Op: Mod},
	'>': {Kind: Operator, Op: Gt},
	'<': {Kind: Operator, Op: Lt},
	'!': {Kind: Operator, Op: Not},
}

// scanOperatorOrPunct matches the longest operator/punctuation token at the
// front of rest, preferring two-character operators over one-character
// ones. ok is false only for characters that are neither.
func scanOperatorOrPunct(rest string) (Token, int, bool) {
	for _, c := range twoCharOps {
		if strings.HasPrefix(rest, c.text) {
			return c.tok, 2, true
		}
	}
	if tok, ok := oneCharTokens[rest[0]]; ok {
		return tok, 1, true
	}
	return Token{}, 0, false
}
