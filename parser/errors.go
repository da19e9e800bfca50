/*
File    : numen/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/numen/lexer"
)

// ParseError reports the single token that aborted parsing. numen's parser
// does not recover from a bad token and keep going; it stops at the first
// one, per the grammar's design.
type ParseError struct {
	Token lexer.Token
	Span  lexer.Span
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: got %s at offset %d-%d", e.Msg, e.Token, e.Span.Begin, e.Span.End)
}
