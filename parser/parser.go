/*
File    : numen/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a numen lexer's token buffer into one AST per
// statement: recursive descent for statement forms, precedence climbing
// for expressions. Unlike go-mix's parser, which collects errors and keeps
// going, numen aborts at the first unexpected token and returns a
// ParseError — there is no error-recovery story in this grammar.
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/numen/ast"
	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/value"
)

// Parser drives a lexer's token buffer through one recursive-descent pass
// per call to ParseStatement.
type Parser struct {
	lex *lexer.Lexer
}

// New wraps a lexer already positioned at the start of a source line.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// AtEnd reports whether the token stream is exhausted, so a REPL host can
// stop asking for more statements on a line.
func (p *Parser) AtEnd() bool {
	return p.lex.Peek().Kind == lexer.End
}

// ParseStatement parses exactly one top-level statement and, if a ';'
// immediately follows it, wraps it in a Void node and consumes the ';'.
func (p *Parser) ParseStatement() (ast.Node, error) {
	node, err := p.parseStatementCore()
	if err != nil {
		return nil, err
	}
	if p.lex.Peek().Kind == lexer.SemiColon {
		p.lex.Next()
		return &ast.Void{Inner: node}, nil
	}
	return node, nil
}

// statementHead is the outcome of peeking the statement-head disambiguation
// window described in the grammar notes.
type statementHead int

const (
	headEmpty statementHead = iota
	headBlock
	headIf
	headLet
	headAssign
	headExpr
)

// classifyHead reads up to three tokens ahead to decide which statement
// production applies, then rewinds back to where it started so the chosen
// parse function can consume them itself. This is the reason the lexer
// guarantees a rewind depth of three.
func (p *Parser) classifyHead() statementHead {
	t0 := p.lex.Next()
	switch t0.Kind {
	case lexer.SemiColon:
		p.lex.Prev()
		return headEmpty
	case lexer.LeftBrace:
		p.lex.Prev()
		return headBlock
	case lexer.If:
		p.lex.Prev()
		return headIf
	case lexer.Let:
		p.lex.Next() // Symbol (or whatever follows; malformed input surfaces in parseLet)
		p.lex.Next() // '=' (or whatever follows)
		p.lex.Prev()
		p.lex.Prev()
		p.lex.Prev()
		return headLet
	case lexer.Symbol:
		t1 := p.lex.Next()
		rewound := t1.Kind == lexer.Assign
		p.lex.Prev()
		p.lex.Prev()
		if rewound {
			return headAssign
		}
		return headExpr
	default:
		p.lex.Prev()
		return headExpr
	}
}

func (p *Parser) parseStatementCore() (ast.Node, error) {
	switch p.classifyHead() {
	case headEmpty:
		p.lex.Next()
		return &ast.Empty{}, nil
	case headBlock:
		return p.parseBlock()
	case headIf:
		return p.parseCond()
	case headLet:
		return p.parseLet()
	case headAssign:
		return p.parseAssign()
	default:
		return p.parseExpr()
	}
}

func (p *Parser) parseLet() (ast.Node, error) {
	p.lex.Next() // 'let'
	nameTok := p.lex.Peek()
	if nameTok.Kind != lexer.Symbol {
		return nil, p.errorAt(nameTok, "expected identifier after 'let'")
	}
	p.lex.Next()
	eqTok := p.lex.Peek()
	if eqTok.Kind != lexer.Assign {
		return nil, p.errorAt(eqTok, "expected '=' in definition")
	}
	p.lex.Next()
	body, err := p.parseStatementCore()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: nameTok.Text, Body: body, Define: true}, nil
}

func (p *Parser) parseAssign() (ast.Node, error) {
	nameTok := p.lex.Next()
	p.lex.Next() // '='
	body, err := p.parseStatementCore()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: nameTok.Text, Body: body, Define: false}, nil
}

func (p *Parser) parseBlock() (ast.Node, error) {
	openSpan := p.lex.Span()
	open := p.lex.Next() // '{'
	var stmts []ast.Node
	for p.lex.Peek().Kind != lexer.RightBrace {
		if p.lex.Peek().Kind == lexer.End {
			return nil, &ParseError{Token: open, Span: openSpan, Msg: "unterminated block"}
		}
		stmt, err := p.parseStatementCore()
		if err != nil {
			return nil, err
		}
		if p.lex.Peek().Kind == lexer.SemiColon {
			p.lex.Next()
			stmt = &ast.Void{Inner: stmt}
		}
		stmts = append(stmts, stmt)
	}
	if len(stmts) == 0 {
		return nil, &ParseError{Token: open, Span: openSpan, Msg: "empty block is not permitted"}
	}
	p.lex.Next() // '}'
	return &ast.Block{Statements: stmts}, nil
}

func (p *Parser) parseCond() (ast.Node, error) {
	p.lex.Next() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	c := &ast.Cond{If: ast.CondPair{Cond: cond, Body: body}}
	for p.lex.Peek().Kind == lexer.ElseIf {
		p.lex.Next()
		eCond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		eBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		c.ElseIfs = append(c.ElseIfs, ast.CondPair{Cond: eCond, Body: eBody})
	}
	if p.lex.Peek().Kind == lexer.Else {
		p.lex.Next()
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		c.Else = elseBody
	}
	return c, nil
}

// parseExpr implements `expr := lambda | binary`, trying the lambda
// production first whenever the expression opens with '(' since the two
// forms share that lead token.
func (p *Parser) parseExpr() (ast.Node, error) {
	if p.lex.Peek().Kind == lexer.LeftParen {
		lambda, isLambda, err := p.tryParseLambda()
		if err != nil {
			return nil, err
		}
		if isLambda {
			return lambda, nil
		}
	}
	return p.parseBinary(0)
}

// tryParseLambda speculatively consumes tokens looking for '(' ')' '=>',
// '(' Symbol ')' '=>', or '(' Symbol ',' ...; if the window doesn't match
// any of those it rewinds completely and reports isLambda=false so the
// caller falls back to parsing a parenthesised expression.
func (p *Parser) tryParseLambda() (ast.Node, bool, error) {
	steps := 0
	next := func() lexer.Token {
		steps++
		return p.lex.Next()
	}
	rewind := func() {
		for ; steps > 0; steps-- {
			p.lex.Prev()
		}
	}

	next() // '('
	a := p.lex.Peek()

	switch a.Kind {
	case lexer.RightParen:
		next()
		if p.lex.Peek().Kind != lexer.Arrow {
			rewind()
			return nil, false, nil
		}
		next() // '=>'
		body, err := p.parseBlock()
		if err != nil {
			return nil, true, err
		}
		return &ast.Lambda{Params: nil, Body: body}, true, nil

	case lexer.Symbol:
		name := next().Text
		switch p.lex.Peek().Kind {
		case lexer.RightParen:
			next()
			if p.lex.Peek().Kind != lexer.Arrow {
				rewind()
				return nil, false, nil
			}
			next() // '=>'
			body, err := p.parseBlock()
			if err != nil {
				return nil, true, err
			}
			return &ast.Lambda{Params: []string{name}, Body: body}, true, nil

		case lexer.Comma:
			params := []string{name}
			for p.lex.Peek().Kind == lexer.Comma {
				next() // ','
				nameTok := p.lex.Peek()
				if nameTok.Kind != lexer.Symbol {
					rewind()
					return nil, false, nil
				}
				params = append(params, next().Text)
			}
			if p.lex.Peek().Kind != lexer.RightParen {
				rewind()
				return nil, false, nil
			}
			next() // ')'
			if p.lex.Peek().Kind != lexer.Arrow {
				rewind()
				return nil, false, nil
			}
			next() // '=>'
			body, err := p.parseBlock()
			if err != nil {
				return nil, true, err
			}
			return &ast.Lambda{Params: params, Body: body}, true, nil

		default:
			rewind()
			return nil, false, nil
		}

	default:
		rewind()
		return nil, false, nil
	}
}

// parseBinary is precedence climbing: at level minPrec, parse a unary
// operand, then keep consuming operators whose priority is at least
// minPrec, recursing at priority+1 for the right-hand side. Every operator
// is left-associative, including Pow, per the grammar's deliberate
// simplification.
func (p *Parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.Peek()
		if tok.Kind != lexer.Operator {
			return left, nil
		}
		prec := tok.Op.Precedence()
		if prec < minPrec {
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: tok.Op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.lex.Peek()
	if tok.Kind == lexer.Operator && (tok.Op == lexer.Add || tok.Op == lexer.Sub || tok.Op == lexer.Not) {
		p.lex.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unitary{Op: tok.Op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix chains '(' arg-list ')' and '[' index-list ']' suffixes onto
// a primary in read order, producing nested Apply/Index nodes so that
// `f(a)(b)[c]` parses left to right.
func (p *Parser) parsePostfix() (ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.lex.Peek().Kind {
		case lexer.LeftParen:
			p.lex.Next()
			args, err := p.parseList(lexer.RightParen)
			if err != nil {
				return nil, err
			}
			node = &ast.Apply{Callee: node, Args: args}
		case lexer.LeftBracket:
			p.lex.Next()
			indices, err := p.parseList(lexer.RightBracket)
			if err != nil {
				return nil, err
			}
			var idx ast.Node
			if len(indices) == 1 {
				idx = indices[0]
			} else {
				idx = &ast.Array{Elements: indices}
			}
			node = &ast.Index{Target: node, Index: idx}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.lex.Peek()
	switch tok.Kind {
	case lexer.Boolean:
		p.lex.Next()
		return &ast.Literal{Value: value.Boolean(tok.Bool)}, nil

	case lexer.Number:
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errorAt(tok, fmt.Sprintf("invalid number literal %q", tok.Text))
		}
		p.lex.Next()
		return &ast.Literal{Value: value.Number(n)}, nil

	case lexer.Symbol:
		p.lex.Next()
		return &ast.Var{Name: tok.Text}, nil

	case lexer.LeftBracket:
		p.lex.Next()
		elems, err := p.parseList(lexer.RightBracket)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elements: elems}, nil

	case lexer.LeftParen:
		p.lex.Next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closeTok := p.lex.Peek()
		if closeTok.Kind != lexer.RightParen {
			return nil, p.errorAt(closeTok, "expected closing ')'")
		}
		p.lex.Next()
		return inner, nil

	default:
		return nil, p.errorAt(tok, "unexpected token")
	}
}

// parseList parses `expr (',' expr)* ','?` up to and including closer,
// tolerating a trailing comma.
func (p *Parser) parseList(closer lexer.Kind) ([]ast.Node, error) {
	var elems []ast.Node
	if p.lex.Peek().Kind == closer {
		p.lex.Next()
		return elems, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)

		tok := p.lex.Peek()
		if tok.Kind == lexer.Comma {
			p.lex.Next()
			if p.lex.Peek().Kind == closer {
				p.lex.Next()
				return elems, nil
			}
			continue
		}
		if tok.Kind == closer {
			p.lex.Next()
			return elems, nil
		}
		return nil, p.errorAt(tok, "expected ',' or closing delimiter")
	}
}

func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	return &ParseError{Token: tok, Span: p.lex.Span(), Msg: msg}
}
