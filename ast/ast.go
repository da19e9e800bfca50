/*
File    : numen/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines numen's abstract syntax tree: a closed set of node
// variants produced by the parser and interpreted by the evaluator. Nodes
// are immutable once constructed; the only exception is the lambda-capture
// rewrite in eval, which builds a *new* tree rather than mutating one.
package ast

import (
	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/value"
)

// Node is the sealed AST node interface. Every variant below implements it
// with a no-op marker method; callers dispatch on concrete type via a type
// switch in the evaluator, the idiomatic Go stand-in for a tagged union.
type Node interface {
	astNode()
}

// Literal is an already-evaluated constant baked into the tree, either
// from a source literal (number/boolean/array literal) or from the
// lambda-capture rewrite replacing a resolved free variable.
type Literal struct {
	Value value.Value
}

// Var is an identifier reference, resolved against the environment chain
// at evaluation time.
type Var struct {
	Name string
}

// Unitary is a prefix operator application: +x, -x, !x.
type Unitary struct {
	Op      lexer.Op
	Operand Node
}

// Binary is an infix operator application: arithmetic, comparison, or
// logical.
type Binary struct {
	Op    lexer.Op
	Left  Node
	Right Node
}

// Index is a[i] (single index) or a[i, j, ...] (gather, via an Array
// index node).
type Index struct {
	Target Node
	Index  Node
}

// Apply is a call f(a, b, ...). Callee may itself be any expression,
// including another Apply or Index (supporting f(a)(b)[c] chains).
type Apply struct {
	Callee Node
	Args   []Node
}

// Array is a list literal [e1, e2, ...].
type Array struct {
	Elements []Node
}

// Lambda is an anonymous function literal (x, y) => { ... }. As built by
// the parser, Body is the block as written; free-variable capture runs when
// the lambda is evaluated (see eval's capture pass), and the rewritten body
// is stored in the resulting eval.UserFunction. Params are the parameter
// names bound at call time.
type Lambda struct {
	Params []string
	Body   Node
}

// Block is a brace-delimited statement sequence evaluated in a fresh
// child scope; its value is that of the first value-producing statement.
type Block struct {
	Statements []Node
}

// CondPair is one (condition, body) arm of a conditional chain.
type CondPair struct {
	Cond Node
	Body Node
}

// Cond is if/elseif.../else. Else is nil when no else clause was parsed.
type Cond struct {
	If      CondPair
	ElseIfs []CondPair
	Else    Node
}

// Assign is `let NAME = EXPR` (Define true) or `NAME = EXPR` (Define
// false).
type Assign struct {
	Name   string
	Body   Node
	Define bool
}

// Void is a statement terminated with `;`; its value is discarded.
type Void struct {
	Inner Node
}

// Empty is the placeholder for an empty statement (a bare `;`).
type Empty struct{}

func (*Literal) astNode() {}
func (*Var) astNode()     {}
func (*Unitary) astNode() {}
func (*Binary) astNode()  {}
func (*Index) astNode()   {}
func (*Apply) astNode()   {}
func (*Array) astNode()   {}
func (*Lambda) astNode()  {}
func (*Block) astNode()   {}
func (*Cond) astNode()    {}
func (*Assign) astNode()  {}
func (*Void) astNode()    {}
func (*Empty) astNode()   {}
