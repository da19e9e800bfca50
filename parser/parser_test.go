/*
File    : numen/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/numen/ast"
	"github.com/akashmaji946/numen/lexer"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	p := New(lexer.New(src))
	node, err := p.ParseStatement()
	require.NoError(t, err)
	return node
}

func TestParsesLiteralsAndBinary(t *testing.T) {
	node := parseOne(t, "1 + 2 * 3")
	bin, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Add, bin.Op)
	_, ok = bin.Left.(*ast.Literal)
	assert.True(t, ok)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Mul, rhs.Op)
}

func TestPowIsLeftAssociative(t *testing.T) {
	// 2^3^2 must parse as (2^3)^2, matching the spec's test vector
	// (value 64, not 512).
	node := parseOne(t, "2^3^2")
	outer, ok := node.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Pow, outer.Op)
	inner, ok := outer.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Pow, inner.Op)
	_, ok = outer.Right.(*ast.Literal)
	assert.True(t, ok)
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	node := parseOne(t, "-1 + 2")
	bin := node.(*ast.Binary)
	_, ok := bin.Left.(*ast.Unitary)
	assert.True(t, ok)
}

func TestLetAndAssign(t *testing.T) {
	node := parseOne(t, "let x = 5")
	a := node.(*ast.Assign)
	assert.True(t, a.Define)
	assert.Equal(t, "x", a.Name)

	node = parseOne(t, "x = 5")
	a = node.(*ast.Assign)
	assert.False(t, a.Define)
}

func TestTrailingSemicolonWrapsVoid(t *testing.T) {
	node := parseOne(t, "1 + 1;")
	_, ok := node.(*ast.Void)
	assert.True(t, ok)
}

func TestEmptyStatement(t *testing.T) {
	node := parseOne(t, ";")
	_, ok := node.(*ast.Empty)
	assert.True(t, ok)
}

func TestBlockRequiresAtLeastOneStatement(t *testing.T) {
	p := New(lexer.New("{ }"))
	_, err := p.ParseStatement()
	assert.Error(t, err)
}

func TestBlockWithVoidMembers(t *testing.T) {
	node := parseOne(t, "{ let x = 1; x }")
	b := node.(*ast.Block)
	require.Len(t, b.Statements, 2)
	_, ok := b.Statements[0].(*ast.Void)
	assert.True(t, ok)
	_, ok = b.Statements[1].(*ast.Var)
	assert.True(t, ok)
}

func TestConditionalChain(t *testing.T) {
	node := parseOne(t, "if a { 1 } elseif b { 2 } else { 3 }")
	c := node.(*ast.Cond)
	require.Len(t, c.ElseIfs, 1)
	assert.NotNil(t, c.Else)
}

func TestPostfixChaining(t *testing.T) {
	node := parseOne(t, "f(a)(b)[c]")
	idx := node.(*ast.Index)
	apply2 := idx.Target.(*ast.Apply)
	apply1 := apply2.Callee.(*ast.Apply)
	_, ok := apply1.Callee.(*ast.Var)
	assert.True(t, ok)
}

func TestIndexGatherBecomesArrayIndex(t *testing.T) {
	node := parseOne(t, "a[0, 2, 4]")
	idx := node.(*ast.Index)
	arr, ok := idx.Index.(*ast.Array)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestLambdaZeroParams(t *testing.T) {
	node := parseOne(t, "() => { 1 }")
	l := node.(*ast.Lambda)
	assert.Empty(t, l.Params)
}

func TestLambdaOneParam(t *testing.T) {
	node := parseOne(t, "(x) => { x }")
	l := node.(*ast.Lambda)
	assert.Equal(t, []string{"x"}, l.Params)
}

func TestLambdaMultiParam(t *testing.T) {
	node := parseOne(t, "(x, y, z) => { x }")
	l := node.(*ast.Lambda)
	assert.Equal(t, []string{"x", "y", "z"}, l.Params)
}

func TestParenthesisedExpressionIsNotLambda(t *testing.T) {
	node := parseOne(t, "(1 + 2) * 3")
	bin := node.(*ast.Binary)
	assert.Equal(t, lexer.Mul, bin.Op)
	_, ok := bin.Left.(*ast.Binary)
	assert.True(t, ok)
}

func TestArrayLiteralWithTrailingComma(t *testing.T) {
	node := parseOne(t, "[1, 2, 3,]")
	arr := node.(*ast.Array)
	assert.Len(t, arr.Elements, 3)
}

func TestUnexpectedTokenAborts(t *testing.T) {
	p := New(lexer.New(")"))
	_, err := p.ParseStatement()
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
