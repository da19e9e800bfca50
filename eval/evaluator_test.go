/*
File    : numen/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/parser"
	"github.com/akashmaji946/numen/value"
)

func run(t *testing.T, env *value.Environment, src string) *value.Value {
	t.Helper()
	p := parser.New(lexer.New(src))
	node, err := p.ParseStatement()
	require.NoError(t, err)
	v, err := Eval(node, env)
	require.NoError(t, err)
	return v
}

func runErr(t *testing.T, env *value.Environment, src string) error {
	t.Helper()
	p := parser.New(lexer.New(src))
	node, err := p.ParseStatement()
	require.NoError(t, err)
	_, err = Eval(node, env)
	return err
}

func TestArithmeticPrecedence(t *testing.T) {
	env := value.NewEnvironment(nil)
	v := run(t, env, "1 + 2 * 3")
	require.NotNil(t, v)
	assert.Equal(t, 7.0, v.AsNumber())
}

func TestPowLeftAssociative(t *testing.T) {
	env := value.NewEnvironment(nil)
	v := run(t, env, "2^3^2")
	require.NotNil(t, v)
	assert.Equal(t, 64.0, v.AsNumber())
}

func TestLetThenRead(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let x = 10")
	v := run(t, env, "x")
	assert.Equal(t, 10.0, v.AsNumber())
}

func TestRedefineInSameScopeErrors(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let x = 1")
	err := runErr(t, env, "let x = 2")
	assert.Error(t, err)
}

func TestAssignRequiresExistingBinding(t *testing.T) {
	env := value.NewEnvironment(nil)
	err := runErr(t, env, "y = 1")
	assert.Error(t, err)
}

func TestBlockScopeDoesNotLeak(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "{ let z = 5; z }")
	_, ok := env.Lookup("z", false)
	assert.False(t, ok, "block-local bindings must not escape")
}

func TestBlockAssignReachesOuterScope(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let total = 0")
	run(t, env, "{ total = total + 5; total }")
	v := run(t, env, "total")
	assert.Equal(t, 5.0, v.AsNumber())
}

func TestConditionalChain(t *testing.T) {
	env := value.NewEnvironment(nil)
	v := run(t, env, "if false { 1 } elseif true { 2 } else { 3 }")
	assert.Equal(t, 2.0, v.AsNumber())
}

func TestConditionalCoercesNumberToBoolean(t *testing.T) {
	env := value.NewEnvironment(nil)
	v := run(t, env, "if 0 { 1 } else { 2 }")
	assert.Equal(t, 2.0, v.AsNumber())
}

func TestArrayGatherIndex(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let a = [10, 20, 30, 40, 50]")
	v := run(t, env, "a[0, 2, 4]")
	require.NotNil(t, v)
	arr := v.AsArray()
	require.Len(t, arr, 3)
	assert.Equal(t, 10.0, arr[0].AsNumber())
	assert.Equal(t, 30.0, arr[1].AsNumber())
	assert.Equal(t, 50.0, arr[2].AsNumber())
}

func TestDoubleIndexIsTwoOperations(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let a = [[1, 2], [3, 4]]")
	v := run(t, env, "a[1][0]")
	assert.Equal(t, 3.0, v.AsNumber())
}

func TestIndexOutOfRangeErrors(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let a = [1, 2]")
	err := runErr(t, env, "a[5]")
	assert.Error(t, err)
}

func TestLambdaClosureCapturesValueAtConstruction(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let n = 10")
	run(t, env, "let addN = (x) => { x + n }")
	run(t, env, "n = 999")
	v := run(t, env, "addN(5)")
	assert.Equal(t, 15.0, v.AsNumber(), "captured n must be frozen at lambda construction, not read live")
}

func TestLambdaRecursionThroughOwnName(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let fact = (n) => { if n <= 1 { 1 } else { n * fact(n - 1) } }")
	v := run(t, env, "fact(5)")
	assert.Equal(t, 120.0, v.AsNumber())
}

func TestAssignToCapturedOuterNameFromLambdaErrors(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let counter = 0")
	err := runErr(t, env, "let bump = (x) => { counter = counter + x }")
	assert.Error(t, err)
}

func TestApplyArrayOfFunctionsBroadcasts(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let double = (x) => { x * 2 }")
	run(t, env, "let square = (x) => { x * x }")
	v := run(t, env, "[double, square](3)")
	arr := v.AsArray()
	require.Len(t, arr, 2)
	assert.Equal(t, 6.0, arr[0].AsNumber())
	assert.Equal(t, 9.0, arr[1].AsNumber())
}

func TestParamCountMismatchErrors(t *testing.T) {
	env := value.NewEnvironment(nil)
	run(t, env, "let f = (x, y) => { x + y }")
	err := runErr(t, env, "f(1)")
	assert.Error(t, err)
}

func TestStrictEqualityNoCrossType(t *testing.T) {
	env := value.NewEnvironment(nil)
	v := run(t, env, "1 == true")
	assert.False(t, v.AsBoolean())
}

func TestUnaryRequiresExactType(t *testing.T) {
	env := value.NewEnvironment(nil)
	err := runErr(t, env, "!1")
	assert.Error(t, err)
}
