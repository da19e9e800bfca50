/*
File    : numen/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks an ast.Node against a value.Environment. It owns
// UserFunction and the capture rewrite because both need to construct and
// recurse into the evaluator itself; primitives, which only need to call
// back into user code, do so through the value.Invoker this package
// exposes as Invoke, avoiding an import cycle with the primitives package.
package eval

import (
	"fmt"
	"math"

	"github.com/akashmaji946/numen/ast"
	"github.com/akashmaji946/numen/lexer"
	"github.com/akashmaji946/numen/value"
)

// Eval recursively interprets node against env. A nil *value.Value with a
// nil error means the node produced no value (Empty, Void, or a Block that
// fell off the end without a value-producing statement).
func Eval(node ast.Node, env *value.Environment) (*value.Value, error) {
	switch n := node.(type) {
	case *ast.Empty:
		return nil, nil

	case *ast.Void:
		if _, err := Eval(n.Inner, env); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.Literal:
		v := n.Value
		return &v, nil

	case *ast.Var:
		v, ok := env.Lookup(n.Name, false)
		if !ok {
			return nil, fmt.Errorf("variable not defined: %s", n.Name)
		}
		return &v, nil

	case *ast.Unitary:
		return evalUnitary(n, env)

	case *ast.Binary:
		return evalBinary(n, env)

	case *ast.Array:
		var elems []value.Value
		for _, e := range n.Elements {
			v, err := Eval(e, env)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			elems = append(elems, *v)
		}
		arr := value.Array(elems)
		return &arr, nil

	case *ast.Index:
		return evalIndex(n, env)

	case *ast.Apply:
		return evalApply(n, env)

	case *ast.Assign:
		return evalAssign(n, env)

	case *ast.Lambda:
		return evalLambda(n, env)

	case *ast.Cond:
		return evalCond(n, env)

	case *ast.Block:
		return evalBlock(n, env)

	default:
		return nil, fmt.Errorf("eval: unsupported node type %T", node)
	}
}

func evalUnitary(n *ast.Unitary, env *value.Environment) (*value.Value, error) {
	v, err := Eval(n.Operand, env)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("operator %s requires its operand to produce a value", n.Op)
	}
	switch n.Op {
	case lexer.Add:
		if !v.IsNumber() {
			return nil, fmt.Errorf("unary + requires a number, got %s", v.Kind())
		}
		r := value.Number(v.AsNumber())
		return &r, nil
	case lexer.Sub:
		if !v.IsNumber() {
			return nil, fmt.Errorf("unary - requires a number, got %s", v.Kind())
		}
		r := value.Number(-v.AsNumber())
		return &r, nil
	case lexer.Not:
		if !v.IsBoolean() {
			return nil, fmt.Errorf("unary ! requires a boolean, got %s", v.Kind())
		}
		r := value.Boolean(!v.AsBoolean())
		return &r, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", n.Op)
	}
}

func evalBinary(n *ast.Binary, env *value.Environment) (*value.Value, error) {
	l, err := Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	r, err := Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	if l == nil || r == nil {
		return nil, fmt.Errorf("operator %s requires both operands to produce a value", n.Op)
	}
	switch n.Op {
	case lexer.Add, lexer.Sub, lexer.Mul, lexer.Div, lexer.Pow, lexer.Mod:
		return evalArith(n.Op, *l, *r)
	case lexer.Lt, lexer.Gt, lexer.Lte, lexer.Gte:
		return evalCompare(n.Op, *l, *r)
	case lexer.Eq:
		res := value.Boolean(l.Equal(*r))
		return &res, nil
	case lexer.Neq:
		res := value.Boolean(!l.Equal(*r))
		return &res, nil
	case lexer.And, lexer.Or:
		return evalLogic(n.Op, *l, *r)
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", n.Op)
	}
}

func evalArith(op lexer.Op, l, r value.Value) (*value.Value, error) {
	if !l.IsNumber() || !r.IsNumber() {
		return nil, fmt.Errorf("operator %s requires two numbers, got %s and %s", op, l.Kind(), r.Kind())
	}
	a, b := l.AsNumber(), r.AsNumber()
	var res float64
	switch op {
	case lexer.Add:
		res = a + b
	case lexer.Sub:
		res = a - b
	case lexer.Mul:
		res = a * b
	case lexer.Div:
		res = a / b
	case lexer.Pow:
		res = math.Pow(a, b)
	case lexer.Mod:
		res = math.Mod(a, b)
	}
	v := value.Number(res)
	return &v, nil
}

func evalCompare(op lexer.Op, l, r value.Value) (*value.Value, error) {
	if !l.IsNumber() || !r.IsNumber() {
		return nil, fmt.Errorf("operator %s requires two numbers, got %s and %s", op, l.Kind(), r.Kind())
	}
	a, b := l.AsNumber(), r.AsNumber()
	var res bool
	switch op {
	case lexer.Lt:
		res = a < b
	case lexer.Gt:
		res = a > b
	case lexer.Lte:
		res = a <= b
	case lexer.Gte:
		res = a >= b
	}
	v := value.Boolean(res)
	return &v, nil
}

func evalLogic(op lexer.Op, l, r value.Value) (*value.Value, error) {
	if !l.IsBoolean() || !r.IsBoolean() {
		return nil, fmt.Errorf("operator %s requires two booleans, got %s and %s", op, l.Kind(), r.Kind())
	}
	a, b := l.AsBoolean(), r.AsBoolean()
	var res bool
	switch op {
	case lexer.And:
		res = a && b
	case lexer.Or:
		res = a || b
	}
	v := value.Boolean(res)
	return &v, nil
}

func evalIndex(n *ast.Index, env *value.Environment) (*value.Value, error) {
	target, err := Eval(n.Target, env)
	if err != nil {
		return nil, err
	}
	idx, err := Eval(n.Index, env)
	if err != nil {
		return nil, err
	}
	if target == nil || idx == nil {
		return nil, fmt.Errorf("index requires both target and index to produce a value")
	}
	return indexValue(*target, *idx)
}

// indexValue implements both plain indexing and the gather form: an Array
// index recursively indexes target with each of its own elements,
// supporting arr[0, 2, 4] as a single gather and arr[1][3] as two
// successive indexes.
func indexValue(target, idx value.Value) (*value.Value, error) {
	switch idx.Kind() {
	case value.NumberKind:
		if !target.IsArray() {
			return nil, fmt.Errorf("cannot index a %s with a number", target.Kind())
		}
		i := int(math.Round(idx.AsNumber()))
		arr := target.AsArray()
		if i < 0 || i >= len(arr) {
			return nil, fmt.Errorf("index %d out of range (length %d)", i, len(arr))
		}
		v := arr[i]
		return &v, nil

	case value.ArrayKind:
		out := make([]value.Value, 0, len(idx.AsArray()))
		for _, sub := range idx.AsArray() {
			v, err := indexValue(target, sub)
			if err != nil {
				return nil, err
			}
			out = append(out, *v)
		}
		res := value.Array(out)
		return &res, nil

	default:
		return nil, fmt.Errorf("index must be a number or an array of indices, got %s", idx.Kind())
	}
}

func evalApply(n *ast.Apply, env *value.Environment) (*value.Value, error) {
	calleeVal, err := Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	if calleeVal == nil {
		return nil, fmt.Errorf("call target produced no value")
	}
	switch calleeVal.Kind() {
	case value.FunctionKind:
		args, err := evalArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		return Invoke(env, *calleeVal, args)

	case value.ArrayKind:
		var results []value.Value
		for _, elem := range calleeVal.AsArray() {
			if !elem.IsFunction() {
				continue
			}
			args, err := evalArgs(n.Args, env)
			if err != nil {
				return nil, err
			}
			res, err := Invoke(env, elem, args)
			if err != nil {
				return nil, err
			}
			if res != nil {
				results = append(results, *res)
			}
		}
		arr := value.Array(results)
		return &arr, nil

	default:
		return nil, fmt.Errorf("value of kind %s is not callable", calleeVal.Kind())
	}
}

func evalArgs(nodes []ast.Node, env *value.Environment) ([]value.Value, error) {
	args := make([]value.Value, 0, len(nodes))
	for _, a := range nodes {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("argument produced no value")
		}
		args = append(args, *v)
	}
	return args, nil
}

func evalAssign(n *ast.Assign, env *value.Environment) (*value.Value, error) {
	v, err := Eval(n.Body, env)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("assignment requires a value")
	}
	if n.Define {
		if _, exists := env.Lookup(n.Name, true); exists {
			return nil, fmt.Errorf("redefine variable: %s", n.Name)
		}
		env.Define(n.Name, *v)
		return v, nil
	}
	if _, exists := env.Lookup(n.Name, false); !exists {
		return nil, fmt.Errorf("undefined variable: %s", n.Name)
	}
	env.Assign(n.Name, *v)
	return v, nil
}

func evalLambda(n *ast.Lambda, env *value.Environment) (*value.Value, error) {
	bound := make(map[string]bool, len(n.Params))
	for _, p := range n.Params {
		bound[p] = true
	}
	body, err := rewrite(n.Body, bound, env)
	if err != nil {
		return nil, err
	}
	fn := &UserFunction{Params: append([]string(nil), n.Params...), Body: body}
	v := value.Function(fn)
	return &v, nil
}

func evalCond(n *ast.Cond, env *value.Environment) (*value.Value, error) {
	ok, err := evalCondValue(n.If.Cond, env)
	if err != nil {
		return nil, err
	}
	if ok {
		return Eval(n.If.Body, env)
	}
	for _, ei := range n.ElseIfs {
		ok, err := evalCondValue(ei.Cond, env)
		if err != nil {
			return nil, err
		}
		if ok {
			return Eval(ei.Body, env)
		}
	}
	if n.Else != nil {
		return Eval(n.Else, env)
	}
	return nil, nil
}

func evalCondValue(node ast.Node, env *value.Environment) (bool, error) {
	v, err := Eval(node, env)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, fmt.Errorf("condition must produce a value")
	}
	return v.Bool()
}

// evalBlock runs stmts against a fresh child scope of env, which is
// discarded once the block returns: bindings introduced inside are never
// visible to the caller, though assignments to outer-scoped names reach
// through to where they're actually bound.
func evalBlock(n *ast.Block, env *value.Environment) (*value.Value, error) {
	child := value.NewEnvironment(env)
	for _, stmt := range n.Statements {
		v, err := Eval(stmt, child)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}
