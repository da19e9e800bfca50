/*
File    : numen/eval/capture.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/numen/ast"
	"github.com/akashmaji946/numen/value"
)

// rewrite implements lambda free-variable capture: it walks body with the
// set of names bound by the lambda's own parameters (extended by any
// nested lambda's parameters as the walk descends), replacing every Var
// that resolves in env but is not locally bound with a Literal holding the
// captured value. Names that resolve in neither bound nor env are left as
// Var, to be looked up lazily against the caller's environment at call
// time — this is what lets a lambda call its own name recursively.
func rewrite(node ast.Node, bound map[string]bool, env *value.Environment) (ast.Node, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n, nil

	case *ast.Var:
		if bound[n.Name] {
			return n, nil
		}
		if v, ok := env.Lookup(n.Name, false); ok {
			return &ast.Literal{Value: v}, nil
		}
		return n, nil

	case *ast.Unitary:
		operand, err := rewrite(n.Operand, bound, env)
		if err != nil {
			return nil, err
		}
		return &ast.Unitary{Op: n.Op, Operand: operand}, nil

	case *ast.Binary:
		left, err := rewrite(n.Left, bound, env)
		if err != nil {
			return nil, err
		}
		right, err := rewrite(n.Right, bound, env)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: n.Op, Left: left, Right: right}, nil

	case *ast.Index:
		target, err := rewrite(n.Target, bound, env)
		if err != nil {
			return nil, err
		}
		index, err := rewrite(n.Index, bound, env)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Target: target, Index: index}, nil

	case *ast.Apply:
		// The callee subtree is deliberately left untouched: rewriting it
		// would bake in a stale Literal for the lambda's own name the
		// first time it appears as a call target, breaking recursion.
		args := make([]ast.Node, len(n.Args))
		for i, a := range n.Args {
			rw, err := rewrite(a, bound, env)
			if err != nil {
				return nil, err
			}
			args[i] = rw
		}
		return &ast.Apply{Callee: n.Callee, Args: args}, nil

	case *ast.Array:
		elems := make([]ast.Node, len(n.Elements))
		for i, e := range n.Elements {
			rw, err := rewrite(e, bound, env)
			if err != nil {
				return nil, err
			}
			elems[i] = rw
		}
		return &ast.Array{Elements: elems}, nil

	case *ast.Lambda:
		nested := extendBound(bound, n.Params)
		body, err := rewrite(n.Body, nested, env)
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Params: n.Params, Body: body}, nil

	case *ast.Block:
		stmts := make([]ast.Node, len(n.Statements))
		for i, s := range n.Statements {
			rw, err := rewrite(s, bound, env)
			if err != nil {
				return nil, err
			}
			stmts[i] = rw
		}
		return &ast.Block{Statements: stmts}, nil

	case *ast.Cond:
		ifPair, err := rewriteCondPair(n.If, bound, env)
		if err != nil {
			return nil, err
		}
		elseIfs := make([]ast.CondPair, len(n.ElseIfs))
		for i, ei := range n.ElseIfs {
			rw, err := rewriteCondPair(ei, bound, env)
			if err != nil {
				return nil, err
			}
			elseIfs[i] = rw
		}
		var elseBody ast.Node
		if n.Else != nil {
			elseBody, err = rewrite(n.Else, bound, env)
			if err != nil {
				return nil, err
			}
		}
		return &ast.Cond{If: ifPair, ElseIfs: elseIfs, Else: elseBody}, nil

	case *ast.Assign:
		if !bound[n.Name] {
			if _, ok := env.Lookup(n.Name, false); ok {
				return nil, fmt.Errorf("capture variable are const, can't re-assign/re-definition: %s", n.Name)
			}
		}
		body, err := rewrite(n.Body, bound, env)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: n.Name, Body: body, Define: n.Define}, nil

	case *ast.Void:
		inner, err := rewrite(n.Inner, bound, env)
		if err != nil {
			return nil, err
		}
		return &ast.Void{Inner: inner}, nil

	case *ast.Empty:
		return n, nil

	default:
		return nil, fmt.Errorf("capture: unsupported node type %T", node)
	}
}

func rewriteCondPair(p ast.CondPair, bound map[string]bool, env *value.Environment) (ast.CondPair, error) {
	cond, err := rewrite(p.Cond, bound, env)
	if err != nil {
		return ast.CondPair{}, err
	}
	body, err := rewrite(p.Body, bound, env)
	if err != nil {
		return ast.CondPair{}, err
	}
	return ast.CondPair{Cond: cond, Body: body}, nil
}

func extendBound(bound map[string]bool, names []string) map[string]bool {
	next := make(map[string]bool, len(bound)+len(names))
	for k := range bound {
		next[k] = true
	}
	for _, n := range names {
		next[n] = true
	}
	return next
}
