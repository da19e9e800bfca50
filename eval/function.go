/*
File    : numen/eval/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/numen/ast"
	"github.com/akashmaji946/numen/value"
)

// UserFunction is a lambda after free-variable capture: its Body already
// holds Literal nodes for every name that was resolvable in the defining
// environment, so the only environment it needs again at call time is the
// caller's — used to resolve whatever Var nodes capture deliberately left
// behind (the lambda's own name, forward references).
type UserFunction struct {
	FnName string
	Params []string
	Body   ast.Node
}

func (f *UserFunction) Name() string { return f.FnName }

// Invoke is the single dispatch point for calling a Function value. It
// implements value.Invoker so the primitives package can call back into
// user code (e.g. map's callback) without importing eval itself.
func Invoke(env *value.Environment, fn value.Value, args []value.Value) (*value.Value, error) {
	if !fn.IsFunction() {
		return nil, fmt.Errorf("value of kind %s is not callable", fn.Kind())
	}
	switch callee := fn.AsFunction().(type) {
	case *UserFunction:
		if len(args) != len(callee.Params) {
			return nil, fmt.Errorf("function expects %d argument(s), got %d", len(callee.Params), len(args))
		}
		callEnv := value.NewEnvironment(env)
		for i, p := range callee.Params {
			callEnv.Define(p, args[i])
		}
		return Eval(callee.Body, callEnv)
	case *value.Primitive:
		return callee.Call(Invoke, env, args)
	default:
		return nil, fmt.Errorf("unsupported callable type %T", callee)
	}
}
