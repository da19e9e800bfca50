/*
File    : numen/value/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "fmt"

// Primitive wraps a library-provided Go function as a numen Callable. It
// is built by the primitives package and invoked by eval.Invoke, which
// supplies the Invoker so primitives like map can call user functions
// without importing eval themselves.
type Primitive struct {
	PName string
	Fn    func(invoke Invoker, env *Environment, args []Value) (*Value, error)
}

func (p *Primitive) Name() string { return p.PName }

// Call runs the primitive directly; used by eval.Invoke's dispatch and
// also usable on its own by tests that don't need the Invoker threaded
// through (pass a stub that errors if actually called).
func (p *Primitive) Call(invoke Invoker, env *Environment, args []Value) (*Value, error) {
	return p.Fn(invoke, env, args)
}

func (p *Primitive) String() string { return fmt.Sprintf("primitive(%s)", p.PName) }
