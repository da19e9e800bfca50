/*
File    : numen/value/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// Environment is kept in this package rather than a separate one because
// Callable/Primitive values close over it (a primitive like map must call
// back into user code, which needs an *Environment) while Environment
// itself stores Values — the two are mutually referential. The teacher's
// own pack shows the same resolution: amoghasbhardwaj-Eloquence keeps
// object.Environment in the object package alongside object.Function for
// exactly this reason.
//
// Environment is a parent-linked symbol table: a name defined in scope S
// shadows any ancestor binding when looked up from S, but assignment walks
// up to the nearest scope that already binds the name.
type Environment struct {
	vars   map[string]Value
	parent *Environment
}

// NewEnvironment creates a scope whose parent is parent (nil for the root
// / global scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), parent: parent}
}

// Lookup resolves name. With currentOnly it only consults this scope's own
// bindings (used by Assign's define-time "already exists here?" check);
// otherwise it walks up the parent chain. The returned Value is a plain
// copy of the stored one — cheap, since Array and Function payloads are
// reference-shared internally.
func (e *Environment) Lookup(name string, currentOnly bool) (Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if !currentOnly && e.parent != nil {
		return e.parent.Lookup(name, false)
	}
	return Value{}, false
}

// Define binds name in the current scope, shadowing any ancestor binding
// of the same name for lookups performed from here downward.
func (e *Environment) Define(name string, v Value) {
	e.vars[name] = v
}

// Assign walks up to the nearest scope that already binds name and
// overwrites it there. If no scope binds it, Assign is a silent no-op and
// reports false — callers are expected to have verified existence first
// (numen's Assign AST node does, raising "undefined variable" itself).
func (e *Environment) Assign(name string, v Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return false
}
