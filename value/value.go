/*
File    : numen/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines numen's runtime universe: Number, Boolean, Array
// and Function. Every value reports its variant through Kind and renders
// itself through ToString, so callers can both introspect and display a
// value uniformly, but the value set itself is closed and small by design
// (spec Non-goal: no strings, no mutable structures).
package value

import (
	"fmt"
	"strings"
)

// Kind discriminates the tagged Value union.
type Kind string

const (
	NumberKind   Kind = "number"
	BooleanKind  Kind = "boolean"
	ArrayKind    Kind = "array"
	FunctionKind Kind = "function"
)

// Value is the runtime representation of everything numen can compute.
// Exactly one of the typed accessors below is meaningful for a given Kind;
// callers are expected to switch on Kind (or use the As* helpers) rather
// than read fields directly, since Array and Function hold reference-typed
// payloads interior to the struct.
type Value struct {
	kind Kind
	num  float64
	b    bool
	arr  []Value
	fn   Callable
}

// Callable is the shared capability of numen's two function representations
// — a user-defined lambda and a primitive — namely carrying an optional
// display name. Invocation itself is dispatched by the eval package (which
// alone knows how to run a user-defined function's captured body), so it
// is not part of this interface; see eval.Invoke.
type Callable interface {
	Name() string
}

// Invoker calls fn (which must be a Function value) with args, evaluated
// against env as the calling scope. It is implemented by eval.Invoke and
// threaded into the primitive library so that higher-order builtins like
// map can call back into user code without this package depending on eval.
type Invoker func(env *Environment, fn Value, args []Value) (*Value, error)

func Number(n float64) Value     { return Value{kind: NumberKind, num: n} }
func Boolean(b bool) Value       { return Value{kind: BooleanKind, b: b} }
func Array(elems []Value) Value  { return Value{kind: ArrayKind, arr: elems} }
func Function(fn Callable) Value { return Value{kind: FunctionKind, fn: fn} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNumber() bool   { return v.kind == NumberKind }
func (v Value) IsBoolean() bool  { return v.kind == BooleanKind }
func (v Value) IsArray() bool    { return v.kind == ArrayKind }
func (v Value) IsFunction() bool { return v.kind == FunctionKind }

// AsNumber returns the underlying float64; callers must first check
// IsNumber (or accept the zero value when it is not a Number).
func (v Value) AsNumber() float64 { return v.num }

// AsBoolean returns the underlying bool.
func (v Value) AsBoolean() bool { return v.b }

// AsArray returns the underlying element slice, shared (not copied) with
// any other Value that points at the same array literal evaluation.
func (v Value) AsArray() []Value { return v.arr }

// AsFunction returns the underlying Callable.
func (v Value) AsFunction() Callable { return v.fn }

// Float64 coerces v to a double the way arithmetic call paths in the
// primitive library do: Number passes through, Boolean maps to 0.0/1.0,
// anything else is a type error.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case NumberKind:
		return v.num, nil
	case BooleanKind:
		if v.b {
			return 1.0, nil
		}
		return 0.0, nil
	default:
		return 0, fmt.Errorf("illegal casting: cannot coerce %s to number", v.kind)
	}
}

// Bool coerces v to a boolean the way Cond evaluation does: Boolean passes
// through, Number is true iff nonzero, anything else is a type error.
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case BooleanKind:
		return v.b, nil
	case NumberKind:
		return v.num != 0, nil
	default:
		return false, fmt.Errorf("illegal casting: cannot coerce %s to boolean", v.kind)
	}
}

// Equal implements numen's strict, same-variant-only equality: two values
// compare equal only if their concrete Kind matches and their payloads do.
// Functions are never equal to anything, including themselves, since
// Callable carries no identity or equality contract.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NumberKind:
		return v.num == other.num
	case BooleanKind:
		return v.b == other.b
	case ArrayKind:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToString renders v the way a REPL host displays a value: natural
// notation for Number/Boolean, "lambda" for any Function, and a
// recursively formatted, comma-space separated list for Array.
func (v Value) ToString() string {
	switch v.kind {
	case NumberKind:
		return formatNumber(v.num)
	case BooleanKind:
		return fmt.Sprintf("%t", v.b)
	case FunctionKind:
		return "lambda"
	case ArrayKind:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.ToString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}

func formatNumber(n float64) string {
	s := fmt.Sprintf("%g", n)
	return s
}
