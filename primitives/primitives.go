/*
File    : numen/primitives/primitives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package primitives builds numen's root environment: numeric constants,
// one- and two-argument math functions, and the higher-order helpers
// (map, length, range, linespace) that round out the library. It depends
// only on value, taking a value.Invoker as a parameter so that map can
// call back into user-defined functions without importing eval.
package primitives

import (
	"fmt"
	"math"

	"github.com/akashmaji946/numen/value"
)

// NewRootEnvironment returns a fresh global scope pre-populated with every
// primitive, ready to be the parent of a program's first statement.
func NewRootEnvironment() *value.Environment {
	env := value.NewEnvironment(nil)

	env.Define("pi", value.Number(math.Pi))
	env.Define("e", value.Number(math.E))
	env.Define("nan", value.Number(math.NaN()))
	env.Define("inf", value.Number(math.Inf(1)))

	for name, fn := range unaryMathFuncs() {
		env.Define(name, value.Function(unaryPrimitive(name, fn)))
	}

	env.Define("log", value.Function(binaryPrimitive("log", func(x, base float64) float64 {
		return math.Log(x) / math.Log(base)
	})))
	env.Define("atan2", value.Function(binaryPrimitive("atan2", math.Atan2)))

	env.Define("map", value.Function(mapPrimitive()))
	env.Define("length", value.Function(lengthPrimitive()))
	env.Define("range", value.Function(rangePrimitive()))
	env.Define("linespace", value.Function(linespacePrimitive()))

	return env
}

func unaryMathFuncs() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		"abs":   math.Abs,
		"sqrt":  math.Sqrt,
		"ln":    math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"round": math.Round,
		"floor": math.Floor,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
	}
}

func unaryPrimitive(name string, fn func(float64) float64) *value.Primitive {
	return &value.Primitive{
		PName: name,
		Fn: func(_ value.Invoker, _ *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
			}
			x, err := args[0].Float64()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			v := value.Number(fn(x))
			return &v, nil
		},
	}
}

func binaryPrimitive(name string, fn func(a, b float64) float64) *value.Primitive {
	return &value.Primitive{
		PName: name,
		Fn: func(_ value.Invoker, _ *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
			}
			a, err := args[0].Float64()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			b, err := args[1].Float64()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			v := value.Number(fn(a, b))
			return &v, nil
		},
	}
}

// mapPrimitive calls fn(e) for every element of its array argument,
// skipping elements whose call produces no value, and collects the rest
// into a new Array.
func mapPrimitive() *value.Primitive {
	return &value.Primitive{
		PName: "map",
		Fn: func(invoke value.Invoker, env *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("map expects 2 arguments (array, fn), got %d", len(args))
			}
			arr, fn := args[0], args[1]
			if !arr.IsArray() {
				return nil, fmt.Errorf("map: first argument must be an array, got %s", arr.Kind())
			}
			if !fn.IsFunction() {
				return nil, fmt.Errorf("map: second argument must be a function, got %s", fn.Kind())
			}
			var out []value.Value
			for _, elem := range arr.AsArray() {
				res, err := invoke(env, fn, []value.Value{elem})
				if err != nil {
					return nil, err
				}
				if res == nil {
					continue
				}
				out = append(out, *res)
			}
			v := value.Array(out)
			return &v, nil
		},
	}
}

func lengthPrimitive() *value.Primitive {
	return &value.Primitive{
		PName: "length",
		Fn: func(_ value.Invoker, _ *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("length expects 1 argument, got %d", len(args))
			}
			if !args[0].IsArray() {
				return nil, fmt.Errorf("length: argument must be an array, got %s", args[0].Kind())
			}
			v := value.Number(float64(len(args[0].AsArray())))
			return &v, nil
		},
	}
}

// rangePrimitive returns the integers i0, i0+1, ..., i1-1 as doubles,
// empty when i1 <= i0.
func rangePrimitive() *value.Primitive {
	return &value.Primitive{
		PName: "range",
		Fn: func(_ value.Invoker, _ *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("range expects 2 arguments, got %d", len(args))
			}
			f0, err := args[0].Float64()
			if err != nil {
				return nil, fmt.Errorf("range: %w", err)
			}
			f1, err := args[1].Float64()
			if err != nil {
				return nil, fmt.Errorf("range: %w", err)
			}
			i0 := int64(math.Round(f0))
			i1 := int64(math.Round(f1))
			var out []value.Value
			for i := i0; i < i1; i++ {
				out = append(out, value.Number(float64(i)))
			}
			v := value.Array(out)
			return &v, nil
		},
	}
}

// linespacePrimitive returns n evenly spaced values between t0 and t1
// inclusive, computed as (1-v)*t0 + v*t1 for v = i/(n-1).
func linespacePrimitive() *value.Primitive {
	return &value.Primitive{
		PName: "linespace",
		Fn: func(_ value.Invoker, _ *value.Environment, args []value.Value) (*value.Value, error) {
			if len(args) != 3 {
				return nil, fmt.Errorf("linespace expects 3 arguments (t0, t1, n), got %d", len(args))
			}
			t0, err := args[0].Float64()
			if err != nil {
				return nil, fmt.Errorf("linespace: %w", err)
			}
			t1, err := args[1].Float64()
			if err != nil {
				return nil, fmt.Errorf("linespace: %w", err)
			}
			nf, err := args[2].Float64()
			if err != nil {
				return nil, fmt.Errorf("linespace: %w", err)
			}
			n := int(math.Round(nf))
			if n < 2 {
				return nil, fmt.Errorf("linespace: n must be >= 2, got %d", n)
			}
			out := make([]value.Value, n)
			for i := 0; i < n; i++ {
				v := float64(i) / float64(n-1)
				out[i] = value.Number((1-v)*t0 + v*t1)
			}
			res := value.Array(out)
			return &res, nil
		},
	}
}
