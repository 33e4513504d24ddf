// Package script lets a cost function be supplied as JavaScript at runtime,
// for callers who want to tune demerits without a Go recompile.
package script

import (
	"fmt"
	"math"

	"github.com/dop251/goja"

	"github.com/alex-panda/knuthplass/breaker"
)

// Engine runs a single JavaScript demerit function in the goja runtime it
// was loaded into, reused for every call. It is not safe for concurrent use; callers wanting
// concurrent solves should build one Engine per goroutine.
type Engine struct {
	vm  *goja.Runtime
	fn  goja.Callable
	src string
}

// LoadDemeritFunction compiles source, which must assign a function of the
// form `function(ratio, penalty) { return demerits }` to the global name
// "demerits".
func LoadDemeritFunction(source string) (*Engine, error) {
	vm := goja.New()
	if _, err := vm.RunString(source); err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}

	val := vm.Get("demerits")
	if val == nil || goja.IsUndefined(val) {
		return nil, fmt.Errorf("script: source must define a global function named %q", "demerits")
	}

	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("script: %q is not callable", "demerits")
	}

	return &Engine{vm: vm, fn: fn, src: source}, nil
}

// CostFunc adapts the loaded script into a breaker.Options.CostFunc.
// Runtime errors from the script (a throw, a non-numeric return) fall back
// to breaker.Inf, marking the candidate line maximally undesirable rather
// than panicking the search.
func (e *Engine) CostFunc(ratio, penalty float64) float64 {
	result, err := e.fn(goja.Undefined(), e.vm.ToValue(ratio), e.vm.ToValue(penalty))
	if err != nil {
		return breaker.Inf
	}
	f := result.ToFloat()
	if math.IsNaN(f) {
		return breaker.Inf
	}
	return f
}
