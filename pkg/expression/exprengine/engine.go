// Package exprengine adapts github.com/expr-lang/expr as a fallback
// expression engine. Documents mostly stay inside the built-in grammar; this
// engine picks up the occasional richer expression ("len(items) > 2 &&
// user.active") without widening the hand-rolled evaluator.
package exprengine

import (
	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/go-scals/scals/pkg/state"
)

// Engine compiles and runs expressions with expr-lang, caching compiled
// programs per source string. The cache is scoped to one Engine instance,
// which is scoped to one resolver session.
type Engine struct {
	programs map[string]*vm.Program
}

// New creates an Engine with an empty program cache.
func New() *Engine {
	return &Engine{programs: make(map[string]*vm.Program)}
}

// Evaluate implements expression.Engine. Compile or runtime errors report
// failure instead of propagating; the evaluator degrades to null, preserving
// the never-throws contract of the expression layer.
func (e *Engine) Evaluate(src string, env map[string]any) (state.Value, bool) {
	if src == "" {
		return state.Null(), false
	}
	if env == nil {
		env = map[string]any{}
	}
	program, ok := e.programs[src]
	if !ok {
		compiled, err := exprlang.Compile(src, exprlang.Env(map[string]any{}), exprlang.AllowUndefinedVariables())
		if err != nil {
			return state.Null(), false
		}
		program = compiled
		e.programs[src] = program
	}
	result, err := exprlang.Run(program, env)
	if err != nil {
		return state.Null(), false
	}
	return state.FromAny(result), true
}
