package exprengine

import (
	"testing"

	"github.com/go-scals/scals/pkg/state"
)

func TestEngine_Evaluate(t *testing.T) {
	e := New()
	env := map[string]any{
		"items": []any{"a", "b", "c"},
		"user":  map[string]any{"active": true},
	}

	got, ok := e.Evaluate("len(items) > 2 && user.active", env)
	if !ok {
		t.Fatal("expected evaluation to succeed")
	}
	if !got.Equal(state.Bool(true)) {
		t.Errorf("got %v, want true", got)
	}
}

func TestEngine_UndefinedVariablesTolerated(t *testing.T) {
	e := New()
	if _, ok := e.Evaluate("missing == nil", map[string]any{}); !ok {
		t.Error("undefined variables should not fail compilation")
	}
}

func TestEngine_ErrorsReportFailure(t *testing.T) {
	e := New()
	if _, ok := e.Evaluate("1 +", nil); ok {
		t.Error("syntax error must report failure, not succeed")
	}
}

func TestEngine_CachesPrograms(t *testing.T) {
	e := New()
	e.Evaluate("1 + 2", nil)
	if len(e.programs) != 1 {
		t.Fatalf("program cache size = %d, want 1", len(e.programs))
	}
	e.Evaluate("1 + 2", nil)
	if len(e.programs) != 1 {
		t.Errorf("repeat evaluation grew the cache to %d", len(e.programs))
	}
}
