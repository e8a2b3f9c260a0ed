package action

import (
	"testing"

	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/state"
)

func TestResolve_FieldCopy(t *testing.T) {
	def := Resolve(document.Action{
		Type:  "setState",
		Path:  "count",
		Value: state.Int(6),
	})
	if def.Type != "setState" || def.Path != "count" {
		t.Errorf("def = %+v", def)
	}
	if !def.Value.Equal(state.Int(6)) {
		t.Errorf("value = %v", def.Value)
	}
}

func TestResolve_SequencePreservesOrder(t *testing.T) {
	def := Resolve(document.Action{
		Type: "sequence",
		Steps: []document.Action{
			{Type: "setState", Path: "a", Value: state.Int(1)},
			{Type: "navigate", Destination: "details"},
			{Type: "sequence", Steps: []document.Action{
				{Type: "alert", Message: "done"},
			}},
		},
	})
	if len(def.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(def.Steps))
	}
	if def.Steps[0].Path != "a" || def.Steps[1].Destination != "details" {
		t.Errorf("step order lost: %+v", def.Steps)
	}
	if len(def.Steps[2].Steps) != 1 || def.Steps[2].Steps[0].Message != "done" {
		t.Errorf("nested sequence lost: %+v", def.Steps[2])
	}
}

func TestResolveAll_PreservesKeysAndStampsNames(t *testing.T) {
	out := ResolveAll(map[string]document.Action{
		"bump":   {Type: "setState", Path: "count", Value: state.Int(1)},
		"goHome": {Type: "navigate", Destination: "home"},
	})
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out["bump"].Name != "bump" || out["goHome"].Name != "goHome" {
		t.Errorf("names not stamped: %+v", out)
	}
}

func TestResolveAll_EmptyInput(t *testing.T) {
	if out := ResolveAll(nil); out == nil || len(out) != 0 {
		t.Errorf("nil input should yield empty map, got %v", out)
	}
}
