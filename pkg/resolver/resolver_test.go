package resolver

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-scals/scals/pkg/document"
	scalserrors "github.com/go-scals/scals/pkg/errors"
	"github.com/go-scals/scals/pkg/ir"
	"github.com/go-scals/scals/pkg/state"
)

func fltp(f float64) *float64 { return &f }

func resolveDoc(t *testing.T, doc *document.Document, opts ...Option) *Result {
	t.Helper()
	result, err := New(doc, state.NewStore(), opts...).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return result
}

func TestResolve_StackWithTemplateText(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{
			"user":  state.Object(map[string]state.Value{"name": state.String("Jane")}),
			"count": state.Int(5),
		}),
		DataSources: map[string]document.DataSource{
			"greeting": {Type: document.DataTemplate, Template: "Hello, ${user.name}! Count: ${count}"},
		},
		Root: &document.Node{
			Kind: document.KindStack,
			Axis: "vertical",
			Children: []*document.Node{
				{Kind: "text", DataSource: "greeting"},
				{Kind: document.KindSpacer},
			},
		},
	}
	result := resolveDoc(t, doc)

	root := result.Root
	if root.Kind != ir.KindContainer || root.Axis != "vertical" {
		t.Fatalf("root = %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	if got := root.Children[0].Text; got != "Hello, Jane! Count: 5" {
		t.Errorf("text = %q", got)
	}
	if root.Children[1].Kind != ir.KindSpacer {
		t.Errorf("second child = %v", root.Children[1].Kind)
	}
}

func TestResolve_ContentPriorityChain(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{"title": state.String("from state")}),
		DataSources: map[string]document.DataSource{
			"named": {Type: document.DataStatic, Value: state.String("from source")},
		},
		Root: &document.Node{
			Kind: document.KindStack,
			Children: []*document.Node{
				{Kind: "text", Data: "title", DataSource: "named", Text: "literal"},
				{Kind: "text", DataSource: "named", Text: "literal"},
				{Kind: "text", Text: "literal"},
				{Kind: "text"},
				{Kind: "text", Data: "missing.path", Text: "literal"},
			},
		},
	}
	result := resolveDoc(t, doc)

	want := []string{"from state", "from source", "literal", "", ""}
	for i, expected := range want {
		if got := result.Root.Children[i].Text; got != expected {
			t.Errorf("child %d text = %q, want %q", i, got, expected)
		}
	}
}

func TestResolve_StyleFlattenedOntoLeaf(t *testing.T) {
	doc := &document.Document{
		Styles: map[string]document.StyleRecord{
			"base": {CornerRadius: fltp(12), Height: fltp(50)},
			"cta":  {Inherits: "base", CornerRadius: fltp(20)},
		},
		Root: &document.Node{
			Kind: document.KindStack,
			Children: []*document.Node{
				{Kind: "button", Style: "cta", Text: "Go"},
			},
		},
	}
	result := resolveDoc(t, doc)

	got := result.Root.Children[0].Style
	if got.CornerRadius == nil || *got.CornerRadius != 20 {
		t.Errorf("CornerRadius = %v, want 20", got.CornerRadius)
	}
	if got.Height == nil || *got.Height != 50 {
		t.Errorf("Height = %v, want inherited 50", got.Height)
	}
}

func TestResolve_ForEach_IterationBindingsShadowState(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{
			"item":  state.String("outer"),
			"items": state.Array(state.String("a"), state.String("b")),
		}),
		Root: &document.Node{
			Kind:   document.KindForEach,
			Source: "items",
			Children: []*document.Node{
				{Kind: "text", Text: "${item}@${index}"},
			},
		},
	}
	result := resolveDoc(t, doc)

	var texts []string
	for _, child := range result.Root.Children {
		texts = append(texts, child.Text)
	}
	want := []string{"a@0", "b@1"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ForEach_NestedShadowing(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{
			"rows": state.Array(
				state.Object(map[string]state.Value{
					"cells": state.Array(state.String("x"), state.String("y")),
				}),
			),
		}),
		Root: &document.Node{
			Kind:     document.KindForEach,
			Source:   "rows",
			ItemName: "row",
			Children: []*document.Node{
				{
					Kind:   document.KindForEach,
					Source: "row.cells",
					Children: []*document.Node{
						{Kind: "text", Text: "${item}"},
					},
				},
			},
		},
	}
	result := resolveDoc(t, doc)

	inner := result.Root.Children[0]
	if len(inner.Children) != 2 {
		t.Fatalf("inner expansion = %d children, want 2", len(inner.Children))
	}
	if inner.Children[0].Text != "x" || inner.Children[1].Text != "y" {
		t.Errorf("inner texts = %q, %q", inner.Children[0].Text, inner.Children[1].Text)
	}
}

func TestResolve_ForEach_EmptySourceResolvesEmptyView(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{"items": state.Array()}),
		Root: &document.Node{
			Kind:   document.KindForEach,
			Source: "items",
			Children: []*document.Node{
				{Kind: "text", Text: "${item}"},
			},
			Empty: &document.Node{Kind: "text", Text: "Nothing here"},
		},
	}
	result := resolveDoc(t, doc)

	if len(result.Root.Children) != 1 {
		t.Fatalf("children = %d, want the empty view", len(result.Root.Children))
	}
	if got := result.Root.Children[0].Text; got != "Nothing here" {
		t.Errorf("empty view text = %q", got)
	}
}

func TestResolve_ForEach_AbsentSourceWithoutEmptyView(t *testing.T) {
	doc := &document.Document{
		Root: &document.Node{
			Kind:     document.KindForEach,
			Source:   "missing",
			Children: []*document.Node{{Kind: "text", Text: "${item}"}},
		},
	}
	result := resolveDoc(t, doc)

	if result.Root.Kind != ir.KindContainer || len(result.Root.Children) != 0 {
		t.Errorf("absent source should yield an empty container, got %+v", result.Root)
	}
}

func TestResolve_UnknownComponentKindIsHardFailure(t *testing.T) {
	doc := &document.Document{
		Root: &document.Node{
			Kind: document.KindStack,
			Children: []*document.Node{
				{Kind: "text", Text: "fine"},
				{Kind: "hologram", ID: "h1"},
			},
		},
	}
	_, err := New(doc, state.NewStore()).Resolve()
	if err == nil {
		t.Fatal("unknown kind must fail, never silently render")
	}
	var unknown *scalserrors.UnknownComponentError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownComponentError", err)
	}
	if unknown.Kind != "hologram" || unknown.NodeID != "h1" {
		t.Errorf("error detail = %+v", unknown)
	}
}

func TestResolve_CustomComponentRegistration(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register("chart", CustomComponent)

	doc := &document.Document{
		State: state.Object(map[string]state.Value{"metric": state.String("revenue")}),
		Root: &document.Node{
			Kind: "chart",
			Props: map[string]state.Value{
				"series": state.String("${metric}"),
				"bars":   state.Int(12),
			},
		},
	}
	result := resolveDoc(t, doc, WithComponents(reg))

	root := result.Root
	if root.Kind != ir.KindCustom || root.CustomKind != "chart" {
		t.Fatalf("root = %+v", root)
	}
	series, _ := root.Props["series"].Str()
	if series != "revenue" {
		t.Errorf("series prop = %q, want interpolated", series)
	}
	if bars, _ := root.Props["bars"].Int(); bars != 12 {
		t.Errorf("bars prop = %v", root.Props["bars"])
	}
}

func TestResolve_Actions(t *testing.T) {
	doc := &document.Document{
		Actions: map[string]document.Action{
			"bump": {Type: "setState", Path: "count", Value: state.Int(1)},
		},
		Root: &document.Node{
			Kind: document.KindStack,
			Children: []*document.Node{
				{
					Kind: "button",
					Text: "Tap",
					Actions: map[string]document.ActionRef{
						"tap":  {Name: "bump"},
						"long": {Inline: &document.Action{Type: "alert", Message: "held"}},
						"gone": {Name: "no-such-action"},
					},
				},
			},
		},
	}
	result := resolveDoc(t, doc)

	actions := result.Root.Children[0].Actions
	if len(actions) != 2 {
		t.Fatalf("actions = %d, want 2 (missing name dropped)", len(actions))
	}
	if actions["tap"].Name != "bump" || actions["tap"].Path != "count" {
		t.Errorf("tap = %+v", actions["tap"])
	}
	if actions["long"].Message != "held" {
		t.Errorf("long = %+v", actions["long"])
	}
}

func TestResolve_TextFieldBinding(t *testing.T) {
	doc := &document.Document{
		Root: &document.Node{
			Kind: document.KindStack,
			Children: []*document.Node{
				{Kind: "textField", Text: "Email", Bind: "form.email"},
				{Kind: "toggle", Bind: "form.subscribe"},
			},
		},
	}
	result := resolveDoc(t, doc)

	field := result.Root.Children[0]
	if field.Kind != ir.KindTextField || field.Binding != "form.email" {
		t.Errorf("field = %+v", field)
	}
	if field.Text != "Email" {
		t.Errorf("placeholder = %q", field.Text)
	}
	if result.Root.Children[1].Binding != "form.subscribe" {
		t.Errorf("toggle binding = %q", result.Root.Children[1].Binding)
	}
}

func TestResolve_SectionLayout_StaticAndDataDriven(t *testing.T) {
	doc := &document.Document{
		State: state.Object(map[string]state.Value{
			"products": state.Array(
				state.Object(map[string]state.Value{"name": state.String("Widget")}),
				state.Object(map[string]state.Value{"name": state.String("Gadget")}),
			),
		}),
		Root: &document.Node{
			Kind: document.KindSectionLayout,
			Sections: []*document.Section{
				{
					Type:     "list",
					Header:   &document.Node{Kind: "text", Text: "Pinned"},
					Children: []*document.Node{{Kind: "text", Text: "About"}},
				},
				{
					Type:     "grid",
					Source:   "products",
					Template: &document.Node{Kind: "text", Text: "${item.name}"},
				},
			},
		},
	}
	result := resolveDoc(t, doc)

	if len(result.Root.Sections) != 2 {
		t.Fatalf("sections = %d", len(result.Root.Sections))
	}
	static := result.Root.Sections[0]
	if static.Header == nil || static.Header.Text != "Pinned" {
		t.Errorf("header = %+v", static.Header)
	}
	if len(static.Items) != 1 || static.Items[0].Text != "About" {
		t.Errorf("static items = %+v", static.Items)
	}

	grid := result.Root.Sections[1]
	if len(grid.Items) != 2 || grid.Items[0].Text != "Widget" || grid.Items[1].Text != "Gadget" {
		t.Errorf("grid items = %+v", grid.Items)
	}
	if cols, _ := grid.Config["columns"].Int(); cols != 2 {
		t.Errorf("grid columns default = %v", grid.Config["columns"])
	}
}

func TestResolve_SectionLayout_UnknownTypeKeepsRawConfig(t *testing.T) {
	doc := &document.Document{
		Root: &document.Node{
			Kind: document.KindSectionLayout,
			Sections: []*document.Section{
				{
					Type:     "carousel",
					Config:   map[string]state.Value{"loop": state.Bool(true)},
					Children: []*document.Node{{Kind: "text", Text: "one"}},
				},
			},
		},
	}
	result := resolveDoc(t, doc)

	section := result.Root.Sections[0]
	if loop, _ := section.Config["loop"].Bool(); !loop {
		t.Errorf("raw config lost: %+v", section.Config)
	}
	if len(section.Items) != 1 {
		t.Errorf("unknown section type must still resolve children")
	}
}

func TestResolve_SeedsStoreWithMerge(t *testing.T) {
	store := state.NewStore()
	store.Set("count", state.Int(10))
	store.ConsumeDirtyPaths()

	doc := &document.Document{
		State: state.Object(map[string]state.Value{
			"count": state.Int(0),
			"fresh": state.Bool(true),
		}),
		Root: &document.Node{Kind: "text", Text: "${count}"},
	}
	result, err := New(doc, store).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Root.Text != "10" {
		t.Errorf("existing state must win over document defaults, got %q", result.Root.Text)
	}
	if v, ok := store.Get("fresh"); !ok || !v.Truthy() {
		t.Error("new document defaults must still seed")
	}
}
