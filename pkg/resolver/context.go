package resolver

import (
	"github.com/go-scals/scals/pkg/action"
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/state"
	"github.com/go-scals/scals/pkg/style"
	"github.com/go-scals/scals/pkg/track"
)

// binding is one iteration-variable frame: a forEach or data-driven section
// binds its item and index names for the subtree it expands.
type binding struct {
	name  string
	value state.Value
}

// Context is the per-subtree resolution context. The document, store, caches
// and tracker are shared by reference across the whole pass; only the
// iteration bindings vary per subtree, so child contexts are cheap.
//
// Context implements expression.Reader: lookups consult the iteration
// bindings innermost-first before falling back to the store, which is what
// lets a nested loop variable shadow an outer one of the same name. Store
// reads are recorded against the current tracking scope.
type Context struct {
	r        *Resolver
	tracker  *track.Tracker
	bindings []binding
}

// child derives a context with extra iteration bindings appended (and thus
// innermost).
func (c *Context) child(frames ...binding) *Context {
	next := make([]binding, 0, len(c.bindings)+len(frames))
	next = append(next, c.bindings...)
	next = append(next, frames...)
	return &Context{r: c.r, tracker: c.tracker, bindings: next}
}

// Lookup implements expression.Reader. The first path component is matched
// against iteration bindings innermost-first; on a hit the remaining
// components are walked inside the bound value and nothing is recorded (the
// dependency is on the source array, recorded when it was fetched). Otherwise
// the lookup goes to the store and the path is recorded.
func (c *Context) Lookup(path string) (state.Value, bool) {
	comps := state.ParsePath(path)
	if len(comps) > 0 && !comps[0].IsIndex {
		for i := len(c.bindings) - 1; i >= 0; i-- {
			if c.bindings[i].name == comps[0].Key {
				return state.GetPath(comps[1:].String(), c.bindings[i].value)
			}
		}
	}
	if c.tracker != nil {
		c.tracker.Record(path)
	}
	return c.r.store.Get(path)
}

// Snapshot implements expression.Snapshotter for the engine fallback: the
// store's root object overlaid with the visible iteration bindings.
func (c *Context) Snapshot() map[string]any {
	root, _ := c.r.store.Root().Interface().(map[string]any)
	env := make(map[string]any, len(root)+len(c.bindings))
	for k, v := range root {
		env[k] = v
	}
	for _, b := range c.bindings {
		env[b.name] = b.value.Interface()
	}
	return env
}

// Style flattens the named style through the session's style resolver.
func (c *Context) Style(name string) style.Resolved {
	return c.r.styles.Resolve(name)
}

// Eval evaluates an expression against this context's visible state.
func (c *Context) Eval(expr string) state.Value {
	return c.r.eval.Evaluate(expr, c)
}

// Interpolate resolves the "${...}" spans of a template against this
// context's visible state.
func (c *Context) Interpolate(template string) string {
	return c.r.eval.Interpolate(template, c)
}

// Content resolves a leaf component's content through the priority chain:
// inline data reference first, then named data source, then static literal.
// Each step degrades softly; a fully absent chain is the empty string.
func (c *Context) Content(n *document.Node) string {
	if n.Data != "" {
		v, _ := c.Lookup(n.Data)
		return v.Display()
	}
	if n.DataSource != "" {
		ds, ok := c.r.doc.DataSources[n.DataSource]
		if !ok {
			return ""
		}
		switch ds.Type {
		case document.DataStatic:
			return ds.Value.Display()
		case document.DataBinding:
			v, _ := c.Lookup(ds.Path)
			return v.Display()
		case document.DataTemplate:
			return c.Interpolate(ds.Template)
		default:
			return ""
		}
	}
	if n.Text != "" {
		return c.Interpolate(n.Text)
	}
	return ""
}

// Actions translates a component's action references. A reference to a
// missing document-level action is dropped; everything else resolves
// structurally.
func (c *Context) Actions(n *document.Node) map[string]action.Definition {
	if len(n.Actions) == 0 {
		return nil
	}
	out := make(map[string]action.Definition, len(n.Actions))
	for trigger, ref := range n.Actions {
		switch {
		case ref.Name != "":
			a, ok := c.r.doc.Actions[ref.Name]
			if !ok {
				continue
			}
			def := action.Resolve(a)
			def.Name = ref.Name
			out[trigger] = def
		case ref.Inline != nil:
			out[trigger] = action.Resolve(*ref.Inline)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Props resolves a component's extra attributes: string values carrying
// template spans are interpolated, everything else passes through.
func (c *Context) Props(n *document.Node) map[string]state.Value {
	if len(n.Props) == 0 {
		return nil
	}
	out := make(map[string]state.Value, len(n.Props))
	for key, v := range n.Props {
		if s, ok := v.Str(); ok && containsSpan(s) {
			out[key] = state.String(c.Interpolate(s))
			continue
		}
		out[key] = v
	}
	return out
}

// BindingPath canonicalizes a component's two-way binding keypath.
func (c *Context) BindingPath(n *document.Node) string {
	if n.Bind == "" {
		return ""
	}
	return state.ParsePath(n.Bind).String()
}

// beginScope opens a tracking scope for a node, capturing the visible
// iteration bindings as the scope's local-state snapshot.
func (c *Context) beginScope() track.NodeID {
	if c.tracker == nil {
		return track.NoNode
	}
	id := c.tracker.Begin()
	if len(c.bindings) > 0 {
		snap := make(map[string]state.Value, len(c.bindings))
		for _, b := range c.bindings {
			snap[b.name] = b.value
		}
		c.tracker.CaptureSnapshot(state.Object(snap))
	}
	return id
}

func (c *Context) endScope() {
	if c.tracker != nil {
		c.tracker.End()
	}
}

func containsSpan(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '$' && s[i+1] == '{' {
			return true
		}
	}
	return false
}
