package resolver

import (
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/ir"
	"github.com/go-scals/scals/pkg/state"
)

// DefaultRegistry returns the built-in component kinds. Hosts extend the
// returned registry (or start from NewRegistry) to add custom kinds.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("text", resolveText)
	reg.Register("button", resolveButton)
	reg.Register("textField", resolveTextField)
	reg.Register("toggle", resolveToggle)
	reg.Register("slider", resolveSlider)
	reg.Register("image", resolveImage)
	reg.Register("gradient", resolveGradient)
	reg.Register("divider", resolveDivider)
	return reg
}

func resolveText(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindText,
		Style:   ctx.Style(n.Style),
		Text:    ctx.Content(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

func resolveButton(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindButton,
		Style:   ctx.Style(n.Style),
		Text:    ctx.Content(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

// resolveTextField emits an editable field. Text carries the resolved
// placeholder; Binding is the keypath the renderer's two-way cell edits.
func resolveTextField(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindTextField,
		Style:   ctx.Style(n.Style),
		Text:    ctx.Content(n),
		Binding: ctx.BindingPath(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

func resolveToggle(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindToggle,
		Style:   ctx.Style(n.Style),
		Text:    ctx.Content(n),
		Binding: ctx.BindingPath(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

func resolveSlider(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindSlider,
		Style:   ctx.Style(n.Style),
		Binding: ctx.BindingPath(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

func resolveImage(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:    ir.KindImage,
		Style:   ctx.Style(n.Style),
		Text:    ctx.Content(n),
		Props:   ctx.Props(n),
		Actions: ctx.Actions(n),
	}, nil
}

func resolveGradient(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:  ir.KindGradient,
		Style: ctx.Style(n.Style),
		Props: ctx.Props(n),
	}, nil
}

func resolveDivider(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:  ir.KindDivider,
		Style: ctx.Style(n.Style),
		Props: ctx.Props(n),
	}, nil
}

// CustomComponent is a ready-made ComponentFunc for host-registered kinds:
// it emits a custom IR node preserving the original kind tag, with content,
// props and actions resolved the standard way.
func CustomComponent(ctx *Context, n *document.Node) (*ir.Node, error) {
	return &ir.Node{
		Kind:       ir.KindCustom,
		CustomKind: n.Kind,
		Style:      ctx.Style(n.Style),
		Text:       ctx.Content(n),
		Binding:    ctx.BindingPath(n),
		Props:      ctx.Props(n),
		Actions:    ctx.Actions(n),
	}, nil
}

// DefaultSectionRegistry returns the built-in section layout types.
func DefaultSectionRegistry() *SectionRegistry {
	reg := NewSectionRegistry()
	reg.Register("list", listSectionConfig)
	reg.Register("grid", gridSectionConfig)
	return reg
}

// listSectionConfig passes the configuration through with template strings
// interpolated.
func listSectionConfig(ctx *Context, s *document.Section) map[string]state.Value {
	return resolveConfig(ctx, s.Config)
}

// gridSectionConfig is listSectionConfig plus a default column count.
func gridSectionConfig(ctx *Context, s *document.Section) map[string]state.Value {
	cfg := resolveConfig(ctx, s.Config)
	if cfg == nil {
		cfg = make(map[string]state.Value, 1)
	}
	if _, ok := cfg["columns"]; !ok {
		cfg["columns"] = state.Int(2)
	}
	return cfg
}

func resolveConfig(ctx *Context, config map[string]state.Value) map[string]state.Value {
	if len(config) == 0 {
		return nil
	}
	out := make(map[string]state.Value, len(config))
	for key, v := range config {
		if s, ok := v.Str(); ok && containsSpan(s) {
			out[key] = state.String(ctx.Interpolate(s))
			continue
		}
		out[key] = v
	}
	return out
}
