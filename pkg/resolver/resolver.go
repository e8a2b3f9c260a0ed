package resolver

import (
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/errors"
	"github.com/go-scals/scals/pkg/expression"
	"github.com/go-scals/scals/pkg/ir"
	"github.com/go-scals/scals/pkg/state"
	"github.com/go-scals/scals/pkg/style"
	"github.com/go-scals/scals/pkg/track"
)

// Resolver orchestrates one document session: a recursive descent over the
// AST that flattens styles, evaluates bindings, translates actions and
// optionally records read dependencies, emitting the IR tree.
//
// A Resolver owns its style cache and shares the store it was given; create
// one Resolver per document session. Resolution is synchronous and single-
// threaded by design — a forEach must see a consistent array length for its
// whole expansion.
type Resolver struct {
	doc        *document.Document
	store      *state.Store
	styles     *style.Resolver
	eval       *expression.Evaluator
	components *Registry
	sections   *SectionRegistry
	tracking   bool
}

// Result is the output of one resolution pass.
type Result struct {
	// Root is the resolved IR tree.
	Root *ir.Node
	// Tracker holds the dependency shadow tree; nil without tracking.
	Tracker *track.Tracker
	// Index maps state paths to dependent tracking nodes; nil without
	// tracking.
	Index *track.Index
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTracking enables dependency tracking: each pass builds a fresh shadow
// tree and reverse index.
func WithTracking() Option {
	return func(r *Resolver) {
		r.tracking = true
	}
}

// WithEngine installs a fallback expression engine.
func WithEngine(e expression.Engine) Option {
	return func(r *Resolver) {
		r.eval = expression.New(expression.WithEngine(e))
	}
}

// WithComponents replaces the component registry.
func WithComponents(reg *Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.components = reg
		}
	}
}

// WithSections replaces the section-type registry.
func WithSections(reg *SectionRegistry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.sections = reg
		}
	}
}

// New creates a Resolver for one document session and seeds the store from
// the document's declared state. Seeding merges: keys already present in the
// store win, so a resumed session keeps its saved values while picking up
// new document defaults.
func New(doc *document.Document, store *state.Store, opts ...Option) *Resolver {
	r := &Resolver{
		doc:        doc,
		store:      store,
		styles:     style.NewResolver(doc.Styles),
		eval:       expression.New(),
		components: DefaultRegistry(),
		sections:   DefaultSectionRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	store.Initialize(doc.State, true)
	return r
}

// Resolve runs one pass over the document and returns the IR tree, plus the
// dependency shadow tree and index when tracking is enabled. The only error
// is structural: a component kind with no registered resolver.
func (r *Resolver) Resolve() (*Result, error) {
	var tracker *track.Tracker
	if r.tracking {
		tracker = track.NewTracker()
	}
	ctx := &Context{r: r, tracker: tracker}
	root, err := r.resolveNode(ctx, r.doc.Root)
	if err != nil {
		return nil, errors.New("resolver.Resolve", errors.KindResolve, err)
	}
	if root == nil {
		root = &ir.Node{Kind: ir.KindContainer, TrackID: track.NoNode}
	}
	result := &Result{Root: root, Tracker: tracker}
	if tracker != nil {
		result.Index = track.BuildIndex(tracker)
	}
	return result, nil
}

// resolveNode dispatches on the node kind. Structural kinds are handled
// here; everything else is a leaf component looked up in the registry.
func (r *Resolver) resolveNode(ctx *Context, n *document.Node) (*ir.Node, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case document.KindStack:
		return r.resolveStack(ctx, n)
	case document.KindSectionLayout:
		return r.resolveSectionLayout(ctx, n)
	case document.KindForEach:
		return r.resolveForEach(ctx, n)
	case document.KindSpacer:
		return r.resolveSpacer(ctx, n)
	default:
		return r.resolveComponent(ctx, n)
	}
}

func (r *Resolver) resolveStack(ctx *Context, n *document.Node) (*ir.Node, error) {
	id := ctx.beginScope()
	defer ctx.endScope()

	out := &ir.Node{
		Kind:      ir.KindContainer,
		ID:        n.ID,
		Style:     ctx.Style(n.Style),
		Axis:      n.Axis,
		Spacing:   n.Spacing,
		Alignment: n.Alignment,
		Padding:   n.Padding,
		TrackID:   id,
	}
	for _, child := range n.Children {
		resolved, err := r.resolveNode(ctx, child)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			out.Children = append(out.Children, resolved)
		}
	}
	return out, nil
}

// resolveForEach expands the template once per element of the source array,
// binding the item and index names for each element's subtree. An absent or
// empty source resolves the declared empty view, or an empty container —
// never an error.
func (r *Resolver) resolveForEach(ctx *Context, n *document.Node) (*ir.Node, error) {
	id := ctx.beginScope()
	defer ctx.endScope()

	out := &ir.Node{Kind: ir.KindContainer, ID: n.ID, Style: ctx.Style(n.Style), TrackID: id}

	source, _ := ctx.Lookup(n.Source)
	items := source.Items()
	if len(items) == 0 {
		if n.Empty != nil {
			empty, err := r.resolveNode(ctx, n.Empty)
			if err != nil {
				return nil, err
			}
			if empty != nil {
				out.Children = append(out.Children, empty)
			}
		}
		return out, nil
	}

	children, err := r.expand(ctx, items, n.ItemName, n.IndexName, n.Children)
	if err != nil {
		return nil, err
	}
	out.Children = children
	return out, nil
}

// expand is the shared item-expansion algorithm behind forEach and
// data-driven sections: one instantiation of the template per element, under
// fresh innermost bindings.
func (r *Resolver) expand(ctx *Context, items []state.Value, itemName, indexName string, template []*document.Node) ([]*ir.Node, error) {
	if itemName == "" {
		itemName = "item"
	}
	if indexName == "" {
		indexName = "index"
	}
	var out []*ir.Node
	for i, item := range items {
		childCtx := ctx.child(
			binding{name: indexName, value: state.Int(int64(i))},
			binding{name: itemName, value: item},
		)
		for _, tmpl := range template {
			resolved, err := r.resolveNode(childCtx, tmpl)
			if err != nil {
				return nil, err
			}
			if resolved != nil {
				out = append(out, resolved)
			}
		}
	}
	return out, nil
}

func (r *Resolver) resolveSectionLayout(ctx *Context, n *document.Node) (*ir.Node, error) {
	id := ctx.beginScope()
	defer ctx.endScope()

	out := &ir.Node{
		Kind:    ir.KindSectionLayout,
		ID:      n.ID,
		Style:   ctx.Style(n.Style),
		TrackID: id,
	}
	for _, section := range n.Sections {
		if section == nil {
			continue
		}
		resolved, err := r.resolveSection(ctx, section)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, resolved)
	}
	return out, nil
}

func (r *Resolver) resolveSection(ctx *Context, s *document.Section) (*ir.Section, error) {
	out := &ir.Section{Type: s.Type}

	// Per-type configuration through the pluggable registry; an unknown
	// type keeps its raw configuration.
	if fn, ok := r.sections.Lookup(s.Type); ok {
		out.Config = fn(ctx, s)
	} else if len(s.Config) > 0 {
		out.Config = s.Config
	}

	header, err := r.resolveNode(ctx, s.Header)
	if err != nil {
		return nil, err
	}
	out.Header = header
	footer, err := r.resolveNode(ctx, s.Footer)
	if err != nil {
		return nil, err
	}
	out.Footer = footer

	if s.Source != "" && s.Template != nil {
		source, _ := ctx.Lookup(s.Source)
		items, err := r.expand(ctx, source.Items(), s.ItemName, s.IndexName, []*document.Node{s.Template})
		if err != nil {
			return nil, err
		}
		out.Items = items
		return out, nil
	}
	for _, child := range s.Children {
		resolved, err := r.resolveNode(ctx, child)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			out.Items = append(out.Items, resolved)
		}
	}
	return out, nil
}

func (r *Resolver) resolveSpacer(ctx *Context, n *document.Node) (*ir.Node, error) {
	id := ctx.beginScope()
	defer ctx.endScope()
	return &ir.Node{Kind: ir.KindSpacer, ID: n.ID, Style: ctx.Style(n.Style), TrackID: id}, nil
}

// resolveComponent resolves a leaf through the component registry. An
// unregistered kind is the engine's single hard failure: there is no
// sensible default render, so the subtree aborts and the error bubbles to
// the Resolve caller.
func (r *Resolver) resolveComponent(ctx *Context, n *document.Node) (*ir.Node, error) {
	fn, ok := r.components.Lookup(n.Kind)
	if !ok {
		return nil, &errors.UnknownComponentError{Kind: n.Kind, NodeID: n.ID}
	}
	id := ctx.beginScope()
	defer ctx.endScope()

	out, err := fn(ctx, n)
	if err != nil {
		return nil, err
	}
	if out != nil {
		out.TrackID = id
		if out.ID == "" {
			out.ID = n.ID
		}
	}
	return out, nil
}
