package resolver

import (
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/ir"
	"github.com/go-scals/scals/pkg/state"
)

// ComponentFunc resolves one leaf component node into its IR form. The
// context supplies style resolution, the content priority chain, action
// translation and state lookups with tracking.
type ComponentFunc func(ctx *Context, n *document.Node) (*ir.Node, error)

// Registry maps component kind tags to their resolvers: the closed set of
// built-ins plus whatever custom kinds the host registers. A kind with no
// entry is the engine's one hard failure.
type Registry struct {
	funcs map[string]ComponentFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]ComponentFunc)}
}

// Register binds a kind tag to a resolver, replacing any previous binding.
func (r *Registry) Register(kind string, fn ComponentFunc) {
	if kind == "" || fn == nil {
		return
	}
	r.funcs[kind] = fn
}

// Lookup returns the resolver for a kind tag.
func (r *Registry) Lookup(kind string) (ComponentFunc, bool) {
	fn, ok := r.funcs[kind]
	return fn, ok
}

// SectionConfigFunc resolves a section's type-specific layout configuration.
type SectionConfigFunc func(ctx *Context, s *document.Section) map[string]state.Value

// SectionRegistry maps section layout types to their configuration
// resolvers. Unlike component kinds, an unknown section type degrades softly:
// its raw configuration passes through untouched.
type SectionRegistry struct {
	funcs map[string]SectionConfigFunc
}

// NewSectionRegistry creates an empty section registry.
func NewSectionRegistry() *SectionRegistry {
	return &SectionRegistry{funcs: make(map[string]SectionConfigFunc)}
}

// Register binds a section type to a config resolver.
func (r *SectionRegistry) Register(sectionType string, fn SectionConfigFunc) {
	if sectionType == "" || fn == nil {
		return
	}
	r.funcs[sectionType] = fn
}

// Lookup returns the config resolver for a section type.
func (r *SectionRegistry) Lookup(sectionType string) (SectionConfigFunc, bool) {
	fn, ok := r.funcs[sectionType]
	return fn, ok
}
