// Package resolver turns a declarative document tree plus live state into
// the fully resolved IR tree a renderer consumes.
//
// A single recursive descent performs every resolution concern at once: style
// flattening, data binding and template evaluation, action translation, item
// expansion for forEach and data-driven sections, and — when enabled —
// dependency tracking. Tracking builds a shadow tree alongside the IR: each
// node's scope records exactly the state paths read on its behalf, and the
// resulting index answers "which nodes must recompute for these dirty paths"
// without any ahead-of-time dependency graph.
//
// # Failure Model
//
// Lookups fail soft: a missing style, data source, state path or template
// variable degrades to a default and resolution continues, so a document
// with a typo renders something. The single hard failure is a leaf whose
// kind has no registered component resolver — there is no sensible default
// render, so the subtree aborts and a typed error reaches the Resolve
// caller.
//
// # Extension
//
// Component kinds and section layout types are open registries over a closed
// set of built-ins. Hosts register custom kinds against DefaultRegistry (the
// CustomComponent helper covers the common shape) and custom section types
// against DefaultSectionRegistry.
package resolver
