// Package ir defines the fully resolved intermediate tree handed to a
// renderer. Every style is flattened, every binding evaluated, every action
// reference resolved; nothing here requires another lookup. The tree is
// render-agnostic and JSON-serializable.
package ir

import (
	"github.com/go-scals/scals/pkg/action"
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/state"
	"github.com/go-scals/scals/pkg/style"
	"github.com/go-scals/scals/pkg/track"
)

// Kind identifies the resolved node variant.
type Kind string

const (
	KindContainer     Kind = "container"
	KindText          Kind = "text"
	KindButton        Kind = "button"
	KindTextField     Kind = "textField"
	KindToggle        Kind = "toggle"
	KindSlider        Kind = "slider"
	KindImage         Kind = "image"
	KindGradient      Kind = "gradient"
	KindDivider       Kind = "divider"
	KindSectionLayout Kind = "sectionLayout"
	KindCustom        Kind = "custom"
	KindSpacer        Kind = "spacer"
)

// Node is one vertex of the resolved tree.
type Node struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id,omitempty"`

	// Style is the flattened style; absent properties stay nil for the
	// renderer's defaults.
	Style style.Resolved `json:"style,omitempty"`

	// Container fields.
	Axis      string            `json:"axis,omitempty"`
	Spacing   float64           `json:"spacing,omitempty"`
	Alignment string            `json:"alignment,omitempty"`
	Padding   *document.Padding `json:"padding,omitempty"`
	Children  []*Node           `json:"children,omitempty"`

	// Section layout fields.
	Sections []*Section `json:"sections,omitempty"`

	// Leaf fields. Text carries the fully interpolated content; CustomKind
	// preserves the original tag for custom components.
	Text       string                 `json:"text,omitempty"`
	CustomKind string                 `json:"customKind,omitempty"`
	Props      map[string]state.Value `json:"props,omitempty"`

	// Binding is the state keypath a two-way control edits; the renderer
	// obtains the live cell from the store.
	Binding string `json:"binding,omitempty"`

	// Actions maps trigger names to executable action definitions.
	Actions map[string]action.Definition `json:"actions,omitempty"`

	// TrackID links the node to its tracking shadow node; NoNode when the
	// pass ran without tracking.
	TrackID track.NodeID `json:"trackId"`
}

// Section is one resolved section of a sectionLayout node. Config is the
// layout configuration produced by the section-type resolver.
type Section struct {
	Type   string                 `json:"type"`
	Config map[string]state.Value `json:"config,omitempty"`
	Header *Node                  `json:"header,omitempty"`
	Footer *Node                  `json:"footer,omitempty"`
	Items  []*Node                `json:"items,omitempty"`
}
