// Package document defines the declarative input tree: the abstract syntax a
// decoded UI document exposes to the resolver. Nothing here is resolved —
// styles still reference parents by name, components still reference data
// sources and actions, templates still carry "${...}" spans.
package document

import "github.com/go-scals/scals/pkg/state"

// Structural node kinds. Any other kind tag denotes a leaf component and is
// interpreted by the resolver's component registry.
const (
	KindStack         = "stack"
	KindSectionLayout = "sectionLayout"
	KindForEach       = "forEach"
	KindSpacer        = "spacer"
)

// Document is a complete decoded UI document.
type Document struct {
	// SchemaVersion declares the document format version ("1.2.0").
	// Empty means current.
	SchemaVersion string `json:"schemaVersion,omitempty"`

	// State is the declared initial state seed; always an object.
	State state.Value `json:"state,omitempty"`

	// Styles maps style names to their records.
	Styles map[string]StyleRecord `json:"styles,omitempty"`

	// DataSources maps data source names to their descriptions.
	DataSources map[string]DataSource `json:"dataSources,omitempty"`

	// Actions maps action names to their descriptions.
	Actions map[string]Action `json:"actions,omitempty"`

	// Root is the top of the layout tree.
	Root *Node `json:"root"`
}

// Node is one vertex of the layout tree. It is a closed union discriminated
// by Kind: structural kinds use the structural field groups, every other
// kind is a leaf component.
type Node struct {
	// Kind discriminates the node: a structural kind constant or a leaf
	// component kind tag ("text", "button", or a custom registration).
	Kind string `json:"kind"`

	// ID optionally names the node for diagnostics and dependency queries.
	ID string `json:"id,omitempty"`

	// Style names a style record; empty means unstyled.
	Style string `json:"style,omitempty"`

	// Stack fields.
	Axis      string   `json:"axis,omitempty"` // "vertical", "horizontal", "depth"
	Spacing   float64  `json:"spacing,omitempty"`
	Alignment string   `json:"alignment,omitempty"`
	Padding   *Padding `json:"padding,omitempty"`
	Children  []*Node  `json:"children,omitempty"`

	// Section layout fields.
	Sections []*Section `json:"sections,omitempty"`

	// ForEach fields. Source is the keypath of the driving array; ItemName
	// and IndexName override the default iteration binding names "item" and
	// "index". Children is the per-element template; Empty is resolved
	// instead when the source array is absent or empty.
	Source    string `json:"source,omitempty"`
	ItemName  string `json:"itemName,omitempty"`
	IndexName string `json:"indexName,omitempty"`
	Empty     *Node  `json:"empty,omitempty"`

	// Leaf component fields. Content resolution walks the priority chain:
	// Data (inline state reference), then DataSource (named), then Text
	// (static literal, interpolated when it carries template spans).
	Text       string `json:"text,omitempty"`
	Data       string `json:"data,omitempty"`
	DataSource string `json:"dataSource,omitempty"`

	// Bind is the state keypath two-way controls edit (textField, toggle,
	// slider).
	Bind string `json:"bind,omitempty"`

	// Props carries per-kind extra attributes (image URLs, gradient stops,
	// slider bounds) that only the kind's component resolver interprets.
	Props map[string]state.Value `json:"props,omitempty"`

	// Actions maps trigger names ("tap", "change") to action references:
	// either the name of a document-level action or an inline description.
	Actions map[string]ActionRef `json:"actions,omitempty"`
}

// Padding is an explicit inset box.
type Padding struct {
	Top    float64 `json:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
}

// Section is one section of a sectionLayout node. A section either lists
// static Children or names a Source array to instantiate Template once per
// element, with the same iteration bindings as forEach.
type Section struct {
	// Type selects the section layout configuration resolver ("list",
	// "grid", or a custom registration).
	Type string `json:"type"`

	// Config carries the type-specific layout configuration, interpreted by
	// the section-type registry.
	Config map[string]state.Value `json:"config,omitempty"`

	Header *Node `json:"header,omitempty"`
	Footer *Node `json:"footer,omitempty"`

	// Static children, mutually exclusive with Source/Template.
	Children []*Node `json:"children,omitempty"`

	// Data-driven expansion.
	Source    string `json:"source,omitempty"`
	Template  *Node  `json:"template,omitempty"`
	ItemName  string `json:"itemName,omitempty"`
	IndexName string `json:"indexName,omitempty"`
}

// StyleRecord is a named, possibly inheriting style. All visual properties
// are optional; nil means the property is absent and inheritance or renderer
// defaults decide. The records form a DAG via Inherits.
type StyleRecord struct {
	// Inherits names the parent record; empty means no parent.
	Inherits string `json:"inherits,omitempty"`

	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	ForegroundColor *string  `json:"foregroundColor,omitempty"`
	BorderColor     *string  `json:"borderColor,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	CornerRadius    *float64 `json:"cornerRadius,omitempty"`
	FontFamily      *string  `json:"fontFamily,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	FontWeight      *string  `json:"fontWeight,omitempty"`
	Width           *float64 `json:"width,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	Padding         *float64 `json:"padding,omitempty"`
	Opacity         *float64 `json:"opacity,omitempty"`
}

// DataSource describes where a component's content comes from.
type DataSource struct {
	// Type is "static", "binding" or "template".
	Type string `json:"type"`

	// Value is the literal for static sources.
	Value state.Value `json:"value,omitempty"`

	// Path is the state keypath for binding sources.
	Path string `json:"path,omitempty"`

	// Template is the interpolation template for template sources.
	Template string `json:"template,omitempty"`
}

// Data source types.
const (
	DataStatic   = "static"
	DataBinding  = "binding"
	DataTemplate = "template"
)

// ActionRef references an action from a component trigger: by document-level
// name, or inline.
type ActionRef struct {
	// Name references a document-level action; empty means inline.
	Name string `json:"name,omitempty"`

	// Inline is the action description when not referenced by name.
	Inline *Action `json:"inline,omitempty"`
}

// Action is a declarative action description. One flat record covers every
// kind; the resolver copies the fields relevant to Type.
type Action struct {
	// Type discriminates the action ("setState", "toggle", "append",
	// "removeAt", "navigate", "openURL", "alert", "http", "sequence").
	Type string `json:"type"`

	// State mutation fields.
	Path  string      `json:"path,omitempty"`
	Value state.Value `json:"value,omitempty"`
	Index int         `json:"index,omitempty"`

	// Navigation and URL fields.
	Destination string `json:"destination,omitempty"`
	URL         string `json:"url,omitempty"`

	// HTTP fields.
	Method string `json:"method,omitempty"`
	Body   string `json:"body,omitempty"`

	// Alert fields.
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`

	// Sequence steps, resolved independently in order.
	Steps []Action `json:"steps,omitempty"`
}
