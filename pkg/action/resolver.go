// Package action translates declarative action descriptions into executable
// action definitions.
//
// The translation is structural: no state, no I/O, no failure modes. Every
// well-formed description maps to a well-formed definition by field copy;
// only "sequence" recurses, resolving each step independently and preserving
// order. Executing the definitions (navigation, HTTP, alerts) is the host
// application's concern.
package action

import (
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/state"
)

// Definition is an executable action: the resolved form of a declarative
// description.
type Definition struct {
	// Type discriminates the action, copied verbatim from the description.
	Type string `json:"type"`

	// Name is the document-level name the definition was resolved under,
	// empty for inline actions.
	Name string `json:"name,omitempty"`

	Path  string      `json:"path,omitempty"`
	Value state.Value `json:"value,omitempty"`
	Index int         `json:"index,omitempty"`

	Destination string `json:"destination,omitempty"`
	URL         string `json:"url,omitempty"`
	Method      string `json:"method,omitempty"`
	Body        string `json:"body,omitempty"`
	Title       string `json:"title,omitempty"`
	Message     string `json:"message,omitempty"`

	Steps []Definition `json:"steps,omitempty"`
}

// Resolve translates one action description.
func Resolve(a document.Action) Definition {
	def := Definition{
		Type:        a.Type,
		Path:        a.Path,
		Value:       a.Value,
		Index:       a.Index,
		Destination: a.Destination,
		URL:         a.URL,
		Method:      a.Method,
		Body:        a.Body,
		Title:       a.Title,
		Message:     a.Message,
	}
	if len(a.Steps) > 0 {
		def.Steps = make([]Definition, len(a.Steps))
		for i, step := range a.Steps {
			def.Steps[i] = Resolve(step)
		}
	}
	return def
}

// ResolveAll translates a named action map, preserving keys and stamping
// each definition with its name. Empty or nil input yields an empty map.
func ResolveAll(named map[string]document.Action) map[string]Definition {
	out := make(map[string]Definition, len(named))
	for name, a := range named {
		def := Resolve(a)
		def.Name = name
		out[name] = def
	}
	return out
}
