// Package style flattens style inheritance chains into resolved records.
//
// A document's style records form a DAG via "inherits" references. Resolving
// a name walks self → parent → … and takes, per property, the nearest
// non-absent value. Resolution is cached per resolver instance; a Resolver
// belongs to one document session and is never shared across documents, so
// concurrent documents stay independent.
package style

import (
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/errors"
)

// Resolved is a fully flattened style. Nil still means absent — the renderer
// applies its own defaults — but no reference remains to follow.
type Resolved struct {
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

// Resolver flattens named styles with a per-name cache. It is scoped to one
// resolver session; create a new Resolver per document.
type Resolver struct {
	records map[string]document.StyleRecord
	cache   map[string]Resolved
}

// NewResolver creates a Resolver over a document's style records.
func NewResolver(records map[string]document.StyleRecord) *Resolver {
	return &Resolver{
		records: records,
		cache:   make(map[string]Resolved),
	}
}

// Resolve flattens the named style. An empty or unknown name yields the
// all-absent default — a document referencing a missing style still renders.
// An inheritance cycle is reported through the error handler and resolved as
// if the record closing the cycle had no parent, so resolution terminates
// with the properties gathered so far.
func (r *Resolver) Resolve(name string) Resolved {
	if name == "" {
		return Resolved{}
	}
	if cached, ok := r.cache[name]; ok {
		return cached
	}
	resolved := r.resolve(name, nil)
	r.cache[name] = resolved
	return resolved
}

func (r *Resolver) resolve(name string, chain []string) Resolved {
	record, ok := r.records[name]
	if !ok {
		return Resolved{}
	}
	for _, seen := range chain {
		if seen == name {
			errors.Report(errors.New("style.Resolve", errors.KindStyle,
				&errors.StyleCycleError{Chain: append(chain, name)}))
			return Resolved{}
		}
	}
	var base Resolved
	if record.Inherits != "" {
		if cached, ok := r.cache[record.Inherits]; ok {
			base = cached
		} else {
			base = r.resolve(record.Inherits, append(chain, name))
		}
	}
	return overlay(base, record)
}

// overlay applies every present child property over the inherited base.
func overlay(base Resolved, record document.StyleRecord) Resolved {
	out := base
	if record.BackgroundColor != nil {
		out.BackgroundColor = normalizeColor(*record.BackgroundColor)
	}
	if record.ForegroundColor != nil {
		out.ForegroundColor = normalizeColor(*record.ForegroundColor)
	}
	if record.BorderColor != nil {
		out.BorderColor = normalizeColor(*record.BorderColor)
	}
	if record.BorderWidth != nil {
		out.BorderWidth = record.BorderWidth
	}
	if record.CornerRadius != nil {
		out.CornerRadius = record.CornerRadius
	}
	if record.FontFamily != nil {
		out.FontFamily = record.FontFamily
	}
	if record.FontSize != nil {
		out.FontSize = record.FontSize
	}
	if record.FontWeight != nil {
		out.FontWeight = record.FontWeight
	}
	if record.Width != nil {
		out.Width = record.Width
	}
	if record.Height != nil {
		out.Height = record.Height
	}
	if record.Padding != nil {
		out.Padding = record.Padding
	}
	if record.Opacity != nil {
		out.Opacity = record.Opacity
	}
	return out
}
