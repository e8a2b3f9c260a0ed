// Package errors provides structured error handling for the Scals engine.
//
// The engine distinguishes three failure classes. Soft absences (missing
// style names, data sources, state paths) degrade to defaults at the point of
// detection and never construct an error. Structural failures — an unknown
// component kind is the only one — surface as typed errors to the top-level
// Resolve caller. Contract violations (misuse of the engine API, like ending
// a tracking scope that was never begun) panic with a ContractError; they are
// programmer errors, not recoverable conditions.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDecode indicates a document decoding failure.
	KindDecode
	// KindVersion indicates an unsupported document schema version.
	KindVersion
	// KindStyle indicates a style resolution problem (inheritance cycles).
	KindStyle
	// KindResolve indicates a structural resolution failure.
	KindResolve
	// KindContract indicates engine API misuse.
	KindContract
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindVersion:
		return "version"
	case KindStyle:
		return "style"
	case KindResolve:
		return "resolve"
	case KindContract:
		return "contract"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Scals engine.
type Error struct {
	// Op is the operation that failed (e.g., "resolver.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an operation and kind.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// UnknownComponentError reports a leaf node whose kind has no registered
// resolver. This is the single hard failure in resolution: there is no
// sensible default render for an unknown component, so the error aborts the
// in-progress subtree and bubbles to the top-level Resolve caller.
type UnknownComponentError struct {
	// Kind is the unrecognized component kind tag.
	Kind string
	// NodeID identifies the offending node when the document assigns one.
	NodeID string
}

func (e *UnknownComponentError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("unknown component kind %q (node %q)", e.Kind, e.NodeID)
	}
	return fmt.Sprintf("unknown component kind %q", e.Kind)
}

// StyleCycleError reports an inheritance cycle among style records. The
// chain lists the names walked before the repeat, in resolution order.
type StyleCycleError struct {
	Chain []string
}

func (e *StyleCycleError) Error() string {
	return fmt.Sprintf("style inheritance cycle: %s", strings.Join(e.Chain, " -> "))
}

// VersionError reports a document schema version the engine does not
// support.
type VersionError struct {
	// Version is the document's declared schema version.
	Version string
	// Supported is the schema major version the engine implements.
	Supported string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported schema version %q (engine supports %s)", e.Version, e.Supported)
}

// ContractError represents engine API misuse. It is delivered by panicking:
// a caller that ends a tracking scope it never began has a logic bug that
// recovery would only hide.
type ContractError struct {
	// Op is the misused operation.
	Op string
	// Detail describes the violated contract.
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

// Contract panics with a ContractError.
func Contract(op, detail string) {
	panic(&ContractError{Op: op, Detail: detail})
}
