// Package expression evaluates the small template and expression language
// used by document bindings.
//
// Templates interpolate "${expr}" spans; expressions cover ternaries over
// boolean paths, array member forms (.count, .isEmpty, .first, .last,
// .contains), bare keypath lookups, and single +/- integer arithmetic.
// Evaluation never fails — an unresolved reference degrades to an empty,
// false or null result so a document with a typo still renders.
//
// Expressions read state through the Reader interface, which lets the
// resolver layer iteration bindings over the store and record every touched
// path for dependency tracking. Expressions outside the built-in grammar can
// be delegated to a pluggable Engine; see the exprengine subpackage.
package expression
