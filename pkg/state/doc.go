// Package state provides the value model and the reactive store that back
// document resolution.
//
// Value is a tagged variant over null, bool, int, double, string, array and
// object — the universal currency every other package trades in. Keypaths
// address locations inside a value tree ("user.profile.name", "items[0]"),
// and Store layers dirty tracking and synchronous change notification on top
// of keypath get/set.
//
// # Absence Is a Value
//
// Reads never fail. Looking up a missing key, an out-of-range index, or a
// path through the wrong kind of container reports absence, and callers
// degrade to a default. Writes are the mirror image: missing containers are
// created on demand, and a mismatched intermediate value is replaced by a
// container of the required kind.
//
// # Dirty Propagation
//
// Writing "user.profile.name" marks "user.profile.name", "user.profile" and
// "user" dirty, so an observer of any ancestor is notified by a descendant
// change. ConsumeDirtyPaths drains the set; the resolution loop feeds the
// drained paths to the dependency index to decide what to rebuild.
package state
