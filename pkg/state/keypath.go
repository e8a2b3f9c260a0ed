package state

import (
	"strconv"
	"strings"
)

// Component is one step of a keypath: either an object key or an array index.
type Component struct {
	Key   string
	Index int
	// IsIndex distinguishes an array index from an object key.
	IsIndex bool
}

func (c Component) String() string {
	if c.IsIndex {
		return strconv.Itoa(c.Index)
	}
	return c.Key
}

// Path is a parsed keypath: an ordered list of key and index components.
type Path []Component

// ParsePath parses a dotted/bracketed keypath string. Both bracket and dot
// index notation produce the same components: "items[0]" and "items.0" parse
// to [Key("items"), Index(0)].
//
// Parsing never fails; malformed bracket segments are kept as literal keys so
// that a lookup on them degrades to absence rather than an error.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	var path Path
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			continue
		}
		path = appendSegment(path, seg)
	}
	return path
}

func appendSegment(path Path, seg string) Path {
	// Bare digits form an index component.
	if i, err := strconv.Atoi(seg); err == nil && i >= 0 {
		return append(path, Component{Index: i, IsIndex: true})
	}
	// An identifier followed by one or more [digits] suffixes.
	open := strings.IndexByte(seg, '[')
	if open <= 0 || !strings.HasSuffix(seg, "]") {
		return append(path, Component{Key: seg})
	}
	rest := seg[open:]
	var indices []int
	for rest != "" {
		if rest[0] != '[' {
			return append(path, Component{Key: seg})
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return append(path, Component{Key: seg})
		}
		i, err := strconv.Atoi(rest[1:close])
		if err != nil || i < 0 {
			return append(path, Component{Key: seg})
		}
		indices = append(indices, i)
		rest = rest[close+1:]
	}
	path = append(path, Component{Key: seg[:open]})
	for _, i := range indices {
		path = append(path, Component{Index: i, IsIndex: true})
	}
	return path
}

// String renders the path in canonical dot notation, with indices as bare
// digit segments: [Key("items"), Index(0)] renders as "items.0".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParentPaths returns every strict prefix of the path in canonical notation,
// shortest first. An empty or single-component path has no parents.
func ParentPaths(path string) []string {
	p := ParsePath(path)
	if len(p) < 2 {
		return nil
	}
	parents := make([]string, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		parents = append(parents, p[:i].String())
	}
	return parents
}

// GetPath walks the keypath through the value tree. A key step requires an
// object and an index step requires a sufficiently long array; anything else
// yields absence. Absence is a value here, never an error.
func GetPath(path string, root Value) (Value, bool) {
	current := root
	for _, c := range ParsePath(path) {
		var ok bool
		if c.IsIndex {
			current, ok = current.Index(c.Index)
		} else {
			current, ok = current.Field(c.Key)
		}
		if !ok {
			return Null(), false
		}
	}
	return current, true
}

// SetPath writes value at the keypath and returns the new root. Missing
// containers are created on demand: an empty object for a missing key, an
// array padded with nulls up to the needed index. An intermediate value of
// the wrong kind is overwritten with a fresh container of the required kind;
// that data loss is the documented policy for mismatched writes.
func SetPath(path string, value Value, root Value) Value {
	p := ParsePath(path)
	if len(p) == 0 {
		return root
	}
	return setComponents(p, value, root)
}

func setComponents(p Path, value Value, current Value) Value {
	if len(p) == 0 {
		return value
	}
	c := p[0]
	if c.IsIndex {
		var arr []Value
		if current.kind == KindArray {
			arr = current.arr
		}
		next := make([]Value, len(arr))
		copy(next, arr)
		for len(next) <= c.Index {
			next = append(next, Null())
		}
		next[c.Index] = setComponents(p[1:], value, next[c.Index])
		return Value{kind: KindArray, arr: next}
	}
	var obj map[string]Value
	if current.kind == KindObject {
		obj = current.obj
	}
	next := make(map[string]Value, len(obj)+1)
	for k, v := range obj {
		next[k] = v
	}
	next[c.Key] = setComponents(p[1:], value, next[c.Key])
	return Value{kind: KindObject, obj: next}
}

// hasPrefix reports whether p starts with the components of prefix.
func (p Path) hasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, c := range prefix {
		if p[i] != c {
			return false
		}
	}
	return true
}
