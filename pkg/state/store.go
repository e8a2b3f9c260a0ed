package state

// ChangeFunc observes a single write: the canonical path that changed, the
// value it held before the write and the value it holds after.
type ChangeFunc func(path string, old, new Value)

// Store owns the live state tree for one document session. The root is always
// an object; every read and write goes through keypath operations.
//
// Store is NOT thread-safe. All mutation must happen on one logical thread so
// that an in-progress tree walk (a forEach expansion, a change callback chain)
// always observes a consistent tree. Callers with concurrent producers must
// serialize them before calling Set.
type Store struct {
	root Value

	// Dirty paths accumulate in write order; the set half deduplicates.
	dirty    []string
	dirtySet map[string]struct{}

	listeners []ChangeFunc
}

// NewStore creates a store holding an empty object.
func NewStore() *Store {
	return &Store{
		root:     Object(nil),
		dirtySet: make(map[string]struct{}),
	}
}

// Initialize seeds the store from a document's declared state. When merge is
// set, keys already present in the store win over the seed's defaults, which
// is what a resumed session needs: the document declares its defaults but the
// saved values take precedence. Initialization does not mark anything dirty
// and fires no callbacks.
func (s *Store) Initialize(seed Value, merge bool) {
	if seed.Kind() != KindObject {
		return
	}
	if !merge || s.root.Len() == 0 {
		s.root = seed
		return
	}
	merged := make(map[string]Value, seed.Len()+s.root.Len())
	for _, k := range seed.Keys() {
		merged[k], _ = seed.Field(k)
	}
	for _, k := range s.root.Keys() {
		merged[k], _ = s.root.Field(k)
	}
	s.root = Value{kind: KindObject, obj: merged}
}

// Root returns the current state tree.
func (s *Store) Root() Value {
	return s.root
}

// Get reads the value at path. Absence is reported, not raised.
func (s *Store) Get(path string) (Value, bool) {
	return GetPath(path, s.root)
}

// Set writes value at path, marks the path and all its parents dirty, and
// synchronously invokes every registered change callback with the old and new
// values. Callbacks fire in registration order, and successive writes notify
// in write order.
func (s *Store) Set(path string, value Value) {
	canonical := ParsePath(path).String()
	if canonical == "" {
		return
	}
	old, _ := s.Get(canonical)
	s.root = SetPath(canonical, value, s.root)

	s.markDirty(canonical)
	for _, parent := range ParentPaths(canonical) {
		s.markDirty(parent)
	}
	for _, fn := range s.listeners {
		fn(canonical, old, value)
	}
}

func (s *Store) markDirty(path string) {
	if _, seen := s.dirtySet[path]; seen {
		return
	}
	s.dirtySet[path] = struct{}{}
	s.dirty = append(s.dirty, path)
}

// ConsumeDirtyPaths drains and returns the accumulated dirty paths in first-
// marked order. A second call before any new write returns nil.
func (s *Store) ConsumeDirtyPaths() []string {
	if len(s.dirty) == 0 {
		return nil
	}
	drained := s.dirty
	s.dirty = nil
	s.dirtySet = make(map[string]struct{})
	return drained
}

// IsDirty reports whether path or anything at or below it changed since the
// last ConsumeDirtyPaths: an exact dirty entry, or a dirty entry that path is
// a component prefix of. Parent propagation in Set means an ancestor of a
// dirty path is itself a dirty entry, so the exact check covers that side.
func (s *Store) IsDirty(path string) bool {
	canonical := ParsePath(path)
	key := canonical.String()
	if _, ok := s.dirtySet[key]; ok {
		return true
	}
	for dirty := range s.dirtySet {
		if ParsePath(dirty).hasPrefix(canonical) {
			return true
		}
	}
	return false
}

// OnChange registers a change callback and returns a function that removes
// it. Callbacks run synchronously inside Set.
func (s *Store) OnChange(fn ChangeFunc) func() {
	if fn == nil {
		return func() {}
	}
	index := len(s.listeners)
	s.listeners = append(s.listeners, fn)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		s.listeners[index] = func(string, Value, Value) {}
	}
}

// Append adds a value to the end of the array at path, creating the array if
// absent. It is a composition of Get and Set, so dirty marking and change
// notification behave exactly as for a plain write.
func (s *Store) Append(path string, value Value) {
	current, _ := s.Get(path)
	items := current.Items()
	next := make([]Value, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, value)
	s.Set(path, Value{kind: KindArray, arr: next})
}

// RemoveAt removes the i-th element of the array at path. Out-of-range
// indices and non-arrays are ignored.
func (s *Store) RemoveAt(path string, i int) {
	current, _ := s.Get(path)
	items := current.Items()
	if current.Kind() != KindArray || i < 0 || i >= len(items) {
		return
	}
	next := make([]Value, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	s.Set(path, Value{kind: KindArray, arr: next})
}

// Toggle removes value from the array at path when present (by deep
// equality), and appends it otherwise. Membership-set semantics for
// selection lists.
func (s *Store) Toggle(path string, value Value) {
	current, _ := s.Get(path)
	for i, item := range current.Items() {
		if item.Equal(value) {
			s.RemoveAt(path, i)
			return
		}
	}
	s.Append(path, value)
}
