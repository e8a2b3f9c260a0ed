package state

// Binding is a two-way cell over one keypath: reads delegate to Store.Get and
// writes to Store.Set, with the usual dirty marking and change notification.
// Editable controls (text fields, toggles, sliders) hold one of these instead
// of a store reference plus a path.
type Binding struct {
	store *Store
	path  string
}

// Binding returns a two-way cell bound to path.
func (s *Store) Binding(path string) Binding {
	return Binding{store: s, path: ParsePath(path).String()}
}

// Path returns the canonical keypath the binding addresses.
func (b Binding) Path() string {
	return b.path
}

// Get reads the bound value; absence reads as null.
func (b Binding) Get() Value {
	if b.store == nil {
		return Null()
	}
	v, _ := b.store.Get(b.path)
	return v
}

// Set writes the bound value.
func (b Binding) Set(v Value) {
	if b.store == nil {
		return
	}
	b.store.Set(b.path, v)
}
