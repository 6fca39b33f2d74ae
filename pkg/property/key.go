package property

// Key identifies a property by name.
//
// A Key is an immutable value; equality is defined purely by the name it
// was created from. Equal names always yield interchangeable keys, so a
// Key may be created on the fly, stored in a package-level variable, or
// reconstructed from a wire name without changing semantics.
type Key struct {
	name string
}

// New returns the key for the given property name.
// It is pure: calling it twice with the same name yields equal keys.
func New(name string) Key {
	return Key{name: name}
}

// Name returns the property name the key identifies.
func (k Key) Name() string {
	return k.name
}

// String returns the property name.
func (k Key) String() string {
	return k.name
}
