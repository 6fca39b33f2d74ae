// Package property defines the vocabulary of the device property
// protocol: name-tagged property keys, element types, shapes, and the
// error taxonomy shared by every layer above.
//
// # Keys
//
// A Key identifies a property purely by name. Keys are plain comparable
// values; two keys created from the same name are fully interchangeable.
// Code must never rely on key identity, only on equality.
//
// # Shapes
//
// A Shape describes a property's element type and rank. Rank 0 is a
// scalar; rank N >= 1 means the property is indexed along N dimensions.
// For a given device type and key, the rank is fixed for the lifetime
// of the type. The per-dimension sizes (the extent) are not part of the
// shape and may vary at runtime, for example on a resizable buffer.
//
// # Errors
//
// All protocol failures wrap one of the sentinel errors declared here
// (ErrNotFound, ErrIndexOutOfRange, ...), so callers classify failures
// with errors.Is regardless of which layer raised them.
package property
