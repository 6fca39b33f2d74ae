package device

import (
	"errors"
	"fmt"

	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// ErrNotEnumerable indicates a device that does not publish a property
// registry. Enumeration is opt-in via Lister; it is never derived from
// introspection.
var ErrNotEnumerable = errors.New("device does not enumerate its properties")

// Device is the capability contract every property-bearing type
// implements. The four primitives are all a device must supply; the
// derived operations in this package build everything else on top.
type Device interface {
	// Shape returns the shape of a property. Shape is the sole source
	// of truth for existence: it fails with property.ErrNotFound when
	// the device does not expose the property. For a given device type
	// and key, the returned rank must never change between calls.
	Shape(key property.Key) (property.Shape, error)

	// Get returns the value at the given indices. Rank-0 properties
	// take no indices and return the scalar value. Fails with
	// property.ErrNotFound, property.ErrIndexOutOfRange, or
	// property.ErrReadNotSupported.
	Get(key property.Key, indices ...int) (any, error)

	// Set stores value at the given indices, symmetric to Get.
	// Additionally fails with property.ErrWriteNotSupported or
	// property.ErrTypeMismatch.
	Set(key property.Key, value any, indices ...int) error

	// Extent returns the per-dimension index bounds of a rank>0
	// property. Rank-0 properties have an implicit empty extent.
	// Unlike the shape, the extent may legitimately vary at runtime.
	Extent(key property.Key) ([]int, error)
}

// Lister is implemented by devices that publish an explicit registry of
// their properties.
type Lister interface {
	// Properties returns the keys of every exposed property.
	Properties() []property.Key
}

// Identified is implemented by devices with a stable identifier.
// The identifier is used in error messages and trace events.
type Identified interface {
	// DeviceID returns the device identifier.
	DeviceID() string
}

// Label returns a human-readable identity for the device, preferring
// its DeviceID and falling back to the concrete type name.
func Label(d Device) string {
	if id, ok := d.(Identified); ok {
		return id.DeviceID()
	}
	return fmt.Sprintf("%T", d)
}

// Properties returns the device's property registry, or ErrNotEnumerable
// if the device does not implement Lister.
func Properties(d Device) ([]property.Key, error) {
	l, ok := d.(Lister)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEnumerable, Label(d))
	}
	return l.Properties(), nil
}

// identify attaches device and property identity to bare sentinel
// errors returned by device primitives. Errors a device already
// classified (or that are outside the protocol taxonomy) pass through
// unchanged.
func identify(d Device, key property.Key, err error) error {
	switch err {
	case nil:
		return nil
	case property.ErrNotFound:
		return property.NotFoundError(Label(d), key)
	case property.ErrReadNotSupported:
		return property.ReadError(Label(d), key)
	case property.ErrWriteNotSupported:
		return property.WriteError(Label(d), key)
	default:
		return err
	}
}
