package device

import (
	"github.com/devprop-protocol/devprop-go/pkg/log"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// BoundProperty pairs one property key with one device instance for
// repeated indexed access.
//
// The shape is captured once at bind time and never re-queried, even if
// the device later reports a different shape; the extent, by contrast,
// is always read live because it may legitimately vary (a resizable
// buffer grows, its rank does not).
//
// A BoundProperty is a capability-narrowing view, never a value cache:
// every Get and Set goes through the same checked access as direct
// indexing, and failures are raised lazily per access. It holds a
// non-owning reference to the device, which must outlive it.
type BoundProperty struct {
	key   property.Key
	shape property.Shape
	acc   Accessor
}

// Bind binds a property key to a device using default checked access.
// It fails with property.ErrNotFound if the device lacks the property.
func Bind(key property.Key, d Device) (*BoundProperty, error) {
	return Accessor{Device: d}.Bind(key)
}

// BindName is Bind with the key resolved from a property name.
func BindName(name string, d Device) (*BoundProperty, error) {
	return Bind(property.New(name), d)
}

// Bind binds a property key to the accessor's device, capturing the
// shape once. The bound property inherits the accessor's options, so an
// unchecked accessor yields a bound property with unchecked access.
func (a Accessor) Bind(key property.Key) (*BoundProperty, error) {
	shape, err := a.Device.Shape(key)
	if err != nil {
		err = identify(a.Device, key, err)
		a.trace(log.OpBind, key, nil, nil, err)
		return nil, err
	}
	a.trace(log.OpBind, key, nil, nil, nil)
	return &BoundProperty{key: key, shape: shape, acc: a}, nil
}

// BindName is Bind with the key resolved from a property name.
func (a Accessor) BindName(name string) (*BoundProperty, error) {
	return a.Bind(property.New(name))
}

// Key returns the bound property key.
func (bp *BoundProperty) Key() property.Key {
	return bp.key
}

// Device returns the device the property is bound to.
func (bp *BoundProperty) Device() Device {
	return bp.acc.Device
}

// Shape returns the shape captured at bind time.
func (bp *BoundProperty) Shape() property.Shape {
	return bp.shape
}

// Rank returns the rank captured at bind time.
func (bp *BoundProperty) Rank() int {
	return bp.shape.Rank
}

// ElementType returns the element type captured at bind time.
func (bp *BoundProperty) ElementType() property.DataType {
	return bp.shape.Type
}

// Extent returns the property's current per-dimension bounds. For a
// rank-0 property it returns an empty extent without touching the
// device; otherwise it queries the device live.
func (bp *BoundProperty) Extent() ([]int, error) {
	if bp.shape.Rank == 0 {
		bp.acc.trace(log.OpExtent, bp.key, nil, nil, nil)
		return nil, nil
	}
	extent, err := bp.acc.Device.Extent(bp.key)
	err = identify(bp.acc.Device, bp.key, err)
	bp.acc.trace(log.OpExtent, bp.key, nil, nil, err)
	return extent, err
}

// Size returns the total number of addressable elements, the product of
// the current extent. A rank-0 property has size 1.
func (bp *BoundProperty) Size() (int, error) {
	if bp.shape.Rank == 0 {
		return 1, nil
	}
	extent, err := bp.Extent()
	if err != nil {
		return 0, err
	}
	size := 1
	for _, n := range extent {
		size *= n
	}
	return size, nil
}

// Get performs a checked indexed read through the bound device.
func (bp *BoundProperty) Get(indices ...int) (any, error) {
	return bp.acc.Get(bp.key, indices...)
}

// Set performs a checked indexed write through the bound device and
// returns the written value.
func (bp *BoundProperty) Set(value any, indices ...int) (any, error) {
	return bp.acc.Set(bp.key, value, indices...)
}
