package device

import (
	"time"

	"github.com/devprop-protocol/devprop-go/pkg/log"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Accessor routes property operations to one device, inserting
// existence, rank, and bounds checks before delegating to the device
// primitives. The zero value is not usable; Device must be set.
//
// An Accessor carries no state of its own beyond its options and is
// cheap to construct per call; the package-level functions do exactly
// that.
type Accessor struct {
	// Device is the target of every operation.
	Device Device

	// Unchecked elides the existence, rank, and bounds pre-checks.
	// Whatever the device primitive raises then surfaces directly.
	Unchecked bool

	// Logger receives one event per operation; nil disables tracing.
	Logger log.Logger

	// TraceID tags emitted events so traces from different accessors
	// can be told apart.
	TraceID string
}

// Has returns true iff the device exposes the property, i.e. iff Shape
// succeeds. It never errors and has no observable side effect.
func (a Accessor) Has(key property.Key) bool {
	_, err := a.Device.Shape(key)
	a.trace(log.OpProbe, key, nil, nil, nil)
	return err == nil
}

// HasName is Has with the key resolved from a property name.
func (a Accessor) HasName(name string) bool {
	return a.Has(property.New(name))
}

// Shape returns the property's shape, with device and property identity
// attached on failure.
func (a Accessor) Shape(key property.Key) (property.Shape, error) {
	shape, err := a.Device.Shape(key)
	return shape, identify(a.Device, key, err)
}

// Rank returns the property's number of index dimensions.
func (a Accessor) Rank(key property.Key) (int, error) {
	shape, err := a.Shape(key)
	return shape.Rank, err
}

// ElementType returns the property's element type.
func (a Accessor) ElementType(key property.Key) (property.DataType, error) {
	shape, err := a.Shape(key)
	return shape.Type, err
}

// Extent returns the property's per-dimension bounds. For rank-0
// properties it returns an empty extent without querying the device's
// Extent primitive.
func (a Accessor) Extent(key property.Key) ([]int, error) {
	shape, err := a.Shape(key)
	if err != nil {
		a.trace(log.OpExtent, key, nil, nil, err)
		return nil, err
	}
	if shape.Rank == 0 {
		a.trace(log.OpExtent, key, nil, nil, nil)
		return nil, nil
	}
	extent, err := a.Device.Extent(key)
	err = identify(a.Device, key, err)
	a.trace(log.OpExtent, key, nil, nil, err)
	return extent, err
}

// Get performs a checked indexed read and returns the value.
func (a Accessor) Get(key property.Key, indices ...int) (any, error) {
	value, err := a.get(key, indices)
	a.trace(log.OpRead, key, indices, value, err)
	return value, err
}

// GetName is Get with the key resolved from a property name.
func (a Accessor) GetName(name string, indices ...int) (any, error) {
	return a.Get(property.New(name), indices...)
}

// Set performs a checked indexed write. On success it returns the
// written value, supporting assignment-as-expression call sites.
func (a Accessor) Set(key property.Key, value any, indices ...int) (any, error) {
	err := a.set(key, value, indices)
	a.trace(log.OpWrite, key, indices, value, err)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// SetName is Set with the key resolved from a property name.
func (a Accessor) SetName(name string, value any, indices ...int) (any, error) {
	return a.Set(property.New(name), value, indices...)
}

func (a Accessor) get(key property.Key, indices []int) (any, error) {
	if !a.Unchecked {
		if _, err := a.precheck(key, indices); err != nil {
			return nil, err
		}
	}
	value, err := a.Device.Get(key, indices...)
	return value, identify(a.Device, key, err)
}

func (a Accessor) set(key property.Key, value any, indices []int) error {
	if !a.Unchecked {
		shape, err := a.precheck(key, indices)
		if err != nil {
			return err
		}
		if shape.Type != property.DataTypeUnknown && !shape.Type.Matches(value) {
			return property.TypeError(Label(a.Device), key, shape.Type, value)
		}
	}
	return identify(a.Device, key, a.Device.Set(key, value, indices...))
}

// precheck validates existence, rank, and bounds before a primitive
// call. It returns the shape so the write path can reuse it for type
// validation.
func (a Accessor) precheck(key property.Key, indices []int) (property.Shape, error) {
	shape, err := a.Device.Shape(key)
	if err != nil {
		return property.Shape{}, identify(a.Device, key, err)
	}
	if len(indices) != shape.Rank {
		return property.Shape{}, property.RankError(Label(a.Device), key, shape.Rank, len(indices))
	}
	if shape.Rank == 0 {
		return shape, nil
	}
	extent, err := a.Device.Extent(key)
	if err != nil {
		return property.Shape{}, identify(a.Device, key, err)
	}
	return shape, CheckIndices(Label(a.Device), key, extent, indices)
}

func (a Accessor) trace(op log.Op, key property.Key, indices []int, value any, err error) {
	if a.Logger == nil {
		return
	}
	event := log.Event{
		Timestamp: time.Now(),
		TraceID:   a.TraceID,
		DeviceID:  Label(a.Device),
		Property:  key.Name(),
		Op:        op,
		Checked:   !a.Unchecked,
		Indices:   indices,
	}
	if err != nil {
		event.Err = err.Error()
	} else if op == log.OpRead || op == log.OpWrite {
		event.Value = value
	}
	a.Logger.Log(event)
}

// CheckIndices validates indices against a declared extent, attaching
// device and property identity to any failure. Device implementations
// can call it instead of re-implementing bounds validation.
func CheckIndices(device string, key property.Key, extent, indices []int) error {
	if len(indices) != len(extent) {
		return property.RankError(device, key, len(extent), len(indices))
	}
	for dim, idx := range indices {
		if idx < 0 || idx >= extent[dim] {
			return property.IndexError(device, key, dim, idx, extent[dim])
		}
	}
	return nil
}

// Package-level entry points. Each is sugar over a default checked
// Accessor, so every access path shares one code path and one set of
// semantics.

// Has returns true iff the device exposes the property.
func Has(d Device, key property.Key) bool {
	return Accessor{Device: d}.Has(key)
}

// HasName is Has with the key resolved from a property name.
func HasName(d Device, name string) bool {
	return Accessor{Device: d}.HasName(name)
}

// Rank returns the property's number of index dimensions.
func Rank(d Device, key property.Key) (int, error) {
	return Accessor{Device: d}.Rank(key)
}

// ElementType returns the property's element type.
func ElementType(d Device, key property.Key) (property.DataType, error) {
	return Accessor{Device: d}.ElementType(key)
}

// Extent returns the property's per-dimension bounds.
func Extent(d Device, key property.Key) ([]int, error) {
	return Accessor{Device: d}.Extent(key)
}

// Read performs a checked indexed read.
func Read(d Device, key property.Key, indices ...int) (any, error) {
	return Accessor{Device: d}.Get(key, indices...)
}

// ReadName is Read with the key resolved from a property name.
func ReadName(d Device, name string, indices ...int) (any, error) {
	return Accessor{Device: d}.GetName(name, indices...)
}

// Write performs a checked indexed write and returns the written value.
func Write(d Device, key property.Key, value any, indices ...int) (any, error) {
	return Accessor{Device: d}.Set(key, value, indices...)
}

// WriteName is Write with the key resolved from a property name.
func WriteName(d Device, name string, value any, indices ...int) (any, error) {
	return Accessor{Device: d}.SetName(name, value, indices...)
}
