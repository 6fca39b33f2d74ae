package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/devprop-protocol/devprop-go/pkg/device"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Device errors.
var (
	ErrDuplicateProperty = errors.New("duplicate property name")
)

// Device is a declarative property registry implementing the device
// capability contract. Properties are declared up front (or added with
// AddProperty); values are stored per property behind a mutex, so the
// device is safe for concurrent access.
type Device struct {
	mu    sync.RWMutex
	id    string
	props map[string]*Property
	order []string
}

// NewDevice creates a device from property declarations.
// An empty id is replaced with a generated UUID.
func NewDevice(id string, metas ...Metadata) (*Device, error) {
	if id == "" {
		id = uuid.NewString()
	}
	d := &Device{
		id:    id,
		props: make(map[string]*Property),
	}
	for _, meta := range metas {
		if err := d.AddProperty(meta); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustNewDevice is NewDevice panicking on invalid declarations.
// Intended for static device definitions.
func MustNewDevice(id string, metas ...Metadata) *Device {
	d, err := NewDevice(id, metas...)
	if err != nil {
		panic(fmt.Sprintf("model: invalid device definition: %v", err))
	}
	return d
}

// DeviceID returns the device identifier.
func (d *Device) DeviceID() string {
	return d.id
}

// AddProperty declares an additional property on the device.
// Returns an error if a property with the same name already exists.
func (d *Device) AddProperty(meta Metadata) error {
	prop, err := newProperty(meta)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.props[meta.Name]; exists {
		return fmt.Errorf("%w: %q on device %s", ErrDuplicateProperty, meta.Name, d.id)
	}
	d.props[meta.Name] = prop
	d.order = append(d.order, meta.Name)
	return nil
}

// Property returns the declared property for a key.
func (d *Device) Property(key property.Key) (*Property, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	prop, exists := d.props[key.Name()]
	if !exists {
		return nil, property.NotFoundError(d.id, key)
	}
	return prop, nil
}

// Shape returns the declared shape of a property.
func (d *Device) Shape(key property.Key) (property.Shape, error) {
	prop, err := d.Property(key)
	if err != nil {
		return property.Shape{}, err
	}
	return prop.Shape(), nil
}

// Get returns the value at indices.
func (d *Device) Get(key property.Key, indices ...int) (any, error) {
	prop, err := d.Property(key)
	if err != nil {
		return nil, err
	}
	return prop.get(d.id, indices)
}

// Set stores value at indices, enforcing access mode and element type.
func (d *Device) Set(key property.Key, value any, indices ...int) error {
	prop, err := d.Property(key)
	if err != nil {
		return err
	}
	return prop.set(d.id, value, indices)
}

// Extent returns the current per-dimension sizes of a property.
func (d *Device) Extent(key property.Key) ([]int, error) {
	prop, err := d.Property(key)
	if err != nil {
		return nil, err
	}
	return prop.Extent(), nil
}

// Properties returns the declared property keys in declaration order.
func (d *Device) Properties() []property.Key {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]property.Key, 0, len(d.order))
	for _, name := range d.order {
		keys = append(keys, property.New(name))
	}
	return keys
}

// SetInternal stores a value without checking write access. Device
// implementations use it to update read-only properties, e.g. to feed
// new measurements into the model.
func (d *Device) SetInternal(name string, value any, indices ...int) error {
	prop, err := d.Property(property.New(name))
	if err != nil {
		return err
	}
	return prop.setInternal(d.id, value, indices)
}

// Resize replaces the extent of a rank>0 property. The rank itself is
// fixed at declaration time and cannot change. Cells still in bounds
// keep their values; new cells take the declared default.
func (d *Device) Resize(name string, extent []int) error {
	prop, err := d.Property(property.New(name))
	if err != nil {
		return err
	}
	return prop.resize(d.id, extent)
}

// Compile-time contract checks.
var (
	_ device.Device     = (*Device)(nil)
	_ device.Lister     = (*Device)(nil)
	_ device.Identified = (*Device)(nil)
)
