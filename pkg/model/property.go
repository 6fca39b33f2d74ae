package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Declaration errors.
var (
	ErrBadDeclaration = errors.New("invalid property declaration")
)

// Metadata declares a property: its name, element type, rank, initial
// extent, access mode, and descriptive fields.
type Metadata struct {
	// Name is the property name.
	Name string

	// Type is the element type of the property value.
	Type property.DataType

	// Rank is the number of index dimensions (0 for scalars).
	// Fixed for the lifetime of the device.
	Rank int

	// Extent is the initial per-dimension size. Required when Rank > 0,
	// with one positive size per dimension.
	Extent []int

	// Access defines the allowed access directions.
	Access AccessMode

	// Default is the initial value of every cell. Must match Type when
	// set; nil leaves cells unset.
	Default any

	// Unit is the unit of measurement (e.g. "W", "°C").
	Unit string

	// Description is a human-readable description.
	Description string
}

// Shape returns the declared shape.
func (m Metadata) Shape() property.Shape {
	return property.Shape{Type: m.Type, Rank: m.Rank}
}

// Key returns the property key for the declared name.
func (m Metadata) Key() property.Key {
	return property.New(m.Name)
}

// validate checks the declaration for internal consistency.
func (m Metadata) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty name", ErrBadDeclaration)
	}
	if m.Rank < 0 {
		return fmt.Errorf("%w: %q: negative rank %d", ErrBadDeclaration, m.Name, m.Rank)
	}
	if len(m.Extent) != m.Rank {
		return fmt.Errorf("%w: %q: rank %d with %d extent sizes",
			ErrBadDeclaration, m.Name, m.Rank, len(m.Extent))
	}
	for dim, n := range m.Extent {
		if n <= 0 {
			return fmt.Errorf("%w: %q: extent size %d in dimension %d",
				ErrBadDeclaration, m.Name, n, dim)
		}
	}
	if m.Default != nil && m.Type != property.DataTypeUnknown && !m.Type.Matches(m.Default) {
		return fmt.Errorf("%w: %q: default %T does not match element type %s",
			ErrBadDeclaration, m.Name, m.Default, m.Type)
	}
	return nil
}

// Property is a declared property instance: metadata plus value storage.
// Rank>0 values are stored row-major in a flat cell slice.
type Property struct {
	mu     sync.RWMutex
	meta   Metadata
	extent []int
	cells  []any
}

// newProperty creates the property and fills every cell with the default.
func newProperty(meta Metadata) (*Property, error) {
	if err := meta.validate(); err != nil {
		return nil, err
	}
	p := &Property{
		meta:   meta,
		extent: append([]int(nil), meta.Extent...),
	}
	p.cells = make([]any, cellCount(p.extent))
	for i := range p.cells {
		p.cells[i] = meta.Default
	}
	return p, nil
}

// Metadata returns the property declaration.
func (p *Property) Metadata() Metadata {
	return p.meta
}

// Shape returns the declared shape.
func (p *Property) Shape() property.Shape {
	return p.meta.Shape()
}

// Extent returns a copy of the current per-dimension sizes.
func (p *Property) Extent() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]int(nil), p.extent...)
}

// get returns the value at indices, enforcing read access, rank, and
// bounds. The device label is threaded through for error identity.
func (p *Property) get(device string, indices []int) (any, error) {
	key := p.meta.Key()
	if !p.meta.Access.CanRead() {
		return nil, property.ReadError(device, key)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	offset, err := p.offset(device, key, indices)
	if err != nil {
		return nil, err
	}
	return p.cells[offset], nil
}

// set stores value at indices, enforcing write access, element type,
// rank, and bounds.
func (p *Property) set(device string, value any, indices []int) error {
	key := p.meta.Key()
	if !p.meta.Access.CanWrite() {
		return property.WriteError(device, key)
	}
	return p.setInternal(device, value, indices)
}

// setInternal stores value without checking write access. Device
// implementations use it to update read-only properties (measurements).
func (p *Property) setInternal(device string, value any, indices []int) error {
	key := p.meta.Key()
	if p.meta.Type != property.DataTypeUnknown && !p.meta.Type.Matches(value) {
		return property.TypeError(device, key, p.meta.Type, value)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	offset, err := p.offset(device, key, indices)
	if err != nil {
		return err
	}
	p.cells[offset] = value
	return nil
}

// resize replaces the extent of a rank>0 property, preserving cells
// that remain in bounds and filling new cells with the default.
func (p *Property) resize(device string, extent []int) error {
	key := p.meta.Key()
	if len(extent) != p.meta.Rank {
		return property.RankError(device, key, p.meta.Rank, len(extent))
	}
	for dim, n := range extent {
		if n <= 0 {
			return fmt.Errorf("%w: %q: extent size %d in dimension %d",
				ErrBadDeclaration, p.meta.Name, n, dim)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	newExtent := append([]int(nil), extent...)
	newCells := make([]any, cellCount(newExtent))
	for i := range newCells {
		newCells[i] = p.meta.Default
	}

	// Copy the overlapping region cell by cell, walking the new index
	// space with an odometer.
	if len(p.cells) > 0 && len(newCells) > 0 {
		indices := make([]int, len(newExtent))
		for {
			if inBounds(p.extent, indices) {
				newCells[offsetOf(newExtent, indices)] = p.cells[offsetOf(p.extent, indices)]
			}
			if !increment(indices, newExtent) {
				break
			}
		}
	}

	p.extent = newExtent
	p.cells = newCells
	return nil
}

// offset validates rank and bounds, then returns the row-major cell
// offset. Callers must hold the mutex.
func (p *Property) offset(device string, key property.Key, indices []int) (int, error) {
	if len(indices) != p.meta.Rank {
		return 0, property.RankError(device, key, p.meta.Rank, len(indices))
	}
	for dim, idx := range indices {
		if idx < 0 || idx >= p.extent[dim] {
			return 0, property.IndexError(device, key, dim, idx, p.extent[dim])
		}
	}
	return offsetOf(p.extent, indices), nil
}

// cellCount returns the number of cells in an extent (1 for rank 0).
func cellCount(extent []int) int {
	count := 1
	for _, n := range extent {
		count *= n
	}
	return count
}

// offsetOf maps indices to a row-major offset within extent.
func offsetOf(extent, indices []int) int {
	offset := 0
	for dim, idx := range indices {
		offset = offset*extent[dim] + idx
	}
	return offset
}

// inBounds reports whether indices fall inside extent in every dimension.
func inBounds(extent, indices []int) bool {
	for dim, idx := range indices {
		if idx >= extent[dim] {
			return false
		}
	}
	return true
}

// increment advances indices odometer-style within extent.
// Returns false after the last position.
func increment(indices, extent []int) bool {
	for dim := len(indices) - 1; dim >= 0; dim-- {
		indices[dim]++
		if indices[dim] < extent[dim] {
			return true
		}
		indices[dim] = 0
	}
	return false
}
