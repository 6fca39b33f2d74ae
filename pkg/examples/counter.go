package examples

import (
	"sync"

	"github.com/devprop-protocol/devprop-go/pkg/device"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Counter implements the device contract directly, without the model
// package: a single rank-0 read-write "count" property backed by a
// plain field. It shows the minimum a conforming device supplies.
type Counter struct {
	mu    sync.Mutex
	id    string
	count int64
}

var countKey = property.New("count")

// NewCounter creates a counter device starting at zero.
func NewCounter(id string) *Counter {
	return &Counter{id: id}
}

// DeviceID returns the device identifier.
func (c *Counter) DeviceID() string {
	return c.id
}

// Shape reports the single "count" property.
func (c *Counter) Shape(key property.Key) (property.Shape, error) {
	if key != countKey {
		return property.Shape{}, property.ErrNotFound
	}
	return property.Scalar(property.DataTypeInt64), nil
}

// Get returns the current count.
func (c *Counter) Get(key property.Key, indices ...int) (any, error) {
	if key != countKey {
		return nil, property.ErrNotFound
	}
	if len(indices) != 0 {
		return nil, property.RankError(c.id, key, 0, len(indices))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count, nil
}

// Set stores a new count. Any Go integer is accepted.
func (c *Counter) Set(key property.Key, value any, indices ...int) error {
	if key != countKey {
		return property.ErrNotFound
	}
	if len(indices) != 0 {
		return property.RankError(c.id, key, 0, len(indices))
	}
	n, ok := toInt64(value)
	if !ok {
		return property.TypeError(c.id, key, property.DataTypeInt64, value)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = n
	return nil
}

// Extent reports the implicit empty extent of the scalar property.
func (c *Counter) Extent(key property.Key) ([]int, error) {
	if key != countKey {
		return nil, property.ErrNotFound
	}
	return nil, nil
}

// Properties lists the single property.
func (c *Counter) Properties() []property.Key {
	return []property.Key{countKey}
}

// Increment adds one to the count and returns the new value.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// Compile-time contract checks.
var (
	_ device.Device     = (*Counter)(nil)
	_ device.Lister     = (*Counter)(nil)
	_ device.Identified = (*Counter)(nil)
)
