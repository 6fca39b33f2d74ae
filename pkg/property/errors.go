package property

import (
	"errors"
	"fmt"
)

// Protocol errors. Every failure raised by a device or by the checked
// access layer wraps exactly one of these sentinels.
var (
	// ErrNotFound indicates the device does not expose the property.
	ErrNotFound = errors.New("property not found")

	// ErrIndexOutOfRange indicates an index outside the declared extent.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrReadNotSupported indicates a write-only property was read.
	ErrReadNotSupported = errors.New("property is not readable")

	// ErrWriteNotSupported indicates a read-only property was written.
	ErrWriteNotSupported = errors.New("property is not writable")

	// ErrTypeMismatch indicates a written value is incompatible with the
	// declared element type.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrRankMismatch indicates the number of supplied indices does not
	// match the declared rank.
	ErrRankMismatch = errors.New("index count does not match rank")
)

// NotFoundError returns an ErrNotFound carrying device and property identity.
func NotFoundError(device string, key Key) error {
	return fmt.Errorf("%w: %q on device %s", ErrNotFound, key.Name(), device)
}

// IndexError returns an ErrIndexOutOfRange for index in dimension dim,
// where the dimension has the given size.
func IndexError(device string, key Key, dim, index, size int) error {
	return fmt.Errorf("%w: %q on device %s: index %d not in [0,%d) for dimension %d",
		ErrIndexOutOfRange, key.Name(), device, index, size, dim)
}

// ReadError returns an ErrReadNotSupported carrying identity.
func ReadError(device string, key Key) error {
	return fmt.Errorf("%w: %q on device %s", ErrReadNotSupported, key.Name(), device)
}

// WriteError returns an ErrWriteNotSupported carrying identity.
func WriteError(device string, key Key) error {
	return fmt.Errorf("%w: %q on device %s", ErrWriteNotSupported, key.Name(), device)
}

// TypeError returns an ErrTypeMismatch describing the declared element
// type and the rejected value.
func TypeError(device string, key Key, want DataType, got any) error {
	return fmt.Errorf("%w: %q on device %s: want %s, got %T",
		ErrTypeMismatch, key.Name(), device, want, got)
}

// RankError returns an ErrRankMismatch describing the declared rank and
// the number of indices supplied.
func RankError(device string, key Key, rank, got int) error {
	return fmt.Errorf("%w: %q on device %s: rank %d, got %d indices",
		ErrRankMismatch, key.Name(), device, rank, got)
}
