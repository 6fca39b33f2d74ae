package log

import (
	"time"
)

// Event represents a single property protocol operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TraceID groups events emitted by one accessor instance (UUID).
	TraceID string `cbor:"2,keyasint,omitempty"`

	// DeviceID identifies the device the operation targeted.
	DeviceID string `cbor:"3,keyasint"`

	// Property is the property name the operation targeted.
	Property string `cbor:"4,keyasint"`

	// Op is the operation that was performed.
	Op Op `cbor:"5,keyasint"`

	// Checked indicates whether the access layer ran its pre-checks.
	Checked bool `cbor:"6,keyasint,omitempty"`

	// Indices supplied to the operation (empty for scalars and probes).
	Indices []int `cbor:"7,keyasint,omitempty"`

	// Value read or written (reads and writes only).
	Value any `cbor:"8,keyasint,omitempty"`

	// Err is the failure message, empty on success.
	Err string `cbor:"9,keyasint,omitempty"`
}

// Failed returns true if the operation raised an error.
func (e Event) Failed() bool {
	return e.Err != ""
}

// Op identifies the kind of property operation an event describes.
type Op uint8

const (
	// OpRead is an indexed or scalar read.
	OpRead Op = 0
	// OpWrite is an indexed or scalar write.
	OpWrite Op = 1
	// OpProbe is an existence check (has).
	OpProbe Op = 2
	// OpBind is a bound-property construction.
	OpBind Op = 3
	// OpExtent is an extent query.
	OpExtent Op = 4
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpProbe:
		return "PROBE"
	case OpBind:
		return "BIND"
	case OpExtent:
		return "EXTENT"
	default:
		return "UNKNOWN"
	}
}
