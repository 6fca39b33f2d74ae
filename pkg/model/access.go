package model

// AccessMode flags describe the allowed directions of property access.
type AccessMode uint8

const (
	// AccessRead allows reading the property.
	AccessRead AccessMode = 1 << iota

	// AccessWrite allows writing the property.
	AccessWrite

	// Common access combinations.

	// AccessReadOnly is read without write.
	AccessReadOnly = AccessRead

	// AccessWriteOnly is write without read.
	AccessWriteOnly = AccessWrite

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a AccessMode) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a AccessMode) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as a string.
func (a AccessMode) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}
