package property

import (
	"fmt"
	"time"
)

// DataType represents the element type of a property value.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeBool
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeUint8
	DataTypeUint16
	DataTypeUint32
	DataTypeUint64
	DataTypeFloat32
	DataTypeFloat64
	DataTypeString
	DataTypeBytes
	DataTypeTime
)

// String returns the data type name.
func (d DataType) String() string {
	names := []string{
		"unknown", "bool", "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64", "float32", "float64",
		"string", "bytes", "time",
	}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// TypeOf returns the DataType describing a Go value.
// Returns DataTypeUnknown for nil and for unsupported types.
func TypeOf(value any) DataType {
	switch value.(type) {
	case bool:
		return DataTypeBool
	case int8:
		return DataTypeInt8
	case int16:
		return DataTypeInt16
	case int32:
		return DataTypeInt32
	case int, int64:
		return DataTypeInt64
	case uint8:
		return DataTypeUint8
	case uint16:
		return DataTypeUint16
	case uint32:
		return DataTypeUint32
	case uint, uint64:
		return DataTypeUint64
	case float32:
		return DataTypeFloat32
	case float64:
		return DataTypeFloat64
	case string:
		return DataTypeString
	case []byte:
		return DataTypeBytes
	case time.Time:
		return DataTypeTime
	default:
		return DataTypeUnknown
	}
}

// Matches reports whether a Go value is acceptable for this element type.
// Integer element types accept any Go integer; float element types accept
// any numeric value. Everything else requires the exact Go type.
func (d DataType) Matches(value any) bool {
	switch d {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64,
		DataTypeUint8, DataTypeUint16, DataTypeUint32, DataTypeUint64:
		return isInteger(value)
	case DataTypeFloat32, DataTypeFloat64:
		return isNumeric(value)
	case DataTypeBool:
		_, ok := value.(bool)
		return ok
	case DataTypeString:
		_, ok := value.(string)
		return ok
	case DataTypeBytes:
		_, ok := value.([]byte)
		return ok
	case DataTypeTime:
		_, ok := value.(time.Time)
		return ok
	default:
		return false
	}
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return isInteger(v)
	}
}

// Shape describes a property's element type and rank.
// Rank 0 is a scalar; rank N >= 1 requires N indices per access.
// The shape of a property is fixed for the lifetime of its device type.
type Shape struct {
	// Type is the element type of the property value.
	Type DataType

	// Rank is the number of index dimensions (0 for scalars).
	Rank int
}

// Scalar returns the shape of a rank-0 property with the given element type.
func Scalar(t DataType) Shape {
	return Shape{Type: t}
}

// Vector returns the shape of a rank-1 property with the given element type.
func Vector(t DataType) Shape {
	return Shape{Type: t, Rank: 1}
}

// ShapeOf returns the scalar shape describing a Go value.
func ShapeOf(value any) Shape {
	return Scalar(TypeOf(value))
}

// IsScalar returns true if the shape has rank 0.
func (s Shape) IsScalar() bool {
	return s.Rank == 0
}

// String returns a compact description, e.g. "float64" or "int32[2]".
func (s Shape) String() string {
	if s.Rank == 0 {
		return s.Type.String()
	}
	return fmt.Sprintf("%s[%d]", s.Type, s.Rank)
}
