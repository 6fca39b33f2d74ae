package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devprop-protocol/devprop-go/pkg/model"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// RawDeviceDef represents a device definition loaded from YAML.
type RawDeviceDef struct {
	ID          string           `yaml:"id"`
	Description string           `yaml:"description"`
	Properties  []RawPropertyDef `yaml:"properties"`
}

// RawPropertyDef represents a property definition.
type RawPropertyDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`   // "bool", "int64", "float64", "string", "bytes", "time", ...
	Access      string `yaml:"access"` // "readOnly", "readWrite", "writeOnly"
	Extent      []int  `yaml:"extent"` // empty for scalars; one size per dimension otherwise
	Default     any    `yaml:"default"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
}

// ParseDeviceDef parses a YAML device definition.
func ParseDeviceDef(data []byte) (*RawDeviceDef, error) {
	var def RawDeviceDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse device definition: %w", err)
	}
	if len(def.Properties) == 0 {
		return nil, fmt.Errorf("device definition declares no properties")
	}
	return &def, nil
}

// LoadDeviceDef reads and parses a YAML device definition file.
func LoadDeviceDef(path string) (*RawDeviceDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device definition: %w", err)
	}
	def, err := ParseDeviceDef(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// BuildDevice constructs a model device from a parsed definition.
func BuildDevice(def *RawDeviceDef) (*model.Device, error) {
	metas := make([]model.Metadata, 0, len(def.Properties))
	for _, raw := range def.Properties {
		meta, err := buildMetadata(raw)
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return model.NewDevice(def.ID, metas...)
}

// LoadDevice is LoadDeviceDef followed by BuildDevice.
func LoadDevice(path string) (*model.Device, error) {
	def, err := LoadDeviceDef(path)
	if err != nil {
		return nil, err
	}
	return BuildDevice(def)
}

func buildMetadata(raw RawPropertyDef) (model.Metadata, error) {
	dataType, err := parseDataType(raw.Type)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("property %q: %w", raw.Name, err)
	}
	access, err := parseAccess(raw.Access)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("property %q: %w", raw.Name, err)
	}
	return model.Metadata{
		Name:        raw.Name,
		Type:        dataType,
		Rank:        len(raw.Extent),
		Extent:      raw.Extent,
		Access:      access,
		Default:     coerceDefault(dataType, raw.Default),
		Unit:        raw.Unit,
		Description: raw.Description,
	}, nil
}

// parseDataType maps a YAML type name to a DataType.
func parseDataType(s string) (property.DataType, error) {
	types := map[string]property.DataType{
		"bool":    property.DataTypeBool,
		"int8":    property.DataTypeInt8,
		"int16":   property.DataTypeInt16,
		"int32":   property.DataTypeInt32,
		"int64":   property.DataTypeInt64,
		"uint8":   property.DataTypeUint8,
		"uint16":  property.DataTypeUint16,
		"uint32":  property.DataTypeUint32,
		"uint64":  property.DataTypeUint64,
		"float32": property.DataTypeFloat32,
		"float64": property.DataTypeFloat64,
		"string":  property.DataTypeString,
		"bytes":   property.DataTypeBytes,
		"time":    property.DataTypeTime,
	}
	t, ok := types[s]
	if !ok {
		return property.DataTypeUnknown, fmt.Errorf("unknown type %q", s)
	}
	return t, nil
}

// parseAccess maps a YAML access string to an AccessMode.
// An empty string defaults to readOnly, the safe direction.
func parseAccess(s string) (model.AccessMode, error) {
	switch s {
	case "", "readOnly":
		return model.AccessReadOnly, nil
	case "readWrite":
		return model.AccessReadWrite, nil
	case "writeOnly":
		return model.AccessWriteOnly, nil
	default:
		return 0, fmt.Errorf("unknown access %q", s)
	}
}

// coerceDefault widens YAML-decoded defaults to the declared element
// type. YAML decodes whole numbers as int, which would otherwise be
// rejected for float properties and stored oddly for sized integers.
func coerceDefault(t property.DataType, v any) any {
	if v == nil {
		return nil
	}
	switch t {
	case property.DataTypeFloat32, property.DataTypeFloat64:
		switch n := v.(type) {
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	case property.DataTypeInt8, property.DataTypeInt16, property.DataTypeInt32, property.DataTypeInt64,
		property.DataTypeUint8, property.DataTypeUint16, property.DataTypeUint32, property.DataTypeUint64:
		if n, ok := v.(int); ok {
			return int64(n)
		}
	case property.DataTypeBytes:
		if s, ok := v.(string); ok {
			return []byte(s)
		}
	}
	return v
}
