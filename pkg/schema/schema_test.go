package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devprop-protocol/devprop-go/pkg/device"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

const thermoDef = `
id: thermo-1
description: "Room thermometer"
properties:
  - name: temperature
    type: float64
    access: readOnly
    default: 21.5
    unit: "°C"
    description: "Ambient temperature"
  - name: samples
    type: int64
    access: readWrite
    extent: [8]
    default: 0
`

func TestParseDeviceDef(t *testing.T) {
	def, err := ParseDeviceDef([]byte(thermoDef))
	require.NoError(t, err)

	assert.Equal(t, "thermo-1", def.ID)
	require.Len(t, def.Properties, 2)

	temp := def.Properties[0]
	assert.Equal(t, "temperature", temp.Name)
	assert.Equal(t, "float64", temp.Type)
	assert.Equal(t, "readOnly", temp.Access)
	assert.Empty(t, temp.Extent)
	assert.Equal(t, "°C", temp.Unit)

	samples := def.Properties[1]
	assert.Equal(t, []int{8}, samples.Extent)
}

func TestParseDeviceDefErrors(t *testing.T) {
	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := ParseDeviceDef([]byte("properties: ["))
		assert.Error(t, err)
	})

	t.Run("NoProperties", func(t *testing.T) {
		_, err := ParseDeviceDef([]byte("id: empty-dev"))
		assert.ErrorContains(t, err, "no properties")
	})
}

func TestBuildDevice(t *testing.T) {
	def, err := ParseDeviceDef([]byte(thermoDef))
	require.NoError(t, err)

	dev, err := BuildDevice(def)
	require.NoError(t, err)

	assert.Equal(t, "thermo-1", dev.DeviceID())

	shape, err := dev.Shape(property.New("temperature"))
	require.NoError(t, err)
	assert.Equal(t, property.Scalar(property.DataTypeFloat64), shape)

	v, err := device.Read(dev, property.New("temperature"))
	require.NoError(t, err)
	assert.Equal(t, 21.5, v)

	extent, err := device.Extent(dev, property.New("samples"))
	require.NoError(t, err)
	assert.Equal(t, []int{8}, extent)

	// YAML integer default is widened for the int64 element type.
	v, err = device.Read(dev, property.New("samples"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestBuildDeviceErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"unknown type",
			"id: d\nproperties:\n  - name: x\n    type: quaternion\n",
			"unknown type",
		},
		{
			"unknown access",
			"id: d\nproperties:\n  - name: x\n    type: bool\n    access: sometimes\n",
			"unknown access",
		},
		{
			"bad extent",
			"id: d\nproperties:\n  - name: x\n    type: int64\n    extent: [0]\n",
			"extent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDeviceDef([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = BuildDevice(def)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFloatDefaultCoercion(t *testing.T) {
	yaml := `
id: d
properties:
  - name: setpoint
    type: float64
    access: readWrite
    default: 20
`
	def, err := ParseDeviceDef([]byte(yaml))
	require.NoError(t, err)
	dev, err := BuildDevice(def)
	require.NoError(t, err)

	v, err := device.Read(dev, property.New("setpoint"))
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)
}

func TestLoadDevice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thermo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(thermoDef), 0644))

	dev, err := LoadDevice(path)
	require.NoError(t, err)
	assert.True(t, device.HasName(dev, "temperature"))

	_, err = LoadDevice(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
