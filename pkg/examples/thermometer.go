package examples

import (
	"github.com/devprop-protocol/devprop-go/pkg/model"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Thermometer is a minimal sensor device: one rank-0 read-only
// temperature reading plus a static unit string. Consumers read it
// through the access layer; the owning code feeds new readings in with
// UpdateTemperature.
type Thermometer struct {
	device *model.Device
}

// NewThermometer creates a thermometer reporting 21.5 degrees.
func NewThermometer(id string) *Thermometer {
	return &Thermometer{
		device: model.MustNewDevice(id,
			model.Metadata{
				Name:        "temperature",
				Type:        property.DataTypeFloat64,
				Access:      model.AccessReadOnly,
				Default:     21.5,
				Unit:        "°C",
				Description: "Ambient temperature",
			},
			model.Metadata{
				Name:        "unit",
				Type:        property.DataTypeString,
				Access:      model.AccessReadOnly,
				Default:     "celsius",
				Description: "Temperature scale",
			},
		),
	}
}

// Device returns the underlying property device.
func (t *Thermometer) Device() *model.Device {
	return t.device
}

// UpdateTemperature feeds a new reading into the read-only property.
func (t *Thermometer) UpdateTemperature(celsius float64) error {
	return t.device.SetInternal("temperature", celsius)
}
