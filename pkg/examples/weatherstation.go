package examples

import (
	"github.com/devprop-protocol/devprop-go/pkg/model"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// WeatherStation is a richer device mixing ranks and access modes:
//
//   - temperature, humidity: rank-0 read-only measurements
//   - setpoint: rank-0 read-write control value
//   - calibration: rank-0 write-only adjustment
//   - wind: rank-1 read-only hourly wind speeds
//   - history: rank-2 read-only temperature grid (day x hour)
type WeatherStation struct {
	device *model.Device
}

// NewWeatherStation creates a weather station with 7 days of hourly history.
func NewWeatherStation(id string) *WeatherStation {
	return &WeatherStation{
		device: model.MustNewDevice(id,
			model.Metadata{
				Name:        "temperature",
				Type:        property.DataTypeFloat64,
				Access:      model.AccessReadOnly,
				Default:     15.0,
				Unit:        "°C",
				Description: "Outside temperature",
			},
			model.Metadata{
				Name:        "humidity",
				Type:        property.DataTypeFloat64,
				Access:      model.AccessReadOnly,
				Default:     55.0,
				Unit:        "%",
				Description: "Relative humidity",
			},
			model.Metadata{
				Name:        "setpoint",
				Type:        property.DataTypeFloat64,
				Access:      model.AccessReadWrite,
				Default:     20.0,
				Unit:        "°C",
				Description: "Target temperature",
			},
			model.Metadata{
				Name:        "calibration",
				Type:        property.DataTypeFloat64,
				Access:      model.AccessWriteOnly,
				Default:     0.0,
				Description: "Sensor offset adjustment",
			},
			model.Metadata{
				Name:        "wind",
				Type:        property.DataTypeFloat64,
				Rank:        1,
				Extent:      []int{24},
				Access:      model.AccessReadOnly,
				Default:     0.0,
				Unit:        "m/s",
				Description: "Hourly wind speed",
			},
			model.Metadata{
				Name:        "history",
				Type:        property.DataTypeFloat64,
				Rank:        2,
				Extent:      []int{7, 24},
				Access:      model.AccessReadOnly,
				Default:     0.0,
				Unit:        "°C",
				Description: "Temperature history, day x hour",
			},
		),
	}
}

// Device returns the underlying property device.
func (w *WeatherStation) Device() *model.Device {
	return w.device
}

// RecordTemperature stores a reading into the current value and the
// history grid.
func (w *WeatherStation) RecordTemperature(day, hour int, celsius float64) error {
	if err := w.device.SetInternal("temperature", celsius); err != nil {
		return err
	}
	return w.device.SetInternal("history", celsius, day, hour)
}

// RecordWind stores an hourly wind speed reading.
func (w *WeatherStation) RecordWind(hour int, speed float64) error {
	return w.device.SetInternal("wind", speed, hour)
}
