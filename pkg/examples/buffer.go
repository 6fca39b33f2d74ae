package examples

import (
	"github.com/devprop-protocol/devprop-go/pkg/model"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// SampleBuffer is a rank-1 read-write buffer of n int64 samples.
// Its extent is live: Grow changes the reported bounds while the
// declared rank stays fixed, which is the behavior bound properties
// rely on when they cache the shape but query the extent per call.
type SampleBuffer struct {
	device *model.Device
}

// NewSampleBuffer creates a buffer exposing a "samples" property with
// extent [n].
func NewSampleBuffer(id string, n int) *SampleBuffer {
	return &SampleBuffer{
		device: model.MustNewDevice(id,
			model.Metadata{
				Name:        "samples",
				Type:        property.DataTypeInt64,
				Rank:        1,
				Extent:      []int{n},
				Access:      model.AccessReadWrite,
				Default:     int64(0),
				Description: "Sample storage",
			},
		),
	}
}

// Device returns the underlying property device.
func (b *SampleBuffer) Device() *model.Device {
	return b.device
}

// Grow resizes the buffer to n samples, preserving those still in bounds.
func (b *SampleBuffer) Grow(n int) error {
	return b.device.Resize("samples", []int{n})
}
