// Package examples provides reference device implementations built on
// the devprop-go library.
//
// The examples demonstrate:
//   - Declaring properties with the model package (shapes, access
//     modes, defaults, units)
//   - Implementing the device contract directly, without the model
//     package (Counter)
//   - Device-side updates of read-only properties (SetInternal)
//   - Live extents on resizable buffers
//
// Available examples:
//   - Thermometer: a rank-0 read-only sensor
//   - SampleBuffer: a rank-1 read-write, resizable buffer
//   - WeatherStation: a multi-property device with mixed ranks and
//     access modes
//   - Counter: a minimal hand-rolled device
//
// They serve as templates for real device implementations and as
// fixtures for the protocol's behavioral tests.
package examples
