// Package model provides a declarative, map-backed device for
// implementors who would rather describe their properties than
// hand-write the four device primitives.
//
// A Device is built from Metadata declarations:
//
//	dev, err := model.NewDevice("thermo-1",
//		model.Metadata{
//			Name:    "temperature",
//			Type:    property.DataTypeFloat64,
//			Access:  model.AccessReadOnly,
//			Default: 21.5,
//			Unit:    "°C",
//		},
//	)
//
// The resulting device implements device.Device, enumerates its
// properties (device.Lister), and carries a stable identifier
// (device.Identified). Values live in per-property storage guarded by a
// read-write mutex, so a model.Device is safe for concurrent use.
//
// Declared ranks are fixed for the device's lifetime; extents are not.
// Resize grows or shrinks a rank>0 property while preserving the cells
// that remain in bounds, which is exactly the live-extent behavior the
// access layer expects.
package model
