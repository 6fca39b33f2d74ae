// Package device defines the capability contract property-bearing
// devices implement, and the uniform access layer consumers use.
//
// # Contract
//
// A Device supplies four primitives: Shape, Get, Set, and Extent.
// Shape is the sole source of truth for property existence; there is no
// central registry. Everything else (existence probing, rank and
// element-type projection, checked indexed access, name-based sugar,
// bound properties) is derived here exactly once and is never
// reimplemented per device.
//
// # Checked and unchecked access
//
// The default access path validates existence, rank, and bounds before
// delegating to the device primitive, so failures carry device and
// property identity. An Accessor with Unchecked set elides the
// pre-checks for hot paths; whatever the device primitive raises then
// surfaces directly. Checked mode is the stable public surface.
//
// # Entry points
//
// All entry points converge on the same code path and are semantically
// identical:
//
//	device.Read(dev, key, i, j)        // key-based
//	device.ReadName(dev, "samples", i) // name-based sugar
//	bp, _ := device.Bind(key, dev)     // bound property
//	bp.Get(i)
//
// # Concurrency
//
// This package adds no locking. Concurrent access through any of its
// entry points is safe exactly to the extent the underlying Device
// guarantees safety; no ordering between concurrent operations is
// defined here. A Device must outlive every BoundProperty bound to it.
package device
