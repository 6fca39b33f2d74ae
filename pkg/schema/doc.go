// Package schema loads declarative device definitions from YAML and
// builds model devices from them.
//
// A definition file looks like:
//
//	id: thermo-1
//	description: "Room thermometer"
//	properties:
//	  - name: temperature
//	    type: float64
//	    access: readOnly
//	    default: 21.5
//	    unit: "°C"
//	  - name: samples
//	    type: int64
//	    access: readWrite
//	    extent: [8]
//
// Rank is implied by the extent: a property without an extent is a
// scalar; an extent with N sizes declares a rank-N property.
package schema
