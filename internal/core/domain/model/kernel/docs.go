// Package kernel provides shared value objects for the production tracking
// domain: UUID identifiers and the Phase/Buffer/Location vocabulary of the
// manufacturing pipeline.
//
// The pipeline is a fixed five-position sequence. Three phases (charging,
// mixing, extrusion) are interleaved with two holding buffers, and Location
// models an order's position as a tagged union over the two kinds. Phases
// are totally ordered and buffers know which phases they border, which is
// what the transition engine's sequencing rules are built on.
//
// All types in this package are immutable value objects safe for concurrent
// use. Zero values are invalid and detected by Validate.
package kernel
