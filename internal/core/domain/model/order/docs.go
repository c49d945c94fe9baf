// Package order provides the ProductionOrder aggregate root and its
// lifecycle Status for the production tracking system.
//
// A production order moves through a fixed pipeline of three phases
// interleaved with two buffers. The aggregate enforces the structural
// invariants between location and resource bindings (workcenter required in
// phases, pan required in charging, nothing bound in buffers), while the
// sequencing rules between locations live in the domain services package.
//
// Order numbers are globally unique and immutable; uniqueness is enforced
// by the persistence layer at creation time.
package order
