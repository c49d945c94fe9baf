// Package pan provides the Pan entity: a single-use-at-a-time container
// resource claimed by production orders while they occupy the charging phase.
// The package enforces the single-claim rule at the entity level; the
// transition engine decides when claims are taken and released.
package pan
