// Package workcenter provides the Workcenter entity: a named station with an
// immutable phase affinity and a declared capacity. Capacity is carried as
// plain data and never enforced as an admission cap.
package workcenter
