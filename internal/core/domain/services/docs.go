// Package services provides domain services for the production tracking
// system: business logic spanning multiple aggregates that does not belong
// to any single one.
//
// The package includes:
//   - TransitionEngine: the state machine governing where a production
//     order may move, which resources must accompany each location, and
//     which pan claims each move takes and releases.
package services
