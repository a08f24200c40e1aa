// Package kernel provides the domain primitives shared by the load and booking aggregates.
//
// The package includes:
//   - UUID: the identifier value object used by every aggregate
//   - Event and DomainEvent: metadata and contract for events raised by aggregates
//   - EventRecorder: an embeddable buffer of pending events, drained by the unit of work
//
// UUID is immutable and safe for concurrent use. EventRecorder is not; it lives
// inside an aggregate that is only touched by one operation at a time.
package kernel
