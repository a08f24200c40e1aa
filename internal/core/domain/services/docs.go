// Package services provides domain services for rules that span the load and
// booking aggregates.
//
// The package includes:
//   - BookingCoordinator: places new bookings, runs the accept cascade and the
//     load reversion check
//
// Domain services hold no state and perform no I/O; command handlers load the
// aggregates, call the service and persist the result in one transaction.
package services
