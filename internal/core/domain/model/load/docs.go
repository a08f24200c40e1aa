// Package load implements the Load aggregate: a freight posting by a shipper,
// its Facility and Details value objects and the load status machine.
//
// Key business rules:
//   - Status follows POSTED -> BOOKED -> POSTED, and any live status may become CANCELLED
//   - CANCELLED is terminal; cancelling again is allowed and changes nothing
//   - A cancelled load rejects Update
//   - Loading date is strictly before unloading date, truck count is at least 1, weight is positive
//
// Booking-driven transitions (first booking, last live booking gone) are decided by
// services.BookingCoordinator, which calls TransitionTo like any other caller.
package load
