// Package booking implements the Booking aggregate: a transporter's offer
// (Terms) against a load, with the PENDING -> ACCEPTED / REJECTED status machine.
//
// Key business rules:
//   - Only pending bookings can be accepted or rejected
//   - Rejected bookings cannot be updated; accepted bookings can
//   - A booking holds its load id and never the load itself
//   - Bookings are hard-deleted; MarkDeleted records the event before removal
package booking
