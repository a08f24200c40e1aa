package booking

import (
	"fmt"
	"strings"

	"loadbooking/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Accepted and Rejected are final.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota

	// Pending is the initial status of a carrier offer.
	Pending

	// Accepted means the shipper took the offer. At most one per load.
	Accepted

	// Rejected means the offer was declined, explicitly or by another booking being accepted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

// ParseStatus converts the wire name into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid booking status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid booking status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsLive reports whether the booking still holds its load in BOOKED.
func (s Status) IsLive() bool {
	return s == Pending || s == Accepted
}

// Accept returns Accepted for a pending booking.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewBusinessRuleErrorf("only pending bookings can be accepted, booking is %s", s)
	}
	return Accepted, nil
}

// Reject returns Rejected for a pending booking.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewBusinessRuleErrorf("only pending bookings can be rejected, booking is %s", s)
	}
	return Rejected, nil
}
