package load

import (
	"fmt"
	"strings"

	"loadbooking/internal/pkg/errs"
)

// Status is the lifecycle state of a load.
//
// State transitions:
//
//	Posted ──> Booked ──> Posted
//	  │          │
//	  └──────────┴──────> Cancelled (terminal)
//
// Every status change goes through TransitionTo or Cancel so that the table in
// allowedTransitions is the single source of truth.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota

	// Posted is the initial status; the load is open for bookings.
	Posted

	// Booked means at least one live booking exists for the load.
	Booked

	// Cancelled is terminal. Cancelling is the soft delete of a load.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

// allowedTransitions is the load state machine.
func allowedTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no transitions
	return map[Status][]Status{
		Posted:    {Booked, Cancelled},
		Booked:    {Posted, Cancelled},
		Cancelled: {},
	}
}

// ParseStatus converts the wire name ("POSTED", "BOOKED", "CANCELLED") into a Status.
// Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid load status", s))
}

// Validate returns an error for Unknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid load status", s))
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

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move is allowed.
// An illegal move yields a BusinessRuleError naming both statuses.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewBusinessRuleErrorf("invalid status transition from %s to %s", s, target)
	}
	return target, nil
}
