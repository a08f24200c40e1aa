package booking

import (
	"errors"
	"fmt"
	"strings"

	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrTermsIsNotConstructed = errors.New("Terms must be created via NewTerms constructor")

// Terms is the carrier's offer: who transports and for how much.
type Terms struct { //nolint:recvcheck //using for validation
	transporterID string
	proposedRate  float64
	comment       string

	guard guard.ConstructorGuard
}

// NewTerms validates an offer. Comment is optional.
func NewTerms(transporterID string, proposedRate float64, comment string) (Terms, error) {
	t := Terms{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setTransporterID(transporterID),
		t.setProposedRate(proposedRate),
	); err != nil {
		return Terms{}, err
	}

	return t, nil
}

func (t Terms) Validate() error {
	return t.guard.Validate(ErrTermsIsNotConstructed)
}

func (t Terms) TransporterID() string {
	return t.transporterID
}

func (t Terms) ProposedRate() float64 {
	return t.proposedRate
}

func (t Terms) Comment() string {
	return t.comment
}

func (t *Terms) setTransporterID(transporterID string) error {
	if strings.TrimSpace(transporterID) == "" {
		return errs.NewValueIsRequiredError("transporterId")
	}
	t.transporterID = transporterID
	return nil
}

func (t *Terms) setProposedRate(rate float64) error {
	if !(rate > 0) {
		return errs.NewValueIsInvalidErrorWithCause("proposedRate", fmt.Errorf("%v is not greater than 0", rate))
	}
	t.proposedRate = rate
	return nil
}
