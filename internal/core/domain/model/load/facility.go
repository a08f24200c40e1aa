package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility describes where and when the freight is picked up and dropped off.
// The loading date is strictly before the unloading date.
type Facility struct { //nolint:recvcheck //using for validation
	loadingPoint   string
	unloadingPoint string
	loadingDate    time.Time
	unloadingDate  time.Time

	guard guard.ConstructorGuard
}

// NewFacility validates and builds a Facility. All field errors are reported together.
func NewFacility(loadingPoint, unloadingPoint string, loadingDate, unloadingDate time.Time) (Facility, error) {
	f := Facility{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setLoadingPoint(loadingPoint),
		f.setUnloadingPoint(unloadingPoint),
		f.setDates(loadingDate, unloadingDate),
	); err != nil {
		return Facility{}, err
	}

	return f, nil
}

func (f Facility) Validate() error {
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

func (f Facility) LoadingPoint() string {
	return f.loadingPoint
}

func (f Facility) UnloadingPoint() string {
	return f.unloadingPoint
}

func (f Facility) LoadingDate() time.Time {
	return f.loadingDate
}

func (f Facility) UnloadingDate() time.Time {
	return f.unloadingDate
}

// IsEqual compares facilities by value. Dates are compared as instants.
func (f Facility) IsEqual(other Facility) bool {
	return f.loadingPoint == other.loadingPoint &&
		f.unloadingPoint == other.unloadingPoint &&
		f.loadingDate.Equal(other.loadingDate) &&
		f.unloadingDate.Equal(other.unloadingDate)
}

func (f *Facility) setLoadingPoint(point string) error {
	if strings.TrimSpace(point) == "" {
		return errs.NewValueIsRequiredError("loadingPoint")
	}
	f.loadingPoint = point
	return nil
}

func (f *Facility) setUnloadingPoint(point string) error {
	if strings.TrimSpace(point) == "" {
		return errs.NewValueIsRequiredError("unloadingPoint")
	}
	f.unloadingPoint = point
	return nil
}

func (f *Facility) setDates(loadingDate, unloadingDate time.Time) error {
	var err error
	if loadingDate.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("loadingDate"))
	}
	if unloadingDate.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("unloadingDate"))
	}
	if err != nil {
		return err
	}

	if !loadingDate.Before(unloadingDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"unloadingDate",
			fmt.Errorf("%s is not after loading date %s",
				unloadingDate.Format(time.RFC3339), loadingDate.Format(time.RFC3339)),
		)
	}

	f.loadingDate = loadingDate
	f.unloadingDate = unloadingDate
	return nil
}
