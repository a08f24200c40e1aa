package load

import (
	"errors"
	"fmt"
	"strings"

	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrDetailsIsNotConstructed = errors.New("Details must be created via NewDetails constructor")

// Details groups every mutable attribute of a load. Update replaces it as a whole.
type Details struct { //nolint:recvcheck //using for validation
	shipperID   string
	facility    Facility
	productType string
	truckType   string
	truckCount  int
	weight      float64
	comment     string

	guard guard.ConstructorGuard
}

// NewDetails validates the load attributes. Comment is optional.
func NewDetails(
	shipperID string,
	facility Facility,
	productType string,
	truckType string,
	truckCount int,
	weight float64,
	comment string,
) (Details, error) {
	d := Details{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setShipperID(shipperID),
		d.setFacility(facility),
		d.setProductType(productType),
		d.setTruckType(truckType),
		d.setTruckCount(truckCount),
		d.setWeight(weight),
	); err != nil {
		return Details{}, err
	}

	return d, nil
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsIsNotConstructed)
}

func (d Details) ShipperID() string {
	return d.shipperID
}

func (d Details) Facility() Facility {
	return d.facility
}

func (d Details) ProductType() string {
	return d.productType
}

func (d Details) TruckType() string {
	return d.truckType
}

// TruckCount is the number of trucks required, at least 1.
func (d Details) TruckCount() int {
	return d.truckCount
}

// Weight is the cargo weight, always greater than 0.
func (d Details) Weight() float64 {
	return d.weight
}

func (d Details) Comment() string {
	return d.comment
}

func (d *Details) setShipperID(shipperID string) error {
	if strings.TrimSpace(shipperID) == "" {
		return errs.NewValueIsRequiredError("shipperId")
	}
	d.shipperID = shipperID
	return nil
}

func (d *Details) setFacility(facility Facility) error {
	if err := facility.Validate(); err != nil {
		return err
	}
	d.facility = facility
	return nil
}

func (d *Details) setProductType(productType string) error {
	if strings.TrimSpace(productType) == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	d.productType = productType
	return nil
}

func (d *Details) setTruckType(truckType string) error {
	if strings.TrimSpace(truckType) == "" {
		return errs.NewValueIsRequiredError("truckType")
	}
	d.truckType = truckType
	return nil
}

func (d *Details) setTruckCount(truckCount int) error {
	if truckCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("noOfTrucks", fmt.Errorf("%d is less than 1", truckCount))
	}
	d.truckCount = truckCount
	return nil
}

func (d *Details) setWeight(weight float64) error {
	if !(weight > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	d.weight = weight
	return nil
}
