package load

import "loadbooking/internal/core/domain/model/kernel"

// Event names written to the outbox.
const (
	EventPosted        = "load.posted"
	EventUpdated       = "load.updated"
	EventStatusChanged = "load.status_changed"
)

// PostedEvent is raised when a new load is created.
type PostedEvent struct {
	kernel.Event
	ShipperID   string  `json:"shipperId"`
	ProductType string  `json:"productType"`
	TruckType   string  `json:"truckType"`
	TruckCount  int     `json:"noOfTrucks"`
	Weight      float64 `json:"weight"`
	Status      Status  `json:"status"`
}

// UpdatedEvent is raised when the load details are replaced.
type UpdatedEvent struct {
	kernel.Event
	ShipperID   string  `json:"shipperId"`
	ProductType string  `json:"productType"`
	TruckType   string  `json:"truckType"`
	TruckCount  int     `json:"noOfTrucks"`
	Weight      float64 `json:"weight"`
}

// StatusChangedEvent is raised on every effective status change.
type StatusChangedEvent struct {
	kernel.Event
	From Status `json:"from"`
	To   Status `json:"to"`
}
