package booking

import "loadbooking/internal/core/domain/model/kernel"

const (
	EventRequested     = "booking.requested"
	EventUpdated       = "booking.updated"
	EventStatusChanged = "booking.status_changed"
	EventDeleted       = "booking.deleted"
)

type RequestedEvent struct {
	kernel.Event
	LoadID        kernel.UUID `json:"loadId"`
	TransporterID string      `json:"transporterId"`
	ProposedRate  float64     `json:"proposedRate"`
}

type UpdatedEvent struct {
	kernel.Event
	LoadID        kernel.UUID `json:"loadId"`
	TransporterID string      `json:"transporterId"`
	ProposedRate  float64     `json:"proposedRate"`
}

type StatusChangedEvent struct {
	kernel.Event
	LoadID kernel.UUID `json:"loadId"`
	From   Status      `json:"from"`
	To     Status      `json:"to"`
}

type DeletedEvent struct {
	kernel.Event
	LoadID kernel.UUID `json:"loadId"`
	Status Status      `json:"status"`
}
